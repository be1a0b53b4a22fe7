package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hanz-sales/internal/service"
)

// AuthHandler atiende /health y /auth/login. La password configurada se
// hashea con bcrypt al construirse; nunca se retiene en claro.
type AuthHandler struct {
	logger       *zap.Logger
	jwtServ      *service.JWTService
	username     string
	passwordHash []byte
}

func NewAuthHandler(logger *zap.Logger, jwtServ *service.JWTService, username, password string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{
		logger:       logger,
		jwtServ:      jwtServ,
		username:     username,
		passwordHash: hash,
	}, nil
}

type healthBody struct {
	Status string `json:"status" xml:"status"`
}

type loginBody struct {
	AccessToken string `json:"access_token" xml:"access_token"`
	TokenType   string `json:"token_type" xml:"token_type"`
	ExpiresIn   int64  `json:"expires_in" xml:"expires_in"`
}

// Health maneja GET /health.
func (h *AuthHandler) Health(c *gin.Context) {
	writeResponse(c, http.StatusOK, "response", healthBody{Status: "ok"})
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	body := bindBody(c)
	username := stringField(body, "username")
	password := stringField(body, "password")

	if username != h.username ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) != nil {
		writeError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtServ.Issue(username)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeResponse(c, http.StatusOK, "response", loginBody{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtServ.TTL().Seconds()),
	})
}
