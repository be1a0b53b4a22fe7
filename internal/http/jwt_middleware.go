package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hanz-sales/internal/service"
)

// JWTAuthMiddleware protege rutas exigiendo un bearer token valido.
// El prefijo "Bearer " es literal y sensible a mayusculas.
func JWTAuthMiddleware(jwtServ *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		if _, err := jwtServ.Verify(token); err != nil {
			if errors.Is(err, service.ErrJWTExpired) {
				writeError(c, http.StatusUnauthorized, "Token expired")
			} else {
				writeError(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
