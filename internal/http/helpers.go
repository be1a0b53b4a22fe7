package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hanz-sales/internal/domain"
)

// bindBody decodifica el body JSON en un mapa; un body ausente o invalido
// se trata como mapa vacio y cae en la validacion de campos.
func bindBody(c *gin.Context) map[string]any {
	body := map[string]any{}
	_ = c.ShouldBindJSON(&body)
	return body
}

func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

// pathID replica el tipado de ruta: un id no numerico no matchea ningun
// recurso y responde 404.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		writeError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

// setLocation fija la cabecera Location del recurso creado, preservando el
// formato elegido por el caller como sufijo.
func setLocation(c *gin.Context, path string) {
	if f := c.Query("format"); f != "" {
		path += "?format=" + f
	}
	c.Header("Location", path)
}

// writeStorageError clasifica un fallo de almacenamiento en 404, 409 o un
// 500 generico sin filtrar detalle interno al cliente.
func writeStorageError(c *gin.Context, logger *zap.Logger, notFoundMsg string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrConflict):
		writeError(c, http.StatusConflict, "Conflict (duplicate key)")
	default:
		logger.Error("database error", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Database error")
	}
}
