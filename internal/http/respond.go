package http

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Format es el formato de salida elegido una vez por request.
type Format int

const (
	FormatJSON Format = iota
	FormatXML
)

const formatKey = "response_format"

const xmlContentType = "application/xml; charset=utf-8"

// FormatMiddleware resuelve el query param `format` antes de cualquier
// handler. Un valor distinto de json/xml corta con 400.
func FormatMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.ToLower(strings.TrimSpace(c.Query("format")))
		switch raw {
		case "", "json":
			c.Set(formatKey, FormatJSON)
		case "xml":
			c.Set(formatKey, FormatXML)
		default:
			// No hay formato legal elegido; el error sale en JSON.
			c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
				Error:  "format must be 'json' or 'xml'",
				Status: http.StatusBadRequest,
			})
			return
		}
		c.Next()
	}
}

func requestFormat(c *gin.Context) Format {
	if v, ok := c.Get(formatKey); ok {
		if f, ok := v.(Format); ok {
			return f
		}
	}
	return FormatJSON
}

// writeResponse serializa el payload en el formato del request. En XML el
// payload cuelga del elemento raiz indicado; en JSON sale tal cual.
func writeResponse(c *gin.Context, status int, root string, payload any) {
	if requestFormat(c) == FormatXML {
		var buf bytes.Buffer
		enc := xml.NewEncoder(&buf)
		start := xml.StartElement{Name: xml.Name{Local: root}}
		if err := enc.EncodeElement(payload, start); err != nil {
			c.Data(http.StatusInternalServerError, xmlContentType, []byte("<error><status>500</status></error>"))
			return
		}
		_ = enc.Flush()
		c.Data(status, xmlContentType, buf.Bytes())
		return
	}
	c.JSON(status, payload)
}

// ErrorDetails permite serializar el mapa opcional de detalles en XML.
type ErrorDetails map[string]string

func (d ErrorDetails) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(d) == 0 {
		return nil
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for k, v := range d {
		if err := e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: k}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type errorBody struct {
	Error   string       `json:"error" xml:"error"`
	Status  int          `json:"status" xml:"status"`
	Details ErrorDetails `json:"details,omitempty" xml:"details,omitempty"`
}

// writeError rinde el sobre de error uniforme en el formato del request.
func writeError(c *gin.Context, status int, message string) {
	writeResponse(c, status, "error", errorBody{Error: message, Status: status})
}
