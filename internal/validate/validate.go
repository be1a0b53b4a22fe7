package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldError es un fallo de validacion con mensaje apto para el cliente.
type FieldError struct {
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func fieldErrf(format string, args ...any) *FieldError {
	return &FieldError{Message: fmt.Sprintf(format, args...)}
}

// Int convierte un valor JSON crudo a entero. Acepta numeros enteros y
// strings numericos; rechaza fracciones en lugar de truncarlas.
func Int(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fieldErrf("%s must be an integer", field)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fieldErrf("%s must be an integer", field)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fieldErrf("%s must be an integer", field)
		}
		return n, nil
	default:
		return 0, fieldErrf("%s must be an integer", field)
	}
}

// IntMin valida un entero con minimo inclusivo.
func IntMin(value any, field string, minimum int) (int, error) {
	n, err := Int(value, field)
	if err != nil {
		return 0, err
	}
	if n < minimum {
		return 0, fieldErrf("%s must be >= %d", field, minimum)
	}
	return n, nil
}

// Decimal convierte un valor JSON crudo a float64.
func Decimal(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fieldErrf("%s must be a number", field)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fieldErrf("%s must be a number", field)
		}
		return f, nil
	default:
		return 0, fieldErrf("%s must be a number", field)
	}
}

// Date acepta unicamente strings YYYY-MM-DD.
func Date(value any, field string) (time.Time, error) {
	s, ok := value.(string)
	if !ok || s == "" {
		return time.Time{}, fieldErrf("%s must be a date string (YYYY-MM-DD)", field)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fieldErrf("%s must be a date string (YYYY-MM-DD)", field)
	}
	return t, nil
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email valida la forma local@dominio.tld sin espacios.
func Email(value any) (string, error) {
	s, ok := value.(string)
	if !ok || !emailRe.MatchString(s) {
		return "", &FieldError{Message: "email must be a valid email address"}
	}
	return s, nil
}
