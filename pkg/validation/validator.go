package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the "categoria" rule and common aliases.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("categoria", func(fl validator.FieldLevel) bool {
			return entity.IsCategoria(fl.Field().String())
		})
		// Aliases for common semantics
		v.RegisterAlias("pwd", "min=8") // password minimum length
		v.RegisterAlias("nonzero", "required")
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for the "detalles" key of an error envelope.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return map[string]string{"payload": "JSON inválido"}
	}
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return map[string]string{field: "tipo de dato inválido"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "datos inválidos"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido (ejemplo@correo.com)"
	case "min":
		if isNumberKind(kind) {
			return "debe ser al menos " + param
		}
		return "debe tener al menos " + param + " caracteres"
	case "max":
		if isNumberKind(kind) {
			return "debe ser como máximo " + param
		}
		return "debe tener como máximo " + param + " caracteres"
	case "gt":
		return "debe ser mayor que " + param
	case "gte":
		return "debe ser mayor o igual que " + param
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(param, " ", ", ")
	case "categoria":
		return "debe ser una categoría válida: " + strings.Join(entity.Categorias, ", ")
	case "datetime":
		return "debe ser una fecha válida"
	case "pwd":
		return "debe tener al menos 8 caracteres"
	default:
		if param != "" {
			return fmt.Sprintf("no cumple la regla '%s=%s'", tag, param)
		}
		return fmt.Sprintf("no cumple la regla '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
