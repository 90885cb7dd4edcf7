package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string  `json:"nombre" binding:"required,min=3"`
	Email    string  `json:"email" binding:"required,email"`
	Amount   float64 `json:"monto" binding:"gt=0"`
	Category string  `json:"categoria" binding:"omitempty,categoria"`
}

func engine(t *testing.T) *validator.Validate {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	v := engine(t)

	err := v.Struct(sampleRequest{Name: "Al", Email: "no-es-email", Amount: -1})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "nombre")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "monto")
	assert.Equal(t, "debe ser un email válido (ejemplo@correo.com)", details["email"])
}

func TestCategoriaRule(t *testing.T) {
	v := engine(t)

	ok := sampleRequest{Name: "Ana", Email: "ana@x.com", Amount: 5, Category: "Transporte"}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Category = "Lujos"
	err := v.Struct(bad)
	require.Error(t, err)
	details := ToDetails(err)
	assert.Contains(t, details["categoria"], "categoría válida")
}

func TestToDetailsNilAndUnknown(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "datos inválidos"}, ToDetails(assert.AnError))
}
