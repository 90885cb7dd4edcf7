package entity

import (
	"time"
)

// Gasto is a single expense record. Every read and write of a Gasto is
// scoped by both its ID and the owning UserID.
type Gasto struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Amount    float64   `json:"monto"`
	Date      time.Time `json:"fecha"`
	Category  string    `json:"categoria"`
	Completed bool      `json:"completado"`
	UserID    string    `json:"usuarioId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categorias is the closed set of expense categories accepted by the API.
var Categorias = []string{
	"Alimentación",
	"Transporte",
	"Vivienda",
	"Entretenimiento",
	"Salud",
	"Educación",
	"Ropa y accesorios",
	"Viajes",
	"Otros",
}

// CategoriaDefault is applied when a create request omits the category.
const CategoriaDefault = "Otros"

// IsCategoria reports whether s is a known category.
func IsCategoria(s string) bool {
	for _, c := range Categorias {
		if c == s {
			return true
		}
	}
	return false
}
