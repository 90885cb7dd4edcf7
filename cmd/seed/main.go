package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Reidyensam/SeguimientoGastos/config"
	"github.com/Reidyensam/SeguimientoGastos/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@gastos.local"
	password := "password123"
	nombre := "Usuario Demo"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO usuarios (nombre, email, password_hash)
		VALUES ($1, lower($2), $3)
		ON CONFLICT (email) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id
	`, nombre, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	gastos := []struct {
		nombre    string
		monto     float64
		categoria string
		daysAgo   int
	}{
		{"Supermercado", 54.30, "Alimentación", 3},
		{"Bus al centro", 1.50, "Transporte", 2},
		{"Cine", 12.00, "Entretenimiento", 1},
	}
	for _, g := range gastos {
		if _, err := db.Exec(`
			INSERT INTO gastos (nombre, monto, fecha, categoria, usuario_id)
			VALUES ($1, $2, $3, $4, $5)
		`, g.nombre, g.monto, time.Now().AddDate(0, 0, -g.daysAgo), g.categoria, id); err != nil {
			log.Fatalf("failed to seed gasto %q: %v", g.nombre, err)
		}
	}
	fmt.Printf("seeded %d gastos for user %s\n", len(gastos), id)
}
