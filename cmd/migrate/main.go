// Command migrate aplica las migraciones del esquema con goose.
//
// Uso:
//
//	migrate up          aplica todas las migraciones pendientes
//	migrate down        revierte la última migración
//	migrate status      muestra el estado de las migraciones
package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/venus-soft/venus-inventory-api/pkg/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DB.DSN())
	if err != nil {
		fmt.Fprintln(os.Stderr, "abrir conexión:", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Fprintln(os.Stderr, "dialecto goose:", err)
		os.Exit(1)
	}

	if err := goose.RunContext(context.Background(), command, db, "migrations"); err != nil {
		fmt.Fprintf(os.Stderr, "goose %s: %v\n", command, err)
		os.Exit(1)
	}
}
