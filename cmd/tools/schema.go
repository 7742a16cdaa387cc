package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
)

var schemaApply bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Imprime o aplica el esquema de base de datos",
	Long: `Imprime el DDL completo del esquema en stdout. Con --apply lo
ejecuta contra la base configurada (DATABASE_URL o DB_*). El DDL usa
CREATE TABLE IF NOT EXISTS, así que aplicarlo sobre una base existente
es seguro.`,
	Example: `  # Revisar el DDL
  tools schema

  # Crear las tablas
  tools schema --apply`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaApply, "apply", false, "Ejecutar el DDL contra la base configurada")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	if !schemaApply {
		fmt.Print(postgres.Schema)
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, postgres.Schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema aplicado")
	return nil
}
