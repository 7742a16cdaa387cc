package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tu-usuario/gestion-pro/internal/domain/compute"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
)

var importOwnerEmail string

var importCmd = &cobra.Command{
	Use:   "import <archivo.csv>",
	Short: "Importa productos desde un archivo CSV",
	Long: `Importa productos desde un CSV con cabecera:

  name,category,quantity,min_stock,price

Los montos se interpretan de forma permisiva: celdas vacías o no
numéricas se tratan como cero, igual que en una hoja de cálculo. Cada
fila se valida antes de insertarse; una fila inválida aborta la
importación con el número de línea.`,
	Example: `  tools import productos.csv --owner demo@gestionpro.local`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func init() {
	importCmd.Flags().StringVar(&importOwnerEmail, "owner", "", "Email del usuario dueño de los productos (requerido)")
	_ = importCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	owner, err := postgres.NewUserRepository(pool).GetByEmail(ctx, importOwnerEmail)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("usuario %s no encontrado", importOwnerEmail)
	}
	productRepo := postgres.NewProductRepository(pool)

	r := csv.NewReader(f)
	r.FieldsPerRecord = 5
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("leer cabecera: %w", err)
	}
	if header[0] != "name" {
		return fmt.Errorf("cabecera inesperada: %q (se espera name,category,quantity,min_stock,price)", header)
	}

	imported := 0
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("línea %d: %w", line, err)
		}

		now := time.Now().UTC()
		p := &entity.Product{
			ID:        uuid.NewString(),
			OwnerID:   owner.ID,
			Name:      record[0],
			Category:  record[1],
			Quantity:  compute.ParseAmount(record[2]).IntPart(),
			MinStock:  compute.ParseAmount(record[3]).IntPart(),
			Price:     compute.ParseAmount(record[4]),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if verr := validate.Product(p); verr != nil {
			return fmt.Errorf("línea %d: %s", line, verr.Error())
		}
		if err := productRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("línea %d: %w", line, err)
		}
		imported++
	}

	log.Info().Int("imported", imported).Str("owner", importOwnerEmail).Msg("importación completada")
	return nil
}
