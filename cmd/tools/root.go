package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tools",
	Short: "Utilidades de administración de Gestión Pro",
	Long: `Utilidades de línea de comandos para administrar una instancia de
Gestión Pro: imprimir o aplicar el esquema de base de datos, sembrar
datos de demostración e importar productos desde CSV.`,
}

// Execute corre la CLI con la configuración y logger ya inicializados.
func Execute(c *config.Config, l *logger.Logger) {
	cfg = c
	log = l
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
