package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

var (
	seedEmail    string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Siembra datos de demostración",
	Long: `Crea un usuario de demostración con productos, contrapartes y
asientos de libro de ejemplo. Si el email ya existe el comando falla:
la siembra es solo para bases nuevas.`,
	Example: `  tools seed
  tools seed --email demo@acme.com --password demo1234`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "demo@gestionpro.local", "Email del usuario de demostración")
	seedCmd.Flags().StringVar(&seedPassword, "password", "demo1234", "Contraseña del usuario de demostración")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)

	existing, err := userRepo.GetByEmail(ctx, seedEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("el usuario %s ya existe", seedEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	now := time.Now().UTC()
	owner := &entity.User{
		ID:           uuid.NewString(),
		Email:        seedEmail,
		Name:         "Usuario Demo",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, owner); err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Camión de juguete", Category: "Juguetes", Quantity: 24, MinStock: 10, Price: decimal.NewFromFloat(19.90)},
		{Name: "Cuaderno A4", Category: "Papelería", Quantity: 5, MinStock: 20, Price: decimal.NewFromFloat(2.50)},
		{Name: "Mochila escolar", Category: "Papelería", Quantity: 0, MinStock: 5, Price: decimal.NewFromFloat(34.00)},
	}
	for i := range products {
		products[i].ID = uuid.NewString()
		products[i].OwnerID = owner.ID
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			return err
		}
	}

	parties := []entity.Party{
		{Kind: entity.PartyKindCustomer, Name: "Comercial Andina", Email: "compras@andina.example", Balance: decimal.Zero},
		{Kind: entity.PartyKindVendor, Name: "Distribuidora del Sur", Phone: "+57 300 000 0000", Balance: decimal.Zero},
	}
	for i := range parties {
		parties[i].ID = uuid.NewString()
		parties[i].OwnerID = owner.ID
		parties[i].CreatedAt = now
		parties[i].UpdatedAt = now
		if err := partyRepo.Create(ctx, &parties[i]); err != nil {
			return err
		}
	}

	entries := []entity.LedgerEntry{
		{
			EntityType:      entity.LedgerEntityCustomer,
			PartyID:         parties[0].ID,
			EntityName:      parties[0].Name,
			TransactionType: entity.LedgerTypeCredit,
			Amount:          decimal.NewFromFloat(150.00),
			Description:     "Pago factura inicial",
			Reference:       "REC-0001",
			Date:            now,
		},
		{
			EntityType:      entity.LedgerEntityVendor,
			PartyID:         parties[1].ID,
			EntityName:      parties[1].Name,
			TransactionType: entity.LedgerTypeDebit,
			Amount:          decimal.NewFromFloat(100.00),
			Description:     "Compra de mercadería",
			Reference:       "OC-0001",
			Date:            now,
		},
	}
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].OwnerID = owner.ID
		entries[i].CreatedAt = now
		if err := ledgerRepo.Create(ctx, &entries[i]); err != nil {
			return err
		}
	}

	log.Info().
		Str("email", seedEmail).
		Int("products", len(products)).
		Int("parties", len(parties)).
		Int("entries", len(entries)).
		Msg("datos de demostración sembrados")
	return nil
}
