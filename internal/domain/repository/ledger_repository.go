package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para asientos del libro.
// Los asientos no se actualizan: se crean y, en todo caso, se eliminan.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.LedgerEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.LedgerEntry, error)
	ListByParty(ctx context.Context, ownerID, partyID string) ([]entity.LedgerEntry, error)
	Delete(ctx context.Context, ownerID, id string) error
}
