package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// PartyRepository define el puerto de persistencia para clientes y
// proveedores (misma tabla, discriminada por kind).
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Party, error)
	ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]entity.Party, error)
	Update(ctx context.Context, party *entity.Party) error
	Delete(ctx context.Context, ownerID, id string) error
}
