package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL.
// Clientes y proveedores comparten tabla, discriminados por kind.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste una contraparte nueva.
func (r *PartyRepo) Create(ctx context.Context, party *entity.Party) error {
	query := `
		INSERT INTO parties (id, owner_id, kind, name, email, phone, address, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		party.ID, party.OwnerID, party.Kind, party.Name, party.Email,
		party.Phone, party.Address, party.Balance, party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene una contraparte del dueño.
func (r *PartyRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Party, error) {
	query := `
		SELECT id, owner_id, kind, name, email, phone, address, balance, created_at, updated_at
		FROM parties WHERE owner_id = $1 AND id = $2`
	var p entity.Party
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&p.ID, &p.OwnerID, &p.Kind, &p.Name, &p.Email, &p.Phone, &p.Address,
		&p.Balance, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// ListByOwnerAndKind lista las contrapartes del dueño por tipo.
func (r *PartyRepo) ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]entity.Party, error) {
	query := `
		SELECT id, owner_id, kind, name, email, phone, address, balance, created_at, updated_at
		FROM parties WHERE owner_id = $1 AND kind = $2 ORDER BY name`
	rows, err := r.q.Query(ctx, query, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Kind, &p.Name, &p.Email, &p.Phone,
			&p.Address, &p.Balance, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza una contraparte existente (acotada por dueño).
func (r *PartyRepo) Update(ctx context.Context, party *entity.Party) error {
	query := `
		UPDATE parties SET name = $3, email = $4, phone = $5, address = $6, balance = $7, updated_at = $8
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		party.OwnerID, party.ID, party.Name, party.Email, party.Phone,
		party.Address, party.Balance, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// Delete elimina una contraparte del dueño. Los asientos que la referencian
// quedan con party_id NULL (FK ON DELETE SET NULL) y conservan entity_name.
func (r *PartyRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM parties WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}
