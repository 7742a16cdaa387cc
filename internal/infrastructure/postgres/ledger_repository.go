package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, owner_id, entity_type, COALESCE(party_id::text, ''), entity_name, transaction_type, amount, description, reference, date, created_at`

// Create persiste un asiento.
func (r *LedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, owner_id, entity_type, party_id, entity_name, transaction_type, amount, description, reference, date, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.OwnerID, entry.EntityType, entry.PartyID, entry.EntityName,
		entry.TransactionType, entry.Amount, entry.Description, entry.Reference,
		entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento del dueño.
func (r *LedgerRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = $1 AND id = $2`
	var e entity.LedgerEntry
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&e.ID, &e.OwnerID, &e.EntityType, &e.PartyID, &e.EntityName, &e.TransactionType,
		&e.Amount, &e.Description, &e.Reference, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// ListByOwner lista todos los asientos del dueño, más reciente primero.
func (r *LedgerRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = $1 ORDER BY date DESC, created_at DESC`
	return r.list(ctx, query, ownerID)
}

// ListByParty lista los asientos de una contraparte, más antiguo primero
// (orden natural de un estado de cuenta).
func (r *LedgerRepo) ListByParty(ctx context.Context, ownerID, partyID string) ([]entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = $1 AND party_id = $2 ORDER BY date, created_at`
	return r.list(ctx, query, ownerID, partyID)
}

func (r *LedgerRepo) list(ctx context.Context, query string, args ...any) ([]entity.LedgerEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.EntityType, &e.PartyID, &e.EntityName,
			&e.TransactionType, &e.Amount, &e.Description, &e.Reference, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un asiento del dueño.
func (r *LedgerRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM ledger_entries WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}
