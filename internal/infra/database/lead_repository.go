package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

// LeadRepository só sabe fazer query com escopo de dono: todo WHERE carrega
// o user_id, inclusive UPDATE e DELETE.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''),
		status, COALESCE(notes, ''), created_at, updated_at, user_id`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, company, status, notes, created_at, updated_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Company),
		lead.Status,
		nullString(lead.Notes),
		lead.CreatedAt,
		lead.UpdatedAt,
		lead.UserID,
	)
	if err != nil {
		logs.Logger.WithError(err).Error("erro no banco ao inserir lead")
		return err
	}

	return nil
}

func (r *LeadRepository) Update(ctx context.Context, userID string, lead *entity.Lead) error {
	// Status vazio não rebaixa o lead: NULLIF/COALESCE mantém o valor
	// que já está na linha quando o form não mandou status.
	query := `
		UPDATE leads
		SET name = $1, email = $2, phone = $3, company = $4,
			status = COALESCE(NULLIF($5, ''), status), notes = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Company),
		lead.Status,
		nullString(lead.Notes),
		lead.UpdatedAt,
		lead.ID,
		userID,
	)
	if err != nil {
		logs.Logger.WithError(err).Error("erro no banco ao atualizar lead")
		return err
	}

	return rowsTouched(res)
}

func (r *LeadRepository) Delete(ctx context.Context, userID, leadID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1 AND user_id = $2`, leadID, userID)
	if err != nil {
		logs.Logger.WithError(err).Error("erro no banco ao excluir lead")
		return err
	}

	return rowsTouched(res)
}

func (r *LeadRepository) FindAllByUser(ctx context.Context, userID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindOwned(ctx context.Context, userID, leadID string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1 AND user_id = $2`

	var lead entity.Lead
	err := scanLead(r.DB.QueryRowContext(ctx, query, leadID, userID), &lead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) FindOwnedByIDs(ctx context.Context, userID string, leadIDs []string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ANY($1::uuid[]) AND user_id = $2`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(leadIDs), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// ListForStats traz só a projeção que a agregação usa.
func (r *LeadRepository) ListForStats(ctx context.Context, userID string) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT status, created_at FROM leads WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(&lead.Status, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Status,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lead.UserID,
	)
}

// rowsTouched traduz "nenhuma linha afetada" no sentinela de posse.
func rowsTouched(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
