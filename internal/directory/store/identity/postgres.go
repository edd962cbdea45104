package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, identity *models.Identity) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO identities (id, person_id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			person_id = EXCLUDED.person_id,
			user_id = EXCLUDED.user_id,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		identity.ID.String(), identity.PersonID.String(), identity.UserID.String(),
		string(identity.Status), identity.CreatedAt, identity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (s *Postgres) ListByPerson(ctx context.Context, personID id.PersonID) ([]*models.Identity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, person_id, user_id, status, created_at, updated_at
		FROM identities WHERE person_id = $1
		ORDER BY created_at, id`, personID.String())
	if err != nil {
		return nil, fmt.Errorf("find identities: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Identity, 0)
	for rows.Next() {
		var (
			ident                   models.Identity
			identityID, pid, userID string
			status                  string
		)
		if err := rows.Scan(&identityID, &pid, &userID, &status, &ident.CreatedAt, &ident.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}
		if err := parseInto(identityID, (*uuid.UUID)(&ident.ID)); err != nil {
			return nil, err
		}
		if err := parseInto(pid, (*uuid.UUID)(&ident.PersonID)); err != nil {
			return nil, err
		}
		if err := parseInto(userID, (*uuid.UUID)(&ident.UserID)); err != nil {
			return nil, err
		}
		ident.Status = models.IdentityStatus(status)
		out = append(out, &ident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate identities: %w", err)
	}
	return out, nil
}

func (s *Postgres) CountByPersonAndStatus(ctx context.Context, personID id.PersonID, status models.IdentityStatus) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM identities WHERE person_id = $1 AND status = $2`,
		personID.String(), string(status),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count identities: %w", err)
	}
	return n, nil
}

func parseInto(raw string, dst *uuid.UUID) error {
	u, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("decode identity uuid %q: %w", raw, err)
	}
	*dst = u
	return nil
}
