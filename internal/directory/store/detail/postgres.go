package detail

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByPersonID(ctx context.Context, personID id.PersonID) (*models.PersonDetail, error) {
	var (
		d     models.PersonDetail
		pid   string
		links []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT person_id, biography, links, signature_threshold, votesmart_id, updated_at
		FROM person_details WHERE person_id = $1`, personID.String(),
	).Scan(&pid, &d.Biography, &links, &d.SignatureThreshold, &d.VotesmartID, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find person detail: %w", err)
	}
	u, err := uuid.Parse(pid)
	if err != nil {
		return nil, fmt.Errorf("decode person detail id %q: %w", pid, err)
	}
	if err := json.Unmarshal(links, &d.Links); err != nil {
		return nil, fmt.Errorf("decode person detail links: %w", err)
	}
	if len(d.Links) == 0 {
		d.Links = nil
	}
	d.PersonID = id.PersonID(u)
	d.Persisted = true
	return &d, nil
}

func (s *Postgres) Save(ctx context.Context, detail *models.PersonDetail) error {
	links := detail.Links
	if links == nil {
		links = []models.Link{}
	}
	encoded, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("encode person detail links: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO person_details (person_id, biography, links, signature_threshold, votesmart_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (person_id) DO UPDATE SET
			biography = EXCLUDED.biography,
			links = EXCLUDED.links,
			signature_threshold = EXCLUDED.signature_threshold,
			votesmart_id = EXCLUDED.votesmart_id,
			updated_at = EXCLUDED.updated_at`,
		detail.PersonID.String(), detail.Biography, string(encoded), detail.SignatureThreshold,
		detail.VotesmartID, detail.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save person detail: %w", err)
	}
	detail.Persisted = true
	return nil
}
