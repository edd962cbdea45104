package person

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// Postgres persists people as a JSONB document plus the columns its queries
// filter and sort on. The featured column is authoritative over the document.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, p *models.Person) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode person: %w", err)
	}
	query := `
		INSERT INTO people (id, slug, full_name, first_name, last_name, jurisdiction_id, type,
			featured, active, chamber, district, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			slug = EXCLUDED.slug,
			full_name = EXCLUDED.full_name,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			jurisdiction_id = EXCLUDED.jurisdiction_id,
			type = EXCLUDED.type,
			featured = EXCLUDED.featured,
			active = EXCLUDED.active,
			chamber = EXCLUDED.chamber,
			district = EXCLUDED.district,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		p.ID.String(), p.Slug, p.FullName, p.FirstName, p.LastName, p.Jurisdiction, string(p.Type),
		p.Featured, p.Active, p.Chamber, p.District, string(doc), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save person: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx, `SELECT document, featured FROM people WHERE id = $1`, personID.String())
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find person: %w", err)
	}
	return p, nil
}

func (s *Postgres) Find(ctx context.Context, filter ports.PersonFilter) ([]*models.Person, error) {
	where, args := filterClause(filter)
	return s.query(ctx, `SELECT document, featured FROM people`+where+orderByChamberAndName, args...)
}

func (s *Postgres) SearchByName(ctx context.Context, fragment string) ([]*models.Person, error) {
	if fragment == "" {
		return []*models.Person{}, nil
	}
	query := `SELECT document, featured FROM people
		WHERE full_name = $1 OR first_name = $1 OR last_name = $1
			OR full_name ILIKE $2 OR first_name ILIKE $2 OR last_name ILIKE $2` + orderByChamberAndName
	return s.query(ctx, query, fragment, "%"+escapeLike(fragment)+"%")
}

func (s *Postgres) CountByJurisdiction(ctx context.Context, key id.JurisdictionKey) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people WHERE jurisdiction_id = $1`, string(key)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return n, nil
}

func (s *Postgres) DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT type FROM people`)
	if err != nil {
		return nil, fmt.Errorf("distinct types: %w", err)
	}
	defer rows.Close()

	seen := make(map[models.SubtypeTag]struct{})
	tags := make([]models.SubtypeTag, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		tag := models.NormalizeSubtype(raw)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate types: %w", err)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

func (s *Postgres) FindFeatured(ctx context.Context) ([]*models.Person, error) {
	return s.query(ctx, `SELECT document, featured FROM people WHERE featured`+orderByChamberAndName)
}

func (s *Postgres) SetFeatured(ctx context.Context, personID id.PersonID, featured bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE people SET featured = $2 WHERE id = $1`, personID.String(), featured)
	if err != nil {
		return fmt.Errorf("set featured: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set featured rows: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) DemoteFeaturedExcept(ctx context.Context, keep id.PersonID) (int, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE people SET featured = FALSE WHERE featured AND id <> $1`, keep.String())
	if err != nil {
		return 0, fmt.Errorf("demote featured: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("demote featured rows: %w", err)
	}
	return int(n), nil
}

const orderByChamberAndName = ` ORDER BY chamber, last_name, id`

func (s *Postgres) query(ctx context.Context, query string, args ...any) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		doc      []byte
		featured bool
	)
	if err := row.Scan(&doc, &featured); err != nil {
		return nil, err
	}
	var p models.Person
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode person: %w", err)
	}
	p.Featured = featured
	return &p, nil
}

func filterClause(f ports.PersonFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.ActiveOnly {
		conds = append(conds, "active")
	}
	if f.Jurisdiction != "" {
		conds = append(conds, "jurisdiction_id = "+arg(f.Jurisdiction))
	}
	if f.Chamber != "" {
		role, _ := json.Marshal([]map[string]string{{"chamber": f.Chamber}})
		conds = append(conds, fmt.Sprintf("(chamber = %s OR document->'roles' @> %s::jsonb)", arg(f.Chamber), arg(string(role))))
	}
	if f.District != "" {
		role, _ := json.Marshal([]map[string]string{{"district": f.District}})
		conds = append(conds, fmt.Sprintf("(district = %s OR document->'roles' @> %s::jsonb)", arg(f.District), arg(string(role))))
	}
	if len(f.Types) > 0 {
		types := make([]string, 0, len(f.Types)+1)
		for _, t := range f.Types {
			tag := models.NormalizeSubtype(string(t))
			types = append(types, string(tag))
			if tag == models.SubtypePerson {
				types = append(types, "")
			}
		}
		conds = append(conds, "type = ANY("+arg(pq.Array(types))+")")
	}
	if len(f.Slugs) > 0 {
		conds = append(conds, "slug = ANY("+arg(pq.Array(f.Slugs))+")")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
