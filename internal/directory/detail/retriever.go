// Package detail ensures every imported person has a PersonDetail record.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	"askthem/pkg/platform/sentinel"
	pstrings "askthem/pkg/platform/strings"
	"askthem/pkg/requestcontext"
)

// Retriever creates the default detail for a person that has none and
// back-fills the votesmart id on an existing one.
type Retriever struct {
	store  ports.DetailStore
	logger *slog.Logger
}

type Option func(*Retriever)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) { r.logger = logger }
}

func New(store ports.DetailStore, opts ...Option) (*Retriever, error) {
	if store == nil {
		return nil, errors.New("detail store is required")
	}
	r := &Retriever{store: store, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Retrieve is idempotent: a second call for the same person writes nothing.
func (r *Retriever) Retrieve(ctx context.Context, p *models.Person) error {
	if p == nil {
		return errors.New("person is required")
	}
	existing, err := r.store.FindByPersonID(ctx, p.ID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		d := models.DefaultDetail(p)
		d.Links = linksFrom(p)
		d.UpdatedAt = requestcontext.Now(ctx)
		if err := r.store.Save(ctx, d); err != nil {
			return fmt.Errorf("save detail for %s: %w", p.ID, err)
		}
		r.logger.DebugContext(ctx, "person detail created", "person_id", p.ID)
		return nil
	case err != nil:
		return fmt.Errorf("find detail for %s: %w", p.ID, err)
	}

	if existing.VotesmartID != "" || p.VotesmartID == "" {
		return nil
	}
	existing.VotesmartID = p.VotesmartID
	existing.UpdatedAt = requestcontext.Now(ctx)
	if err := r.store.Save(ctx, existing); err != nil {
		return fmt.Errorf("update detail for %s: %w", p.ID, err)
	}
	return nil
}

// linksFrom collects the source's profile page URLs, if any.
func linksFrom(p *models.Person) []models.Link {
	var urls []string
	for _, key := range []string{"url", "+url"} {
		if u, ok := p.Extra[key].(string); ok {
			urls = append(urls, u)
		}
	}
	var links []models.Link
	for _, u := range pstrings.DedupeAndTrim(urls) {
		links = append(links, models.Link{URL: u, Note: "official page"})
	}
	return links
}
