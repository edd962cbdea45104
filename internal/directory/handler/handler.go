// Package handler exposes the directory over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"askthem/internal/directory/importer"
	"askthem/internal/directory/models"
	"askthem/internal/platform/middleware"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/platform/httputil"
	"askthem/pkg/requestcontext"
)

// Service is the directory surface the handler needs.
type Service interface {
	OfficeholdersForLocation(ctx context.Context, raw string) ([]*models.Person, error)
	SearchByName(ctx context.Context, fragment string) ([]*models.Person, error)
	ListByTypes(ctx context.Context, tags []models.SubtypeTag) ([]*models.Person, error)
	ListActive(ctx context.Context) ([]*models.Person, error)
	Featured(ctx context.Context) (*models.Person, error)
	Get(ctx context.Context, personID id.PersonID) (*models.Person, error)
	Detail(ctx context.Context, personID id.PersonID) (*models.PersonDetail, error)
	Verified(ctx context.Context, personID id.PersonID) (bool, error)
	MostRecent(ctx context.Context, personID id.PersonID, attr string) (string, bool, error)
	MarkFeatured(ctx context.Context, personID id.PersonID) (*models.Person, error)
	LoadForJurisdiction(ctx context.Context, key id.JurisdictionKey, adapterName string) (*importer.Result, error)
}

type Handler struct {
	service    Service
	adminToken string
	logger     *slog.Logger
}

// New creates a Handler. An empty adminToken disables the admin routes.
func New(service Service, adminToken string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, adminToken: adminToken, logger: logger}
}

// Register mounts the public and admin routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/people", func(r chi.Router) {
		r.Get("/", h.handleForLocation)
		r.Get("/search", h.handleSearch)
		r.Get("/types", h.handleByTypes)
		r.Get("/active", h.handleActive)
		r.Get("/featured", h.handleFeatured)
		r.Get("/{id}", h.handleGet)
		r.Get("/{id}/detail", h.handleDetail)
		r.Get("/{id}/most-recent/{attribute}", h.handleMostRecent)
		r.Get("/{id}/verified", h.handleVerified)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(h.adminToken, h.logger))
		r.Post("/people/{id}/feature", h.handleMarkFeatured)
		r.Post("/jurisdictions/{key}/import", h.handleImport)
	})
}

func (h *Handler) handleForLocation(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.OfficeholdersForLocation(r.Context(), r.URL.Query().Get("location"))
	h.writePeople(w, r, people, err)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.SearchByName(r.Context(), r.URL.Query().Get("q"))
	h.writePeople(w, r, people, err)
}

func (h *Handler) handleByTypes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["type"]
	tags := make([]models.SubtypeTag, len(raw))
	for i, t := range raw {
		tags[i] = models.SubtypeTag(t)
	}
	people, err := h.service.ListByTypes(r.Context(), tags)
	h.writePeople(w, r, people, err)
}

func (h *Handler) handleActive(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.ListActive(r.Context())
	h.writePeople(w, r, people, err)
}

func (h *Handler) handleFeatured(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Featured(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(p))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(p))
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	d, err := h.service.Detail(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) handleMostRecent(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	attr := chi.URLParam(r, "attribute")
	value, found, err := h.service.MostRecent(r.Context(), personID, attr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, mostRecentResponse{Attribute: attr, Value: value, Found: found})
}

func (h *Handler) handleVerified(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	verified, err := h.service.Verified(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, verifiedResponse{PersonID: personID, Verified: verified})
}

func (h *Handler) handleMarkFeatured(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	p, err := h.service.MarkFeatured(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(p))
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	key := id.JurisdictionKey(chi.URLParam(r, "key"))
	res, err := h.service.LoadForJurisdiction(r.Context(), key, req.Adapter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyLoaded {
		status = http.StatusOK
	}
	httputil.WriteJSON(w, status, toImportResponse(res))
}

func (h *Handler) personID(w http.ResponseWriter, r *http.Request) (id.PersonID, bool) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid person id"))
		return id.PersonID{}, false
	}
	return personID, true
}

func (h *Handler) writePeople(w http.ResponseWriter, r *http.Request, people []*models.Person, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPeopleResponse(people))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	} else {
		h.logger.DebugContext(ctx, "request rejected",
			"path", r.URL.Path,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
