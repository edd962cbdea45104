package service

import (
	"context"

	"askthem/internal/directory/importer"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
)

// LoadForJurisdiction imports key from the default source using the named
// adapter. Blank selects the identity adapter.
func (s *Service) LoadForJurisdiction(ctx context.Context, key id.JurisdictionKey, adapterName string) (*importer.Result, error) {
	if s.importer == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "importer is not configured")
	}
	parsed, err := id.ParseJurisdictionKey(string(key))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid jurisdiction")
	}
	adapter, err := importer.AdapterByName(adapterName)
	if err != nil {
		return nil, err
	}
	return s.importer.LoadForJurisdiction(ctx, parsed, nil, adapter)
}
