package importer

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"askthem/internal/directory/models"
)

// stringValue accepts scalars only. nil becomes "".
func stringValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", fmt.Errorf("expected scalar, got %T", v)
}

func boolValue(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", t)
		}
		return b, nil
	}
	return false, fmt.Errorf("expected boolean, got %T", v)
}

func stringsValue(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return append([]string(nil), t...), nil
	case string:
		if t == "" {
			return nil, nil
		}
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, err := stringValue(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected list of strings, got %T", v)
}

// roleValue keeps scalar entries; nested values such as office lists are
// dropped since roles are only read by key.
func roleValue(v any) (models.Role, error) {
	var m map[string]any
	switch t := v.(type) {
	case models.Role:
		return cloneRole(t), nil
	case map[string]string:
		return cloneRole(t), nil
	case map[string]any:
		m = t
	default:
		return nil, fmt.Errorf("expected role object, got %T", v)
	}
	role := make(models.Role, len(m))
	for k, raw := range m {
		s, err := stringValue(raw)
		if err != nil || s == "" {
			continue
		}
		role[k] = s
	}
	return role, nil
}

func cloneRole(m map[string]string) models.Role {
	role := make(models.Role, len(m))
	for k, v := range m {
		role[k] = v
	}
	return role
}

func rolesValue(v any) ([]models.Role, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []models.Role:
		out := make([]models.Role, len(t))
		for i, r := range t {
			out[i] = cloneRole(r)
		}
		return out, nil
	case []any:
		out := make([]models.Role, 0, len(t))
		for i, item := range t {
			role, err := roleValue(item)
			if err != nil {
				return nil, fmt.Errorf("role %d: %w", i, err)
			}
			out = append(out, role)
		}
		return out, nil
	case []map[string]any:
		out := make([]models.Role, 0, len(t))
		for i, item := range t {
			role, err := roleValue(item)
			if err != nil {
				return nil, fmt.Errorf("role %d: %w", i, err)
			}
			out = append(out, role)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected list of roles, got %T", v)
}

// snapshotsValue accepts either a term-keyed object or an already ordered
// list of {"term": ..., "roles": [...]} objects. Decoded objects lose key
// order, so term keys are assumed to start with their first year (or session
// number) and are ordered oldest first by compareTerms.
func snapshotsValue(v any) ([]models.RoleSnapshot, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []models.RoleSnapshot:
		return append([]models.RoleSnapshot(nil), t...), nil
	case map[string]any:
		terms := make([]string, 0, len(t))
		for term := range t {
			terms = append(terms, term)
		}
		slices.SortFunc(terms, compareTerms)
		out := make([]models.RoleSnapshot, 0, len(terms))
		for _, term := range terms {
			roles, err := rolesValue(t[term])
			if err != nil {
				return nil, fmt.Errorf("term %s: %w", term, err)
			}
			out = append(out, models.RoleSnapshot{Term: term, Roles: roles})
		}
		return out, nil
	case []any:
		out := make([]models.RoleSnapshot, 0, len(t))
		for i, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("snapshot %d: expected object, got %T", i, item)
			}
			term, err := stringValue(m["term"])
			if err != nil {
				return nil, fmt.Errorf("snapshot %d term: %w", i, err)
			}
			roles, err := rolesValue(m["roles"])
			if err != nil {
				return nil, fmt.Errorf("snapshot %d: %w", i, err)
			}
			out = append(out, models.RoleSnapshot{Term: term, Roles: roles})
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected role history, got %T", v)
}

// compareTerms orders terms by their leading number, so "9" precedes "10"
// and "2009-2010" precedes "2011-2012". Terms without one sort after those
// with one, by name.
func compareTerms(a, b string) int {
	na, okA := leadingNumber(a)
	nb, okB := leadingNumber(b)
	switch {
	case okA && okB && na != nb:
		return cmp.Compare(na, nb)
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	}
	return strings.Compare(a, b)
}

func leadingNumber(term string) (int, bool) {
	end := 0
	for end < len(term) && term[end] >= '0' && term[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(term[:end])
	return n, err == nil
}
