package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askthem/internal/directory/models"
	dErrors "askthem/pkg/domain-errors"
)

func TestIdentityAdapter(t *testing.T) {
	t.Run("raw id is never assigned", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"id":        "CAL000001",
			"_id":       "abc",
			"full_name": "Jane Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", attrs.FullName)
		assert.NotContains(t, attrs.Extra, "id")
		assert.NotContains(t, attrs.Extra, "_id")

		p := models.NewPerson("ca", nowForTest)
		before := p.ID
		p.Apply(attrs)
		assert.Equal(t, before, p.ID)
	})

	t.Run("store-owned keys are dropped", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"featured":        true,
			"jurisdiction_id": "tx",
		})
		require.NoError(t, err)
		assert.Empty(t, attrs.Extra)
	})

	t.Run("known keys land on canonical fields", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"slug":                   "CAL000123",
			"type":                   "Governor",
			"active":                 "true",
			"chamber":                "upper",
			"district":               float64(6),
			"additional_twitter_ids": []any{"@JaneDoe", "janedoe", "JaneOffice"},
			"roles":                  []any{map[string]any{"chamber": "upper", "district": "6", "end_date": nil}},
			"party":                  "Democratic",
		})
		require.NoError(t, err)
		assert.Equal(t, "CAL000123", attrs.Slug)
		assert.Equal(t, models.SubtypeGovernor, attrs.Type)
		assert.True(t, attrs.Active)
		assert.Equal(t, "6", attrs.District)
		assert.Equal(t, []string{"janedoe", "janeoffice"}, attrs.AdditionalTwitterIDs)
		assert.Equal(t, []models.Role{{"chamber": "upper", "district": "6"}}, attrs.Roles)
		assert.Equal(t, "Democratic", attrs.Extra["party"])
	})

	t.Run("term-keyed history is ordered oldest first", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"old_roles": map[string]any{
				"2011-2012": []any{map[string]any{"chamber": "lower"}},
				"2009-2010": []any{map[string]any{"chamber": "upper"}},
			},
		})
		require.NoError(t, err)
		require.Len(t, attrs.OldRoles, 2)
		assert.Equal(t, "2009-2010", attrs.OldRoles[0].Term)
		assert.Equal(t, "2011-2012", attrs.OldRoles[1].Term)
	})

	t.Run("numbered sessions are ordered numerically", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"old_roles": map[string]any{
				"10":      []any{map[string]any{"chamber": "upper"}},
				"9":       []any{map[string]any{"chamber": "lower"}},
				"special": []any{map[string]any{"chamber": "upper"}},
			},
		})
		require.NoError(t, err)
		terms := make([]string, len(attrs.OldRoles))
		for i, snap := range attrs.OldRoles {
			terms[i] = snap.Term
		}
		assert.Equal(t, []string{"9", "10", "special"}, terms)
	})

	t.Run("typed role lists are copied", func(t *testing.T) {
		attrs, err := IdentityAdapter{}.Adapt(models.RawAttributes{
			"roles": []map[string]any{{"chamber": "upper", "committee_id": "CAC000001", "term": nil}},
		})
		require.NoError(t, err)
		assert.Equal(t, []models.Role{{"chamber": "upper", "committee_id": "CAC000001"}}, attrs.Roles)
	})

	t.Run("mistyped value is a validation error", func(t *testing.T) {
		_, err := IdentityAdapter{}.Adapt(models.RawAttributes{"active": []any{1}})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "active")
	})
}

func TestCompareTerms(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"9", "10", -1},
		{"2009-2010", "2011-2012", -1},
		{"2011-2012", "2009-2010", 1},
		{"2009-2010", "2009-2010", 0},
		{"2009", "special", -1},
		{"special", "extra", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, compareTerms(tt.a, tt.b))
		})
	}
}

func TestOpenStatesAdapter(t *testing.T) {
	t.Run("maps legislator payload", func(t *testing.T) {
		attrs, err := OpenStatesAdapter{}.Adapt(models.RawAttributes{
			"id":           "CAL000088",
			"leg_id":       "CAL000088",
			"state":        "ca",
			"full_name":    "Toni G. Atkins",
			"first_name":   "Toni",
			"last_name":    "Atkins",
			"+title":       "Sen.",
			"+gender":      "Female",
			"active":       true,
			"chamber":      "upper",
			"district":     "39",
			"party":        "Democratic",
			"votesmart_id": "9026",
			"old_roles": map[string]any{
				"2009-2010": []any{map[string]any{"chamber": "lower", "district": "76"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "CAL000088", attrs.Slug)
		assert.Equal(t, "Sen.", attrs.HonorificPrefix)
		assert.Equal(t, "Female", attrs.Gender)
		assert.Equal(t, models.SubtypeStateLegislator, attrs.Type)
		assert.Equal(t, "state_senator", attrs.PoliticalPosition)
		assert.Equal(t, "9026", attrs.VotesmartID)
		assert.Equal(t, "Democratic", attrs.Extra["party"])
		assert.NotContains(t, attrs.Extra, "state")
		assert.NotContains(t, attrs.Extra, "id")
		require.Len(t, attrs.OldRoles, 1)
	})

	t.Run("record without a name is rejected", func(t *testing.T) {
		_, err := OpenStatesAdapter{}.Adapt(models.RawAttributes{"leg_id": "CAL000001"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestAdapterByName(t *testing.T) {
	a, err := AdapterByName("")
	require.NoError(t, err)
	assert.IsType(t, IdentityAdapter{}, a)

	a, err = AdapterByName("OpenStates")
	require.NoError(t, err)
	assert.IsType(t, OpenStatesAdapter{}, a)

	_, err = AdapterByName("csv")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
