package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askthem/internal/directory/models"
)

func TestMostRecent(t *testing.T) {
	tests := []struct {
		name   string
		person *models.Person
		attr   string
		want   string
		wantOK bool
	}{
		{
			name:   "top-level value wins",
			person: &models.Person{Chamber: "upper", OldRoles: snapshots(models.Role{"chamber": "lower"})},
			attr:   "chamber",
			want:   "upper",
			wantOK: true,
		},
		{
			name:   "newest snapshot wins over older ones",
			person: &models.Person{OldRoles: snapshots(models.Role{"chamber": "upper"}, models.Role{"chamber": "lower"})},
			attr:   "chamber",
			want:   "lower",
			wantOK: true,
		},
		{
			name: "snapshots without the attribute are skipped",
			person: &models.Person{OldRoles: []models.RoleSnapshot{
				{Term: "2009-2010", Roles: []models.Role{{"district": "7"}}},
				{Term: "2011-2012", Roles: []models.Role{{"type": "committee member"}}},
				{Term: "2013-2014"},
			}},
			attr:   "district",
			want:   "7",
			wantOK: true,
		},
		{
			name: "roles within a snapshot are read in stored order",
			person: &models.Person{OldRoles: []models.RoleSnapshot{
				{Term: "2011-2012", Roles: []models.Role{{"district": ""}, {"district": "3"}, {"district": "4"}}},
			}},
			attr:   "district",
			want:   "3",
			wantOK: true,
		},
		{
			name:   "extra attributes count as top-level",
			person: &models.Person{Extra: map[string]any{"party": "Green"}, OldRoles: snapshots(models.Role{"party": "Blue"})},
			attr:   "party",
			want:   "Green",
			wantOK: true,
		},
		{
			name:   "exhausted history yields nothing",
			person: &models.Person{OldRoles: snapshots(models.Role{"chamber": "upper"})},
			attr:   "district",
			wantOK: false,
		},
		{
			name:   "no history yields nothing",
			person: &models.Person{},
			attr:   "chamber",
			wantOK: false,
		},
		{
			name:   "nil person yields nothing",
			attr:   "chamber",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostRecent(tt.person, tt.attr)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// snapshots builds one single-role snapshot per role, oldest first.
func snapshots(roles ...models.Role) []models.RoleSnapshot {
	out := make([]models.RoleSnapshot, len(roles))
	for i, role := range roles {
		out[i] = models.RoleSnapshot{Term: string(rune('a' + i)), Roles: []models.Role{role}}
	}
	return out
}
