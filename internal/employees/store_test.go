package employees

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	for _, e := range []models.Employee{
		{ID: "E1", Name: "John Smith", Contact: "555-0101", Email: "john@acme.io"},
		{ID: "E2", Name: "Joanna Doe", Contact: "555-0102"},
		{ID: "E10", Name: "Mark Twain", Contact: "777-0001", Email: "mark@ACME.io"},
	} {
		_, err := s.Add(e.ID, e.Name, e.Contact, e.Email)
		require.NoError(t, err)
	}
	return s
}

func ids(list []models.Employee) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

func TestAdd_CountsDistinctIDs(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		_, err := s.Add(fmt.Sprintf("E%d", i), "Name", "555", "")
		require.NoError(t, err)
	}
	assert.Equal(t, 5, s.Count())

	_, err := s.Add("E3", "Other", "000", "")
	require.ErrorIs(t, err, common.ErrDuplicateID)
	assert.Equal(t, 5, s.Count())
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name                      string
		id, empName, contact, eml string
	}{
		{name: "empty id", id: "", empName: "Ann", contact: "555"},
		{name: "blank name", id: "E1", empName: "   ", contact: "555"},
		{name: "blank contact", id: "E1", empName: "Ann", contact: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			_, err := s.Add(tt.id, tt.empName, tt.contact, tt.eml)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Zero(t, s.Count())
		})
	}
}

func TestAdd_TrimsAndDefaultsEmail(t *testing.T) {
	s := NewStore()
	e, err := s.Add(" E1 ", " Ann ", " 555 ", "")
	require.NoError(t, err)
	assert.Equal(t, models.Employee{ID: "E1", Name: "Ann", Contact: "555", Email: ""}, e)

	_, err = s.Add("E1", "Dup", "1", "")
	require.ErrorIs(t, err, common.ErrDuplicateID)
}

func TestAdd_IDCheckIsCaseSensitive(t *testing.T) {
	s := NewStore()
	_, err := s.Add("e1", "Ann", "555", "")
	require.NoError(t, err)
	_, err = s.Add("E1", "Bob", "556", "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := seeded(t)

	e, err := s.Update("E2", "Joanna Roe", "555-9999", "jr@acme.io")
	require.NoError(t, err)
	assert.Equal(t, "Joanna Roe", e.Name)

	all := s.All()
	assert.Equal(t, []string{"E1", "E2", "E10"}, ids(all))
	assert.Equal(t, models.Employee{ID: "E2", Name: "Joanna Roe", Contact: "555-9999", Email: "jr@acme.io"}, all[1])
}

func TestUpdate_MissingLeavesStoreUnchanged(t *testing.T) {
	s := seeded(t)
	before := s.All()

	_, err := s.Update("E99", "Ghost", "000", "")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, before, s.All())

	_, err = s.Update("E1", "", "000", "")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, before, s.All())
}

func TestRemove_ThenReAddSameID(t *testing.T) {
	s := seeded(t)

	require.NoError(t, s.Remove("E2"))
	assert.Equal(t, []string{"E1", "E10"}, ids(s.All()))

	require.ErrorIs(t, s.Remove("E2"), common.ErrNotFound)

	_, err := s.Add("E2", "Again", "123", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E10", "E2"}, ids(s.All()))
}

func TestFilter(t *testing.T) {
	s := seeded(t)

	tests := []struct {
		name     string
		criteria models.Criteria
		want     []string
	}{
		{name: "empty criteria returns all in order", criteria: models.Criteria{}, want: []string{"E1", "E2", "E10"}},
		{name: "name substring case-insensitive", criteria: models.Criteria{Name: "jo"}, want: []string{"E1", "E2"}},
		{name: "not a prefix match", criteria: models.Criteria{Name: "smith"}, want: []string{"E1"}},
		{name: "id substring", criteria: models.Criteria{ID: "1"}, want: []string{"E1", "E10"}},
		{name: "criteria are ANDed", criteria: models.Criteria{ID: "1", Name: "zz"}, want: []string{}},
		{name: "id and name", criteria: models.Criteria{ID: "1", Name: "MARK"}, want: []string{"E10"}},
		{name: "contact", criteria: models.Criteria{Contact: "555"}, want: []string{"E1", "E2"}},
		{name: "email skips empty emails", criteria: models.Criteria{Email: "acme"}, want: []string{"E1", "E10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.Filter(tt.criteria)))
		})
	}
}

func TestFilter_DoesNotAliasStore(t *testing.T) {
	s := seeded(t)

	got := s.Filter(models.Criteria{})
	got[0].Name = "changed"

	e, ok := s.Get("E1")
	require.True(t, ok)
	assert.Equal(t, "John Smith", e.Name)
}

func TestSearch_MatchesAnyField(t *testing.T) {
	s := seeded(t)

	assert.Equal(t, []string{"E1", "E2", "E10"}, ids(s.Search("")))
	assert.Equal(t, []string{"E1", "E2"}, ids(s.Search("JO")))
	assert.Equal(t, []string{"E10"}, ids(s.Search("777")))
	assert.Equal(t, []string{"E1", "E10"}, ids(s.Search("acme")))
}

func TestLoad_SkipsInvalidRows(t *testing.T) {
	s := NewStore()
	skipped := s.Load([]models.Employee{
		{ID: "E1", Name: "Ann", Contact: "555"},
		{ID: "E1", Name: "Dup", Contact: "556"},
		{ID: "E2", Name: "", Contact: "557"},
		{ID: " E3 ", Name: "Cid", Contact: "558"},
	})

	assert.Equal(t, 2, skipped)
	assert.Equal(t, []string{"E1", "E3"}, ids(s.All()))
}

func TestScenario_AddUpdateFilterRemove(t *testing.T) {
	s := NewStore()

	_, err := s.Add("E1", "Ann", "555", "")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())

	_, err = s.Update("E1", "Anna", "555", "")
	require.NoError(t, err)

	got := s.Filter(models.Criteria{Name: "Anna"})
	require.Len(t, got, 1)
	assert.Equal(t, models.Employee{ID: "E1", Name: "Anna", Contact: "555"}, got[0])

	require.NoError(t, s.Remove("E1"))
	assert.Zero(t, s.Count())
}
