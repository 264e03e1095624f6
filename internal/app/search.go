package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/debounce"
	"github.com/dmitrijs2005/workplace/internal/models"
)

// Search fields accepted by SearchForm.Set.
const (
	FieldID      = "id"
	FieldName    = "name"
	FieldContact = "contact"
	FieldEmail   = "email"
)

// SearchForm is the four-field incremental filter. Every change restarts a
// single shared debounce timer; when it expires the manager is filtered with
// the field values current at that moment and the result is rendered.
type SearchForm struct {
	mu        sync.Mutex
	criteria  models.Criteria
	manager   *Manager
	debouncer *debounce.Debouncer
	render    func(c models.Criteria, result []models.Employee)
}

// NewSearchForm returns an empty form. render is called from a timer
// goroutine (or from Flush) with the criteria used and the matches.
func NewSearchForm(m *Manager, delay time.Duration, render func(c models.Criteria, result []models.Employee)) *SearchForm {
	return &SearchForm{
		manager:   m,
		debouncer: debounce.New(delay),
		render:    render,
	}
}

// Set changes one field and schedules a filter. Field names are matched
// case-insensitively; an unknown name returns common.ErrInvalidSearchField.
func (f *SearchForm) Set(field, value string) error {
	f.mu.Lock()
	switch strings.ToLower(field) {
	case FieldID:
		f.criteria.ID = value
	case FieldName:
		f.criteria.Name = value
	case FieldContact:
		f.criteria.Contact = value
	case FieldEmail:
		f.criteria.Email = value
	default:
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", common.ErrInvalidSearchField, field)
	}
	f.mu.Unlock()

	f.debouncer.Trigger(f.apply)
	return nil
}

// Clear empties every field and schedules a filter, which then shows the
// whole list.
func (f *SearchForm) Clear() {
	f.mu.Lock()
	f.criteria = models.Criteria{}
	f.mu.Unlock()

	f.debouncer.Trigger(f.apply)
}

// Reset empties every field and drops any pending filter without rendering.
func (f *SearchForm) Reset() {
	f.debouncer.Stop()

	f.mu.Lock()
	f.criteria = models.Criteria{}
	f.mu.Unlock()
}

// Criteria returns the current field values.
func (f *SearchForm) Criteria() models.Criteria {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.criteria
}

// Flush runs a pending filter immediately and reports whether there was one.
func (f *SearchForm) Flush() bool {
	return f.debouncer.Flush()
}

// Stop cancels a pending filter.
func (f *SearchForm) Stop() {
	f.debouncer.Stop()
}

func (f *SearchForm) apply() {
	c := f.Criteria()
	f.render(c, f.manager.Filter(c))
}
