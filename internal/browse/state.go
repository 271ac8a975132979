// Package browse holds the browsing state machine: one State struct owning
// the filter, the result collection, the loading/error flags, and the
// current selection, mutated only through named events applied by a pure
// reducer. Fetch completions carry the sequence number of the fetch that
// produced them; completions from superseded fetches are discarded, so a
// slow early fetch can never overwrite a later one.
package browse

import "github.com/khmoussa/dishboard/internal/domain"

// State is the complete mutable state of the browser.
type State struct {
	Filter   domain.Filter
	Recipes  []domain.Recipe
	Loading  bool
	ErrText  string
	Selected *domain.Recipe

	// Seq identifies the most recently issued fetch. Only completions
	// tagged with this value are applied.
	Seq int
}

// NewState returns the initial (idle, empty) state.
func NewState() State {
	return State{}
}

// Event is a named state transition.
type Event interface{ isEvent() }

// FilterEdited updates the filter fields without touching anything else.
type FilterEdited struct {
	Filter domain.Filter
}

// FetchStarted moves the state to Loading: the error is cleared, the
// sequence counter advances, and prior results are kept on screen until
// the fetch resolves.
type FetchStarted struct {
	Filter domain.Filter
}

// FetchSucceeded replaces the result collection and clears the error.
type FetchSucceeded struct {
	Seq     int
	Recipes []domain.Recipe
}

// FetchFailed clears the result collection and records the error text.
type FetchFailed struct {
	Seq int
	Err error
}

// Selected records the recipe the user opened.
type Selected struct {
	Recipe domain.Recipe
}

// SelectionCleared dismisses the detail view.
type SelectionCleared struct{}

func (FilterEdited) isEvent()     {}
func (FetchStarted) isEvent()     {}
func (FetchSucceeded) isEvent()   {}
func (FetchFailed) isEvent()      {}
func (Selected) isEvent()         {}
func (SelectionCleared) isEvent() {}

// Apply returns the state after ev. It never mutates s in place.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case FilterEdited:
		s.Filter = ev.Filter

	case FetchStarted:
		s.Filter = ev.Filter
		s.Loading = true
		s.ErrText = ""
		s.Seq++

	case FetchSucceeded:
		if ev.Seq != s.Seq {
			return s // stale completion
		}
		s.Loading = false
		s.Recipes = ev.Recipes
		s.ErrText = ""

	case FetchFailed:
		if ev.Seq != s.Seq {
			return s // stale completion
		}
		s.Loading = false
		s.Recipes = nil
		s.ErrText = errText(ev.Err)

	case Selected:
		r := ev.Recipe
		s.Selected = &r

	case SelectionCleared:
		s.Selected = nil
	}
	return s
}

func errText(err error) string {
	if err == nil || err.Error() == "" {
		return domain.FetchErrorMessage
	}
	return err.Error()
}
