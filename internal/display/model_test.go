package display

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
)

// stubSource satisfies domain.RecipeSource without any network.
type stubSource struct {
	recipes []domain.Recipe
	err     error
}

func (s stubSource) Fetch(ctx context.Context, f domain.Filter) ([]domain.Recipe, error) {
	return s.recipes, s.err
}

func newTestModel() Model {
	return New(stubSource{}, logger.New(logger.LevelOff, nil))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	mm, _ := m.Update(msg)
	out, ok := mm.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", mm)
	}
	return out
}

func key(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	return update(t, m, k)
}

func typeRune(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = key(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var sample = []domain.Recipe{
	{ID: "1", Name: "Pasta", Description: "..", Ingredients: domain.StringList{"pasta", "tomato", "basil"}},
	{ID: "2", Name: "Soup", Description: "warm"},
	{ID: "3", Name: "Salad", Description: "crisp"},
}

func TestMountStartsLoading(t *testing.T) {
	m := newTestModel()

	st := m.State()
	if !st.Loading {
		t.Fatal("expected loading on mount")
	}
	if st.Seq != 1 {
		t.Fatalf("expected one issued fetch, seq=%d", st.Seq)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to return the mount fetch command")
	}
}

func TestFetchCompletion(t *testing.T) {
	m := newTestModel()

	m = update(t, m, recipesMsg{seq: 1, recipes: sample})
	st := m.State()
	if st.Loading || st.ErrText != "" {
		t.Fatalf("expected loaded state, got %+v", st)
	}
	if len(st.Recipes) != 3 || st.Recipes[0].Name != "Pasta" {
		t.Fatalf("unexpected results: %+v", st.Recipes)
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample})

	// A completion from a fetch that was never issued (wrong seq).
	m = update(t, m, fetchFailedMsg{seq: 99, err: domain.NewFetchError(nil)})
	st := m.State()
	if st.ErrText != "" || len(st.Recipes) != 3 {
		t.Fatalf("stale completion applied: %+v", st)
	}
}

func TestSubmitSearch(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample})

	m = typeRune(t, m, "soup")
	if got := m.State().Filter.Search; got != "soup" {
		t.Fatalf("expected live filter update, got %q", got)
	}

	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mm.(Model)
	st := m.State()
	if !st.Loading {
		t.Fatal("expected loading after submit")
	}
	if st.Seq != 2 {
		t.Fatalf("expected seq 2, got %d", st.Seq)
	}
	if st.Filter.Search != "soup" || st.Filter.Ingredient != "" {
		t.Fatalf("unexpected filter: %+v", st.Filter)
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
}

func TestEnterInIngredientFieldSubmits(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample})

	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab}) // focus ingredient field
	m = typeRune(t, m, "basil")

	m = key(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	st := m.State()
	if !st.Loading || st.Filter.Ingredient != "basil" {
		t.Fatalf("expected submit from ingredient field, got %+v", st)
	}
}

func TestSelectAndDismiss(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample})

	// Two tabs: search -> ingredient -> grid.
	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = key(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	st := m.State()
	if st.Selected == nil || st.Selected.Name != "Soup" {
		t.Fatalf("expected Soup selected, got %+v", st.Selected)
	}

	// Keys other than the dismiss set are swallowed while the detail
	// view is open.
	m = key(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.State().Selected == nil {
		t.Fatal("selection lost to a non-dismiss key")
	}

	m = key(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().Selected != nil {
		t.Fatal("expected selection cleared on esc")
	}
}

func TestCursorClamped(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample[:1]})

	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < 5; i++ {
		m = key(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 0 {
		t.Fatalf("cursor escaped a single-card grid: %d", m.cursor)
	}
}

func TestViewStates(t *testing.T) {
	m := newTestModel()

	if !strings.Contains(m.View(), "Fetching recipes") {
		t.Fatal("expected loading indicator while fetch is outstanding")
	}

	empty := update(t, m, recipesMsg{seq: 1, recipes: nil})
	if !strings.Contains(empty.View(), emptyMessage) {
		t.Fatalf("expected %q in empty view", emptyMessage)
	}

	failed := update(t, m, fetchFailedMsg{seq: 1, err: domain.NewFetchError(nil)})
	v := failed.View()
	if !strings.Contains(v, domain.FetchErrorMessage) {
		t.Fatal("expected error message in view")
	}
	if strings.Contains(v, emptyMessage) {
		t.Fatal("error view must not render the empty-state message")
	}

	loaded := update(t, m, recipesMsg{seq: 1, recipes: sample})
	v = loaded.View()
	if !strings.Contains(v, "Pasta") || !strings.Contains(v, "pasta, tomato, basil") {
		t.Fatal("expected card name and tag line in view")
	}
	if strings.Contains(v, emptyMessage) {
		t.Fatal("loaded view must not render the empty-state message")
	}
	// Recipes without an image render the placeholder marker.
	if !strings.Contains(v, imagePlaceholder) {
		t.Fatal("expected image placeholder for recipes without an image")
	}
}

func TestDetailView(t *testing.T) {
	m := newTestModel()
	m = update(t, m, recipesMsg{seq: 1, recipes: sample})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = key(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // opens Pasta

	v := m.View()
	if !strings.Contains(v, "Ingredients") || !strings.Contains(v, "Instructions") {
		t.Fatal("expected detail section headings")
	}
	if !strings.Contains(v, "• pasta") {
		t.Fatal("expected bulleted ingredient list")
	}
	if strings.Contains(v, "Soup") {
		t.Fatal("detail view should replace the grid")
	}
}
