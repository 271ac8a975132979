package display

import (
	"fmt"
	"strings"
)

const (
	// chromeHeight is the line count of header + filter panel + footer.
	chromeHeight = 8
	// cardHeight is the rendered height of one summary card.
	cardHeight = 4

	// emptyMessage is shown when a fetch returns no recipes.
	emptyMessage = "No recipes found. Try a different search!"
	// imagePlaceholder stands in for an absent image reference.
	imagePlaceholder = "(no image)"
)

// View renders the whole screen: header, filter panel, then either the
// detail view (when a recipe is selected) or the result grid.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString(m.renderFilterPanel())
	b.WriteByte('\n')

	if m.state.Selected != nil {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	mark := brandLeftStyle.Render("Dish") + brandRightStyle.Render("board")
	return mark + taglineStyle.Render("  · recipe browser") + "\n\n"
}

func (m Model) renderFilterPanel() string {
	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("Search: "))
	b.WriteString(m.searchInput.View())
	b.WriteString(fieldLabelStyle.Render("   Ingredient: "))
	b.WriteString(m.ingredientInput.View())
	b.WriteString("   ")
	b.WriteString(actionStyle.Render("[ enter ⏎ search ]"))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderGrid() string {
	if m.state.Loading {
		return m.spin.View() + loadingStyle.Render(" Fetching recipes…") + "\n"
	}
	if m.state.ErrText != "" {
		return errorStyle.Render(m.state.ErrText) + "\n"
	}
	if len(m.state.Recipes) == 0 {
		return emptyStyle.Render(emptyMessage) + "\n"
	}

	visible := m.visibleCards()
	end := m.scroll + visible
	if end > len(m.state.Recipes) {
		end = len(m.state.Recipes)
	}

	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderCard(i))
	}
	if end < len(m.state.Recipes) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more", len(m.state.Recipes)-end)))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCard renders one summary card: name, description, tag line, and
// image reference (placeholder when absent).
func (m Model) renderCard(i int) string {
	r := m.state.Recipes[i]

	marker := "  "
	name := cardNameStyle.Render(r.Name)
	if m.focus == focusGrid && i == m.cursor {
		marker = cardCursorStyle.Render("▸ ")
		name = cardCursorStyle.Render(r.Name)
	}

	image := r.Image
	if image == "" {
		image = imagePlaceholder
	}

	var b strings.Builder
	b.WriteString(marker + name + "  " + detailImageStyle.Render(image) + "\n")
	b.WriteString("  " + cardDescStyle.Render(r.Description) + "\n")
	if tags := r.TagLine(); tags != "" {
		b.WriteString("  " + cardTagStyle.Render(tags) + "\n")
	} else {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// renderDetail renders the full view of the selected recipe.
func (m Model) renderDetail() string {
	r := *m.state.Selected

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(r.Name) + "\n")
	if r.Image != "" {
		b.WriteString(detailImageStyle.Render(r.Image) + "\n")
	}
	b.WriteByte('\n')
	b.WriteString(detailBodyStyle.Render(r.Description) + "\n\n")

	b.WriteString(detailHeadingStyle.Render("Ingredients") + "\n")
	for _, ing := range r.Ingredients {
		b.WriteString(detailBodyStyle.Render("  • "+ing) + "\n")
	}
	b.WriteByte('\n')

	b.WriteString(detailHeadingStyle.Render("Instructions") + "\n")
	for i, step := range r.Instructions {
		b.WriteString(detailBodyStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)) + "\n")
	}

	box := detailBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return box + "\n"
}

func (m Model) renderFooter() string {
	if m.state.Selected != nil {
		return helpStyle.Render("esc close · ctrl+c quit")
	}
	return helpStyle.Render("tab fields/grid · enter search/open · ↑↓ move · q quit")
}
