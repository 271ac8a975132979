package display

import "github.com/charmbracelet/lipgloss"

// Brand palette. The two wordmark colors and the accent action color are
// part of the visual contract; everything else is cosmetic.
const (
	brandGreen  = lipgloss.Color("#34a853")
	brandRed    = lipgloss.Color("#ea4335")
	accentAmber = lipgloss.Color("#fbbc05")
)

var (
	// ── Header ──

	brandLeftStyle = lipgloss.NewStyle().
			Foreground(brandGreen).
			Bold(true)

	brandRightStyle = lipgloss.NewStyle().
			Foreground(brandRed).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// ── Filter panel ──

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	actionStyle = lipgloss.NewStyle().
			Foreground(accentAmber).
			Bold(true)

	// ── Result grid ──

	cardNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Bold(true)

	cardDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	cardTagStyle = lipgloss.NewStyle().
			Foreground(accentAmber)

	cardCursorStyle = lipgloss.NewStyle().
			Foreground(brandGreen).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Detail view ──

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(brandGreen).
				Bold(true)

	detailHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0"))

	detailBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	detailImageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#71717a")).
				Italic(true)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentAmber).
			Padding(1, 2)

	// ── Footer ──

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	// BannerStyle — muted slate for the serve-mode banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))
)
