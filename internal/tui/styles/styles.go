package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors, kept in sync with the active palette by SetActiveTheme
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	// Tab styles, used for the page breadcrumb and category filter
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ContentBox lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style

	// Badges
	Badge lipgloss.Style

	// Chat transcript
	RoundTitle  lipgloss.Style
	BubbleAgent lipgloss.Style
	BubbleText  lipgloss.Style
	Score       lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Notification banner
	Notice        lipgloss.Style
	NoticeWarning lipgloss.Style

	// Footer / status bar
	StatusBar lipgloss.Style
)

var activeTheme = ThemeDefault

func init() {
	SetActiveTheme(ThemeDefault)
}

// SetActiveTheme rebuilds every style from the named theme's palette.
// Unknown names select the default theme.
//
// Note: This function is not thread-safe. It is designed to be called only
// before the program starts or from the Bubble Tea event loop.
func SetActiveTheme(name ThemeName) {
	if !IsValidTheme(string(name)) {
		name = ThemeDefault
	}
	activeTheme = name
	apply(GetPalette(name))
}

// ActiveTheme returns the name of the active theme.
func ActiveTheme() ThemeName {
	return activeTheme
}

func apply(p *ColorPalette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardActive = Card.
		BorderForeground(PrimaryColor)

	Badge = lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1)

	RoundTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginTop(1).
		MarginBottom(1)

	BubbleAgent = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	BubbleText = lipgloss.NewStyle().
		Foreground(TextColor).
		PaddingLeft(3)

	Score = lipgloss.NewStyle().
		Foreground(WarningColor)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	Notice = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SecondaryColor).
		Padding(0, 1)

	NoticeWarning = lipgloss.NewStyle().
		Foreground(SurfaceColor).
		Background(WarningColor).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1)
}

// ToneColor maps a badge tone ("success", "warning", "error") to a color.
func ToneColor(tone string) lipgloss.Color {
	switch tone {
	case "success":
		return SecondaryColor
	case "warning":
		return WarningColor
	case "error":
		return ErrorColor
	default:
		return MutedColor
	}
}

// ToneBadge renders text as a badge in the given tone.
func ToneBadge(tone, text string) string {
	return Badge.Foreground(ToneColor(tone)).Render(text)
}
