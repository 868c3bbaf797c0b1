// Package theme provides color theming for the qmdscan CLI.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette used by the token dump and the
// explore TUI.
type Theme struct {
	Title         lipgloss.Color // headers, command titles
	TokenName     lipgloss.Color // external token names
	Text          lipgloss.Color // plain text runs
	Offset        lipgloss.Color // byte offsets
	Muted         lipgloss.Color // dim/subtle text, help lines
	Error         lipgloss.Color // ERROR tokens, failures
	Warning       lipgloss.Color // serialization budget warnings
	Border        lipgloss.Color // separators
	Selected      lipgloss.Color // selected row foreground
	Highlight     lipgloss.Color // selected row background
	GradientStart lipgloss.Color // stack heat map start
	GradientEnd   lipgloss.Color // stack heat map end
}

var defaultTheme = &Theme{
	Title:         lipgloss.Color("99"),  // Purple
	TokenName:     lipgloss.Color("170"), // Pink
	Text:          lipgloss.Color("252"), // Near white
	Offset:        lipgloss.Color("245"), // Gray
	Muted:         lipgloss.Color("240"), // Dim gray
	Error:         lipgloss.Color("196"), // Red
	Warning:       lipgloss.Color("3"),   // Yellow
	Border:        lipgloss.Color("240"), // Dim gray
	Selected:      lipgloss.Color("229"), // Light yellow
	Highlight:     lipgloss.Color("57"),  // Purple background
	GradientStart: lipgloss.Color("42"),  // Green
	GradientEnd:   lipgloss.Color("196"), // Red
}

var darkTheme = &Theme{
	Title:         lipgloss.Color("141"),
	TokenName:     lipgloss.Color("213"),
	Text:          lipgloss.Color("255"),
	Offset:        lipgloss.Color("247"),
	Muted:         lipgloss.Color("243"),
	Error:         lipgloss.Color("196"),
	Warning:       lipgloss.Color("226"),
	Border:        lipgloss.Color("238"),
	Selected:      lipgloss.Color("231"),
	Highlight:     lipgloss.Color("61"),
	GradientStart: lipgloss.Color("46"),
	GradientEnd:   lipgloss.Color("196"),
}

var lightTheme = &Theme{
	Title:         lipgloss.Color("55"),
	TokenName:     lipgloss.Color("125"),
	Text:          lipgloss.Color("16"),
	Offset:        lipgloss.Color("242"),
	Muted:         lipgloss.Color("246"),
	Error:         lipgloss.Color("160"),
	Warning:       lipgloss.Color("136"),
	Border:        lipgloss.Color("250"),
	Selected:      lipgloss.Color("16"),
	Highlight:     lipgloss.Color("189"),
	GradientStart: lipgloss.Color("28"),
	GradientEnd:   lipgloss.Color("160"),
}

// themes is the registry of all available themes.
var themes = map[string]*Theme{
	"default": defaultTheme,
	"dark":    darkTheme,
	"light":   lightTheme,
}

// current holds the currently active theme.
var current *Theme

// Get returns the theme with the given name.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// Load loads the theme with the given name as the current theme.
func Load(name string) error {
	theme, err := Get(name)
	if err != nil {
		return err
	}
	current = theme

	return nil
}

// Current returns the currently active theme, defaulting to "default".
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}

	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
