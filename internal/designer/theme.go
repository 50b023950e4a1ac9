package designer

import (
	"fmt"

	"github.com/grindlemire/go-tui-designer/pkg/term"
)

// Theme colours the designer.
type Theme struct {
	Name  string
	Label string

	Chrome    term.Style // header, palette and panel
	Accent    term.Style // titles and hints
	Canvas    term.Style // canvas background
	Component term.Style
	Selected  term.Style
	Dragging  term.Style
	Delete    term.Style
}

var themes = []Theme{
	{
		Name:      "dark-pro",
		Label:     "Dark Pro",
		Chrome:    term.Style{}.Foreground(term.MustHex("#e2e8f0")).Background(term.MustHex("#0f172a")),
		Accent:    term.Style{}.Foreground(term.MustHex("#a78bfa")).Background(term.MustHex("#0f172a")).Bold(),
		Canvas:    term.Style{}.Foreground(term.MustHex("#334155")).Background(term.MustHex("#1e293b")),
		Component: term.Style{}.Foreground(term.MustHex("#f8fafc")).Background(term.MustHex("#1e293b")),
		Selected:  term.Style{}.Foreground(term.MustHex("#8b5cf6")).Background(term.MustHex("#1e293b")).Bold(),
		Dragging:  term.Style{}.Foreground(term.MustHex("#38bdf8")).Background(term.MustHex("#1e293b")).Bold(),
		Delete:    term.Style{}.Foreground(term.MustHex("#f8fafc")).Background(term.MustHex("#dc2626")),
	},
	{
		Name:      "light",
		Label:     "Light Elegant",
		Chrome:    term.Style{}.Foreground(term.MustHex("#1f2937")).Background(term.MustHex("#f9fafb")),
		Accent:    term.Style{}.Foreground(term.MustHex("#0ea5e9")).Background(term.MustHex("#f9fafb")).Bold(),
		Canvas:    term.Style{}.Foreground(term.MustHex("#d1d5db")).Background(term.MustHex("#ffffff")),
		Component: term.Style{}.Foreground(term.MustHex("#111827")).Background(term.MustHex("#ffffff")),
		Selected:  term.Style{}.Foreground(term.MustHex("#0284c7")).Background(term.MustHex("#ffffff")).Bold(),
		Dragging:  term.Style{}.Foreground(term.MustHex("#db2777")).Background(term.MustHex("#ffffff")).Bold(),
		Delete:    term.Style{}.Foreground(term.MustHex("#ffffff")).Background(term.MustHex("#ef4444")),
	},
	{
		Name:      "brutalist",
		Label:     "Neo Brutalism",
		Chrome:    term.Style{}.Foreground(term.MustHex("#000000")).Background(term.MustHex("#fde047")),
		Accent:    term.Style{}.Foreground(term.MustHex("#000000")).Background(term.MustHex("#fde047")).Bold().Underline(),
		Canvas:    term.Style{}.Foreground(term.MustHex("#000000")).Background(term.MustHex("#ffffff")),
		Component: term.Style{}.Foreground(term.MustHex("#000000")).Background(term.MustHex("#ffffff")).Bold(),
		Selected:  term.Style{}.Foreground(term.MustHex("#ffffff")).Background(term.MustHex("#000000")).Bold(),
		Dragging:  term.Style{}.Foreground(term.MustHex("#000000")).Background(term.MustHex("#f472b6")).Bold(),
		Delete:    term.Style{}.Foreground(term.MustHex("#ffffff")).Background(term.MustHex("#000000")),
	},
	{
		Name:      "luxury",
		Label:     "Luxury Gold",
		Chrome:    term.Style{}.Foreground(term.MustHex("#facc15")).Background(term.MustHex("#1c1917")),
		Accent:    term.Style{}.Foreground(term.MustHex("#c084fc")).Background(term.MustHex("#1c1917")).Bold(),
		Canvas:    term.Style{}.Foreground(term.MustHex("#44403c")).Background(term.MustHex("#292524")),
		Component: term.Style{}.Foreground(term.MustHex("#fef3c7")).Background(term.MustHex("#292524")),
		Selected:  term.Style{}.Foreground(term.MustHex("#facc15")).Background(term.MustHex("#292524")).Bold(),
		Dragging:  term.Style{}.Foreground(term.MustHex("#a855f7")).Background(term.MustHex("#292524")).Bold(),
		Delete:    term.Style{}.Foreground(term.MustHex("#1c1917")).Background(term.MustHex("#facc15")),
	},
}

// Themes returns the available themes in cycle order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeByName looks up a theme.
func ThemeByName(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// nextTheme returns the theme after name, wrapping around.
func nextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
