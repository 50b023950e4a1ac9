package canvas

import (
	"fmt"

	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

// Kind identifies a building block.
type Kind string

const (
	KindButton    Kind = "button"
	KindCard      Kind = "card"
	KindBentoGrid Kind = "bento-grid"
)

// Kinds returns every known kind in palette order.
func Kinds() []Kind {
	return []Kind{KindButton, KindCard, KindBentoGrid}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DefaultPosition is where new components are placed.
var DefaultPosition = drag.Point{X: 2, Y: 1}

// DefaultSizes returns the rendered size of each kind in terminal cells.
func DefaultSizes() map[Kind]drag.Size {
	return map[Kind]drag.Size{
		KindButton:    {Width: 16, Height: 3},
		KindCard:      {Width: 30, Height: 7},
		KindBentoGrid: {Width: 42, Height: 11},
	}
}

// DefaultProps returns a fresh set of default properties for kind.
func DefaultProps(kind Kind) Props {
	switch kind {
	case KindButton:
		return Props{
			"variant":  "primary",
			"size":     "md",
			"children": "Button Text",
			"disabled": false,
		}
	case KindCard:
		return Props{
			"title":       "Card Title",
			"description": "Card description goes here",
			"showImage":   false,
		}
	case KindBentoGrid:
		return Props{
			"columns": 3,
			"rows":    2,
			"items": []any{
				Props{"id": 1, "title": "Item 1", "span": Props{"col": 1, "row": 1}},
				Props{"id": 2, "title": "Item 2", "span": Props{"col": 1, "row": 1}},
				Props{"id": 3, "title": "Item 3", "span": Props{"col": 1, "row": 1}},
			},
		}
	default:
		return Props{}
	}
}

// ButtonVariants returns the button variants in cycle order. The first is
// the default.
func ButtonVariants() []string {
	return []string{"primary", "secondary", "outline", "ghost", "destructive"}
}

// ButtonSizes returns the button sizes from smallest to largest.
func ButtonSizes() []string {
	return []string{"sm", "md", "lg"}
}

// Bento grid dimension limits.
const (
	MinGridColumns = 1
	MaxGridColumns = 6
	MinGridRows    = 1
	MaxGridRows    = 4
)

// TextProps returns the free-text properties of kind in editing order.
func TextProps(kind Kind) []string {
	switch kind {
	case KindButton:
		return []string{"children"}
	case KindCard:
		return []string{"title", "description"}
	default:
		return nil
	}
}

// NextValue returns the value after cur in values, wrapping around. An
// unknown cur yields the first value.
func NextValue(values []string, cur string) string {
	if len(values) == 0 {
		return cur
	}
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
