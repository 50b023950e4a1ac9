package canvas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

var (
	// ErrNotFound is returned when a component ID does not exist.
	ErrNotFound = errors.New("canvas: component not found")

	// ErrUnknownKind is returned for a kind outside Kinds().
	ErrUnknownKind = errors.New("canvas: unknown component kind")
)

// Props are the editable properties of a component.
type Props map[string]any

// Clone returns a deep copy of p. Nested Props, maps and slices are copied;
// other values are shared.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Props:
		return t.Clone()
	case map[string]any:
		return map[string]any(Props(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// String returns p's value for key formatted with %v, or "" if absent.
func (p Props) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns p's integer value for key, or def if absent or not a number.
func (p Props) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Bool returns p's boolean value for key, false if absent.
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Items returns the nested property sets stored under key, such as the
// cells of a bento grid. Entries that are not maps are skipped.
func (p Props) Items(key string) []Props {
	list, _ := p[key].([]any)
	out := make([]Props, 0, len(list))
	for _, e := range list {
		switch t := e.(type) {
		case Props:
			out = append(out, t)
		case map[string]any:
			out = append(out, Props(t))
		}
	}
	return out
}

// Keys returns p's keys in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Component is a building block placed on the canvas.
type Component struct {
	ID       string
	Kind     Kind
	Props    Props
	Position drag.Point
}

func (c Component) clone() Component {
	c.Props = c.Props.Clone()
	return c
}
