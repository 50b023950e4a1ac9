package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

// layoutFile is the YAML form of a document.
type layoutFile struct {
	Components []layoutComponent `yaml:"components"`
	Selected   string            `yaml:"selected,omitempty"`
}

type layoutComponent struct {
	ID    string         `yaml:"id"`
	Kind  string         `yaml:"kind"`
	X     float64        `yaml:"x"`
	Y     float64        `yaml:"y"`
	Props map[string]any `yaml:"props,omitempty"`
}

// EncodeLayout writes the document's components, in paint order, as YAML.
func (d *Document) EncodeLayout(w io.Writer) error {
	f := layoutFile{Selected: d.Selected()}
	for _, c := range d.Components() {
		f.Components = append(f.Components, layoutComponent{
			ID:    c.ID,
			Kind:  string(c.Kind),
			X:     c.Position.X,
			Y:     c.Position.Y,
			Props: c.Props,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}

// DecodeLayout parses a layout written by EncodeLayout. Components are
// validated but not added to any document.
func DecodeLayout(r io.Reader) ([]Component, string, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f layoutFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("decode layout: %w", err)
	}

	seen := make(map[string]bool, len(f.Components))
	out := make([]Component, 0, len(f.Components))
	for i, lc := range f.Components {
		kind, err := ParseKind(lc.Kind)
		if err != nil {
			return nil, "", fmt.Errorf("decode layout: component %d: %w", i, err)
		}
		if lc.ID == "" {
			return nil, "", fmt.Errorf("decode layout: component %d: missing id", i)
		}
		if seen[lc.ID] {
			return nil, "", fmt.Errorf("decode layout: duplicate id %q", lc.ID)
		}
		seen[lc.ID] = true

		p := drag.Point{X: lc.X, Y: lc.Y}
		if !p.IsFinite() || math.Signbit(p.X) || math.Signbit(p.Y) {
			return nil, "", fmt.Errorf("decode layout: component %q: bad position (%v, %v)", lc.ID, lc.X, lc.Y)
		}

		props := DefaultProps(kind)
		for k, v := range lc.Props {
			props[k] = v
		}
		out = append(out, Component{ID: lc.ID, Kind: kind, Props: props, Position: p})
	}
	if f.Selected != "" && !seen[f.Selected] {
		f.Selected = ""
	}
	return out, f.Selected, nil
}

// LoadLayout reads path into the document. A missing file leaves the
// document empty.
func (d *Document) LoadLayout(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	comps, selected, err := DecodeLayout(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	var insertErr error
	d.Batch(func() {
		for _, c := range comps {
			if err := d.Insert(c); err != nil {
				insertErr = err
				return
			}
		}
		d.Select(selected)
	})
	return insertErr
}

// SaveLayout writes the document to path, replacing it atomically.
func (d *Document) SaveLayout(path string) error {
	var buf bytes.Buffer
	if err := d.EncodeLayout(&buf); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}
