package canvas

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

func TestLayout_SaveLoad(t *testing.T) {
	src := NewDocument(WithIDGenerator(seqIDs()))
	btn, _ := src.Add(KindButton)
	grid, _ := src.Add(KindBentoGrid)
	if err := src.SetPosition(btn.ID, drag.Point{X: 12, Y: 7}); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if err := src.SetProp(btn.ID, "children", "Save"); err != nil {
		t.Fatalf("SetProp: %v", err)
	}
	src.Select(btn.ID)

	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := src.SaveLayout(path); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}

	dst := NewDocument()
	if err := dst.LoadLayout(path); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if dst.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", dst.Len())
	}
	got, ok := dst.Get(btn.ID)
	if !ok {
		t.Fatalf("button %q missing after load", btn.ID)
	}
	if got.Position != (drag.Point{X: 12, Y: 7}) {
		t.Errorf("Position = %+v, want {12 7}", got.Position)
	}
	if got.Props.String("children") != "Save" {
		t.Errorf("children = %q, want Save", got.Props.String("children"))
	}
	if dst.Selected() != btn.ID {
		t.Errorf("Selected() = %q, want %q", dst.Selected(), btn.ID)
	}
	g, _ := dst.Get(grid.ID)
	if n := len(g.Props.Items("items")); n != 3 {
		t.Errorf("bento items = %d, want 3", n)
	}
	if g.Props.Int("columns", 0) != 3 {
		t.Errorf("columns = %d, want 3", g.Props.Int("columns", 0))
	}
	if dst.Commits() != 0 {
		t.Errorf("Commits() = %d, loading must not count as a drag commit", dst.Commits())
	}
}

func TestLayout_LoadMissingFile(t *testing.T) {
	doc := NewDocument()
	if err := doc.LoadLayout(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}
}

func TestDecodeLayout(t *testing.T) {
	type tc struct {
		input    string
		wantLen  int
		wantSel  string
		wantErr  bool
		wantKind error
	}

	tests := map[string]tc{
		"empty": {input: ""},
		"defaults filled": {
			input:   "components:\n  - {id: a, kind: card, x: 1, y: 2}\nselected: a\n",
			wantLen: 1,
			wantSel: "a",
		},
		"unknown selection dropped": {
			input:   "components:\n  - {id: a, kind: button, x: 0, y: 0}\nselected: b\n",
			wantLen: 1,
		},
		"unknown kind": {
			input:    "components:\n  - {id: a, kind: slider, x: 0, y: 0}\n",
			wantErr:  true,
			wantKind: ErrUnknownKind,
		},
		"missing id":     {input: "components:\n  - {kind: button, x: 0, y: 0}\n", wantErr: true},
		"duplicate id":   {input: "components:\n  - {id: a, kind: button}\n  - {id: a, kind: card}\n", wantErr: true},
		"negative x":     {input: "components:\n  - {id: a, kind: button, x: -1, y: 0}\n", wantErr: true},
		"not a number":   {input: "components:\n  - {id: a, kind: button, x: .nan, y: 0}\n", wantErr: true},
		"unknown field":  {input: "components: []\nzoom: 2\n", wantErr: true},
		"malformed yaml": {input: "components: [", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			comps, sel, err := DecodeLayout(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeLayout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
				t.Errorf("DecodeLayout() error = %v, want %v", err, tt.wantKind)
			}
			if len(comps) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(comps), tt.wantLen)
			}
			if sel != tt.wantSel {
				t.Errorf("selected = %q, want %q", sel, tt.wantSel)
			}
			for _, c := range comps {
				if c.Props == nil {
					t.Errorf("component %q has nil props", c.ID)
				}
			}
		})
	}
}

func TestEncodeLayout_PaintOrder(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	a, _ := doc.Add(KindButton)
	b, _ := doc.Add(KindCard)
	doc.BringToFront(a.ID)

	var buf bytes.Buffer
	if err := doc.EncodeLayout(&buf); err != nil {
		t.Fatalf("EncodeLayout: %v", err)
	}
	comps, _, err := DecodeLayout(&buf)
	if err != nil {
		t.Fatalf("DecodeLayout: %v", err)
	}
	if len(comps) != 2 || comps[0].ID != b.ID || comps[1].ID != a.ID {
		t.Errorf("order = %v, want [%s %s]", comps, b.ID, a.ID)
	}
}
