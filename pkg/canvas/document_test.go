package canvas

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

func seqIDs() func(Kind) string {
	n := 0
	return func(k Kind) string {
		n++
		return fmt.Sprintf("%s-%d", k, n)
	}
}

func TestDocument_AddUsesDefaults(t *testing.T) {
	type tc struct {
		kind     Kind
		propKey  string
		propWant string
	}

	tests := map[string]tc{
		"button":     {kind: KindButton, propKey: "children", propWant: "Button Text"},
		"card":       {kind: KindCard, propKey: "title", propWant: "Card Title"},
		"bento grid": {kind: KindBentoGrid, propKey: "columns", propWant: "3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := NewDocument()
			c, err := doc.Add(tt.kind)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if !strings.HasPrefix(c.ID, string(tt.kind)+"-") {
				t.Errorf("ID = %q, want %q prefix", c.ID, tt.kind)
			}
			if c.Position != DefaultPosition {
				t.Errorf("Position = %+v, want %+v", c.Position, DefaultPosition)
			}
			if got := c.Props.String(tt.propKey); got != tt.propWant {
				t.Errorf("Props[%q] = %q, want %q", tt.propKey, got, tt.propWant)
			}
			if doc.Selected() != c.ID {
				t.Errorf("Selected() = %q, want new component", doc.Selected())
			}
		})
	}
}

func TestDocument_AddUnknownKind(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.Add(Kind("slider")); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Add(slider) error = %v, want ErrUnknownKind", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}
}

func TestDocument_GetReturnsCopy(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	c, _ := doc.Add(KindBentoGrid)

	got, _ := doc.Get(c.ID)
	got.Props["columns"] = 9
	got.Props["items"].([]any)[0].(Props)["title"] = "changed"

	again, _ := doc.Get(c.ID)
	if again.Props.String("columns") != "3" {
		t.Errorf("columns = %v, want untouched 3", again.Props["columns"])
	}
	if title := again.Props["items"].([]any)[0].(Props).String("title"); title != "Item 1" {
		t.Errorf("nested title = %q, want untouched", title)
	}
}

func TestDocument_DeleteClearsSelection(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	a, _ := doc.Add(KindButton)
	b, _ := doc.Add(KindCard)

	var changes []string
	doc.Subscribe(func(ch Change) {
		changes = append(changes, ch.Kind.String()+":"+ch.ID)
	})

	if err := doc.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if doc.Selected() != "" {
		t.Errorf("Selected() = %q, want cleared", doc.Selected())
	}
	if err := doc.Delete(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if got := strings.Join(changes, ","); got != "deleted:card-2,selected:" {
		t.Errorf("changes = %q", got)
	}
	if _, ok := doc.Get(a.ID); !ok {
		t.Error("unrelated component removed")
	}
}

func TestDocument_SelectIgnoresUnknown(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	a, _ := doc.Add(KindButton)

	doc.Select("nope")
	if doc.Selected() != a.ID {
		t.Errorf("Selected() = %q, want %q", doc.Selected(), a.ID)
	}
	doc.Select("")
	if doc.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", doc.Selected())
	}
}

func TestDocument_SetPositionAndProp(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	c, _ := doc.Add(KindCard)

	if err := doc.SetPosition(c.ID, drag.Point{X: 10, Y: 4}); err != nil {
		t.Fatalf("SetPosition() error = %v", err)
	}
	if err := doc.SetProp(c.ID, "title", "Pricing"); err != nil {
		t.Fatalf("SetProp() error = %v", err)
	}
	got, _ := doc.Get(c.ID)
	if got.Position != (drag.Point{X: 10, Y: 4}) || got.Props.String("title") != "Pricing" {
		t.Errorf("component = %+v", got)
	}

	type tc struct {
		err error
	}
	tests := map[string]tc{
		"unknown id position": {err: doc.SetPosition("missing", drag.Point{})},
		"unknown id prop":     {err: doc.SetProp("missing", "title", "x")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", tt.err)
			}
		})
	}
}

func TestDocument_BatchCoalescesChanges(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	c, _ := doc.Add(KindButton)

	var changes []Change
	doc.Subscribe(func(ch Change) { changes = append(changes, ch) })

	doc.Batch(func() {
		doc.SetPosition(c.ID, drag.Point{X: 1, Y: 1})
		doc.SetPosition(c.ID, drag.Point{X: 2, Y: 2})
		doc.Batch(func() {
			doc.SetProp(c.ID, "children", "OK")
		})
		if len(changes) != 0 {
			t.Errorf("changes delivered inside batch: %+v", changes)
		}
	})

	want := []Change{{Kind: ChangeMoved, ID: c.ID}, {Kind: ChangeUpdated, ID: c.ID}}
	if len(changes) != len(want) {
		t.Fatalf("changes = %+v, want %+v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes[%d] = %+v, want %+v", i, changes[i], want[i])
		}
	}
}

func TestDocument_Unsubscribe(t *testing.T) {
	doc := NewDocument()
	calls := 0
	unsub := doc.Subscribe(func(Change) { calls++ })

	doc.Add(KindButton)
	unsub()
	doc.Add(KindButton)

	if calls != 2 {
		t.Errorf("calls = %d, want 2 (added+selected from the first Add only)", calls)
	}
}

func TestDocument_BringToFront(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	a, _ := doc.Add(KindButton)
	doc.Add(KindCard)

	doc.BringToFront(a.ID)
	comps := doc.Components()
	if comps[len(comps)-1].ID != a.ID {
		t.Errorf("top component = %q, want %q", comps[len(comps)-1].ID, a.ID)
	}
}

func TestEnvironment_DragRoundTrip(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	c, _ := doc.Add(KindCard)
	doc.Select("")

	rect := drag.NewRect(20, 2, 100, 30)
	env := doc.Environment(func() drag.Rect { return rect })
	sched := drag.NewManualScheduler()
	eng, err := drag.New(env, sched, drag.WithSelector(doc))
	if err != nil {
		t.Fatalf("drag.New() error = %v", err)
	}

	obj, ok := env.Object(c.ID)
	if !ok || obj.Size != (drag.Size{Width: 30, Height: 7}) || obj.Selected {
		t.Fatalf("Object() = %+v, %v", obj, ok)
	}

	var moved int
	doc.Subscribe(func(ch Change) {
		if ch.Kind == ChangeMoved {
			moved++
		}
	})

	// Grab one cell in from the corner, drag far right.
	if _, err := eng.BeginDrag(c.ID, drag.Point{X: 23, Y: 4}); err != nil {
		t.Fatalf("BeginDrag() error = %v", err)
	}
	if doc.Selected() != c.ID {
		t.Errorf("Selected() = %q, want dragged component", doc.Selected())
	}
	for x := 30.0; x < 200; x += 10 {
		eng.UpdatePointer(drag.Point{X: x, Y: 10})
		sched.Flush()
	}
	eng.EndDrag()
	eng.EndDrag()

	got, _ := doc.Get(c.ID)
	if got.Position != (drag.Point{X: 70, Y: 7}) {
		t.Errorf("Position = %+v, want {70 7}", got.Position)
	}
	if doc.Commits() != 1 || moved != 1 {
		t.Errorf("Commits() = %d, moved = %d, want 1 and 1", doc.Commits(), moved)
	}
}

func TestEnvironment_CommitAfterDeleteIsDropped(t *testing.T) {
	doc := NewDocument(WithIDGenerator(seqIDs()))
	c, _ := doc.Add(KindButton)
	env := doc.Environment(func() drag.Rect { return drag.NewRect(0, 0, 80, 24) })

	doc.Delete(c.ID)
	env.CommitPosition(c.ID, drag.Point{X: 5, Y: 5})

	if doc.Commits() != 0 || doc.Len() != 0 {
		t.Errorf("Commits() = %d, Len() = %d, want 0 and 0", doc.Commits(), doc.Len())
	}
}
