package term

import "testing"

func TestScreen_Box(t *testing.T) {
	s := NewScreen(6, 4)
	s.Box(Rect{X: 0, Y: 0, Width: 6, Height: 3}, BorderRounded, Style{})
	s.SetString(1, 1, "hi", Style{})

	want := "╭────╮\n│hi  │\n╰────╯\n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestScreen_Clipping(t *testing.T) {
	s := NewScreen(3, 1)
	n := s.SetString(1, 0, "abcd", Style{})
	if n != 4 {
		t.Errorf("SetString returned %d, want 4", n)
	}
	s.SetRune(-1, 0, 'x', Style{})
	s.SetRune(0, 5, 'x', Style{})
	if got := s.String(); got != " ab" {
		t.Errorf("String() = %q, want %q", got, " ab")
	}
}

func TestScreen_Diff(t *testing.T) {
	type tc struct {
		draw     func(s *Screen)
		expected []CellChange
	}

	red := Style{}.Foreground(ANSIColor(1))
	tests := map[string]tc{
		"nothing drawn": {
			draw:     func(*Screen) {},
			expected: []CellChange{},
		},
		"single rune": {
			draw:     func(s *Screen) { s.SetRune(1, 1, 'x', Style{}) },
			expected: []CellChange{{X: 1, Y: 1, Cell: Cell{Rune: 'x'}}},
		},
		"style only": {
			draw:     func(s *Screen) { s.SetRune(0, 0, ' ', red) },
			expected: []CellChange{{X: 0, Y: 0, Cell: Cell{Rune: ' ', Style: red}}},
		},
		"row major order": {
			draw: func(s *Screen) {
				s.SetRune(0, 1, 'b', Style{})
				s.SetRune(2, 0, 'a', Style{})
			},
			expected: []CellChange{
				{X: 2, Y: 0, Cell: Cell{Rune: 'a'}},
				{X: 0, Y: 1, Cell: Cell{Rune: 'b'}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewScreen(3, 2)
			tt.draw(s)
			got := s.Diff()
			if len(got) != len(tt.expected) {
				t.Fatalf("Diff() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("change %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
			s.Swap()
			if again := s.Diff(); len(again) != 0 {
				t.Errorf("Diff() after Swap = %v, want none", again)
			}
		})
	}
}

func TestScreen_Clip(t *testing.T) {
	s := NewScreen(5, 1)
	s.SetClip(Rect{X: 1, Y: 0, Width: 2, Height: 1})
	s.SetString(0, 0, "abcde", Style{})
	s.ResetClip()
	s.SetRune(4, 0, 'z', Style{})
	if got := s.String(); got != " bc z" {
		t.Errorf("String() = %q, want %q", got, " bc z")
	}
}
