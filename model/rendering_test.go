package model

import "testing"

func TestGlyph(t *testing.T) {
	tests := []struct {
		was, is bool
		want    rune
	}{
		{true, true, '█'},
		{false, true, '▓'},
		{true, false, '▒'},
		{false, false, ' '},
	}
	for _, tt := range tests {
		if got := Glyph(tt.was, tt.is); got != tt.want {
			t.Errorf("Glyph(%v, %v) = %q, want %q", tt.was, tt.is, got, tt.want)
		}
	}
}

func TestGlyphRendererTransitions(t *testing.T) {
	prev := mustBoard(t, 5, 5)
	prev.Place(Blinker, 1, 2)
	cur := Tick(prev)

	f := GlyphRenderer{}.Render(Snapshot{Current: cur, Previous: prev})
	if f.Width != 5 || f.Height != 5 || len(f.Rows) != 5 {
		t.Fatalf("frame size %dx%d rows=%d", f.Width, f.Height, len(f.Rows))
	}
	want := []string{
		"     ",
		"  ▓  ",
		" ▒█▒ ",
		"  ▓  ",
		"     ",
	}
	for y, row := range want {
		if got := string(f.Rows[y]); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if got, wantStr := f.String(), "     \n  ▓  \n ▒█▒ \n  ▓  \n     \n"; got != wantStr {
		t.Errorf("String() = %q, want %q", got, wantStr)
	}
}

func TestGlyphRendererWithoutPrevious(t *testing.T) {
	cur := mustBoard(t, 2, 1)
	cur.Set(0, 0, Alive)
	f := GlyphRenderer{}.Render(Snapshot{Current: cur})
	if got := string(f.Rows[0]); got != "█ " {
		t.Fatalf("row = %q", got)
	}
	if empty := (GlyphRenderer{}).Render(Snapshot{}); empty.Height != 0 {
		t.Fatal("empty snapshot rendered rows")
	}
}

func TestSnapshotClone(t *testing.T) {
	cur := mustBoard(t, 3, 3)
	s := Snapshot{Running: true, Generation: 4, Current: cur, Previous: cur}
	c := s.Clone()
	if c.Current == cur || c.Previous == cur {
		t.Fatal("Clone shared a board")
	}
	if !c.Current.Equal(cur) || !c.Running || c.Generation != 4 {
		t.Fatal("Clone lost data")
	}
}
