package model

import "strings"

const (
	glyphAlive   = '█' // alive in both generations
	glyphBorn    = '▓' // dead, now alive
	glyphDying   = '▒' // alive, now dead
	glyphNothing = ' '
)

// Frame is a rendered snapshot: one rune per cell, row by row
type Frame struct {
	Width  int
	Height int
	Rows   [][]rune
}

// String joins the rows with newlines
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height * 3)
	for _, row := range f.Rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Renderer turns a snapshot into a frame. Backends (terminal, GUI, plain
// writer) draw the frame however they like.
type Renderer interface {
	Render(s Snapshot) Frame
}

// GlyphRenderer draws each cell by how it changed between the previous and
// the current generation.
type GlyphRenderer struct{}

// Render implements Renderer
func (GlyphRenderer) Render(s Snapshot) Frame {
	cur := s.Current
	if cur == nil {
		return Frame{}
	}
	prev := s.Previous
	if prev == nil || prev.width != cur.width || prev.height != cur.height {
		prev = cur
	}

	rows := make([][]rune, cur.height)
	for y := range cur.height {
		row := make([]rune, cur.width)
		for x := range cur.width {
			row[x] = Glyph(prev.cells[y][x].state == Alive, cur.cells[y][x].state == Alive)
		}
		rows[y] = row
	}
	return Frame{Width: cur.width, Height: cur.height, Rows: rows}
}

// Glyph picks the rune for a cell that was wasAlive and now isAlive
func Glyph(wasAlive, isAlive bool) rune {
	switch {
	case wasAlive && isAlive:
		return glyphAlive
	case isAlive:
		return glyphBorn
	case wasAlive:
		return glyphDying
	default:
		return glyphNothing
	}
}
