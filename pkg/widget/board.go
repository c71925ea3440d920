// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package widget renders a Position to a terminal using termui
// widgets, reading the position only through its exported queries
// (WidgetCodeAt, ToMove, InCheck, DoubleCheck, CastleFlags, FEN). It never
// reaches into pkg/position's internals.
package widget

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/rivo/uniseg"

	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

// glyphs maps a WidgetCode to the unicode chess symbol drawn for it.
// Index 0 (WidgetNone) renders as a plain dot.
var glyphs = [14]rune{
	position.WidgetNone: '·',

	position.WidgetBlackPawn: '♟', position.WidgetWhitePawn: '♙',
	position.WidgetBlackRook: '♜', position.WidgetWhiteRook: '♖',
	position.WidgetBlackKnight: '♞', position.WidgetWhiteKnight: '♘',
	position.WidgetBlackBishop: '♝', position.WidgetWhiteBishop: '♗',
	position.WidgetBlackQueen: '♛', position.WidgetWhiteQueen: '♕',
	position.WidgetBlackKing: '♚', position.WidgetWhiteKing: '♔',
}

// Board is a terminal viewer for a Position. It owns no copy of the
// position's state beyond what it needs to redraw; call Sync after
// every move to pick up the position's new state.
type Board struct {
	pos *position.Position

	table  *widgets.Table
	status *widgets.Paragraph

	lastFrom, lastTo square.Square
}

// NewBoard builds a viewer for pos. Call Run to take over the
// terminal, or Render for a single non-interactive draw.
func NewBoard(pos *position.Position) *Board {
	b := &Board{
		pos:      pos,
		table:    widgets.NewTable(),
		status:   widgets.NewParagraph(),
		lastFrom: square.PreBegin,
		lastTo:   square.PreBegin,
	}
	b.table.Title = "Position"
	b.table.RowSeparator = false
	b.table.TextAlignment = ui.AlignCenter
	b.status.Title = "Status"
	return b
}

// Sync marks the last move played, for the highlight overlay drawn by
// Render, and rebuilds the table and status text from the position's
// current state.
func (b *Board) Sync(lastFrom, lastTo square.Square) {
	b.lastFrom, b.lastTo = lastFrom, lastTo
	b.table.Rows = b.rows()
	b.status.Text = b.statusText()
}

// Rows returns the 8x8 grid of glyphs last built by Sync, rank 8
// first.
func (b *Board) Rows() [][]string {
	return b.table.Rows
}

// StatusText returns the status paragraph text last built by Sync.
func (b *Board) StatusText() string {
	return b.status.Text
}

// rows renders the 8x8 grid, rank 8 first, one glyph per cell padded
// to a fixed display width so wide terminal glyphs (the unicode chess
// symbols are double-width in most fonts) still line up in columns.
func (b *Board) rows() [][]string {
	rows := make([][]string, 8)
	for i, rank := 0, 7; rank >= 0; i, rank = i+1, rank-1 {
		row := make([]string, 8)
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			code := b.pos.WidgetCodeAt(s)
			row[file] = padGlyph(glyphs[code])
		}
		rows[i] = row
	}
	return rows
}

// padGlyph centers r inside a two-cell-wide field, accounting for
// glyphs that uniseg/runewidth report as occupying two terminal
// columns so single- and double-width pieces still share one column
// width in the rendered table.
func padGlyph(r rune) string {
	w := runewidth.RuneWidth(r)
	if uniseg.StringWidth(string(r)) > w {
		w = uniseg.StringWidth(string(r))
	}
	if w >= 2 {
		return string(r)
	}
	return string(r) + " "
}

func (b *Board) statusText() string {
	toMove := "white"
	if b.pos.ToMove().String() == "b" {
		toMove = "black"
	}
	check := ""
	if b.pos.InCheck(b.pos.ToMove()) {
		if b.pos.DoubleCheck() {
			check = " (double check)"
		} else {
			check = " (check)"
		}
	}
	return fmt.Sprintf("%s to move%s\ncastling: %s\n%s", toMove, check, b.pos.CastleFlags(), b.pos.FEN())
}

// Render draws one frame: the board table plus, as a direct termbox
// overlay on top of it, a highlight on the last move's source and
// destination squares. termui v3 initializes termbox internally, so
// writing cells straight to termbox after ui.Render composes safely
// with it.
func (b *Board) Render() {
	width, height := ui.TerminalDimensions()
	b.table.SetRect(0, 0, width, height-4)
	b.status.SetRect(0, height-4, width, height)

	ui.Render(b.table, b.status)
	b.highlightLastMove()
	termbox.Flush()
}

func (b *Board) highlightLastMove() {
	if b.lastFrom == square.PreBegin || b.lastTo == square.PreBegin {
		return
	}
	cellW, cellH := b.cellSize()
	for _, s := range [2]square.Square{b.lastFrom, b.lastTo} {
		x, y := b.cellOrigin(s, cellW, cellH)
		cell := termbox.GetCell(x, y)
		termbox.SetCell(x, y, cell.Ch, termbox.ColorBlack, termbox.ColorYellow)
	}
}

func (b *Board) cellSize() (int, int) {
	x0, y0, x1, y1 := b.table.Min.X, b.table.Min.Y, b.table.Max.X, b.table.Max.Y
	return (x1 - x0) / 8, (y1 - y0) / 8
}

func (b *Board) cellOrigin(s square.Square, cellW, cellH int) (int, int) {
	row := 7 - int(s.Rank())
	col := int(s.Column())
	return b.table.Min.X + col*cellW + 1, b.table.Min.Y + row*cellH + 1
}

// Run initializes the terminal, renders until the user quits ('q' or
// Ctrl-C), and restores the terminal on return.
func Run(pos *position.Position) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("widget: Run: %w", err)
	}
	defer ui.Close()

	b := NewBoard(pos)
	b.Sync(square.PreBegin, square.PreBegin)
	b.Render()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			b.Render()
		}
	}
	return nil
}
