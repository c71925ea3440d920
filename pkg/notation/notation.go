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

// Package notation renders moves and positions in human-readable
// long-algebraic form, e.g. "Ne5xd7" or "0-0+", deciding the move's
// effect (check, checkmate, stalemate, draw) by playing it out on a
// clone of the position it is read against.
package notation

import (
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"

	"github.com/corvid-chess/oracle/pkg/move"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

// pieceLetters maps a moving piece's type to the letter prefixed to
// its notation. Pawns have no letter; the constant is the zero value
// so the lookup below simply skips them.
var pieceLetters = [8]byte{
	piece.Knight: 'N',
	piece.Bishop: 'B',
	piece.Rook:   'R',
	piece.Queen:  'Q',
	piece.King:   'K',
}

// Move renders m as played from pos, in the style "e2-e4", "Nb1-c3",
// "d5xe6 e.p.", "0-0+", or "Qd1-d8# 1-0", deciding suffixes by
// playing m out on a clone of pos. pos itself is never mutated.
func Move(pos *position.Position, m move.Move) string {
	mover := pos.At(m.From)

	var b strings.Builder
	colDiff := int(m.From.Column()) - int(m.To.Column())
	if mover.Code.Is(piece.King) && (colDiff == 2 || colDiff == -2) {
		if colDiff == 2 {
			b.WriteString("0-0-0")
		} else {
			b.WriteString("0-0")
		}
	} else {
		if letter := pieceLetters[mover.Code.Type()]; letter != 0 {
			b.WriteByte(letter)
		}
		b.WriteString(m.From.String())

		targetEmpty := pos.At(m.To).IsNone()
		enPassant := colDiff != 0 && mover.Code.Is(piece.Pawn) && targetEmpty
		if targetEmpty && !enPassant {
			b.WriteByte('-')
		} else {
			b.WriteByte('x')
		}
		b.WriteString(m.To.String())
		if enPassant {
			b.WriteString(" e.p.")
		}
		if m.IsPromotion() {
			b.WriteByte('(')
			b.WriteString(pieceLetterForType(m.Promotion))
			b.WriteByte(')')
		}
	}

	b.WriteString(outcomeSuffix(pos, m))
	return b.String()
}

func pieceLetterForType(t piece.Type) string {
	if letter := pieceLetters[t]; letter != 0 {
		return string(letter)
	}
	return ""
}

// outcomeSuffix plays m out on a clone of pos and reports the result:
// "+" for check, "#" plus the game-ending score for checkmate,
// " stale mate 1/2-1/2" for stalemate, " 1/2-1/2" (after any "+")
// when m brings the half-move clock to 100, and "" otherwise.
func outcomeSuffix(pos *position.Position, m move.Move) string {
	tmp := pos.Clone()
	if !tmp.Legal(m) {
		return " illegal move!"
	}
	draw := tmp.Execute(m)

	toMove := tmp.ToMove()
	moves := 0
	for s := square.A1; s <= square.H8; s++ {
		occ := tmp.At(s)
		if !occ.IsNone() && occ.Code.IsColor(toMove) {
			moves += tmp.Moves(s).Count()
		}
	}

	check := tmp.InCheck(toMove)
	checkMate := moves == 0 && check
	staleMate := moves == 0 && !check
	if staleMate {
		draw = true
	}
	if checkMate {
		draw = false
	}

	var b strings.Builder
	switch {
	case checkMate:
		b.WriteByte('#')
	case staleMate:
		b.WriteString(" stale mate")
	case check:
		b.WriteByte('+')
	}
	switch {
	case checkMate && toMove == piece.Black:
		b.WriteString(" 1-0")
	case checkMate:
		b.WriteString(" 0-1")
	case draw:
		b.WriteString(" 1/2-1/2")
	}
	return b.String()
}

// Highlight wraps s in colorstring's "[color]...[reset]" markup, for
// terminals that render it.
func Highlight(color, s string) string {
	return colorstring.Color("[" + color + "]" + s + "[reset]")
}

// WrapComment wraps a PGN-style comment annotation to width columns,
// used when printing a replayed game's annotations to a terminal.
func WrapComment(comment string, width uint) string {
	return wordwrap.WrapString(comment, width)
}
