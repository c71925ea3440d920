// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package castling implements the eight-bit castling/check-cache
// record a Position carries per color: which of the king and two
// rooks have left their starting square since setup, and whether that
// color is currently in check.
package castling

import (
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Flags packs, for each color, "rook queen-side moved", "rook
// king-side moved", "king moved", plus an "in check" cache, eight
// bits total. "Moved" means "not on its starting square at some point
// since position setup" — Position.Place sets a bit the instant the
// relevant piece leaves its starting square, and clears it again if a
// king or rook of the right type and color later arrives there (this
// lets a position editor or FEN load re-enable castling by placing
// pieces back on their home squares).
type Flags uint8

const (
	WhiteQueenRookMoved Flags = 1 << 0
	WhiteKingRookMoved  Flags = 1 << 1
	WhiteKingMoved      Flags = 1 << 2
	WhiteInCheck        Flags = 1 << 3

	BlackQueenRookMoved Flags = 1 << 4
	BlackKingRookMoved  Flags = 1 << 5
	BlackKingMoved      Flags = 1 << 6
	BlackInCheck        Flags = 1 << 7

	None Flags = 0
)

func movedShift(c piece.Color) uint8 {
	if c == piece.White {
		return 0
	}
	return 4
}

// CanCastleQueenside reports whether neither the king nor the
// queen-side rook of c has moved.
func (f Flags) CanCastleQueenside(c piece.Color) bool {
	shift := movedShift(c)
	mask := Flags(1<<shift | 1<<2<<shift)
	return f&mask == 0
}

// CanCastleKingside reports whether neither the king nor the
// king-side rook of c has moved.
func (f Flags) CanCastleKingside(c piece.Color) bool {
	shift := movedShift(c)
	mask := Flags(1<<1<<shift | 1<<2<<shift)
	return f&mask == 0
}

// MarkKingMoved sets c's king-moved bit. Since both rook flags exist
// solely to gate castling and castling already requires the king
// untouched, this alone is enough to disable both sides of castling
// for c; the rook flags are only needed to re-enable the other side
// if the king never actually moves off a back-rank corner a rook
// vacated.
func (f *Flags) MarkKingMoved(c piece.Color) {
	*f |= Flags(1 << 2 << movedShift(c))
}

// MarkQueenRookMoved sets c's queen-side-rook-moved bit.
func (f *Flags) MarkQueenRookMoved(c piece.Color) {
	*f |= Flags(1 << movedShift(c))
}

// MarkKingRookMoved sets c's king-side-rook-moved bit.
func (f *Flags) MarkKingRookMoved(c piece.Color) {
	*f |= Flags(1 << 1 << movedShift(c))
}

// ClearKingMoved re-enables c's king-moved bit, for a king placed
// back onto its own starting square.
func (f *Flags) ClearKingMoved(c piece.Color) {
	*f &^= Flags(1 << 2 << movedShift(c))
}

// ClearQueenRookMoved re-enables c's queen-side-rook-moved bit.
func (f *Flags) ClearQueenRookMoved(c piece.Color) {
	*f &^= Flags(1 << movedShift(c))
}

// ClearKingRookMoved re-enables c's king-side-rook-moved bit.
func (f *Flags) ClearKingRookMoved(c piece.Color) {
	*f &^= Flags(1 << 1 << movedShift(c))
}

// HasMoved reports whether the king or rook of code, standing on its
// own starting square s, has left that square since setup. Any
// code/square combination that is not a king or rook on one of the
// six starting squares (e1/e8/a1/a8/h1/h8 for the matching color)
// defaults to false, since no other piece's movement is tracked by
// this record.
func (f Flags) HasMoved(code piece.Code, s square.Square) bool {
	c := code.Color()
	switch code.Type() {
	case piece.King:
		if (c == piece.White && s == square.E1) || (c == piece.Black && s == square.E8) {
			return f.HasKingMoved(c)
		}
	case piece.Rook:
		switch {
		case c == piece.White && s == square.A1:
			return f.HasQueenRookMoved(c)
		case c == piece.White && s == square.H1:
			return f.HasKingRookMoved(c)
		case c == piece.Black && s == square.A8:
			return f.HasQueenRookMoved(c)
		case c == piece.Black && s == square.H8:
			return f.HasKingRookMoved(c)
		}
	}
	return false
}

// HasQueenRookMoved reports whether c's queen-side rook has left a1/a8.
func (f Flags) HasQueenRookMoved(c piece.Color) bool {
	return f&Flags(1<<movedShift(c)) != 0
}

// HasKingRookMoved reports whether c's king-side rook has left h1/h8.
func (f Flags) HasKingRookMoved(c piece.Color) bool {
	return f&Flags(1<<1<<movedShift(c)) != 0
}

// HasKingMoved reports whether c's king has left e1/e8.
func (f Flags) HasKingMoved(c piece.Color) bool {
	return f&Flags(1<<2<<movedShift(c)) != 0
}

// InCheck reports the cached in-check bit for c.
func (f Flags) InCheck(c piece.Color) bool {
	if c == piece.White {
		return f&WhiteInCheck != 0
	}
	return f&BlackInCheck != 0
}

// SetInCheck writes c's cached in-check bit.
func (f *Flags) SetInCheck(c piece.Color, v bool) {
	bit := WhiteInCheck
	if c == piece.Black {
		bit = BlackInCheck
	}
	if v {
		*f |= bit
	} else {
		*f &^= bit
	}
}

// String renders the still-available castling rights in FEN order,
// KQkq, or "-" if none remain.
func (f Flags) String() string {
	var s string
	if f.CanCastleKingside(piece.White) {
		s += "K"
	}
	if f.CanCastleQueenside(piece.White) {
		s += "Q"
	}
	if f.CanCastleKingside(piece.Black) {
		s += "k"
	}
	if f.CanCastleQueenside(piece.Black) {
		s += "q"
	}
	if s == "" {
		s = "-"
	}
	return s
}

// FromFEN builds a Flags value out of an initial (nothing moved yet)
// record whose castling availability matches the FEN castling field
// r — any right absent from r is recorded as already moved.
func FromFEN(r string) Flags {
	var f Flags
	if r == "-" {
		r = ""
	}
	if !containsByte(r, 'K') {
		f.MarkKingRookMoved(piece.White)
	}
	if !containsByte(r, 'Q') {
		f.MarkQueenRookMoved(piece.White)
	}
	if !containsByte(r, 'k') {
		f.MarkKingRookMoved(piece.Black)
	}
	if !containsByte(r, 'q') {
		f.MarkQueenRookMoved(piece.Black)
	}
	return f
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
