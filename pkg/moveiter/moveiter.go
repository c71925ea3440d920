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

// Package moveiter implements the legal-move iterator for one piece:
// it computes Position.Moves(index) once and walks the destination
// bits, expanding a pawn reaching the back rank into its four
// promotion choices.
package moveiter

import (
	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/move"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// board is the subset of position.Position this package needs.
type board interface {
	At(s square.Square) piece.Piece
	Moves(index square.Square) bitboard.Board
}

// Iterator walks the legal moves of the piece standing on from, in
// forward or reverse order. Its state is exactly the target
// bit-board, the current destination square, and the current
// promotion type (piece.NoType if the current move is not a
// promotion). The past-the-end iterator has destination square.End.
type Iterator struct {
	from   square.Square
	isPawn bool
	target uint64

	dest  square.Square
	promo int // index into piece.Promotions, or -1 before/after promotions
}

// New computes moves(from) and returns an iterator positioned before
// the first legal move (Next yields it).
func New(pos board, from square.Square) *Iterator {
	occ := pos.At(from)
	target := uint64(pos.Moves(from))
	isPawn := occ.Code.Type() == piece.Pawn
	return &Iterator{
		from:   from,
		isPawn: isPawn,
		target: target,
		dest:   square.PreBegin,
		promo:  -1,
	}
}

// NewReverse is New, but positioned after the last legal move (Prev
// yields it).
func NewReverse(pos board, from square.Square) *Iterator {
	it := New(pos, from)
	it.dest = square.End
	it.promo = len(piece.Promotions)
	return it
}

func isBackRank(s square.Square) bool {
	return s.Rank() == square.Rank1 || s.Rank() == square.Rank8
}

// Next advances to the next legal move and reports whether one
// exists.
func (it *Iterator) Next() bool {
	if it.isPawn && it.dest != square.PreBegin && it.dest != square.End && isBackRank(it.dest) {
		if it.promo < 0 {
			it.promo = 0
		} else {
			it.promo++
		}
		if it.promo < len(piece.Promotions) {
			return true
		}
		it.promo = -1
	}

	it.dest = it.dest.NextBitIn(it.target)
	if it.dest == square.End {
		return false
	}
	if it.isPawn && isBackRank(it.dest) {
		it.promo = 0
	} else {
		it.promo = -1
	}
	return true
}

// Prev retreats to the previous legal move and reports whether one
// exists.
func (it *Iterator) Prev() bool {
	if it.isPawn && it.dest != square.PreBegin && it.dest != square.End && isBackRank(it.dest) {
		if it.promo >= len(piece.Promotions) {
			it.promo = len(piece.Promotions) - 1
		} else {
			it.promo--
		}
		if it.promo >= 0 {
			return true
		}
		it.promo = len(piece.Promotions)
	}

	it.dest = it.dest.PrevBitIn(it.target)
	if it.dest == square.PreBegin {
		return false
	}
	if it.isPawn && isBackRank(it.dest) {
		it.promo = len(piece.Promotions) - 1
	} else {
		it.promo = len(piece.Promotions)
	}
	return true
}

// Move returns the current move. Undefined before the first Next/Prev
// call or after either returns false.
func (it *Iterator) Move() move.Move {
	if it.promo >= 0 && it.promo < len(piece.Promotions) {
		return move.NewPromotion(it.from, it.dest, piece.Promotions[it.promo])
	}
	return move.New(it.from, it.dest)
}

// Equal reports whether two iterators have the same current
// destination square and promotion type.
func (it *Iterator) Equal(o *Iterator) bool {
	return it.dest == o.dest && it.currentPromotion() == o.currentPromotion()
}

func (it *Iterator) currentPromotion() piece.Type {
	if it.promo >= 0 && it.promo < len(piece.Promotions) {
		return piece.Promotions[it.promo]
	}
	return piece.NoType
}
