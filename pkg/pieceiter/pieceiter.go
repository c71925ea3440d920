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

// Package pieceiter implements a read-only iterator over the set
// bits of a chosen bit-board, dereferenced against a Position to
// yield the Piece standing on each bit.
package pieceiter

import (
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// board is the subset of position.Position this package reads;
// kept as an interface so pieceiter does not import position.
type board interface {
	At(s square.Square) piece.Piece
}

// Iterator walks the set bits of mask, forward or backward, yielding
// the Piece at each. It holds a read-only borrow of pos: pos must
// not be mutated while an Iterator over it is in use.
type Iterator struct {
	pos  board
	mask uint64
	cur  square.Square
}

// New returns an iterator positioned before the first set bit of
// mask (so the first Next call yields it).
func New(pos board, mask uint64) *Iterator {
	return &Iterator{pos: pos, mask: mask, cur: square.PreBegin}
}

// NewReverse returns an iterator positioned after the last set bit
// of mask (so the first Prev call yields it).
func NewReverse(pos board, mask uint64) *Iterator {
	return &Iterator{pos: pos, mask: mask, cur: square.End}
}

// Next advances the iterator to the next set bit and reports whether
// one was found; once it returns false the iterator is exhausted.
func (it *Iterator) Next() bool {
	it.cur = it.cur.NextBitIn(it.mask)
	return it.cur != square.End
}

// Prev retreats the iterator to the previous set bit and reports
// whether one was found.
func (it *Iterator) Prev() bool {
	it.cur = it.cur.PrevBitIn(it.mask)
	return it.cur != square.PreBegin
}

// Square returns the current square. Undefined before the first
// Next/Prev call or after either returns false.
func (it *Iterator) Square() square.Square {
	return it.cur
}

// Piece dereferences the iterator: the Piece standing on the current
// square.
func (it *Iterator) Piece() piece.Piece {
	return it.pos.At(it.cur)
}
