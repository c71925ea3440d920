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

// Package countboard implements a per-square four-bit counter (0-15)
// stored as four bit-planes, used by pkg/position to maintain how many
// pieces of a color defend each square without rescanning the board on
// every query.
package countboard

import (
	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Board is a per-square counter in 0..15; a sixteenth increment wraps
// the count back to 0, undetected. Overflow cannot occur on a legal chessboard, since no square is
// attacked more than fifteen times; callers must never cause underflow
// by subtracting a square that was not previously added.
type Board struct {
	p0, p1, p2, p3 bitboard.Board
	any            bitboard.Board
}

// Any returns the set of squares with a non-zero count.
func (c *Board) Any() bitboard.Board {
	return c.any
}

// Count returns the counter value, 0..15, at the given square.
func (c *Board) Count(s square.Square) int {
	n := 0
	if c.p0.IsSet(s) {
		n |= 1
	}
	if c.p1.IsSet(s) {
		n |= 2
	}
	if c.p2.IsSet(s) {
		n |= 4
	}
	if c.p3.IsSet(s) {
		n |= 8
	}
	return n
}

// Add increments the counter at every square set in x by one. This is
// a four-bit ripple adder run in parallel across all 64 lanes.
func (c *Board) Add(x bitboard.Board) {
	carry0 := c.p0.Intersect(x)
	c.p0 = c.p0.SymmetricDifference(x)

	carry1 := c.p1.Intersect(carry0)
	c.p1 = c.p1.SymmetricDifference(carry0)

	carry2 := c.p2.Intersect(carry1)
	c.p2 = c.p2.SymmetricDifference(carry1)

	c.p3 = c.p3.SymmetricDifference(carry2)

	c.any = c.any.Union(x)
}

// Sub decrements the counter at every square set in x by one. The
// caller must ensure every such square's counter is already non-zero.
func (c *Board) Sub(x bitboard.Board) {
	borrow0 := c.p0.Complement().Intersect(x)
	c.p0 = c.p0.SymmetricDifference(x)

	borrow1 := c.p1.Complement().Intersect(borrow0)
	c.p1 = c.p1.SymmetricDifference(borrow0)

	borrow2 := c.p2.Complement().Intersect(borrow1)
	c.p2 = c.p2.SymmetricDifference(borrow1)

	c.p3 = c.p3.SymmetricDifference(borrow2)

	c.any = c.p0.Union(c.p1).Union(c.p2).Union(c.p3)
}
