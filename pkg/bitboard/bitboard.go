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

// Package bitboard implements a 64-bit bitboard, least-significant-bit
// is a1, and the Boolean algebra and bit-scan operations the rest of
// the engine builds move generation from.
package bitboard

import (
	"math/bits"

	"github.com/corvid-chess/oracle/pkg/square"
)

// Board is a set of squares, one bit per square, bit 0 = a1.
type Board uint64

// Empty and Universe are the empty and full bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Of returns the singleton bitboard of one square.
func Of(s square.Square) Board {
	return Squares[s]
}

// String renders the board as an 8x8 grid, rank 8 first, to match the
// way a chessboard is conventionally printed.
func (b Board) String() string {
	var out [8 * 16]byte
	i := 0
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			if b.IsSet(s) {
				out[i] = '1'
			} else {
				out[i] = '0'
			}
			i++
			if file < 7 {
				out[i] = ' '
				i++
			}
		}
		out[i] = '\n'
		i++
	}
	return string(out[:i])
}

// Union returns the set union (bitwise OR) of the two boards.
func (b Board) Union(o Board) Board {
	return b | o
}

// Intersect returns the set intersection (bitwise AND) of the two boards.
func (b Board) Intersect(o Board) Board {
	return b & o
}

// SymmetricDifference returns the set symmetric difference (bitwise XOR).
func (b Board) SymmetricDifference(o Board) Board {
	return b ^ o
}

// Complement returns the set of squares not in b.
func (b Board) Complement() Board {
	return ^b
}

// Without returns b with every square of o removed.
func (b Board) Without(o Board) Board {
	return b &^ o
}

// IsEmpty reports whether the board has no squares set.
func (b Board) IsEmpty() bool {
	return b == Empty
}

// IsSet reports whether the given square is a member of the board.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// HasAny reports whether b shares any square with mask.
func (b Board) HasAny(mask Board) bool {
	return b&mask != Empty
}

// Set adds the given square to the board.
func (b *Board) Set(s square.Square) {
	*b |= Squares[s]
}

// Unset removes the given square from the board.
func (b *Board) Unset(s square.Square) {
	*b &^= Squares[s]
}

// Pop returns the least-significant square of the board and removes it.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least-significant set square, or square.End if
// the board is empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.End
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the most-significant set square, or square.PreBegin
// if the board is empty.
func (b Board) LastOne() square.Square {
	if b == Empty {
		return square.PreBegin
	}
	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Count returns the number of set squares in the board.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Shift moves every set square by the given signed offset, discarding
// squares that would wrap past the a/h files. offset must be one of
// the eight ray offsets (±1, ±7, ±8, ±9); anything else is a
// programmer error in a direction table.
func (b Board) Shift(offset int) Board {
	switch offset {
	case 8:
		return b << 8
	case -8:
		return b >> 8
	case 1:
		return (b &^ FileH) << 1
	case -1:
		return (b &^ FileA) >> 1
	case 9:
		return (b &^ FileH) << 9
	case -9:
		return (b &^ FileA) >> 9
	case 7:
		return (b &^ FileA) << 7
	case -7:
		return (b &^ FileH) >> 7
	default:
		panic("bitboard: Shift: invalid offset")
	}
}
