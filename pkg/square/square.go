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

// Package square declares constants representing every square on a
// chessboard, the two out-of-band scan sentinels pre_begin and end,
// and the forward/backward bit-scan primitives the rest of the engine
// is built on.
//
// Squares are represented using algebraic notation, a1 = 0 through
// h8 = 63, least-significant-bit-is-a1 ordering so that a Square and
// the equivalent bit index into a bitboard.Board always agree.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
package square

import (
	"fmt"
	"math/bits"
)

// Square identifies one of the 64 squares of a chessboard, or one of
// the two out-of-band scan sentinels.
type Square int8

const (
	// PreBegin precedes A1 for backward bit-scans; calling PrevBitIn
	// on it is undefined, but NextBitIn on it is the scan's start.
	PreBegin Square = -1
	// End follows H8 for forward bit-scans; NextBitIn on it returns
	// End again, and PrevBitIn on it is the scan's start.
	End Square = 64
)

// N is the number of real squares on the board.
const N = 64

// constants for every square, a1 = 0 .. h8 = 63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// New creates a new instance of a Square from its algebraic identifier,
// or PreBegin's string "-" for the null square.
func New(id string) Square {
	switch {
	case id == "-":
		return PreBegin
	case len(id) != 2:
		panic("new square: invalid square id")
	}

	return From(fileFrom(string(id[0])), rankFrom(string(id[1])))
}

// From creates a Square from a File and a Rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// String converts a Square into its algebraic string representation.
// PreBegin, conventionally used as the "no square" value, prints "-".
func (s Square) String() string {
	if s == PreBegin {
		return "-"
	}

	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// Column returns the 0-indexed column (file index) of the square.
func (s Square) Column() int {
	return int(s) % 8
}

// Row returns the 0-indexed row (rank index) of the square.
func (s Square) Row() int {
	return int(s) / 8
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s.Column())
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s.Row())
}

// NextBitIn advances the square by one step and returns the index of
// the least-significant bit set in mask at or after that position, or
// End if none remains. Calling it on PreBegin starts the scan at the
// first bit of mask; calling it on End (or any square whose successor
// has no further set bit) continues to return End.
func (s Square) NextBitIn(mask uint64) Square {
	s++
	shifted := mask >> uint(s)
	if shifted == 0 {
		return End
	}
	return s + Square(bits.TrailingZeros64(shifted))
}

// PrevBitIn retreats the square by one step and returns the index of
// the most-significant bit set in mask at or before that position, or
// PreBegin if none remains. Calling it on End starts the scan at the
// last bit of mask; behaviour when called on A1 (0) is undefined.
func (s Square) PrevBitIn(mask uint64) Square {
	s--
	if s < 0 {
		return PreBegin
	}

	var window uint64
	if s >= 63 {
		window = mask
	} else {
		window = mask & (uint64(1)<<(uint(s)+1) - 1)
	}
	if window == 0 {
		return PreBegin
	}
	return Square(63 - bits.LeadingZeros64(window))
}
