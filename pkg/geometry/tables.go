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

package geometry

import (
	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Ray holds, for every square and direction, every square strictly
// beyond it in that direction, stopping at the board edge.
var Ray [square.N][NDirections]bitboard.Board

// DirectionFromTo holds, for every pair of squares, the unique
// direction connecting them, or NoDirection if they are not collinear
// along one of the eight rays. Built from the signed row/column
// difference between the two squares.
var DirectionFromTo [square.N][square.N]Dir

// knightCandidates and kingCandidates are the leaper move patterns;
// Candidates also serves bishop/rook/queen via Ray.
var (
	knightCandidates [square.N]bitboard.Board
	kingCandidates   [square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		for d := Dir(0); d < NDirections; d++ {
			Ray[s][d] = rayFrom(s, d)
		}

		for t := square.A1; t <= square.H8; t++ {
			DirectionFromTo[s][t] = directionFromTo(s, t)
		}

		knightCandidates[s] = leap(s, knightDeltas)
		kingCandidates[s] = leap(s, kingDeltas)
	}
}

func rayFrom(s square.Square, d Dir) bitboard.Board {
	offset := d.Offset()
	board := bitboard.Of(s)
	var ray bitboard.Board
	for {
		board = board.Shift(offset)
		if board.IsEmpty() {
			return ray
		}
		ray |= board
	}
}

func directionFromTo(from, to square.Square) Dir {
	if from == to {
		return NoDirection
	}

	dr := to.Row() - from.Row()
	dc := to.Column() - from.Column()

	switch {
	case dr == 0 && dc > 0:
		return East
	case dr == 0 && dc < 0:
		return West
	case dc == 0 && dr > 0:
		return North
	case dc == 0 && dr < 0:
		return South
	case dr == dc && dr > 0:
		return NorthEast
	case dr == dc && dr < 0:
		return SouthWest
	case dr == -dc && dr > 0:
		return NorthWest
	case dr == -dc && dr < 0:
		return SouthEast
	default:
		return NoDirection
	}
}

// SquaresFromTo returns the half-open segment [from, to): every square
// strictly between from and to, plus from itself, in the direction of
// to, excluding to. Returns Empty if from and to do not lie on a ray
// together. Reversing the arguments yields the reverse segment.
func SquaresFromTo(from, to square.Square) bitboard.Board {
	d := DirectionFromTo[from][to]
	if d == NoDirection {
		return bitboard.Empty
	}

	offset := d.Offset()
	segment := bitboard.Of(from)
	s := from
	for s != to {
		s = square.Square(int(s) + offset)
		if s == to {
			break
		}
		segment |= bitboard.Of(s)
	}
	return segment
}

type delta struct{ dr, dc int }

var knightDeltas = []delta{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = []delta{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func leap(s square.Square, deltas []delta) bitboard.Board {
	var board bitboard.Board
	row, col := s.Row(), s.Column()
	for _, d := range deltas {
		r, c := row+d.dr, col+d.dc
		if r < 0 || r > 7 || c < 0 || c > 7 {
			continue
		}
		board.Set(square.From(square.File(c), square.Rank(r)))
	}
	return board
}

// Candidates returns the squares a piece of the given type could reach
// from s on an empty board (sliders), or its full leap pattern (knight,
// king). There is no pawn entry; pawn reach depends on Flags, not
// geometry alone.
func Candidates(t piece.Type, s square.Square) bitboard.Board {
	switch t {
	case piece.Knight:
		return knightCandidates[s]
	case piece.King:
		return kingCandidates[s]
	case piece.Bishop:
		return sliderCandidates(s, piece.FlagBishop)
	case piece.Rook:
		return sliderCandidates(s, piece.FlagRook)
	case piece.Queen:
		return sliderCandidates(s, piece.FlagBishop|piece.FlagRook)
	default:
		panic("geometry: Candidates: no candidate table for this type")
	}
}

func sliderCandidates(s square.Square, flags piece.MoverFlags) bitboard.Board {
	var board bitboard.Board
	for d := Dir(0); d < NDirections; d++ {
		if d.MoverFlags()&flags != 0 {
			board |= Ray[s][d]
		}
	}
	return board
}
