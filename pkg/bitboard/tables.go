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

package bitboard

import "github.com/corvid-chess/oracle/pkg/square"

// Squares holds the singleton bitboard of every square, indexed by
// square.Square.
var Squares [square.N]Board

// Files and Ranks hold the full-file/full-rank bitboards, indexed by
// square.File/square.Rank.
var (
	Files [8]Board
	Ranks [8]Board
)

// Diagonals and AntiDiagonals hold every a1-h8- and a8-h1-direction
// diagonal, indexed by square.Diagonal/square.AntiDiagonal.
var (
	Diagonals     [square.DiagonalN]Board
	AntiDiagonals [square.AntiDiagonalN]Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
	}

	for s := square.A1; s <= square.H8; s++ {
		Files[s.File()] |= Squares[s]
		Ranks[s.Rank()] |= Squares[s]
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}

// named single files and ranks, for readability at call sites.
const (
	FileA = Board(0x0101010101010101)
	FileH = Board(0x8080808080808080)
)

const (
	Rank1 = Board(0x00000000000000ff)
	Rank2 = Board(0x000000000000ff00)
	Rank4 = Board(0x00000000ff000000)
	Rank5 = Board(0x000000ff00000000)
	Rank7 = Board(0x00ff000000000000)
	Rank8 = Board(0xff00000000000000)
)
