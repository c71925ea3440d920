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

// Package geometry holds the process-wide, read-only ray, segment,
// candidate-move, and direction lookup tables every slider and leaper
// computation in pkg/position is built from. Every table is computed
// once at init time and never recomputed per query.
package geometry

import "github.com/corvid-chess/oracle/pkg/piece"

// Dir names one of the eight compass directions a ray can run in.
type Dir int8

const (
	North Dir = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	NDirections = 8
	// NoDirection marks two squares that are not collinear along any
	// of the eight rays.
	NoDirection Dir = -1
)

// direction describes one compass direction: the signed square-index
// delta a single step takes, the ray-mover class required to move
// along it, and whether it runs along a single rank (only East/West
// do — this is the direction the en-passant horizontal pin is checked
// along).
type direction struct {
	Offset       int
	MoverFlags   piece.MoverFlags
	IsHorizontal bool
}

// Directions is indexed by Dir.
var Directions = [NDirections]direction{
	North:     {8, piece.FlagRook, false},
	South:     {-8, piece.FlagRook, false},
	East:      {1, piece.FlagRook, true},
	West:      {-1, piece.FlagRook, true},
	NorthEast: {9, piece.FlagBishop, false},
	NorthWest: {7, piece.FlagBishop, false},
	SouthEast: {-7, piece.FlagBishop, false},
	SouthWest: {-9, piece.FlagBishop, false},
}

// Opposite returns the direction that points back the way d came from.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return NoDirection
	}
}

// Offset returns the signed per-step square-index delta of d.
func (d Dir) Offset() int {
	return Directions[d].Offset
}

// MoverFlags returns the mover-class bit a slider needs to move along d.
func (d Dir) MoverFlags() piece.MoverFlags {
	return Directions[d].MoverFlags
}

// IsHorizontal reports whether d runs along a single rank.
func (d Dir) IsHorizontal() bool {
	return Directions[d].IsHorizontal
}
