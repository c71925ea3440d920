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

// Package enpassant implements the small packed record a Position
// keeps for its en-passant state: which square, if any, was just
// skipped by a two-square pawn advance, and whether capturing it en
// passant is illegal this move because of a horizontal pin.
package enpassant

import "github.com/corvid-chess/oracle/pkg/square"

// State is the en-passant record: the passed square (the square the
// pawn jumped over, empty, and the only square a capturing pawn ever
// lands on), or the sentinel None if the last move was not a
// two-square pawn advance.
type State struct {
	passed square.Square
	pinned bool
}

// None is the state in which no en-passant capture is available. It is
// not the zero value: a zero State records a1 as its passed square.
var None = State{passed: square.PreBegin}

// New builds the en-passant state after a two-square pawn advance
// that skipped over passed.
func New(passed square.Square) State {
	return State{passed: passed}
}

// Exists reports whether an en-passant capture is available at all
// (regardless of whether it is pinned away).
func (s State) Exists() bool {
	return s.passed != square.PreBegin
}

// Pinned reports whether an otherwise-available en-passant capture is
// illegal because it would horizontally discover check on the
// capturing side's own king.
func (s State) Pinned() bool {
	return s.Exists() && s.pinned
}

// SetPinned marks the current en-passant target as pinned.
func (s *State) SetPinned() {
	s.pinned = true
}

// Passed returns the skipped square itself.
func (s State) Passed() square.Square {
	return s.passed
}

// PawnSquare returns the square the passed pawn now stands on:
// passed ⊕ 8.
func (s State) PawnSquare() square.Square {
	return square.Square(int(s.passed) ^ 8)
}

// FromSquare returns the square the passed pawn advanced from:
// passed ⊕ 24.
func (s State) FromSquare() square.Square {
	return square.Square(int(s.passed) ^ 24)
}
