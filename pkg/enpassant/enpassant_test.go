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

package enpassant_test

import (
	"testing"

	"github.com/corvid-chess/oracle/pkg/enpassant"
	"github.com/corvid-chess/oracle/pkg/square"
)

func TestNoneDoesNotExist(t *testing.T) {
	if enpassant.None.Exists() {
		t.Errorf("None.Exists() = true, want false")
	}
	if enpassant.None.Pinned() {
		t.Errorf("None.Pinned() = true, want false")
	}
}

func TestNewExists(t *testing.T) {
	s := enpassant.New(square.E6)
	if !s.Exists() {
		t.Errorf("New(E6).Exists() = false, want true")
	}
	if s.Passed() != square.E6 {
		t.Errorf("Passed() = %v, want E6", s.Passed())
	}
}

func TestPawnAndFromSquare(t *testing.T) {
	// White plays e2e4: passed square is e3, pawn lands on e4, came from e2.
	s := enpassant.New(square.E3)
	if got := s.PawnSquare(); got != square.E4 {
		t.Errorf("PawnSquare() = %v, want E4", got)
	}
	if got := s.FromSquare(); got != square.E2 {
		t.Errorf("FromSquare() = %v, want E2", got)
	}
}

func TestPawnAndFromSquareBlack(t *testing.T) {
	// Black plays e7e5: passed square is e6, pawn lands on e5, came from e7.
	s := enpassant.New(square.E6)
	if got := s.PawnSquare(); got != square.E5 {
		t.Errorf("PawnSquare() = %v, want E5", got)
	}
	if got := s.FromSquare(); got != square.E7 {
		t.Errorf("FromSquare() = %v, want E7", got)
	}
}

func TestSetPinnedRequiresExists(t *testing.T) {
	s := enpassant.New(square.E6)
	s.SetPinned()
	if !s.Pinned() {
		t.Errorf("Pinned() = false after SetPinned, want true")
	}

	none := enpassant.None
	none.SetPinned()
	if none.Pinned() {
		t.Errorf("Pinned() on a non-existent target should stay false")
	}
}
