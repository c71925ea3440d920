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

package pieceiter_test

import (
	"testing"

	"github.com/corvid-chess/oracle/pkg/pieceiter"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

func TestForwardWalkVisitsEveryWhitePawn(t *testing.T) {
	p := position.InitialPosition()
	mask := uint64(p.PieceBoard(piece.WhitePawn))

	var seen []square.Square
	it := pieceiter.New(p, mask)
	for it.Next() {
		seen = append(seen, it.Square())
		if it.Piece().Code != piece.WhitePawn {
			t.Fatalf("Piece() at %v = %v, want WhitePawn", it.Square(), it.Piece().Code)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("visited %d squares, want 8", len(seen))
	}
	if seen[0] != square.A2 || seen[7] != square.H2 {
		t.Errorf("forward walk should run a2..h2 in order, got %v first, %v last", seen[0], seen[7])
	}
}

func TestReverseWalkIsForwardReversed(t *testing.T) {
	p := position.InitialPosition()
	mask := uint64(p.PieceBoard(piece.WhitePawn))

	var forward []square.Square
	fit := pieceiter.New(p, mask)
	for fit.Next() {
		forward = append(forward, fit.Square())
	}

	var backward []square.Square
	bit := pieceiter.NewReverse(p, mask)
	for bit.Prev() {
		backward = append(backward, bit.Square())
	}

	if len(forward) != len(backward) {
		t.Fatalf("forward has %d squares, backward has %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Errorf("backward walk is not the reverse of forward at index %d", i)
		}
	}
}

func TestEmptyMaskNeverAdvances(t *testing.T) {
	p := position.New()
	it := pieceiter.New(p, 0)
	if it.Next() {
		t.Errorf("Next() on an empty mask should return false")
	}
}
