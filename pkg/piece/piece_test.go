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

package piece_test

import (
	"testing"

	"github.com/corvid-chess/oracle/pkg/piece"
)

func TestColorForward(t *testing.T) {
	if got := piece.White.Forward(); got != 8 {
		t.Errorf("White.Forward() = %d, want 8", got)
	}
	if got := piece.Black.Forward(); got != -8 {
		t.Errorf("Black.Forward() = %d, want -8", got)
	}
}

func TestColorOther(t *testing.T) {
	if piece.White.Other() != piece.Black {
		t.Errorf("White.Other() != Black")
	}
	if piece.Black.Other() != piece.White {
		t.Errorf("Black.Other() != White")
	}
}

func TestTypeMoverFlags(t *testing.T) {
	cases := []struct {
		t     piece.Type
		slide bool
		flags piece.MoverFlags
	}{
		{piece.Pawn, false, 0},
		{piece.Knight, false, 0},
		{piece.King, false, 0},
		{piece.Bishop, true, piece.FlagBishop},
		{piece.Rook, true, piece.FlagRook},
		{piece.Queen, true, piece.FlagBishop | piece.FlagRook},
	}
	for _, c := range cases {
		if got := c.t.IsSlider(); got != c.slide {
			t.Errorf("%v.IsSlider() = %v, want %v", c.t, got, c.slide)
		}
		if got := c.t.MoverFlags(); got != c.flags {
			t.Errorf("%v.MoverFlags() = %v, want %v", c.t, got, c.flags)
		}
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for _, c := range []piece.Code{
		piece.WhitePawn, piece.WhiteKnight, piece.WhiteBishop,
		piece.WhiteRook, piece.WhiteQueen, piece.WhiteKing,
		piece.BlackPawn, piece.BlackKnight, piece.BlackBishop,
		piece.BlackRook, piece.BlackQueen, piece.BlackKing,
	} {
		rebuilt := piece.New(c.Type(), c.Color())
		if rebuilt != c {
			t.Errorf("New(%v.Type(), %v.Color()) = %v, want %v", c, c, rebuilt, c)
		}
	}
}

func TestCodeIsNone(t *testing.T) {
	if !piece.NoCode.IsNone() {
		t.Errorf("NoCode.IsNone() = false, want true")
	}
	if piece.WhiteKing.IsNone() {
		t.Errorf("WhiteKing.IsNone() = true, want false")
	}
}

func TestNewFromFEN(t *testing.T) {
	code, ok := piece.NewFromFEN('Q')
	if !ok || code != piece.WhiteQueen {
		t.Errorf("NewFromFEN('Q') = (%v, %v), want (%v, true)", code, ok, piece.WhiteQueen)
	}
	if _, ok := piece.NewFromFEN('x'); ok {
		t.Errorf("NewFromFEN('x') ok = true, want false")
	}
}

func TestPieceEqualIgnoresFlags(t *testing.T) {
	a := piece.Piece{Code: piece.WhitePawn, Flags: piece.Flags{CanMoveTwo: true}}
	b := piece.Piece{Code: piece.WhitePawn}
	if !a.Equal(b) {
		t.Errorf("pieces with equal Code but different Flags should be Equal")
	}
}
