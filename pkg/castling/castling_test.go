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

package castling_test

import (
	"testing"

	"github.com/corvid-chess/oracle/pkg/castling"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

func TestInitialFlagsAllowAllCastling(t *testing.T) {
	var f castling.Flags
	if !f.CanCastleKingside(piece.White) || !f.CanCastleQueenside(piece.White) {
		t.Errorf("white should be able to castle either side initially")
	}
	if !f.CanCastleKingside(piece.Black) || !f.CanCastleQueenside(piece.Black) {
		t.Errorf("black should be able to castle either side initially")
	}
	if f.String() != "KQkq" {
		t.Errorf("String() = %q, want KQkq", f.String())
	}
}

func TestMarkKingMovedDisablesBothSides(t *testing.T) {
	var f castling.Flags
	f.MarkKingMoved(piece.White)
	if f.CanCastleKingside(piece.White) || f.CanCastleQueenside(piece.White) {
		t.Errorf("moving the king should disable both sides of castling")
	}
	if !f.CanCastleKingside(piece.Black) || !f.CanCastleQueenside(piece.Black) {
		t.Errorf("black's rights should be untouched by white's king move")
	}
	if f.String() != "kq" {
		t.Errorf("String() = %q, want kq", f.String())
	}
}

func TestMarkRookMovedDisablesOneSide(t *testing.T) {
	var f castling.Flags
	f.MarkQueenRookMoved(piece.Black)
	if f.CanCastleQueenside(piece.Black) {
		t.Errorf("queenside rook moved, queenside castling should be disabled")
	}
	if !f.CanCastleKingside(piece.Black) {
		t.Errorf("kingside castling should remain available")
	}
}

func TestClearReEnablesCastling(t *testing.T) {
	var f castling.Flags
	f.MarkQueenRookMoved(piece.White)
	if f.CanCastleQueenside(piece.White) {
		t.Fatalf("expected queenside castling disabled after mark")
	}
	f.ClearQueenRookMoved(piece.White)
	if !f.CanCastleQueenside(piece.White) {
		t.Errorf("expected queenside castling re-enabled after clear")
	}
}

func TestHasMovedDispatchesBySquare(t *testing.T) {
	var f castling.Flags
	f.MarkKingRookMoved(piece.White)
	if !f.HasMoved(piece.WhiteRook, square.H1) {
		t.Errorf("HasMoved(WhiteRook, H1) = false, want true")
	}
	if f.HasMoved(piece.WhiteRook, square.A1) {
		t.Errorf("HasMoved(WhiteRook, A1) = true, want false")
	}
}

func TestHasMovedDefaultsFalseOnNonStartingSquare(t *testing.T) {
	var f castling.Flags
	if f.HasMoved(piece.WhiteRook, square.D4) {
		t.Errorf("HasMoved on a non-starting square should default to false")
	}
}

func TestInCheckCache(t *testing.T) {
	var f castling.Flags
	f.SetInCheck(piece.White, true)
	if !f.InCheck(piece.White) {
		t.Errorf("InCheck(White) = false, want true")
	}
	if f.InCheck(piece.Black) {
		t.Errorf("InCheck(Black) = true, want false")
	}
	f.SetInCheck(piece.White, false)
	if f.InCheck(piece.White) {
		t.Errorf("InCheck(White) = true after clearing, want false")
	}
}

func TestFromFEN(t *testing.T) {
	f := castling.FromFEN("Kq")
	if !f.CanCastleKingside(piece.White) {
		t.Errorf("expected white kingside available")
	}
	if f.CanCastleQueenside(piece.White) {
		t.Errorf("expected white queenside unavailable")
	}
	if f.CanCastleKingside(piece.Black) {
		t.Errorf("expected black kingside unavailable")
	}
	if !f.CanCastleQueenside(piece.Black) {
		t.Errorf("expected black queenside available")
	}
}

func TestFromFENDash(t *testing.T) {
	f := castling.FromFEN("-")
	if f.String() != "-" {
		t.Errorf("FromFEN(-).String() = %q, want -", f.String())
	}
}
