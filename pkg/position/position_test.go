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

package position_test

import (
	"strings"
	"testing"

	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/move"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

func TestInitialPositionFEN(t *testing.T) {
	p := position.InitialPosition()
	if got := p.FEN(); got != position.StartingFEN {
		t.Errorf("FEN() = %q, want %q", got, position.StartingFEN)
	}
}

func TestInitialPositionMoveCountIsTwenty(t *testing.T) {
	p := position.InitialPosition()
	total := 0
	for s := square.A1; s <= square.H8; s++ {
		occ := p.At(s)
		if occ.IsNone() || occ.Code.Color() != p.ToMove() {
			continue
		}
		total += p.Moves(s).Count()
	}
	if total != 20 {
		t.Errorf("total legal moves from the initial position = %d, want 20", total)
	}
}

func TestLoadFENRoundTrip(t *testing.T) {
	p, err := position.LoadFEN(position.StartingFEN)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if got := p.FEN(); got != position.StartingFEN {
		t.Errorf("FEN() = %q, want %q", got, position.StartingFEN)
	}
}

func TestLoadFENRejectsWrongFieldCount(t *testing.T) {
	if _, err := position.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"); err == nil {
		t.Errorf("LoadFEN with 5 fields should have failed")
	}
}

func TestLoadFENRejectsBadPlacement(t *testing.T) {
	if _, err := position.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1"); err == nil {
		t.Errorf("LoadFEN with a short rank should have failed")
	}
}

func TestExecuteSequenceMatchesFENAfterEachPly(t *testing.T) {
	p := position.InitialPosition()

	p.Execute(move.New(square.E2, square.E4))
	if fen := p.FEN(); !strings.HasSuffix(fen, "e3 0 1") {
		t.Errorf("after e2e4, FEN() = %q, want suffix %q", fen, "e3 0 1")
	}

	p.Execute(move.New(square.C7, square.C5))
	if fen := p.FEN(); !strings.HasSuffix(fen, "c6 0 2") {
		t.Errorf("after c7c5, FEN() = %q, want suffix %q", fen, "c6 0 2")
	}

	p.Execute(move.New(square.G1, square.F3))
	if p.HalfMoveClock() != 1 {
		t.Errorf("after g1f3, HalfMoveClock() = %d, want 1", p.HalfMoveClock())
	}
	if p.EnPassant().Exists() {
		t.Errorf("after g1f3, en-passant target should be gone")
	}
}

func TestPlaceRejectsPawnOnBackRank(t *testing.T) {
	p := position.New()
	if p.Place(piece.WhitePawn, square.E1) {
		t.Errorf("Place should refuse a pawn on rank 1")
	}
	if p.Place(piece.BlackPawn, square.A8) {
		t.Errorf("Place should refuse a pawn on rank 8")
	}
}

func TestPlaceRejectsSecondKing(t *testing.T) {
	p := position.New()
	if !p.Place(piece.WhiteKing, square.E1) {
		t.Fatalf("first white king placement should succeed")
	}
	if p.Place(piece.WhiteKing, square.E4) {
		t.Errorf("a second white king should be refused")
	}
	if p.KingSquare(piece.White) != square.E1 {
		t.Errorf("KingSquare(White) = %v, want E1 (unchanged)", p.KingSquare(piece.White))
	}
}

func TestPlaceAllowsKingReplacingItself(t *testing.T) {
	p := position.New()
	p.Place(piece.WhiteKing, square.E1)
	if !p.Place(piece.WhiteKing, square.E1) {
		t.Errorf("re-placing the king on its own square should succeed")
	}
}

func TestCheckDetection(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4Q1K1 b - - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if !p.InCheck(piece.Black) {
		t.Errorf("black king on an open file from a queen should be in check")
	}
	if p.DoubleCheck() {
		t.Errorf("a single queen cannot deliver double check")
	}
}

func TestKingCannotMoveIntoAttackedSquares(t *testing.T) {
	fen := "4k3/8/8/8/3Q4/8/8/4K3 b - - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if p.InCheck(piece.Black) {
		t.Fatalf("black king on e8 is not attacked by a queen on d4")
	}
	got := p.Moves(square.E8)
	want := bitboard.Of(square.E7) | bitboard.Of(square.F7) | bitboard.Of(square.F8)
	if got != want {
		t.Errorf("Moves(E8) = %v, want %v (d7/d8 are covered by the queen's file)", got, want)
	}
}

func TestPinRestrictsRookToTheKingFile(t *testing.T) {
	fen := "4r3/8/8/8/4R3/8/8/4K3 w - - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if p.InCheck(piece.White) {
		t.Fatalf("white king is shielded by its own rook, should not be in check")
	}
	got := p.Moves(square.E4)
	want := bitboard.Of(square.E2) | bitboard.Of(square.E3) |
		bitboard.Of(square.E5) | bitboard.Of(square.E6) |
		bitboard.Of(square.E7) | bitboard.Of(square.E8)
	if got != want {
		t.Errorf("Moves(E4) for a pinned rook = %v, want %v (e-file only)", got, want)
	}
}

func TestCastlingTargetsOfferedWhenClear(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	got := p.Moves(square.E1)
	if !got.IsSet(square.G1) {
		t.Errorf("kingside castling target g1 should be offered")
	}
	if !got.IsSet(square.C1) {
		t.Errorf("queenside castling target c1 should be offered")
	}
}

func TestCastlingWithdrawnWhenPathAttacked(t *testing.T) {
	fen := "4k3/8/8/8/8/5r2/8/R3K2R w KQ - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	got := p.Moves(square.E1)
	if got.IsSet(square.G1) {
		t.Errorf("kingside castling should be withdrawn: f1 is attacked by the rook on f3")
	}
}

func TestEnPassantCaptureIsOffered(t *testing.T) {
	fen := "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	got := p.Moves(square.E5)
	want := bitboard.Of(square.E6) | bitboard.Of(square.D6)
	if got != want {
		t.Errorf("Moves(E5) = %v, want %v (push plus en-passant capture)", got, want)
	}

	if !p.Legal(move.New(square.E5, square.D6)) {
		t.Fatalf("e5xd6 en passant should be legal")
	}
	p.Execute(move.New(square.E5, square.D6))
	if !p.At(square.D5).Code.IsNone() {
		t.Errorf("the captured pawn on d5 should have been removed")
	}
	if p.At(square.D6).Code != piece.WhitePawn {
		t.Errorf("the capturing pawn should have landed on d6")
	}
}

func TestPromotionExecutesAndOffersAllFourTypes(t *testing.T) {
	fen := "8/4P3/8/8/4k3/8/8/4K3 w - - 0 1"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	for _, promo := range []piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight} {
		if !p.Legal(move.NewPromotion(square.E7, square.E8, promo)) {
			t.Errorf("promotion to %v should be legal", promo)
		}
	}
	if p.Legal(move.NewPromotion(square.E7, square.E8, piece.King)) {
		t.Errorf("promotion to king should never be legal")
	}
	p.Execute(move.NewPromotion(square.E7, square.E8, piece.Queen))
	if p.At(square.E8).Code != piece.WhiteQueen {
		t.Errorf("after promotion, e8 should hold a white queen")
	}
}

func TestFiftyMoveRuleSignalsAtOneHundred(t *testing.T) {
	fen := "7k/8/8/8/8/8/8/K6R w - - 99 50"
	p, err := position.LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if hit := p.Execute(move.New(square.H1, square.H2)); !hit {
		t.Errorf("half-move clock reaching 100 should be signalled")
	}
	if p.HalfMoveClock() != 100 {
		t.Errorf("HalfMoveClock() = %d, want 100", p.HalfMoveClock())
	}
}

func TestSwapColorsIsAnInvolutionUpToFullMoveNumber(t *testing.T) {
	p, err := position.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10")
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	original := p.FEN()

	p.SwapColors()
	if p.FullMoveNumber() != 1 {
		t.Errorf("SwapColors should reset the full-move number to 1, got %d", p.FullMoveNumber())
	}
	p.SwapColors()

	fields := strings.Fields(p.FEN())
	origFields := strings.Fields(original)
	for i := 0; i < 4; i++ {
		if fields[i] != origFields[i] {
			t.Errorf("field %d after double SwapColors = %q, want %q", i, fields[i], origFields[i])
		}
	}
}

func TestSkipMoveAdvancesSideAndClearsEnPassant(t *testing.T) {
	p, err := position.LoadFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	p.SkipMove()
	if p.ToMove() != piece.Black {
		t.Errorf("SkipMove should advance the side to move")
	}
	if p.EnPassant().Exists() {
		t.Errorf("SkipMove should clear the en-passant target")
	}
}

func TestWidgetCodeRoundTrip(t *testing.T) {
	for _, c := range []piece.Code{
		piece.WhitePawn, piece.BlackKing, piece.WhiteQueen, piece.BlackKnight,
	} {
		p := position.New()
		p.Place(c, square.D4)
		w := p.WidgetCodeAt(square.D4)
		if got := position.CodeFromWidget(w); got != c {
			t.Errorf("CodeFromWidget(WidgetCodeAt(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestWidgetCodeEmptySquare(t *testing.T) {
	p := position.New()
	if got := p.WidgetCodeAt(square.A1); got != position.WidgetNone {
		t.Errorf("WidgetCodeAt on an empty square = %v, want WidgetNone", got)
	}
}
