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

package position

import (
	"github.com/corvid-chess/oracle/pkg/castling"
	"github.com/corvid-chess/oracle/pkg/enpassant"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// SwapColors mirrors the board vertically (rank r <-> rank 9-r) and
// flips every piece's color, so that the side that was about to move
// sees the position as if it had always held the other color. Used
// by a board viewer to flip perspective without re-parsing a FEN.
// Resets the full-move number to 1, matching the original collaborator's
// contract (see DESIGN.md for this Open Question's resolution); the
// half-move clock and en-passant availability are preserved, mirrored.
func (p *Position) SwapColors() {
	var mirrored [square.N]piece.Code
	for s := square.A1; s <= square.H8; s++ {
		code := p.board[s].Code
		mirrored[mirror(s)] = flipColor(code)
	}

	ep := p.enPassant
	halfMove := p.halfMoveClock
	oldCastle := p.castle

	p.Clear()
	for s := square.A1; s <= square.H8; s++ {
		if !mirrored[s].IsNone() {
			p.Place(mirrored[s], s)
		}
	}

	p.toMove = p.toMove.Other()
	p.halfMoveClock = halfMove
	p.fullMoveNumber = 1

	// castling rights swap sides directly, independent of whatever
	// Place inferred from the mirrored board layout: a side's rights
	// depend on its own pre-swap history, not on piece placement alone.
	newCastle := castling.None
	if !oldCastle.CanCastleKingside(piece.Black) {
		newCastle.MarkKingRookMoved(piece.White)
	}
	if !oldCastle.CanCastleQueenside(piece.Black) {
		newCastle.MarkQueenRookMoved(piece.White)
	}
	if !oldCastle.CanCastleKingside(piece.White) {
		newCastle.MarkKingRookMoved(piece.Black)
	}
	if !oldCastle.CanCastleQueenside(piece.White) {
		newCastle.MarkQueenRookMoved(piece.Black)
	}
	p.castle = newCastle

	if ep.Exists() {
		p.enPassant = enpassant.New(mirror(ep.Passed()))
		p.checkEnPassantPin(p.enPassant.Passed(), p.toMove.Other())
		p.recomputeEnPassantNeighbors(p.enPassant)
	} else {
		p.enPassant = enpassant.None
	}

	p.recomputeDerived()
}

func mirror(s square.Square) square.Square {
	return square.From(s.File(), square.Rank(7-int(s.Rank())))
}

func flipColor(code piece.Code) piece.Code {
	if code.IsNone() {
		return piece.NoCode
	}
	return piece.New(code.Type(), code.Color().Other())
}

// SkipMove advances the side to move and the move counters without
// moving a piece, clears any en-passant target, and restamps the
// cached check bits. Used by analysis tooling to let a human pass.
// Returns true if the half-move clock has just reached 100.
func (p *Position) SkipMove() bool {
	old := p.enPassant
	p.enPassant = enpassant.None
	p.recomputeEnPassantNeighbors(old)
	p.halfMoveClock++
	if p.toMove == piece.Black {
		p.fullMoveNumber++
	}
	p.toMove = p.toMove.Other()
	p.recomputeDerived()
	return p.halfMoveClock >= 100
}
