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
	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/enpassant"
	"github.com/corvid-chess/oracle/pkg/geometry"
	"github.com/corvid-chess/oracle/pkg/move"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
	"github.com/corvid-chess/oracle/pkg/util"
)

// Moves returns the legal destination squares for the piece standing
// on index. Empty if index is empty.
func (p *Position) Moves(index square.Square) bitboard.Board {
	occ := p.board[index]
	if occ.IsNone() {
		return bitboard.Empty
	}

	code := occ.Code
	color := code.Color()
	us := p.toMove

	reachables := p.reachables(code, index)

	if color == us && p.castle.InCheck(us) {
		king := p.kings[us]
		if p.doubleCheck {
			if code.Type() != piece.King {
				return bitboard.Empty
			}
		} else {
			attackerSquares := p.checkerSquares(us)
			if code.Type() == piece.King {
				reachables = reachables.Without(p.kingForbiddenContinuation(king))
			} else {
				reachables &= attackerSquares
			}
		}
	}

	if p.pinning[color].IsSet(index) {
		d := geometry.DirectionFromTo[p.kings[color]][index]
		pinRay := geometry.Ray[p.kings[color]][d] & p.attackers[color]
		pinRay.Set(p.kings[color])
		reachables &= pinRay
	}

	if code.Type() == piece.King {
		reachables = reachables.Without(p.defended[color.Other()].Any())
	}

	return reachables
}

// reachables computes geometric reach minus own pieces (plus castling
// for a non-attacked king), before check/pin restriction.
func (p *Position) reachables(code piece.Code, index square.Square) bitboard.Board {
	color := code.Color()
	own := p.ColorBoard(color)
	occ := p.Occupied()

	switch code.Type() {
	case piece.Pawn:
		return p.pawnReach(code, index, occ)
	case piece.King:
		reach := geometry.Candidates(piece.King, index).Without(own)
		reach |= p.castlingTargets(color, index)
		return reach
	case piece.Knight:
		return geometry.Candidates(piece.Knight, index).Without(own)
	default:
		var reach bitboard.Board
		flags := code.Type().MoverFlags()
		for d := geometry.Dir(0); d < geometry.NDirections; d++ {
			if d.MoverFlags()&flags == 0 {
				continue
			}
			reach |= p.walkSlider(index, d, occ)
		}
		return reach.Without(own)
	}
}

func (p *Position) walkSlider(s square.Square, d geometry.Dir, occ bitboard.Board) bitboard.Board {
	ray := geometry.Ray[s][d]
	if ray.IsEmpty() {
		return bitboard.Empty
	}
	offset := d.Offset()
	cur := s
	var result bitboard.Board
	for {
		next := int(cur) + offset
		if next < 0 || next >= square.N {
			break
		}
		ns := square.Square(next)
		if !ray.IsSet(ns) {
			break
		}
		cur = ns
		result.Set(ns)
		if occ.IsSet(ns) {
			break
		}
	}
	return result
}

func (p *Position) pawnReach(code piece.Code, index square.Square, occ bitboard.Board) bitboard.Board {
	f := p.board[index].Flags
	var reach bitboard.Board
	forward := code.Color().Forward()
	if f.IsNotBlocked {
		reach.Set(square.Square(int(index) + forward))
		if f.CanMoveTwo {
			reach.Set(square.Square(int(index) + 2*forward))
		}
	}
	var diagA, diagB int
	if forward > 0 {
		diagA, diagB = 9, 7
	} else {
		diagA, diagB = -9, -7
	}
	origin := bitboard.Of(index)
	if f.CanTakeKingSide {
		reach |= origin.Shift(diagA)
	}
	if f.CanTakeQueenSide {
		reach |= origin.Shift(diagB)
	}
	return reach
}

func (p *Position) castlingTargets(color piece.Color, kingSquare square.Square) bitboard.Board {
	if p.castle.InCheck(color) {
		return bitboard.Empty
	}

	var targets bitboard.Board
	them := color.Other()
	rank := square.Rank1
	if color == piece.Black {
		rank = square.Rank8
	}
	home := square.From(square.FileE, rank)
	if kingSquare != home {
		return bitboard.Empty
	}

	if p.castle.CanCastleKingside(color) {
		f := square.From(square.FileF, rank)
		g := square.From(square.FileG, rank)
		if p.board[f].IsNone() && p.board[g].IsNone() &&
			p.defended[them].Count(home) == 0 &&
			p.defended[them].Count(f) == 0 &&
			p.defended[them].Count(g) == 0 {
			targets.Set(g)
		}
	}

	if p.castle.CanCastleQueenside(color) {
		d := square.From(square.FileD, rank)
		c := square.From(square.FileC, rank)
		b := square.From(square.FileB, rank)
		if p.board[d].IsNone() && p.board[c].IsNone() && p.board[b].IsNone() &&
			p.defended[them].Count(home) == 0 &&
			p.defended[them].Count(d) == 0 &&
			p.defended[them].Count(c) == 0 {
			targets.Set(c)
		}
	}

	return targets
}

// checkerSquares returns the ray from the single checking piece to
// us's king, inclusive of the attacker, exclusive of the king, used
// to restrict non-king moves to blocking or capturing the checker.
func (p *Position) checkerSquares(us piece.Color) bitboard.Board {
	king := p.kings[us]
	them := us.Other()

	if knights := p.pieces[piece.New(piece.Knight, them)] & geometry.Candidates(piece.Knight, king); knights != bitboard.Empty {
		return knights
	}

	forward := us.Forward()
	var diagA, diagB int
	if forward > 0 {
		diagA, diagB = 9, 7
	} else {
		diagA, diagB = -9, -7
	}
	origin := bitboard.Of(king)
	pawnAttack := origin.Shift(diagA) | origin.Shift(diagB)
	if pawns := p.pieces[piece.New(piece.Pawn, them)] & pawnAttack; pawns != bitboard.Empty {
		return pawns
	}

	// slider check: the attacker ray is exactly the direction in
	// attackers[us] that has zero own pieces between king and slider.
	for d := geometry.Dir(0); d < geometry.NDirections; d++ {
		ray := geometry.Ray[king][d] & p.attackers[us]
		if ray.IsEmpty() {
			continue
		}
		if ray&p.pinning[us] != bitboard.Empty {
			continue // this ray is a pin, not the check
		}
		return ray
	}
	return bitboard.Empty
}

// kingForbiddenContinuation returns, for a king currently in
// (non-double) check from a slider, the square one step further along
// the checking ray, which the king may not step onto even though it
// looks empty from the king's own square.
func (p *Position) kingForbiddenContinuation(king square.Square) bitboard.Board {
	for d := geometry.Dir(0); d < geometry.NDirections; d++ {
		ray := geometry.Ray[king][d] & p.attackers[p.toMove]
		if ray.IsEmpty() || ray&p.pinning[p.toMove] != bitboard.Empty {
			continue
		}
		if geometry.Ray[king][d.Opposite()].IsEmpty() {
			return bitboard.Empty
		}
		return bitboard.Of(square.Square(int(king) - d.Offset()))
	}
	return bitboard.Empty
}

// Legal reports whether m is a legal move in this position.
func (p *Position) Legal(m move.Move) bool {
	if m.From < square.A1 || m.From > square.H8 || m.To < square.A1 || m.To > square.H8 {
		return false
	}

	occ := p.board[m.From]
	if occ.IsNone() || occ.Code.Color() != p.toMove {
		return false
	}

	isPromotionRank := m.To.Rank() == square.Rank1 || m.To.Rank() == square.Rank8
	if occ.Code.Type() == piece.Pawn && isPromotionRank {
		switch m.Promotion {
		case piece.Queen, piece.Rook, piece.Bishop, piece.Knight:
		default:
			return false
		}
	} else if m.IsPromotion() {
		return false
	}

	return p.Moves(m.From).IsSet(m.To)
}

// Execute applies m, assumed legal, composing the place calls that
// empty the source square, fill the destination, move a castling
// rook, and remove an en-passant-captured pawn, then toggles the
// side to move and updates the move counters. Returns true if the
// half-move clock has just reached 100 (the 50-move rule).
func (p *Position) Execute(m move.Move) bool {
	occ := p.board[m.From]
	code := occ.Code
	color := code.Color()

	isPawnMove := code.Type() == piece.Pawn
	isCapture := !p.board[m.To].IsNone()
	isEnPassant := isPawnMove && p.enPassant.Exists() && m.To == p.enPassant.Passed()
	isCastle := code.Type() == piece.King && absDelta(m.From, m.To) == 2

	if isEnPassant {
		p.Place(piece.NoCode, p.enPassant.PawnSquare())
	}

	twoSquarePush := isPawnMove && absDelta(m.From, m.To) == 16

	p.Place(piece.NoCode, m.From)

	placed := code
	if m.IsPromotion() {
		placed = piece.New(m.Promotion, color)
	}
	p.Place(placed, m.To)

	if isCastle {
		rank := square.Rank1
		if color == piece.Black {
			rank = square.Rank8
		}
		if m.To.File() == square.FileG {
			p.Place(piece.NoCode, square.From(square.FileH, rank))
			p.Place(piece.New(piece.Rook, color), square.From(square.FileF, rank))
		} else {
			p.Place(piece.NoCode, square.From(square.FileA, rank))
			p.Place(piece.New(piece.Rook, color), square.From(square.FileD, rank))
		}
	}

	oldEnPassant := p.enPassant
	if twoSquarePush {
		passed := square.Square((int(m.From) + int(m.To)) / 2)
		p.enPassant = enpassant.New(passed)
		p.checkEnPassantPin(passed, color)
	} else {
		p.enPassant = enpassant.None
	}
	p.recomputeEnPassantNeighbors(oldEnPassant)
	p.recomputeEnPassantNeighbors(p.enPassant)

	if isPawnMove || isCapture {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if color == piece.Black {
		p.fullMoveNumber++
	}

	p.toMove = p.toMove.Other()
	p.recomputeDerived()

	return p.halfMoveClock >= 100
}

func absDelta(a, b square.Square) int {
	return util.Abs(int(a) - int(b))
}

// checkEnPassantPin marks the fresh en-passant target as pinned if
// capturing it would expose the capturing side's king on the rank
// the passed pawn and a potential capturing pawn share: the
// candidate own pawn adjacent to the passed pawn, an enemy rook or
// queen beyond it on the same rank, with the king on the far side.
func (p *Position) checkEnPassantPin(passed square.Square, movedColor piece.Color) {
	capturingColor := movedColor.Other()
	king := p.kings[capturingColor]
	pawnSquare := p.enPassant.PawnSquare()
	if king == square.PreBegin || king.Rank() != pawnSquare.Rank() {
		return
	}

	d := geometry.DirectionFromTo[king][pawnSquare]
	if d == geometry.NoDirection || !d.IsHorizontal() {
		return
	}

	ray := geometry.Ray[king][d]
	offset := d.Offset()
	cur := king
	sawOwnPawn := false
	for {
		next := int(cur) + offset
		if next < 0 || next >= square.N {
			break
		}
		ns := square.Square(next)
		if !ray.IsSet(ns) {
			break
		}
		cur = ns

		if ns == pawnSquare {
			continue // the passed-by pawn itself is transient, see through it
		}

		occ := p.board[ns]
		if occ.IsNone() {
			continue
		}

		if !sawOwnPawn {
			if occ.Code.Color() == capturingColor && occ.Code.Type() == piece.Pawn {
				sawOwnPawn = true
				continue
			}
			return
		}

		if occ.Code.Color() == movedColor &&
			(occ.Code.Type() == piece.Rook || occ.Code.Type() == piece.Queen) {
			p.enPassant.SetPinned()
		}
		return
	}
}
