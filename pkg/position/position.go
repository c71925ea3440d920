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

// Package position implements the chessboard container every other
// collaborator in this module reads or drives: per-code piece
// bit-boards, a per-square mailbox, incrementally-consistent
// attacker/pin/defender overlays, castling and en-passant state, and
// the legal move generator built on top of them.
package position

import (
	"github.com/corvid-chess/oracle/pkg/bitboard"
	"github.com/corvid-chess/oracle/pkg/castling"
	"github.com/corvid-chess/oracle/pkg/countboard"
	"github.com/corvid-chess/oracle/pkg/enpassant"
	"github.com/corvid-chess/oracle/pkg/geometry"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Position is the mutable state of a single chess game at one point
// in time: the board itself plus every index the move generator
// needs, kept consistent by Place, the single mutation funnel every
// other mutator (Execute, LoadFEN, SkipMove, SwapColors,
// InitialPosition) composes.
type Position struct {
	pieces [piece.N]bitboard.Board
	board  [square.N]piece.Piece

	kings [piece.NColor]square.Square

	attackers [piece.NColor]bitboard.Board
	pinning   [piece.NColor]bitboard.Board
	defended  [piece.NColor]countboard.Board

	// kingBattery[c] counts c's sliders that attack the enemy king only
	// through another c slider of the same mover class standing in
	// front of them on the same ray; see DoubleCheck.
	kingBattery [piece.NColor]int

	toMove      piece.Color
	castle      castling.Flags
	enPassant   enpassant.State
	doubleCheck bool

	halfMoveClock  int
	fullMoveNumber int
}

// New returns an empty Position: no pieces, the zero Color (Black) to
// move, move counters at their initial values. Equivalent to Clear on a zero
// Position.
func New() *Position {
	p := &Position{}
	p.Clear()
	return p
}

// InitialPosition returns a Position set up for the start of a game.
func InitialPosition() *Position {
	p := New()
	p.setupInitial()
	return p
}

// Clone returns an independent copy of p. Every field of Position is a
// fixed-size array or value type, so a plain struct copy already
// yields a full deep copy; callers that need to probe a hypothetical
// move (check/mate detection, notation rendering) should clone rather
// than Execute and unwind.
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// Clear zeros every bit-board and resets the move counters
// (full-move to 1, half-move to 0), but leaves the side to move
// unchanged.
func (p *Position) Clear() {
	for i := range p.pieces {
		p.pieces[i] = bitboard.Empty
	}
	for i := range p.board {
		p.board[i] = piece.Piece{}
	}
	p.kings = [piece.NColor]square.Square{square.PreBegin, square.PreBegin}
	p.attackers = [piece.NColor]bitboard.Board{}
	p.pinning = [piece.NColor]bitboard.Board{}
	p.defended = [piece.NColor]countboard.Board{}
	p.kingBattery = [piece.NColor]int{}
	p.castle = castling.None
	p.enPassant = enpassant.None
	p.doubleCheck = false
	p.halfMoveClock = 0
	p.fullMoveNumber = 1
}

func (p *Position) setupInitial() {
	p.Clear()
	p.toMove = piece.White

	backRank := []piece.Type{
		piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
		piece.King, piece.Bishop, piece.Knight, piece.Rook,
	}
	for file := square.FileA; file <= square.FileH; file++ {
		p.Place(piece.New(backRank[file], piece.White), square.From(file, square.Rank1))
		p.Place(piece.New(piece.Pawn, piece.White), square.From(file, square.Rank2))
		p.Place(piece.New(piece.Pawn, piece.Black), square.From(file, square.Rank7))
		p.Place(piece.New(backRank[file], piece.Black), square.From(file, square.Rank8))
	}
	p.castle = castling.FromFEN("KQkq")
}

// ToMove returns the side to move.
func (p *Position) ToMove() piece.Color {
	return p.toMove
}

// HalfMoveClock returns the current half-move (50-move rule) clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the current, 1-based full-move number.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// CastleFlags returns the current castling/in-check record.
func (p *Position) CastleFlags() castling.Flags {
	return p.castle
}

// EnPassant returns the current en-passant record.
func (p *Position) EnPassant() enpassant.State {
	return p.enPassant
}

// KingSquare returns the square of c's king, or square.PreBegin if c
// has no king on the board.
func (p *Position) KingSquare(c piece.Color) square.Square {
	return p.kings[c]
}

// At returns the piece (possibly none) on square s.
func (p *Position) At(s square.Square) piece.Piece {
	return p.board[s]
}

// PieceBoard returns the bit-board of every square occupied by code.
func (p *Position) PieceBoard(code piece.Code) bitboard.Board {
	return p.pieces[code]
}

// ColorBoard returns the union of every bit-board belonging to c.
func (p *Position) ColorBoard(c piece.Color) bitboard.Board {
	var b bitboard.Board
	for _, t := range []piece.Type{piece.Pawn, piece.Knight, piece.Bishop, piece.Rook, piece.Queen, piece.King} {
		b |= p.pieces[piece.New(t, c)]
	}
	return b
}

// Occupied returns every occupied square on the board.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBoard(piece.White) | p.ColorBoard(piece.Black)
}

// InCheck reports whether c is currently in check, from the cached
// CastleFlags bit.
func (p *Position) InCheck(c piece.Color) bool {
	return p.castle.InCheck(c)
}

// DoubleCheck reports whether the side to move is in double check.
// Meaningful only when InCheck(ToMove()) is true.
func (p *Position) DoubleCheck() bool {
	return p.doubleCheck
}

// Attackers returns c's attacker overlay: the union of rays from c's
// king toward every aligned enemy slider that checks or x-rays it.
func (p *Position) Attackers(c piece.Color) bitboard.Board {
	return p.attackers[c]
}

// Pinning returns c's pin overlay, a subset of Attackers(c): the full
// ray, from beside c's king up to and including the pinning slider, of
// every line on which exactly one piece is pinned against that king.
func (p *Position) Pinning(c piece.Color) bitboard.Board {
	return p.pinning[c]
}

// Defended returns c's defender CountBoard.
func (p *Position) Defended(c piece.Color) *countboard.Board {
	return &p.defended[c]
}

// Place sets the occupant of square s to code (piece.NoCode to empty
// the square) and brings every derived index — attacker and pin
// overlays for both colors, defender counts, king-battery counts, and
// the cached in-check/double-check bits — back into consistency in
// the same call. Returns false, leaving the position unchanged, if
// code would violate an invariant (a pawn on rank 1 or 8, or a second
// king of its color).
func (p *Position) Place(code piece.Code, s square.Square) bool {
	if !code.IsNone() {
		if code.Type() == piece.Pawn && (s.Rank() == square.Rank1 || s.Rank() == square.Rank8) {
			return false
		}
		if code.Type() == piece.King {
			existing := p.kings[code.Color()]
			if existing != square.PreBegin && existing != s {
				return false
			}
		}
	}

	old := p.board[s]
	if !old.IsNone() {
		p.pieces[old.Code].Unset(s)
		if old.Code.Type() == piece.King {
			p.kings[old.Code.Color()] = square.PreBegin
		}
		p.onVacate(old.Code, s)
	}

	p.board[s] = piece.Piece{Code: code}

	if !code.IsNone() {
		p.pieces[code].Set(s)
		if code.Type() == piece.King {
			p.kings[code.Color()] = s
		}
		p.onArrive(code, s)
	}

	if p.enPassant.Exists() && s == p.enPassant.PawnSquare() {
		p.enPassant = enpassant.None
	}

	p.recomputePawnFlagsAround(s)
	p.recomputeDerived()
	return true
}

func (p *Position) onVacate(code piece.Code, s square.Square) {
	switch {
	case code.Type() == piece.King:
		p.attackers[code.Color()] = bitboard.Empty
		p.pinning[code.Color()] = bitboard.Empty
		if homeSquareOf(piece.King, code.Color()) == s {
			p.castle.MarkKingMoved(code.Color())
		}
	case code.Type() == piece.Rook:
		markRookVacated(&p.castle, code.Color(), s)
	}
}

func (p *Position) onArrive(code piece.Code, s square.Square) {
	switch code.Type() {
	case piece.King:
		if homeSquareOf(piece.King, code.Color()) == s {
			p.castle.ClearKingMoved(code.Color())
		} else {
			p.castle.MarkKingMoved(code.Color())
		}
	case piece.Rook:
		markRookArrived(&p.castle, code.Color(), s)
	}
}

func homeSquareOf(t piece.Type, c piece.Color) square.Square {
	rank := square.Rank1
	if c == piece.Black {
		rank = square.Rank8
	}
	switch t {
	case piece.King:
		return square.From(square.FileE, rank)
	}
	panic("position: homeSquareOf: unsupported type")
}

func markRookVacated(f *castling.Flags, c piece.Color, s square.Square) {
	rank := square.Rank1
	if c == piece.Black {
		rank = square.Rank8
	}
	switch {
	case s == square.From(square.FileA, rank):
		f.MarkQueenRookMoved(c)
	case s == square.From(square.FileH, rank):
		f.MarkKingRookMoved(c)
	}
}

func markRookArrived(f *castling.Flags, c piece.Color, s square.Square) {
	rank := square.Rank1
	if c == piece.Black {
		rank = square.Rank8
	}
	switch {
	case s == square.From(square.FileA, rank):
		f.ClearQueenRookMoved(c)
	case s == square.From(square.FileH, rank):
		f.ClearKingRookMoved(c)
	}
}

// recomputeDerived rebuilds every index Place owns, from the primary
// state (bit-boards + mailbox) it has already updated. It is the
// whole position's single source of truth for attacker, pin,
// defender, battery, check, and double-check state — nothing else in
// this package recomputes these from scratch.
func (p *Position) recomputeDerived() {
	p.recomputeAttackersAndPinning(piece.White)
	p.recomputeAttackersAndPinning(piece.Black)
	p.recomputeDefended(piece.White)
	p.recomputeDefended(piece.Black)
	p.kingBattery[piece.White] = p.recomputeKingBattery(piece.White)
	p.kingBattery[piece.Black] = p.recomputeKingBattery(piece.Black)

	whiteInCheck := p.kings[piece.White] != square.PreBegin && p.defended[piece.Black].Count(p.kings[piece.White]) > 0
	blackInCheck := p.kings[piece.Black] != square.PreBegin && p.defended[piece.White].Count(p.kings[piece.Black]) > 0
	p.castle.SetInCheck(piece.White, whiteInCheck)
	p.castle.SetInCheck(piece.Black, blackInCheck)

	us := p.toMove
	them := us.Other()
	if p.castle.InCheck(us) && p.kings[us] != square.PreBegin {
		count := p.defended[them].Count(p.kings[us]) - p.kingBattery[them]
		p.doubleCheck = count > 1
	} else {
		p.doubleCheck = false
	}
}

// recomputeAttackersAndPinning rebuilds c's attacker and pin overlays
// by walking, in each of the eight directions from c's king, to find
// the first occupied square (the candidate pinned piece if it is
// c's own) and, past it, the next occupied square. See package
// geometry for ray and direction tables.
func (p *Position) recomputeAttackersAndPinning(c piece.Color) {
	king := p.kings[c]
	if king == square.PreBegin {
		p.attackers[c] = bitboard.Empty
		p.pinning[c] = bitboard.Empty
		return
	}

	them := c.Other()
	var att, pin bitboard.Board

	for d := geometry.Dir(0); d < geometry.NDirections; d++ {
		ray := geometry.Ray[king][d]
		if ray.IsEmpty() {
			continue
		}

		flags := d.MoverFlags()
		offset := d.Offset()
		cur := king
		var segment bitboard.Board
		var candidate square.Square = square.PreBegin

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

			occ := p.board[ns]
			if occ.IsNone() {
				segment.Set(ns)
				continue
			}

			isMatchingEnemySlider := occ.Code.Color() == them &&
				occ.Code.Type().IsSlider() &&
				occ.Code.Type().MoverFlags()&flags != 0

			if candidate == square.PreBegin {
				if isMatchingEnemySlider {
					segment.Set(ns)
					att |= segment
					break
				}
				if occ.Code.Color() == c {
					candidate = ns
					segment.Set(ns)
					continue
				}
				// enemy piece that does not check along this ray: fully blocked
				break
			}

			// candidate already found; this is the second occupied square
			if isMatchingEnemySlider {
				segment.Set(ns)
				att |= segment
				pin |= segment
			}
			break
		}
	}

	p.attackers[c] = att
	p.pinning[c] = pin
}

// recomputeDefended rebuilds c's defender CountBoard from scratch by
// summing every c piece's defendables set.
func (p *Position) recomputeDefended(c piece.Color) {
	var cb countboard.Board
	board := p.ColorBoard(c)
	for board != bitboard.Empty {
		s := board.Pop()
		code := p.board[s].Code
		cb.Add(p.defendables(code, s))
	}
	p.defended[c] = cb
}

// recomputeKingBattery counts c's sliders that attack the enemy king
// only through another c slider of the same mover class standing
// between them and the enemy king.
func (p *Position) recomputeKingBattery(c piece.Color) int {
	enemyKing := p.kings[c.Other()]
	if enemyKing == square.PreBegin {
		return 0
	}

	count := 0
	for d := geometry.Dir(0); d < geometry.NDirections; d++ {
		ray := geometry.Ray[enemyKing][d]
		if ray.IsEmpty() {
			continue
		}
		flags := d.MoverFlags()
		offset := d.Offset()
		cur := enemyKing
		matching := 0
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

			occ := p.board[ns]
			if occ.IsNone() {
				continue
			}
			if occ.Code.Color() == c && occ.Code.Type().MoverFlags()&flags != 0 {
				matching++
				continue
			}
			break
		}
		if matching > 1 {
			count += matching - 1
		}
	}
	return count
}

// defendables returns the set of squares code at s attacks or
// defends: for a pawn, its two forward-diagonal squares; for a
// knight or king, its precomputed leap pattern; for a slider, every
// ray it moves along, continuing transparently through a friendly
// slider of the same mover class (a battery) rather than stopping
// there.
func (p *Position) defendables(code piece.Code, s square.Square) bitboard.Board {
	t := code.Type()
	switch t {
	case piece.Pawn:
		c := code.Color()
		forward := c.Forward()
		var diagA, diagB int
		if forward > 0 {
			diagA, diagB = 9, 7
		} else {
			diagA, diagB = -9, -7
		}
		origin := bitboard.Of(s)
		return origin.Shift(diagA) | origin.Shift(diagB)
	case piece.Knight, piece.King:
		return geometry.Candidates(t, s)
	default:
		var result bitboard.Board
		flags := t.MoverFlags()
		for d := geometry.Dir(0); d < geometry.NDirections; d++ {
			if d.MoverFlags()&flags == 0 {
				continue
			}
			result |= p.walkDefended(s, d, code.Color())
		}
		return result
	}
}

func (p *Position) walkDefended(s square.Square, d geometry.Dir, ownColor piece.Color) bitboard.Board {
	ray := geometry.Ray[s][d]
	if ray.IsEmpty() {
		return bitboard.Empty
	}

	offset := d.Offset()
	flags := d.MoverFlags()
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

		occ := p.board[ns]
		if occ.IsNone() {
			continue
		}
		if occ.Code.Color() == ownColor && occ.Code.Type().MoverFlags()&flags != 0 {
			continue
		}
		break
	}
	return result
}

func (p *Position) recomputePawnFlagsAround(s square.Square) {
	for _, c := range []piece.Color{piece.White, piece.Black} {
		for steps := 1; steps <= 2; steps++ {
			back := square.Square(int(s) - steps*c.Forward())
			if back < square.A1 || back > square.H8 {
				continue
			}
			if back.Column() != s.Column() {
				continue
			}
			occ := p.board[back]
			if occ.IsNone() || occ.Code.Type() != piece.Pawn || occ.Code.Color() != c {
				continue
			}
			p.recomputeOnePawnFlags(back)
		}
	}

	// A pawn diagonally adjacent to s may gain or lose a capture target
	// when s's occupant changes, even though s itself is never that
	// pawn's own square.
	for _, delta := range [4]int{9, 7, -7, -9} {
		n := int(s) - delta
		if n < int(square.A1) || n > int(square.H8) {
			continue
		}
		ns := square.Square(n)
		colDelta := ns.Column() - s.Column()
		if colDelta != 1 && colDelta != -1 {
			continue
		}
		if occ := p.board[ns]; !occ.IsNone() && occ.Code.Type() == piece.Pawn {
			p.recomputeOnePawnFlags(ns)
		}
	}

	if occ := p.board[s]; !occ.IsNone() && occ.Code.Type() == piece.Pawn {
		p.recomputeOnePawnFlags(s)
	}
}

func (p *Position) recomputeOnePawnFlags(s square.Square) {
	occ := &p.board[s]
	c := occ.Code.Color()
	forward := c.Forward()

	one := square.Square(int(s) + forward)
	occ.Flags.IsNotBlocked = p.board[one].IsNone()

	startRank := square.Rank2
	if c == piece.Black {
		startRank = square.Rank7
	}
	if s.Rank() == startRank && occ.Flags.IsNotBlocked {
		two := square.Square(int(s) + 2*forward)
		occ.Flags.CanMoveTwo = p.board[two].IsNone()
	} else {
		occ.Flags.CanMoveTwo = false
	}

	origin := bitboard.Of(s)
	var diagA, diagB int
	if forward > 0 {
		diagA, diagB = 9, 7
	} else {
		diagA, diagB = -9, -7
	}

	takeA := origin.Shift(diagA)
	takeB := origin.Shift(diagB)
	occ.Flags.CanTakeKingSide = p.canPawnTake(c, takeA)
	occ.Flags.CanTakeQueenSide = p.canPawnTake(c, takeB)
}

// recomputeEnPassantNeighbors refreshes the capture-side flags of any
// pawn standing horizontally adjacent to e's pawn square, since a pawn
// only gains or loses an en-passant option from a neighbor's two-square
// push or from that option expiring — neither changes its own square.
func (p *Position) recomputeEnPassantNeighbors(e enpassant.State) {
	if !e.Exists() {
		return
	}
	pawnSquare := e.PawnSquare()
	for _, df := range [2]int{-1, 1} {
		n := int(pawnSquare) + df
		if n < int(square.A1) || n > int(square.H8) {
			continue
		}
		ns := square.Square(n)
		if ns.Row() != pawnSquare.Row() {
			continue
		}
		if occ := p.board[ns]; !occ.IsNone() && occ.Code.Type() == piece.Pawn {
			p.recomputeOnePawnFlags(ns)
		}
	}
}

func (p *Position) canPawnTake(c piece.Color, target bitboard.Board) bool {
	if target.IsEmpty() {
		return false
	}
	ts := target.FirstOne()
	if p.enPassant.Exists() && !p.enPassant.Pinned() && ts == p.enPassant.Passed() &&
		p.board[p.enPassant.PawnSquare()].Code == piece.New(piece.Pawn, c.Other()) {
		return true
	}
	occ := p.board[ts]
	return !occ.IsNone() && occ.Code.Color() == c.Other()
}

// String renders the position as an 8x8 grid, rank 8 first.
func (p *Position) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := square.From(square.File(file), square.Rank(rank))
			s += p.board[sq].Code.String()
			if file < 7 {
				s += " "
			}
		}
		s += "\n"
	}
	return s
}
