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
	"fmt"
	"strconv"
	"strings"

	"github.com/corvid-chess/oracle/pkg/castling"
	"github.com/corvid-chess/oracle/pkg/enpassant"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// StartingFEN is the Forsyth-Edwards record of the standard starting
// position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN parses a FEN string into a newly allocated Position. Any
// structural deviation returns a nil Position and an error; no
// existing Position is touched either way.
func LoadFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("position: LoadFEN: want 6 space-separated fields, got %d", len(fields))
	}

	p := New()
	if err := p.loadPlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.toMove = piece.White
	case "b":
		p.toMove = piece.Black
	default:
		return nil, fmt.Errorf("position: LoadFEN: invalid active color %q", fields[1])
	}

	if err := loadCastling(fields[2]); err != nil {
		return nil, err
	}
	p.castle = castling.FromFEN(fields[2])

	ep, err := p.loadEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	p.enPassant = ep
	if ep.Exists() {
		p.checkEnPassantPin(ep.Passed(), p.toMove.Other())
	}
	p.recomputeEnPassantNeighbors(ep)

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("position: LoadFEN: invalid half-move clock %q", fields[4])
	}
	p.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return nil, fmt.Errorf("position: LoadFEN: invalid full-move number %q", fields[5])
	}
	p.fullMoveNumber = fullMove

	p.recomputeDerived()
	return p, nil
}

func (p *Position) loadPlacement(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return fmt.Errorf("position: LoadFEN: piece placement needs 8 ranks, got %d", len(rows))
	}

	for i, row := range rows {
		rank := square.Rank(7 - i)
		file := square.FileA
		for _, r := range row {
			if file > square.FileH {
				return fmt.Errorf("position: LoadFEN: rank %q overruns 8 files", row)
			}
			switch {
			case r >= '1' && r <= '8':
				file += square.File(r - '0')
			default:
				code, ok := piece.NewFromFEN(byte(r))
				if !ok {
					return fmt.Errorf("position: LoadFEN: invalid piece glyph %q", r)
				}
				s := square.From(file, rank)
				if !p.Place(code, s) {
					return fmt.Errorf("position: LoadFEN: illegal placement of %q at %s", r, s)
				}
				file++
			}
		}
		if file != square.FileH+1 {
			return fmt.Errorf("position: LoadFEN: rank %q does not total 8 files", row)
		}
	}
	return nil
}

func loadCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, r := range field {
		switch r {
		case 'K', 'Q', 'k', 'q':
		default:
			return fmt.Errorf("position: LoadFEN: invalid castling availability %q", field)
		}
	}
	return nil
}

func (p *Position) loadEnPassant(field string) (enpassant.State, error) {
	if field == "-" {
		return enpassant.None, nil
	}

	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return enpassant.None, fmt.Errorf("position: LoadFEN: invalid en-passant square %q", field)
	}
	s := square.New(field)

	switch {
	case p.toMove == piece.Black && s.Rank() == square.Rank3:
		pawn := square.Square(int(s) + 8)
		if p.board[pawn].Code != piece.WhitePawn {
			return enpassant.None, fmt.Errorf("position: LoadFEN: no white pawn behind en-passant square %q", field)
		}
	case p.toMove == piece.White && s.Rank() == square.Rank6:
		pawn := square.Square(int(s) - 8)
		if p.board[pawn].Code != piece.BlackPawn {
			return enpassant.None, fmt.Errorf("position: LoadFEN: no black pawn behind en-passant square %q", field)
		}
	default:
		return enpassant.None, fmt.Errorf("position: LoadFEN: en-passant square %q inconsistent with side to move", field)
	}

	return enpassant.New(s), nil
}

// FEN renders the position's Forsyth-Edwards record. Loading the
// result of a prior FEN() call always reproduces the same position.
func (p *Position) FEN() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			code := p.board[s].Code
			if code.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(code.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.toMove.String())

	b.WriteByte(' ')
	b.WriteString(p.castle.String())

	b.WriteByte(' ')
	if p.enPassant.Exists() {
		b.WriteString(p.enPassant.Passed().String())
	} else {
		b.WriteByte('-')
	}

	fmt.Fprintf(&b, " %d %d", p.halfMoveClock, p.fullMoveNumber)

	return b.String()
}
