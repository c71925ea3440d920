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

// Package pgn reads PGN game archives in the background and replays
// their move text through a Position. Parsing runs on its own
// goroutine, handing games to the caller over a channel, so a large
// archive can be replayed one game at a time without first reading it
// all into memory.
package pgn

import (
	"fmt"
	"io"
	"strings"

	upstream "gopkg.in/freeeve/pgn.v1"

	"github.com/corvid-chess/oracle/pkg/move"
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/pieceiter"
	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Game is one parsed PGN game: its tag-pair metadata and the SAN move
// text of every ply, in play order.
type Game struct {
	Tags  map[string]string
	Moves []string
}

// ReadAsync starts a goroutine that scans every game out of r and
// sends them, one at a time, on the returned channel, so a caller can
// start replaying the first game while later ones are still being
// parsed. Both channels are closed once r is exhausted; a parse error
// is sent on errs at most once, after which games is closed without a
// further send.
func ReadAsync(r io.Reader) (<-chan *Game, <-chan error) {
	games := make(chan *Game)
	errs := make(chan error, 1)

	go func() {
		defer close(games)
		defer close(errs)

		scanner := upstream.NewPGNScanner(r)
		for scanner.Next() {
			g, err := scanner.Scan()
			if err != nil {
				errs <- fmt.Errorf("pgn: scan: %w", err)
				return
			}
			games <- &Game{Tags: g.Tags, Moves: g.Moves}
		}
	}()

	return games, errs
}

// Replay decodes each SAN token in moves against pos, in order,
// executing it as it is found and appending it to the returned slice.
// pos ends the call sitting on the position after the last move
// played; decoding stops at the first token that cannot be matched to
// exactly one legal move, returning the moves successfully played so
// far alongside the error.
func Replay(pos *position.Position, moves []string) ([]move.Move, error) {
	played := make([]move.Move, 0, len(moves))
	for _, token := range moves {
		m, err := decodeSAN(pos, token)
		if err != nil {
			return played, err
		}
		pos.Execute(m)
		played = append(played, m)
	}
	return played, nil
}

// ReplayGame replays g's move list from the standard starting
// position and returns the Position reached at the end of the game.
func ReplayGame(g *Game) (*position.Position, error) {
	pos := position.InitialPosition()
	if _, err := Replay(pos, g.Moves); err != nil {
		return nil, err
	}
	return pos, nil
}

func decodeSAN(pos *position.Position, token string) (move.Move, error) {
	clean := strings.TrimRight(token, "+#!?")
	color := pos.ToMove()

	switch clean {
	case "O-O", "0-0":
		king := pos.KingSquare(color)
		return move.New(king, square.From(square.FileG, king.Rank())), nil
	case "O-O-O", "0-0-0":
		king := pos.KingSquare(color)
		return move.New(king, square.From(square.FileC, king.Rank())), nil
	}

	promotion := piece.NoType
	if i := strings.IndexByte(clean, '='); i >= 0 {
		promotion = typeFromLetter(clean[i+1])
		clean = clean[:i]
	} else if i := strings.IndexByte(clean, '('); i >= 0 {
		promotion = typeFromLetter(clean[i+1])
		clean = clean[:i]
	}

	pieceType := piece.Pawn
	if len(clean) > 0 {
		if t := typeFromLetter(clean[0]); t != piece.NoType {
			pieceType = t
			clean = clean[1:]
		}
	}
	clean = strings.ReplaceAll(clean, "x", "")
	if len(clean) < 2 {
		return move.Move{}, fmt.Errorf("pgn: cannot parse move %q", token)
	}
	dest := clean[len(clean)-2:]
	hint := clean[:len(clean)-2]
	to := square.New(dest)

	mask := uint64(pos.PieceBoard(piece.New(pieceType, color)))

	from := square.PreBegin
	matches := 0
	origins := pieceiter.New(pos, mask)
	for origins.Next() {
		s := origins.Square()
		if !matchesHint(s, hint) {
			continue
		}
		if legalDestination(pos, s, to, promotion) {
			from = s
			matches++
		}
	}
	if matches != 1 {
		return move.Move{}, fmt.Errorf("pgn: move %q matched %d candidate origins, want 1", token, matches)
	}
	if promotion != piece.NoType {
		return move.NewPromotion(from, to, promotion), nil
	}
	return move.New(from, to), nil
}

func legalDestination(pos *position.Position, from, to square.Square, promotion piece.Type) bool {
	reach := pos.Moves(from)
	if !reach.IsSet(to) {
		return false
	}
	if promotion == piece.NoType {
		return true
	}
	return pos.Legal(move.NewPromotion(from, to, promotion))
}

func matchesHint(s square.Square, hint string) bool {
	for _, r := range hint {
		switch {
		case r >= 'a' && r <= 'h':
			if s.File() != square.File(int(r-'a')) {
				return false
			}
		case r >= '1' && r <= '8':
			if s.Rank() != square.Rank(int(r-'1')) {
				return false
			}
		}
	}
	return true
}

func typeFromLetter(b byte) piece.Type {
	switch b {
	case 'N':
		return piece.Knight
	case 'B':
		return piece.Bishop
	case 'R':
		return piece.Rook
	case 'Q':
		return piece.Queen
	case 'K':
		return piece.King
	default:
		return piece.NoType
	}
}
