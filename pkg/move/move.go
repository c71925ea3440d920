// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package move implements the Move value a caller hands to
// Position.Legal and Position.Execute: a source square, a
// destination square, and a promotion type that is meaningful only
// when the move is a pawn reaching the back rank.
package move

import (
	"fmt"

	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// Move is a candidate move: coordinates plus, for promotions, the
// chosen piece type. It carries no other context — legality and
// side-effects (captures, castling, en passant) are derived by
// Position from the board state, not stored on the move itself.
type Move struct {
	From      square.Square
	To        square.Square
	Promotion piece.Type
}

// New builds a non-promoting move.
func New(from, to square.Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion builds a promoting move.
func NewPromotion(from, to square.Square, promotion piece.Type) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsPromotion reports whether a promotion type is set.
func (m Move) IsPromotion() bool {
	return m.Promotion != piece.NoType
}

// String renders the move in long algebraic form, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.IsPromotion() {
		s += piece.New(m.Promotion, piece.Black).String()
	}
	return s
}
