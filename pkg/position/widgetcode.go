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
	"github.com/corvid-chess/oracle/pkg/piece"
	"github.com/corvid-chess/oracle/pkg/square"
)

// WidgetCode is the GUI collaborator's own 4-bit piece encoding,
// distinct from piece.Code: 0 is empty, then black/white pairs in
// ascending type order (pawn, rook, knight, bishop, queen, king), odd
// values always the white piece of the pair.
type WidgetCode int

const (
	WidgetNone WidgetCode = 0

	WidgetBlackPawn WidgetCode = 2
	WidgetWhitePawn WidgetCode = 3

	WidgetBlackRook WidgetCode = 4
	WidgetWhiteRook WidgetCode = 5

	WidgetBlackKnight WidgetCode = 6
	WidgetWhiteKnight WidgetCode = 7

	WidgetBlackBishop WidgetCode = 8
	WidgetWhiteBishop WidgetCode = 9

	WidgetBlackQueen WidgetCode = 10
	WidgetWhiteQueen WidgetCode = 11

	WidgetBlackKing WidgetCode = 12
	WidgetWhiteKing WidgetCode = 13
)

// widgetFromCode is indexed by piece.Code (16 entries); codeFromWidget
// is indexed by WidgetCode (14 entries). Both tables are the identity
// round-trip: codeFromWidget[widgetFromCode[c]] == c for every real
// piece code c.
var widgetFromCode = [piece.N]WidgetCode{
	piece.NoCode: WidgetNone,

	piece.BlackPawn:   WidgetBlackPawn,
	piece.WhitePawn:   WidgetWhitePawn,
	piece.BlackRook:   WidgetBlackRook,
	piece.WhiteRook:   WidgetWhiteRook,
	piece.BlackKnight: WidgetBlackKnight,
	piece.WhiteKnight: WidgetWhiteKnight,
	piece.BlackBishop: WidgetBlackBishop,
	piece.WhiteBishop: WidgetWhiteBishop,
	piece.BlackQueen:  WidgetBlackQueen,
	piece.WhiteQueen:  WidgetWhiteQueen,
	piece.BlackKing:   WidgetBlackKing,
	piece.WhiteKing:   WidgetWhiteKing,
}

var codeFromWidget = [14]piece.Code{
	WidgetNone: piece.NoCode,

	WidgetBlackPawn:   piece.BlackPawn,
	WidgetWhitePawn:   piece.WhitePawn,
	WidgetBlackRook:   piece.BlackRook,
	WidgetWhiteRook:   piece.WhiteRook,
	WidgetBlackKnight: piece.BlackKnight,
	WidgetWhiteKnight: piece.WhiteKnight,
	WidgetBlackBishop: piece.BlackBishop,
	WidgetWhiteBishop: piece.WhiteBishop,
	WidgetBlackQueen:  piece.BlackQueen,
	WidgetWhiteQueen:  piece.WhiteQueen,
	WidgetBlackKing:   piece.BlackKing,
	WidgetWhiteKing:   piece.WhiteKing,
}

// WidgetCodeAt returns the GUI-facing code of the piece on s.
func (p *Position) WidgetCodeAt(s square.Square) WidgetCode {
	return widgetFromCode[p.board[s].Code]
}

// CodeFromWidget converts a GUI-facing code back to a piece.Code.
func CodeFromWidget(w WidgetCode) piece.Code {
	return codeFromWidget[w]
}
