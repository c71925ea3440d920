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

// Package piece implements the packed Color, Type, and Code primitives
// shared by every other package in the engine, along with the Flags
// and Piece records cached per square by pkg/position.
//
// The strings w and b represent the White and Black colors. K, Q, R,
// N, B, and P represent the King, Queen, Rook, Knight, Bishop, and
// Pawn types, uppercase for White and lowercase for Black.
package piece

// NewColor creates an instance of Color from the given FEN color id.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new color: invalid color id")
	}
}

// Color is a single packed bit: Black is 0, White is 1.
type Color uint8

// various piece colors
const (
	Black Color = iota
	White

	NColor = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ White
}

// Index returns 0 for Black and 1 for White, for indexing small arrays.
func (c Color) Index() int {
	return int(c)
}

// Forward returns the signed square-index delta a pawn of this color
// advances by: +8 for White (towards rank 8), -8 for Black (towards
// rank 1).
func (c Color) Forward() int {
	if c == White {
		return 8
	}
	return -8
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	switch c {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("color: invalid color value")
	}
}

// New packs a Type and Color into a Code.
func New(t Type, c Color) Code {
	return Code(t) | Code(c)<<3
}

// NewFromString creates an instance of Code from the given FEN piece id.
func NewFromString(id string) Code {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("new code: invalid piece id")
	}
}

// Type is a 3-bit piece type tag. Bit 2 (value 4) marks sliders; bit 0
// and bit 1, combined with the slider bit, mark bishop- and rook-movers
// respectively (see MoverFlags).
type Type uint8

// various chess piece types
const (
	NoType Type = 0
	Pawn   Type = 1
	Knight Type = 2
	King   Type = 3
	Bishop Type = 5
	Rook   Type = 6
	Queen  Type = 7

	NType = 8
)

func (t Type) String() string {
	return Code(t | 8).String()
}

const sliderBit = 4

// IsSlider reports whether pieces of this type move along open rays.
func (t Type) IsSlider() bool {
	return t&sliderBit != 0
}

// MoverFlags returns the mover-class bits this type moves along: bit 0
// (FlagBishop) for diagonal rays, bit 1 (FlagRook) for orthogonal rays.
// Non-sliders return 0, even though the king shares queen's low two
// bits, because the slider bit gates the result.
func (t Type) MoverFlags() MoverFlags {
	if !t.IsSlider() {
		return 0
	}
	return MoverFlags(t & 3)
}

// MoverFlags is a small bitset of ray-mover classes.
type MoverFlags uint8

const (
	FlagBishop MoverFlags = 1 << 0
	FlagRook   MoverFlags = 1 << 1
)

// Promotions lists the types a pawn may promote to, in the order the
// move iterator emits them for forward iteration (reverse order for
// backward iteration).
var Promotions = []Type{
	Queen, Rook, Knight, Bishop,
}

// Code packs a Color and a Type into a single 4-bit value: bit 3 is the
// color, bits 0-2 are the type. Both 0 and 8 (NoType with either color)
// denote an empty square.
type Code uint8

const (
	NoCode Code = 0

	WhitePawn   Code = Code(Pawn) | 8
	WhiteKnight Code = Code(Knight) | 8
	WhiteBishop Code = Code(Bishop) | 8
	WhiteRook   Code = Code(Rook) | 8
	WhiteQueen  Code = Code(Queen) | 8
	WhiteKing   Code = Code(King) | 8

	BlackPawn   Code = Code(Pawn)
	BlackKnight Code = Code(Knight)
	BlackBishop Code = Code(Bishop)
	BlackRook   Code = Code(Rook)
	BlackQueen  Code = Code(Queen)
	BlackKing   Code = Code(King)

	// N is the number of distinct Code values (0..15), used to size
	// Code-indexed tables. Several entries beyond the twelve real
	// pieces are unused ("nothing") but kept so Code can index
	// directly without translation.
	N = 16
)

// IsNone reports whether the Code denotes an empty square.
func (c Code) IsNone() bool {
	return c.Type() == NoType
}

// String converts a Code into it's string representation.
func (c Code) String() string {
	codes := [...]string{
		NoCode:      ".",
		WhitePawn:   "P",
		WhiteKnight: "N",
		WhiteBishop: "B",
		WhiteRook:   "R",
		WhiteQueen:  "Q",
		WhiteKing:   "K",
		BlackPawn:   "p",
		BlackKnight: "n",
		BlackBishop: "b",
		BlackRook:   "r",
		BlackQueen:  "q",
		BlackKing:   "k",
	}

	return codes[c]
}

// NewFromFEN returns the Code for a FEN piece letter.
func NewFromFEN(glyph byte) (Code, bool) {
	switch glyph {
	case 'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k':
		return NewFromString(string(glyph)), true
	default:
		return NoCode, false
	}
}

// Type returns the piece type of the given Code.
func (c Code) Type() Type {
	switch {
	case c == NoCode:
		return NoType
	default:
		return Type(c & 7)
	}
}

// Color returns the piece color of the given Code. Panics if the Code
// is empty, since an empty square has no color.
func (c Code) Color() Color {
	if c.IsNone() {
		panic("code: Color of an empty Code is undefined")
	}

	return Color(c >> 3)
}

// Is checks if the type of the given Code matches the given type.
func (c Code) Is(target Type) bool {
	return c.Type() == target
}

// IsColor checks if the color of the given Code matches the given Color.
func (c Code) IsColor(target Color) bool {
	return c.Color() == target
}

// Flags caches the four pawn-specific booleans a Position maintains
// incrementally on every Place; they are meaningless on non-pawns.
type Flags struct {
	CanTakeQueenSide bool
	CanTakeKingSide  bool
	IsNotBlocked     bool
	CanMoveTwo       bool
}

// Piece is a Code together with its cached Flags. Equality of Pieces
// compares Codes only; Flags are derived state, not identity.
type Piece struct {
	Code  Code
	Flags Flags
}

// Equal compares two Pieces by Code alone, ignoring Flags.
func (p Piece) Equal(o Piece) bool {
	return p.Code == o.Code
}

// IsNone reports whether the square the Piece was read from is empty.
func (p Piece) IsNone() bool {
	return p.Code.IsNone()
}
