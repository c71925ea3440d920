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

package square

// Diagonal identifies one of the 15 a1-h8-direction diagonals, indexed
// so that the a1-h8 diagonal itself is DiagonalN/2.
type Diagonal int

// AntiDiagonal identifies one of the 15 a8-h1-direction diagonals.
type AntiDiagonal int

// DiagonalN and AntiDiagonalN are the number of diagonals in each
// direction, for sizing Diagonal/AntiDiagonal-indexed tables.
const (
	DiagonalN     = 15
	AntiDiagonalN = 15
)

// Diagonal returns the a1-h8-direction diagonal the square lies on.
func (s Square) Diagonal() Diagonal {
	return Diagonal(s.Rank()) - Diagonal(s.File()) + 7
}

// AntiDiagonal returns the a8-h1-direction diagonal the square lies on.
func (s Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}
