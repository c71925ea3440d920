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

// File represents a file on the chessboard, FileA = 0 through FileH = 7.
type File int

// constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String converts a File into it's string representation.
func (f File) String() string {
	return string(rune('a' + f))
}

// fileFrom creates an instance of File from the given id.
func fileFrom(id string) File {
	if len(id) != 1 || id[0] < 'a' || id[0] > 'h' {
		panic("new file: invalid file id")
	}
	return File(id[0] - 'a')
}
