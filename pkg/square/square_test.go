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

package square_test

import (
	"testing"

	"github.com/corvid-chess/oracle/pkg/square"
)

func TestNumbering(t *testing.T) {
	cases := []struct {
		s    square.Square
		want int
	}{
		{square.A1, 0}, {square.H1, 7}, {square.A8, 56}, {square.H8, 63},
	}
	for _, c := range cases {
		if int(c.s) != c.want {
			t.Errorf("%v = %d, want %d", c.s, int(c.s), c.want)
		}
	}
}

func TestNewAndString(t *testing.T) {
	for _, id := range []string{"a1", "e4", "h8", "a8"} {
		s := square.New(id)
		if s.String() != id {
			t.Errorf("New(%q).String() = %q", id, s.String())
		}
	}
	if square.New("-") != square.PreBegin {
		t.Errorf(`New("-") != PreBegin`)
	}
}

func TestNextBitIn(t *testing.T) {
	mask := uint64(1)<<square.C1 | uint64(1)<<square.E4
	s := square.PreBegin
	s = s.NextBitIn(mask)
	if s != square.C1 {
		t.Fatalf("first NextBitIn = %v, want C1", s)
	}
	s = s.NextBitIn(mask)
	if s != square.E4 {
		t.Fatalf("second NextBitIn = %v, want E4", s)
	}
	s = s.NextBitIn(mask)
	if s != square.End {
		t.Fatalf("third NextBitIn = %v, want End", s)
	}
}

func TestPrevBitIn(t *testing.T) {
	mask := uint64(1)<<square.C1 | uint64(1)<<square.E4
	s := square.End
	s = s.PrevBitIn(mask)
	if s != square.E4 {
		t.Fatalf("first PrevBitIn = %v, want E4", s)
	}
	s = s.PrevBitIn(mask)
	if s != square.C1 {
		t.Fatalf("second PrevBitIn = %v, want C1", s)
	}
	s = s.PrevBitIn(mask)
	if s != square.PreBegin {
		t.Fatalf("third PrevBitIn = %v, want PreBegin", s)
	}
}

func TestRowColumn(t *testing.T) {
	if square.E4.Row() != 3 || square.E4.Column() != 4 {
		t.Errorf("E4 row/column = %d/%d, want 3/4", square.E4.Row(), square.E4.Column())
	}
}
