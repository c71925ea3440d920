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

package widget_test

import (
	"strings"
	"testing"

	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
	"github.com/corvid-chess/oracle/pkg/widget"
)

func TestSyncBuildsEightByEightGridRank8First(t *testing.T) {
	pos := position.InitialPosition()
	b := widget.NewBoard(pos)
	b.Sync(square.PreBegin, square.PreBegin)

	rows := b.Rows()
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	for _, row := range rows {
		if len(row) != 8 {
			t.Fatalf("got %d columns, want 8", len(row))
		}
	}

	// rank 8 (black's back rank) is the first row.
	if !strings.Contains(rows[0][0], "♜") {
		t.Errorf("rows[0][0] (a8) = %q, want a black rook glyph", rows[0][0])
	}
	// rank 1 (white's back rank) is the last row.
	if !strings.Contains(rows[7][4], "♔") {
		t.Errorf("rows[7][4] (e1) = %q, want a white king glyph", rows[7][4])
	}
}

func TestStatusTextNamesSideToMove(t *testing.T) {
	pos := position.InitialPosition()
	b := widget.NewBoard(pos)
	b.Sync(square.PreBegin, square.PreBegin)

	if !strings.HasPrefix(b.StatusText(), "white to move") {
		t.Errorf("StatusText() = %q, want it to start with %q", b.StatusText(), "white to move")
	}
}
