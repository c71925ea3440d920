// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Command oracle opens an interactive terminal viewer onto a
// position, defaulting to the start of a game.
package main

import (
	"fmt"
	"os"

	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/widget"
)

func main() {
	// run viewer
	if err := run(); err != nil {
		// exit with error
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// quiet exit
}

func run() error {
	args := os.Args[1:]

	var pos *position.Position
	switch len(args) {
	case 0:
		pos = position.InitialPosition()

	default:
		// a single argument is read as a FEN to start the viewer on
		loaded, err := position.LoadFEN(args[0])
		if err != nil {
			return err
		}
		pos = loaded
	}

	return widget.Run(pos)
}
