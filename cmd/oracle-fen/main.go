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

// Command oracle-fen validates and normalizes FEN strings: it loads
// each one into a Position and prints the canonical FEN that Position
// produces back out, or reports why the FEN was rejected.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/corvid-chess/oracle/pkg/position"
)

func main() {
	if err := Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Main() error {
	input := flag.String("fen", "", "FEN string to validate and normalize; reads stdin line by line if empty")
	flag.Parse()

	if *input != "" {
		return normalize(*input)
	}

	failed := false
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := normalize(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("oracle-fen: one or more lines were rejected")
	}
	return nil
}

func normalize(fen string) error {
	pos, err := position.LoadFEN(fen)
	if err != nil {
		return fmt.Errorf("oracle-fen: %q: %w", fen, err)
	}
	fmt.Println(pos.FEN())
	return nil
}
