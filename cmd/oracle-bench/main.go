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

// Command oracle-bench walks the perft node-count tree from a FEN,
// one depth at a time, reporting a progress bar per depth and
// plotting the resulting node counts to an HTML chart.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/corvid-chess/oracle/pkg/moveiter"
	"github.com/corvid-chess/oracle/pkg/position"
	"github.com/corvid-chess/oracle/pkg/square"
)

func main() {
	if err := Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Main() error {
	fen := flag.String("fen", position.StartingFEN, "FEN of the position to benchmark perft from")
	depth := flag.Int("depth", 5, "maximum perft depth to benchmark")
	chartOut := flag.String("chart", "perft-nodes.html", "output file for the per-depth node-count chart")
	flag.Parse()

	pos, err := position.LoadFEN(*fen)
	if err != nil {
		return fmt.Errorf("oracle-bench: %w", err)
	}

	width := terminalWidth()

	depthLabels := make([]string, 0, *depth)
	nodeData := make([]opts.LineData, 0, *depth)

	for d := 1; d <= *depth; d++ {
		bar := progressbar.NewOptions(
			-1,
			progressbar.OptionSetDescription(fmt.Sprintf("perft depth %d", d)),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetWidth(width/4),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		nodes := perft(pos.Clone(), d, bar)
		_ = bar.Close()
		fmt.Printf("depth %d: %d nodes\n", d, nodes)

		depthLabels = append(depthLabels, fmt.Sprintf("%d", d))
		nodeData = append(nodeData, opts.LineData{Value: nodes})
	}

	plot := charts.NewLine()
	plot.SetXAxis(depthLabels).AddSeries("nodes", nodeData)

	f, err := os.Create(*chartOut)
	if err != nil {
		return fmt.Errorf("oracle-bench: %w", err)
	}
	defer f.Close()
	return plot.Render(f)
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// perft counts the leaves of the legal game tree rooted at pos, depth
// plies deep, recursing on a clone of pos at each ply so the caller's
// position is never mutated. bar, if non-nil, is ticked once per
// move tried at the top level of the recursion.
func perft(pos *position.Position, depth int, bar *progressbar.ProgressBar) int {
	if depth == 0 {
		return 1
	}

	nodes := 0
	for s := square.A1; s <= square.H8; s++ {
		occ := pos.At(s)
		if occ.IsNone() || occ.Code.Color() != pos.ToMove() {
			continue
		}

		it := moveiter.New(pos, s)
		for it.Next() {
			child := pos.Clone()
			child.Execute(it.Move())
			nodes += perft(child, depth-1, nil)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	return nodes
}
