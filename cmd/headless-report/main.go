package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

type reportConfig struct {
	width, height  int
	mines          int
	frames         int
	clicksPerFrame int
	flagRatio      float64 // share of clicks sent with the secondary button
	reach          float64 // clicks land in [-reach, reach]; above 1 some miss the board
	verbose        bool
}

type runStats struct {
	runIndex int
	seed     int64

	clicks    int
	uncovers  int
	flagOps   int
	discarded int

	firstBombFrame  int
	firstFlagFrame  int
	firstMissFrame  int
	cells           int
	mined           int
	flagged         int
	revealed        int
	revealedMined   int
	board           string
	eventLog        string
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var rc reportConfig

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&rc.frames, "frames", 120, "frames per run")
	flag.IntVar(&rc.clicksPerFrame, "clicks", 2, "random clicks per frame")
	flag.IntVar(&rc.width, "board-width", 10, "board width in cells")
	flag.IntVar(&rc.height, "board-height", 10, "board height in cells")
	flag.IntVar(&rc.mines, "mines", 10, "mines scattered before play")
	flag.Float64Var(&rc.flagRatio, "flag-ratio", 0.25, "share of secondary-button clicks")
	flag.Float64Var(&rc.reach, "reach", 1.1, "normalized click spread; >1 sends some clicks off the board")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&rc.verbose, "verbose", false, "print the full event log of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if rc.frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if rc.mines < 0 || rc.mines > rc.width*rc.height {
		fmt.Printf("error: -mines must be within 0..%d\n", rc.width*rc.height)
		return
	}

	fmt.Printf("=== Headless Board Report ===\n")
	fmt.Printf("board=%dx%d mines=%d runs=%d frames=%d clicks=%d seed_base=%d seed_step=%d\n\n",
		rc.width, rc.height, rc.mines, runs, rc.frames, rc.clicksPerFrame, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runRandomClicks(i+1, seed, rc)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats, rc.verbose)
	}

	printAggregate(all)
}

// scatterMines picks n distinct cells using rng.
func scatterMines(rng *rand.Rand, width, height, n int) []minesweeper.Cell {
	perm := rng.Perm(width * height)[:n]
	cells := make([]minesweeper.Cell, 0, n)
	for _, i := range perm {
		cells = append(cells, minesweeper.Cell{Col: i % width, Row: i / width})
	}
	return cells
}

func runRandomClicks(runIndex int, seed int64, rc reportConfig) (runStats, error) {
	rng := rand.New(rand.NewSource(seed))

	opts := []minesweeper.HarnessOption{
		minesweeper.WithBoardSize(rc.width, rc.height),
		minesweeper.WithVerbose(rc.verbose),
	}
	for _, c := range scatterMines(rng, rc.width, rc.height, rc.mines) {
		opts = append(opts, minesweeper.WithMine(c.Col, c.Row))
	}
	ts, err := minesweeper.NewTestSession(opts...)
	if err != nil {
		return runStats{}, err
	}

	clicks := 0
	for f := 0; f < rc.frames; f++ {
		for c := 0; c < rc.clicksPerFrame; c++ {
			x := (rng.Float64()*2 - 1) * rc.reach
			y := (rng.Float64()*2 - 1) * rc.reach
			button := minesweeper.ButtonPrimary
			if rng.Float64() < rc.flagRatio {
				button = minesweeper.ButtonSecondary
			}
			ts.Queue(x, y, button)
			clicks++
		}
		ts.Flush()
	}

	return collectStats(runIndex, seed, clicks, ts), nil
}

// collectStats reads a finished session's event log and board.
func collectStats(runIndex int, seed int64, clicks int, ts *minesweeper.TestSession) runStats {
	el := ts.EventLog()
	entries := el.Entries()
	discarded := 0
	for _, e := range el.Filter("input", "discarded") {
		discarded += int(e.NumVal)
	}

	b := ts.Board()
	mined, flagged, revealed := b.Counts()
	revealedMined := 0
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.IsMined(col, row) && b.IsRevealed(col, row) {
				revealedMined++
			}
		}
	}

	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		clicks:         clicks,
		uncovers:       el.Count("action", "uncover"),
		flagOps:        el.Count("action", "place_flag"),
		discarded:      discarded,
		firstBombFrame: firstFrame(entries, "action", "uncover", "bomb"),
		firstFlagFrame: firstFrame(entries, "action", "place_flag", "flag"),
		firstMissFrame: firstFrame(entries, "input", "discarded", ""),
		cells:          b.Len(),
		mined:          mined,
		flagged:        flagged,
		revealed:       revealed,
		revealedMined:  revealedMined,
		board:          b.String(),
		eventLog:       el.Format(),
	}
	return rs
}

func firstFrame(entries []minesweeper.EventLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Frame
		}
	}
	return -1
}

// coverage is the share of cells uncovered, in percent.
func coverage(rs runStats) float64 {
	if rs.cells == 0 {
		return 0
	}
	return float64(rs.revealed) / float64(rs.cells) * 100
}

// hitRate is the share of clicks that landed on the board, in percent.
func hitRate(rs runStats) float64 {
	if rs.clicks == 0 {
		return 0
	}
	return float64(rs.clicks-rs.discarded) / float64(rs.clicks) * 100
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_miss=%d first_flag=%d first_bomb=%d\n",
		rs.firstMissFrame, rs.firstFlagFrame, rs.firstBombFrame)
	fmt.Printf("input_totals: clicks=%d discarded=%d hit_rate=%.1f%%\n",
		rs.clicks, rs.discarded, hitRate(rs))
	fmt.Printf("action_totals: uncover=%d place_flag=%d\n", rs.uncovers, rs.flagOps)
	fmt.Printf("final_board: cells=%d mined=%d flagged=%d revealed=%d revealed_mined=%d coverage=%.1f%%\n",
		rs.cells, rs.mined, rs.flagged, rs.revealed, rs.revealedMined, coverage(rs))
	fmt.Print(rs.board)
	if verbose {
		fmt.Print(rs.eventLog)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalClicks := 0
	totalDiscarded := 0
	totalUncovers := 0
	totalFlags := 0
	totalRevealed := 0
	totalRevealedMined := 0
	coverageSum := 0.0

	bombFrames := make([]int, 0, len(all))
	missFrames := make([]int, 0, len(all))

	for _, rs := range all {
		totalClicks += rs.clicks
		totalDiscarded += rs.discarded
		totalUncovers += rs.uncovers
		totalFlags += rs.flagOps
		totalRevealed += rs.revealed
		totalRevealedMined += rs.revealedMined
		coverageSum += coverage(rs)
		if rs.firstBombFrame >= 0 {
			bombFrames = append(bombFrames, rs.firstBombFrame)
		}
		if rs.firstMissFrame >= 0 {
			missFrames = append(missFrames, rs.firstMissFrame)
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", n)
	fmt.Printf("avg_input_per_run: clicks=%.1f discarded=%.1f\n", avg(totalClicks, n), avg(totalDiscarded, n))
	fmt.Printf("avg_actions_per_run: uncover=%.1f place_flag=%.1f\n", avg(totalUncovers, n), avg(totalFlags, n))
	fmt.Printf("avg_board_per_run: revealed=%.1f revealed_mined=%.1f coverage=%.1f%%\n",
		avg(totalRevealed, n), avg(totalRevealedMined, n), avgFloat(coverageSum, n))
	fmt.Printf("phase_marker_avg_frames: first_miss=%s first_bomb=%s\n",
		avgFrameString(missFrames), avgFrameString(bombFrames))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFloat(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
