// Command safenet runs the full analysis pipeline over a PNML file: parse,
// explicit enumeration (cross-check oracle), symbolic reachability,
// deadlock search, and objective maximisation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dalzilio/safenet/deadlock"
	"github.com/dalzilio/safenet/explicit"
	"github.com/dalzilio/safenet/maximize"
	"github.com/dalzilio/safenet/net"
	"github.com/dalzilio/safenet/symbolic"
)

const defaultInput = "testdata/default.pnml"

func main() {
	lenient := flag.Bool("lenient", false, "downgrade validation errors to warnings")
	objective := flag.String("c", "", "comma-separated objective vector for a single maximisation run")
	objFile := flag.String("cfile", "", "path to a file of whitespace-separated objective vectors, one per line")
	flag.Parse()

	path := defaultInput
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	} else {
		fmt.Printf("[INFO] no argument provided, defaulting to %q\n", path)
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("[ERROR] file %q not found\n", path)
		os.Exit(1)
	}

	beginStage("1. Parsing PNML")
	n, warnings, err := net.Load(path, !*lenient)
	endStage()
	if err != nil {
		fmt.Printf("[CRITICAL FAIL] parser error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		log.Printf("[WARN] %s", w)
	}
	fmt.Printf("Loaded: %d places, %d transitions.\n", n.NumPlaces(), n.NumTrans())

	beginStage("2. Explicit reachability (oracle)")
	explicitSet := explicit.Reachable(n)
	endStage()
	fmt.Printf("Total reachable states (explicit): %d\n", explicitSet.Len())

	beginStage("3. Symbolic reachability (BDD)")
	res, err := symbolic.Reachable(n)
	endStage()
	if err != nil {
		fmt.Printf("[CRITICAL FAIL] symbolic reachability error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Total reachable states (BDD): %s\n", res.Count)

	if int64(explicitSet.Len()) == res.Count.Int64() {
		fmt.Println("[SUCCESS] explicit and symbolic counts match.")
	} else {
		fmt.Printf("[WARNING] mismatch! explicit found %d, BDD found %s\n", explicitSet.Len(), res.Count)
	}

	beginStage("4. Deadlock detection")
	deadlockMarking := deadlock.Find(n, res)
	endStage()
	if deadlockMarking != nil {
		fmt.Printf("Deadlock FOUND: %v\n", deadlockMarking)
	} else {
		fmt.Println("Result: no deadlock reachable.")
	}

	switch {
	case *objFile != "":
		err = runBatch(n.PlaceIDs, res, *objFile)
	case *objective != "":
		var c []int
		if c, err = parseVector(*objective, ","); err == nil {
			err = runOne(n.PlaceIDs, res, c)
		}
	default:
		c := defaultObjective(n.NumPlaces())
		fmt.Printf("Objective vector c: %v\n", c)
		err = runOne(n.PlaceIDs, res, c)
	}
	if err != nil {
		fmt.Printf("[CRITICAL FAIL] %v\n", err)
		os.Exit(1)
	}
}

// defaultObjective mirrors the original driver's dynamically resized
// demonstration vector when the caller supplies none of their own.
func defaultObjective(p int) []int {
	base := []int{1, -2, 3, -1, 1, 2}
	c := make([]int, p)
	for i := range c {
		c[i] = base[i%len(base)]
	}
	return c
}

func runOne(placeIDs []string, res *symbolic.Result, c []int) error {
	beginStage("5. Optimisation")
	best, ok, err := maximize.Maximise(placeIDs, res, c)
	endStage()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Result: no reachable marking found.")
		return nil
	}
	fmt.Printf("Max Value  : %d\n", best.Value)
	fmt.Printf("Max Marking: %v\n", best.Marking)
	return nil
}

// runBatch implements the §6 "Objective input" batch mode: every non-empty
// line of the file is a whitespace-separated integer vector of length P.
func runBatch(placeIDs []string, res *symbolic.Result, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("objective file: %w", err)
	}
	defer f.Close()

	beginStage("5. Optimisation (batch)")
	defer endStage()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		c, err := parseVector(text, " ")
		if err != nil {
			return fmt.Errorf("objective file line %d: %w", line, err)
		}
		m, ok, err := maximize.Maximise(placeIDs, res, c)
		if err != nil {
			return fmt.Errorf("objective file line %d: %w", line, err)
		}
		if !ok {
			fmt.Printf("c=%v -> no reachable marking\n", c)
			continue
		}
		fmt.Printf("c=%v -> value=%d marking=%v\n", c, m.Value, m.Marking)
	}
	return scanner.Err()
}

func parseVector(s, sep string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(sep+" \t", r)
	})
	c := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad objective entry %q: %w", f, err)
		}
		c = append(c, v)
	}
	return c, nil
}

// stageStart tracks the wall-clock start of the current pipeline stage, in
// the style of the original driver's per-stage timing report. It drops
// that driver's heap-profiling (tracemalloc), which has no idiomatic Go
// equivalent in the teacher or the rest of the example pack.
var stageStart time.Time

func beginStage(name string) {
	fmt.Printf("\n--- %s ---\n", name)
	stageStart = time.Now()
}

func endStage() {
	fmt.Printf("Execution Time : %s\n", time.Since(stageStart))
}
