// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Command skrafl loads a packed dictionary, seeds a board from a list
// of existing plays (or reads one from file), and prints the
// highest-scoring placements for a given rack, timing the generation
// call.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	skrafl "github.com/vthorsteinsson/skrafl-movegen"
)

func main() {
	_ = godotenv.Load() // optional .env for SKRAFL_DICT etc; absence is not an error

	dictPath := flag.String("dict", os.Getenv("SKRAFL_DICT"), "path to a packed binary dictionary file")
	boardPath := flag.String("board", "", "path to a textual board file (empty board if omitted)")
	rackContents := flag.String("rack", "", "rack contents, lowercase letters and '_' for blanks")
	limit := flag.Int("n", 20, "maximum number of plays to print")
	serve := flag.String("serve", "", "if set, listen on this address instead of generating once")
	flag.Parse()

	if *dictPath == "" {
		fmt.Fprintln(os.Stderr, "skrafl: -dict (or SKRAFL_DICT) is required")
		os.Exit(1)
	}

	start := time.Now()
	dawg, err := skrafl.LoadDawgFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skrafl: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "loaded dictionary (%d edges) in %v\n", dawg.NumEdges(), time.Since(start))

	if *serve != "" {
		server := &skrafl.Server{Dawg: dawg, AuthHeader: authHeader()}
		if err := server.ListenAndServe(*serve); err != nil {
			fmt.Fprintf(os.Stderr, "skrafl: %v\n", err)
			os.Exit(1)
		}
		return
	}

	board, err := loadBoard(*boardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skrafl: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(board.Display())

	rack, err := skrafl.NewRack(*rackContents)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skrafl: %v\n", err)
		os.Exit(1)
	}

	start = time.Now()
	plays := skrafl.GeneratePlays(dawg, board, rack, *limit)
	elapsed := time.Since(start)
	for _, p := range plays {
		fmt.Println(p)
	}
	fmt.Fprintf(os.Stderr, "generated %d plays in %v\n", len(plays), elapsed)
}

func loadBoard(path string) (*skrafl.Board, error) {
	if path == "" {
		existing := []skrafl.ScoredPlay{{
			StartRow: skrafl.CenterRow, StartCol: skrafl.CenterCol,
			Direction: skrafl.Horizontal, Word: "hello",
		}}
		return skrafl.BoardFromPlays(existing), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board %q: %w", path, err)
	}
	return skrafl.ParseBoard(string(data))
}

func authHeader() string {
	key := os.Getenv("SKRAFL_ACCESS_KEY")
	if key == "" {
		return ""
	}
	return "Bearer " + key
}
