/*
Package main
File: main.go
Description: Entry point. Parses flags, loads the embedded universe, seeds the
random source and hands a new session to the console.
*/

package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/akamensky/argparse"

	"github.com/everforgeworks/cargo-run/internal/console"
	"github.com/everforgeworks/cargo-run/internal/game"
)

func main() {
	parser := argparse.NewParser("cargo-run", "Deliver your cargo across the solar system before the tank runs dry")
	difficulty := parser.Int("d", "difficulty", &argparse.Options{Help: "1 = Easy, 2 = Medium, 3 = Hard (asked at startup if omitted)"})
	seed := parser.Int("s", "seed", &argparse.Options{Help: "Random seed (time based if omitted)"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Write diagnostic log to stderr"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	// 1. Diagnostics stay off the game screen unless asked for
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	// 2. Load the static universe compiled into the binary
	uni, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 3. One random source for the whole run
	s1 := uint64(time.Now().UnixNano())
	if *seed != 0 {
		s1 = uint64(*seed)
	}
	rng := rand.New(rand.NewPCG(s1, s1>>1|1))
	logger.Printf("RNG: seeded with %d", s1)

	con := console.New(os.Stdin, os.Stdout, logger)

	// 4. Difficulty from the flag, or ask
	var d game.Difficulty
	if *difficulty == 0 {
		d = con.ChooseDifficulty()
	} else {
		d = game.ParseDifficulty(strconv.Itoa(*difficulty))
	}

	session, err := game.NewSession(uni, d, rng, logger)
	if err != nil {
		log.Fatalf("Session Fail: %v", err)
	}

	outcome := con.Play(session)
	logger.Printf("CARGO RUN: %s on %s in %d moves", outcome, d, session.Moves)
}
