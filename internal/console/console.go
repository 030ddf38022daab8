/*
Package console
File: console.go
Description:
    Line-based front end for a game.Session.
    Reads one answer per line, prints the panels from render.go and hands
    each menu choice to the matching handler in handlers.go.
*/

package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/everforgeworks/cargo-run/internal/game"
)

// Reserved menu entries. Route numbers start at 1.
const (
	choiceMap  = 0
	choiceQuit = 9
)

// Console drives a session over a reader/writer pair.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	style styles
	log   *log.Logger
}

// New binds a console to in/out. A nil logger discards diagnostics.
func New(in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		style: newStyles(lipgloss.NewRenderer(out)),
		log:   logger,
	}
}

// prompt prints label and reads one line. ok is false once input is exhausted.
func (c *Console) prompt(label string) (line string, ok bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.log.Printf("CONSOLE: read error: %v", err)
		}
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// ChooseDifficulty asks for 1-3. Anything else, including no input, means Easy.
func (c *Console) ChooseDifficulty() game.Difficulty {
	fmt.Fprintln(c.out, "Select difficulty:")
	fmt.Fprintln(c.out, "1 = Easy | 2 = Medium | 3 = Hard")
	line, _ := c.prompt("-> ")
	return game.ParseDifficulty(line)
}

// Play runs the turn loop until the session reaches a terminal state.
func (c *Console) Play(s *game.Session) game.Outcome {
	fmt.Fprintln(c.out, "\n"+c.style.title.Render("=== CARGO DELIVERY ==="))
	fmt.Fprintln(c.out, "Goal: Reach the final planet in as few moves as possible.")
	fmt.Fprintln(c.out, "Controls: Enter route number.")
	fmt.Fprintln(c.out, "0 = Map | 9 = Quit")

	for s.Phase() != game.PhaseTerminal {
		fmt.Fprint(c.out, c.style.renderMap(s.Map))
		fmt.Fprint(c.out, c.style.renderStatus(s))

		if s.Check() != game.Playing {
			fmt.Fprintln(c.out, "\n"+c.style.renderOutcome(s))
			break
		}

		fmt.Fprint(c.out, c.style.renderRoutes(s))
		line, ok := c.prompt("\nChoose: ")
		if !ok {
			c.handleQuit(s)
			break
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid choice!")
			continue
		}

		switch choice {
		case choiceMap:
			c.handleShowMap(s)
		case choiceQuit:
			c.handleQuit(s)
		default:
			c.handleRoute(s, choice)
		}
	}

	fmt.Fprintln(c.out, "\nGame over. Thanks, Captain!")
	fmt.Fprintln(c.out, c.style.dim.Render("Run ID: "+s.ID.String()))
	return s.Outcome()
}
