package command

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	guessMin    = 1
	guessMax    = 100
	guessSyntax = `Syntax is: "!guess <number>"`
)

// guessGame is the "more or less" game. One hidden target and one
// attempt counter are shared by every sender talking to this instance;
// simultaneous players play the same puzzle.
type guessGame struct {
	rng    *rand.Rand
	target int
	steps  int
}

// NewGuess returns the !guess command with a freshly drawn target.
func NewGuess() Command {
	return newGuessGame(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newGuessGame(rng *rand.Rand) *guessGame {
	g := &guessGame{rng: rng}
	g.reset()
	return g
}

// reset draws a new target uniformly from [guessMin, guessMax] and
// clears the attempt counter.
func (g *guessGame) reset() {
	g.target = guessMin + g.rng.Intn(guessMax-guessMin+1)
	g.steps = 0
}

func (g *guessGame) Name() string { return "!guess" }
func (g *guessGame) Help() string { return `Play a "more or less" game` }

func (g *guessGame) Execute(msg Message) string {
	fields := strings.Fields(msg.Text)
	if len(fields) < 2 {
		return guessSyntax
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return guessSyntax
	}

	g.steps++
	switch {
	case n < g.target:
		return "It is more!"
	case n > g.target:
		return "It is less!"
	}

	reply := fmt.Sprintf("%s guessed the correct answer! (it took %d guesses)", msg.Sender, g.steps)
	g.reset()
	return reply
}
