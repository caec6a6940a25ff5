// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/protocol"
)

// DefaultMaxAttempts is the number of times a player is asked for a move
// before the match is abandoned.
const DefaultMaxAttempts = 100

// ErrTooManyInvalidMoves is returned when a player keeps answering with
// invalid moves. With a human or a working bot this doesn't happen, so it
// usually points to a bug in the bot.
var ErrTooManyInvalidMoves = errors.New("match: too many failed attempts to specify a valid move")

// PlayerError is returned by Play when a player couldn't provide a move.
type PlayerError struct {
	Mark game.Mark
	Err  error
}

func (err *PlayerError) Error() string {
	return fmt.Sprintf("match: player %s: %v", err.Mark, err.Err)
}

func (err *PlayerError) Unwrap() error {
	return err.Err
}

type Config struct {
	// Players are the channels to the players, indexed by Mark.Index.
	Players [game.MarkN]player.Channel

	// Board is the starting position. A new empty board is used if it
	// is nil. The board is modified by the match.
	Board *game.Board

	// ToMove is the mark which moves first, X if it is Empty.
	ToMove game.Mark

	// MaxAttempts caps the number of prompts for a single move.
	// DefaultMaxAttempts is used if it is less than 1.
	MaxAttempts int
}

// Match is a single game of tic-tac-toe between two players.
type Match struct {
	ID string

	board   *game.Board
	players [game.MarkN]player.Channel

	toMove game.Mark
	turn   int

	maxAttempts int

	log *logrus.Entry
}

// New creates a new match from the given config.
func New(config Config) *Match {
	match := &Match{
		ID: uuid.NewString(),

		board:   config.Board,
		players: config.Players,

		toMove:      config.ToMove,
		maxAttempts: config.MaxAttempts,
	}

	if match.board == nil {
		match.board = game.New()
	}

	if !match.toMove.Valid() {
		match.toMove = game.X
	}

	if match.maxAttempts < 1 {
		match.maxAttempts = DefaultMaxAttempts
	}

	match.log = logrus.WithField("match", match.ID)
	return match
}

// Run creates a match between the given players and plays it.
func Run(x, o player.Channel) (game.Result, error) {
	return New(Config{Players: [game.MarkN]player.Channel{x, o}}).Play()
}

// Board returns the match's board.
func (match *Match) Board() *game.Board {
	return match.board
}

// Turn returns the number of moves requested so far.
func (match *Match) Turn() int {
	return match.turn
}

// State returns the current state of the match.
func (match *Match) State() State {
	return State{
		Result: game.Evaluate(match.board),
		ToMove: match.toMove,
	}
}

// Play plays the match until it is won or drawn, and sends the result to
// both players. An error is returned if a player fails to give a move, in
// which case the result is game.InProgress.
func (match *Match) Play() (game.Result, error) {
	for {
		state := match.State()
		match.log.Debugf("turn %d: %s", match.turn, state)

		if state.Result.Terminal() {
			match.broadcast(protocol.RenderResult(match.board, state.Result))
			return state.Result, nil
		}

		match.turn++
		move, err := match.RequestMove(match.toMove)
		if err != nil {
			return game.InProgress, err
		}

		if err := match.board.MakeMove(move); err != nil {
			// RequestMove only returns moves to empty cells.
			return game.InProgress, err
		}

		match.log.Debugf("%s plays %s", move.Mark, protocol.FormatMove(move.Square))
		match.toMove = match.toMove.Other()
	}
}

// RequestMove prompts the player with the given mark until it answers with
// a legal move. Invalid answers are met with a warning and a new prompt.
func (match *Match) RequestMove(mark game.Mark) (game.Move, error) {
	channel := match.players[mark.Index()]
	warning := ""

	for attempt := 1; attempt <= match.maxAttempts; attempt++ {
		match.send(mark, protocol.RenderPrompt(match.board, mark, warning))

		response, err := channel.ReadLine()
		if err != nil {
			return game.Move{}, &PlayerError{Mark: mark, Err: err}
		}

		square, err := protocol.ParseMove(response)
		switch {
		case err != nil:
			warning = protocol.InvalidWarning(response)
		case match.board.Get(square.Col, square.Row) != game.Empty:
			warning = protocol.OccupiedWarning(response)
		default:
			return game.Move{Square: square, Mark: mark}, nil
		}

		match.log.Debugf("player %s: %s", mark, warning)
	}

	match.log.Errorf("%d failed attempts to specify a valid move", match.maxAttempts)
	match.log.Error("This probably indicates a logic error")
	return game.Move{}, &PlayerError{Mark: mark, Err: ErrTooManyInvalidMoves}
}

func (match *Match) broadcast(text string) {
	match.send(game.X, text)
	match.send(game.O, text)
}

func (match *Match) send(mark game.Mark, text string) {
	if err := match.players[mark.Index()].Send(text); err != nil {
		match.log.Debugf("player %s: send: %v", mark, err)
	}
}
