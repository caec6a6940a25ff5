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

// Package series plays a number of matches between the same two players,
// swapping sides after every match, and keeps their scores.
package series

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/match"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/stats"
)

// Entrant is a participant of a series. Open is called before every match
// to get a channel to the participant; bots are started through the given
// supervisor, which is terminated once the match is over.
type Entrant struct {
	Name string
	Open func(supervisor *player.Supervisor) (player.Channel, error)
}

// Bot returns an Entrant which starts a fresh process of the given bot
// for every match.
func Bot(config player.BotConfig) Entrant {
	name := config.Name
	if name == "" {
		name = config.Cmd
	}

	return Entrant{
		Name: name,
		Open: func(supervisor *player.Supervisor) (player.Channel, error) {
			pipe, _, err := supervisor.Spawn(config)
			if err != nil {
				return nil, err
			}

			return pipe, nil
		},
	}
}

type Config struct {
	Entrants [2]Entrant

	// Number of matches to play. Entrant 0 plays X in even numbered
	// matches, counting from 0.
	Games int

	// Passed on to every match.
	MaxAttempts int
}

// Scores is the record of a single entrant.
type Scores struct {
	Wins, Losses, Draws int
}

// Total returns the number of matches played.
func (scores Scores) Total() int {
	return scores.Wins + scores.Losses + scores.Draws
}

// Series is a sequence of matches between two entrants.
type Series struct {
	Config Config

	Scores  [2]Scores
	Results []Result
}

// New creates a new series from the given config.
func New(config Config) (*Series, error) {
	for i, entrant := range config.Entrants {
		if entrant.Open == nil {
			return nil, fmt.Errorf("new series: entrant %d can't be opened", i+1)
		}
	}

	if config.Games < 1 {
		return nil, fmt.Errorf("new series: invalid number of games %d", config.Games)
	}

	return &Series{Config: config}, nil
}

// Result is the outcome of a single match of a series.
type Result struct {
	Number int

	// Indexes into the series' entrants.
	PlayerX, PlayerO int

	Result game.Result
	Reason string
}

// Winner returns the index of the winning entrant, or -1 for a draw.
func (result Result) Winner() int {
	switch result.Result {
	case game.XWins:
		return result.PlayerX
	case game.OWins:
		return result.PlayerO
	default:
		return -1
	}
}

// Start plays all the matches of the series, one after the other.
func (series *Series) Start() error {
	px, po := 0, 1
	for number := 1; number <= series.Config.Games; number++ {
		logrus.Infof(
			"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s\n",
			number,
			series.Config.Entrants[px].Name,
			series.Config.Entrants[po].Name,
		)

		result, err := series.RunGame(number, px, po)
		if err != nil {
			return err
		}

		series.record(result)

		// Switch sides.
		px, po = po, px
	}

	return nil
}

// RunGame plays a single match with entrant px as X and po as O. A side
// which fails to start or to give a move loses the match.
func (series *Series) RunGame(number, px, po int) (Result, error) {
	result := Result{Number: number, PlayerX: px, PlayerO: po}

	supervisor := player.NewSupervisor()
	defer supervisor.TerminateAll()

	var players [game.MarkN]player.Channel
	for mark, entrant := range [game.MarkN]int{px, po} {
		channel, err := series.Config.Entrants[entrant].Open(supervisor)
		if err != nil {
			result.Result = game.WonBy(game.Mark(mark + 1).Other())
			result.Reason = err.Error()
			return result, nil
		}

		players[mark] = channel
	}

	var err error
	result.Result, err = match.New(match.Config{
		Players:     players,
		MaxAttempts: series.Config.MaxAttempts,
	}).Play()

	var playerErr *match.PlayerError
	switch {
	case err == nil:
		if result.Result == game.Draw {
			result.Reason = "full board"
		} else {
			result.Reason = "three in a row"
		}
	case errors.As(err, &playerErr):
		result.Result = game.WonBy(playerErr.Mark.Other())
		result.Reason = playerErr.Err.Error()
	default:
		return result, err
	}

	return result, nil
}

func (series *Series) record(result Result) {
	series.Results = append(series.Results, result)

	switch winner := result.Winner(); winner {
	case -1:
		series.Scores[result.PlayerX].Draws++
		series.Scores[result.PlayerO].Draws++
	default:
		series.Scores[winner].Wins++
		series.Scores[1-winner].Losses++
	}

	logrus.Infof(
		"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s\n",
		result.Number,
		series.Config.Entrants[result.PlayerX].Name,
		series.Config.Entrants[result.PlayerO].Name,
		series.describe(result),
	)
}

func (series *Series) describe(result Result) string {
	if winner := result.Winner(); winner != -1 {
		return fmt.Sprintf("%s wins by %s", series.Config.Entrants[winner].Name, result.Reason)
	}

	return fmt.Sprintf("Draw by %s", result.Reason)
}

// Report writes a table of the scores of both entrants to w.
func (series *Series) Report(w io.Writer) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	for i, entrant := range series.Config.Entrants {
		score := series.Scores[i]
		estimate := stats.Measure(score.Wins, score.Draws, score.Losses)

		fmt.Fprintf(w,
			"║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
			i+1, entrant.Name,
			estimate.Elo, estimate.Margin(),
			score.Wins, score.Losses, score.Draws,
			score.Total())
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}
