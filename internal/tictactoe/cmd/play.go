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

package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/match"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/protocol"
)

// tictactoe play
func Play(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [--x player] [--o player]",
		Short: "Play a single match",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play plays a single match of tic-tac-toe. X moves first.

			Each player is either "human", for the user at the terminal,
			the name of a bot registered with "tictactoe bots add", or
			the command line of a bot executable. Bots read the board
			from their standard input and answer with lines like "a3"
			on their standard output, just like a human would type.

			The match ends with an error if a player closes its input or
			keeps sending invalid moves.`),
		Example: heredoc.Doc(`
			$ tictactoe play
			$ tictactoe play --o ./bots/corner
			$ tictactoe play --x "python3 bot.py --fast" --o center`),

		RunE: func(cmd *cobra.Command, args []string) error {
			specs := [game.MarkN]string{
				cmd.Flag("x").Value.String(),
				cmd.Flag("o").Value.String(),
			}

			supervisor := player.NewSupervisor()
			defer supervisor.TerminateAll()

			stop := terminateOnSignal(supervisor)
			defer stop()

			var players [game.MarkN]player.Channel
			humans := 0
			for i, spec := range specs {
				entrant := opts.entrant(spec)
				channel, err := entrant.Open(supervisor)
				if err != nil {
					return err
				}

				if entrant.Name == Human {
					humans++
				}

				players[i] = channel
			}

			// Show that something is happening on the other side while a
			// human waits for a bot.
			if humans == 1 {
				for i, channel := range players {
					if _, ok := channel.(*player.Pipe); ok {
						mark := game.Mark(i + 1)
						players[i] = player.NewThinking(channel, fmt.Sprintf("player %s is thinking...", mark), os.Stderr)
					}
				}
			}

			m := match.New(match.Config{
				Players:     players,
				MaxAttempts: opts.config.MaxAttempts,
			})

			logrus.Debugf("match %s: %s vs %s", m.ID, specs[0], specs[1])
			result, err := m.Play()
			if err != nil {
				return err
			}

			// Nobody at the terminal has seen the board yet.
			if humans == 0 {
				fmt.Print(protocol.RenderResult(m.Board(), result))
			}

			logrus.Infof("Result: %s", result)
			return nil
		},
	}

	cmd.Flags().String("x", Human, "Player X")
	cmd.Flags().String("o", Human, "Player O")

	return cmd
}
