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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/series"
)

// tictactoe series
func Series(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series player1 player2",
		Short: "Play a series of matches between two players",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`series plays a number of matches between two players, who
			switch sides after every match, and reports their scores.

			Players are specified like for "tictactoe play". Bots are
			restarted for every match. A player which fails to start or
			to give a valid move loses the match.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := cmd.Flags().GetInt("games")
			if err != nil {
				return err
			}

			tour, err := series.New(series.Config{
				Entrants:    [2]series.Entrant{opts.entrant(args[0]), opts.entrant(args[1])},
				Games:       games,
				MaxAttempts: opts.config.MaxAttempts,
			})
			if err != nil {
				return err
			}

			if err := tour.Start(); err != nil {
				return err
			}

			tour.Report(os.Stdout)
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 10, "Number of matches to play")

	return cmd
}
