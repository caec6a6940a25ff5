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
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/player"
)

// tictactoe bots
func Bots(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Lists the registered bots",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.config.Bots) == 0 {
				fmt.Println("\x1b[31mNo Bots Registered.\x1b[0m")
				return nil
			}

			names := make([]string, 0, len(opts.config.Bots))
			for name := range opts.config.Bots {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Print("\u001B[32mRegistered Bots\u001B[0m:\n\n")
			for _, name := range names {
				bot := opts.config.Bots[name]
				fmt.Printf("- \x1b[34m%-20s\x1b[0m %s\n", name+":", strings.TrimSpace(bot.Cmd+" "+bot.Arg))
			}

			return nil
		},
	}

	cmd.AddCommand(addBot(opts))
	cmd.AddCommand(removeBot(opts))

	return cmd
}

// tictactoe bots add
func addBot(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add name command [args...]",
		Short: "Register a bot under a name",
		Args:  cobra.MinimumNArgs(2),
		Long: heredoc.Doc(`add registers a bot so that it can be used by its name in
			"tictactoe play" and "tictactoe series". A bot registered
			under an existing name replaces the old one.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			stderr, _ := cmd.Flags().GetString("stderr")

			opts.config.AddBot(args[0], player.BotConfig{
				Cmd:    args[1],
				Arg:    strings.Join(args[2:], " "),
				Dir:    dir,
				Stderr: stderr,
			})

			if err := opts.config.Save(opts.configFile); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mRegistered Bot:\x1b[0m %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Working directory of the bot")
	cmd.Flags().String("stderr", "", "File to append the bot's standard error to")

	return cmd
}

// tictactoe bots remove
func removeBot(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove name",
		Short: "Unregister the given bot",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.config.RemoveBot(args[0]) {
				fmt.Printf("\nBot \x1b[32m%s\x1b[0m is not registered.\n", args[0])
				return nil
			}

			if err := opts.config.Save(opts.configFile); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mUnregistered Bot:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
