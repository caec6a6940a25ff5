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
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/config"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/series"
)

// Human is the player spec for the user at the terminal.
const Human = "human"

// options are shared by all the commands.
type options struct {
	configFile string
	config     *config.Config

	// terminal is shared by all human players so that they read from a
	// single buffered stdin.
	terminal *player.Terminal
}

// entrant resolves a player spec, which is either Human, the name of
// a registered bot, or a command line starting a bot.
func (opts *options) entrant(spec string) series.Entrant {
	if spec == Human || spec == "" {
		return series.Entrant{
			Name: Human,
			Open: func(*player.Supervisor) (player.Channel, error) {
				if opts.terminal == nil {
					opts.terminal = player.Stdio()
				}

				return opts.terminal, nil
			},
		}
	}

	bot, found := opts.config.Bot(spec)
	if !found {
		bot = player.CommandConfig(spec)
	}

	return series.Bot(bot)
}

// terminateOnSignal kills all the bots of the supervisor and exits when
// the process is interrupted. Reads from a human can't be interrupted, so
// exiting is the only way to end the match then.
func terminateOnSignal(supervisor *player.Supervisor) (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-signals:
			supervisor.TerminateAll()
			logrus.Fatalf("%s: bots terminated", sig)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(signals)
			close(done)
		})
	}
}
