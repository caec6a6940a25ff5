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

//go:build !windows

package match

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/player"
)

// scriptedBot writes a bot which answers every prompt with the next of the
// given moves, and then drains its input.
func scriptedBot(t *testing.T, moves ...string) player.BotConfig {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	script := fmt.Sprintf(`#!/bin/sh
for move in %s; do
	while read -r line; do
		case "$line" in
			*"what is your move?"*) break ;;
		esac
	done
	echo "$move"
done
cat >/dev/null
`, strings.Join(moves, " "))

	path := filepath.Join(t.TempDir(), "bot.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return player.BotConfig{Name: filepath.Base(path), Cmd: path}
}

func TestMatch_Bots(t *testing.T) {
	t.Run("Two bots play to a draw", func(t *testing.T) {
		supervisor := player.NewSupervisor()
		defer supervisor.TerminateAll()

		x, _, err := supervisor.Spawn(scriptedBot(t, "b2", "c1", "a2", "b3", "c3"))
		require.NoError(t, err)
		o, _, err := supervisor.Spawn(scriptedBot(t, "a1", "a3", "c2", "b1"))
		require.NoError(t, err)

		match := New(Config{Players: [game.MarkN]player.Channel{x, o}})
		result, err := match.Play()
		require.NoError(t, err)

		assert.Equal(t, game.Draw, result)
		assert.Equal(t, "  O O X\n  X X O\n  O X X\n", match.Board().String())
	})

	t.Run("A bot which closes its output ends the match", func(t *testing.T) {
		supervisor := player.NewSupervisor()
		defer supervisor.TerminateAll()

		x, _, err := supervisor.Spawn(scriptedBot(t, "b2"))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "quitter.sh")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexec >&-\nexec sleep 60\n"), 0755))
		o, _, err := supervisor.Spawn(player.BotConfig{Cmd: path})
		require.NoError(t, err)

		match := New(Config{Players: [game.MarkN]player.Channel{x, o}})
		_, err = match.Play()

		assert.ErrorIs(t, err, player.ErrEndOfInput)
		var playerErr *PlayerError
		require.ErrorAs(t, err, &playerErr)
		assert.Equal(t, game.O, playerErr.Mark)
	})
}
