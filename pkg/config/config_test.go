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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/player"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file uses the defaults", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 100, config.MaxAttempts)
		assert.Equal(t, "info", config.LogLevel)
		assert.Empty(t, config.Bots)

		level, err := config.Level()
		require.NoError(t, err)
		assert.Equal(t, logrus.InfoLevel, level)
	})

	t.Run("Environment overrides the defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_MAX_ATTEMPTS", "5")
		t.Setenv("TICTACTOE_LOG_LEVEL", "debug")

		config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 5, config.MaxAttempts)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("Reads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"max-attempts: 7\n"+
				"bots:\n"+
				"  corner:\n"+
				"    cmd: ./corner\n"+
				"    arg: --fast\n",
		), FilePermissions))

		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 7, config.MaxAttempts)
		assert.Equal(t, "info", config.LogLevel)

		bot, found := config.Bot("corner")
		require.True(t, found)
		assert.Equal(t, player.BotConfig{Name: "corner", Cmd: "./corner", Arg: "--fast"}, bot)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("TICTACTOE_MAX_ATTEMPTS", "3")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max-attempts: 7\n"), FilePermissions))

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, config.MaxAttempts)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max-attempts: [\n"), FilePermissions))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestConfig_Bots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	config, err := Load(path)
	require.NoError(t, err)

	config.AddBot("center", player.BotConfig{Cmd: "./center", Dir: "/tmp"})
	config.AddBot("corner", player.BotConfig{Cmd: "./corner"})
	assert.True(t, config.RemoveBot("corner"))
	assert.False(t, config.RemoveBot("corner"))

	require.NoError(t, config.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "name:")

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, loaded.Bots, 1)
	bot, found := loaded.Bot("center")
	require.True(t, found)
	assert.Equal(t, player.BotConfig{Name: "center", Cmd: "./center", Dir: "/tmp"}, bot)
}
