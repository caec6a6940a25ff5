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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/tictactoe/pkg/player"
)

const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

var (
	// Directory is the path to the directory where the configuration
	// file is stored by default.
	Directory = filepath.Join(xdg.ConfigHome, "tictactoe")

	// File is the path to the default configuration file.
	File = filepath.Join(Directory, "config.yaml")
)

// Config is the configuration of tictactoe. Every value except the bot
// registry can be overridden with an environment variable.
type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	MaxAttempts int    `yaml:"max-attempts" env:"TICTACTOE_MAX_ATTEMPTS" env-default:"100"`

	Bots BotList `yaml:"bots,omitempty"`
}

// BotList maps the names of registered bots to their configs.
type BotList map[string]player.BotConfig

// Load reads the configuration file at path. A missing file is not an
// error, the defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	var config Config

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if config.Bots == nil {
		config.Bots = BotList{}
	}

	for name, bot := range config.Bots {
		bot.Name = name
		config.Bots[name] = bot
	}

	return &config, nil
}

// Save writes the configuration to the file at path, creating its
// directory if needed.
func (config *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return err
	}

	// Bot names are already the keys of the list.
	stored := *config
	stored.Bots = make(BotList, len(config.Bots))
	for name, bot := range config.Bots {
		bot.Name = ""
		stored.Bots[name] = bot
	}

	file, err := yaml.Marshal(&stored)
	if err != nil {
		return err
	}

	return os.WriteFile(path, file, FilePermissions)
}

// Level returns the configured logging level.
func (config *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(config.LogLevel)
}

// Bot returns the registered bot with the given name.
func (config *Config) Bot(name string) (player.BotConfig, bool) {
	bot, found := config.Bots[name]
	return bot, found
}

// AddBot registers a bot under the given name, replacing any bot already
// registered under it.
func (config *Config) AddBot(name string, bot player.BotConfig) {
	if config.Bots == nil {
		config.Bots = BotList{}
	}

	bot.Name = name
	config.Bots[name] = bot
}

// RemoveBot unregisters the bot with the given name. It reports whether
// such a bot was registered.
func (config *Config) RemoveBot(name string) bool {
	if _, found := config.Bots[name]; !found {
		return false
	}

	delete(config.Bots, name)
	return true
}
