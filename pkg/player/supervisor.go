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

package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// BotConfig describes how to start a bot.
type BotConfig struct {
	Name string `yaml:"name,omitempty"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir,omitempty"`
	Arg  string `yaml:"arg,omitempty"`

	// Stderr is a file the bot's standard error is appended to. The bot
	// inherits the supervisor's standard error if it is empty.
	Stderr string `yaml:"stderr,omitempty"`
}

// CommandConfig creates a BotConfig from a command line, like "./bot -q".
func CommandConfig(command string) BotConfig {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return BotConfig{}
	}

	return BotConfig{
		Name: fields[0],
		Cmd:  fields[0],
		Arg:  strings.Join(fields[1:], " "),
	}
}

var ErrNoCommand = errors.New("player: no command to spawn")

// Process is a bot process started by a Supervisor.
type Process struct {
	cmd    *exec.Cmd
	pipe   *Pipe
	stderr *os.File
}

// Pid returns the process id of the bot.
func (process *Process) Pid() int {
	return process.cmd.Process.Pid
}

// Exited reports whether the process has exited and been reaped.
func (process *Process) Exited() bool {
	return process.cmd.ProcessState != nil
}

// Supervisor launches bots and keeps track of them so that none of them
// outlives the match they were started for.
type Supervisor struct {
	// Stderr is where bots without a Stderr file write their errors.
	Stderr io.Writer

	mu        sync.Mutex
	processes []*Process
}

// NewSupervisor creates a Supervisor with no running processes.
func NewSupervisor() *Supervisor {
	return &Supervisor{Stderr: os.Stderr}
}

// Len returns the number of processes being tracked.
func (supervisor *Supervisor) Len() int {
	supervisor.mu.Lock()
	defer supervisor.mu.Unlock()
	return len(supervisor.processes)
}

// Spawn starts the given bot with its standard input and output connected
// to a new Pipe. The process is tracked until TerminateAll is called. If
// Spawn fails nothing is left behind: every file it opened is closed.
func (supervisor *Supervisor) Spawn(config BotConfig) (*Pipe, *Process, error) {
	if config.Cmd == "" {
		return nil, nil, ErrNoCommand
	}

	if config.Name == "" {
		config.Name = config.Cmd
	}

	// engine -> bot
	toBotRead, toBotWrite, err := os.Pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("player: spawn %s: %w", config.Name, err)
	}

	// bot -> engine
	fromBotRead, fromBotWrite, err := os.Pipe()
	if err != nil {
		closeFiles(toBotRead, toBotWrite)
		return nil, nil, fmt.Errorf("player: spawn %s: %w", config.Name, err)
	}

	process := &Process{cmd: exec.Command(config.Cmd, strings.Fields(config.Arg)...)}
	process.cmd.Dir = config.Dir
	process.cmd.Stdin = toBotRead
	process.cmd.Stdout = fromBotWrite
	process.cmd.Stderr = supervisor.Stderr
	isolate(process.cmd)

	if config.Stderr != "" {
		process.stderr, err = os.OpenFile(config.Stderr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			closeFiles(toBotRead, toBotWrite, fromBotRead, fromBotWrite)
			return nil, nil, fmt.Errorf("player: spawn %s: %w", config.Name, err)
		}

		process.cmd.Stderr = process.stderr
	}

	if err := process.cmd.Start(); err != nil {
		closeFiles(toBotRead, toBotWrite, fromBotRead, fromBotWrite, process.stderr)
		return nil, nil, fmt.Errorf("player: spawn %s: %w", config.Name, err)
	}

	// The child has its own copies of its ends. Closing ours makes reads
	// see an EOF as soon as the bot closes its output or exits.
	closeFiles(toBotRead, fromBotWrite)

	process.pipe = NewPipe(config.Name, toBotWrite, fromBotRead)

	supervisor.mu.Lock()
	supervisor.processes = append(supervisor.processes, process)
	supervisor.mu.Unlock()

	logrus.Debugf("\x1b[34m%s\x1b[0m %s (pid %d)", config.Cmd, config.Arg, process.Pid())
	return process.pipe, process, nil
}

// TerminateAll kills every tracked process along with any process it
// started, waits for the bots to exit, releases their pipes and forgets
// them. No process started by the Supervisor is running or left unreaped
// once it returns.
func (supervisor *Supervisor) TerminateAll() {
	supervisor.mu.Lock()
	defer supervisor.mu.Unlock()

	for _, process := range supervisor.processes {
		if err := kill(process.cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logrus.Debugf("player: kill %d: %v", process.Pid(), err)
		}
	}

	for _, process := range supervisor.processes {
		// The error is the kill signal in most cases, which is expected.
		err := process.cmd.Wait()
		logrus.Debugf("player: reaped %d: %v", process.Pid(), err)

		_ = process.pipe.Close()
		if process.stderr != nil {
			_ = process.stderr.Close()
		}
	}

	supervisor.processes = nil
}

func closeFiles(files ...*os.File) {
	for _, file := range files {
		if file != nil {
			_ = file.Close()
		}
	}
}
