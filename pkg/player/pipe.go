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
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Pipe is a Channel to a bot over a pair of pipes: text is written to the
// bot's standard input and lines are read from its standard output.
type Pipe struct {
	name string

	stdin  io.WriteCloser
	stdout io.ReadCloser

	writer *bufio.Writer
	reader *bufio.Reader

	closeOnce sync.Once
	closeErr  error
}

var _ Channel = (*Pipe)(nil)

// NewPipe creates a Pipe which writes to stdin and reads from stdout. The
// Pipe takes ownership of both and closes them in Close.
func NewPipe(name string, stdin io.WriteCloser, stdout io.ReadCloser) *Pipe {
	return &Pipe{
		name: name,

		stdin:  stdin,
		stdout: stdout,

		writer: bufio.NewWriter(stdin),
		reader: bufio.NewReader(stdout),
	}
}

// Name returns the name of the bot on the other end.
func (pipe *Pipe) Name() string {
	return pipe.name
}

// Send writes the given text to the bot and flushes it.
func (pipe *Pipe) Send(text string) error {
	for _, line := range strings.SplitAfter(text, "\n") {
		if line != "" {
			logrus.Tracef("(%s)< %s", pipe.name, strings.TrimRight(line, "\n"))
		}
	}

	if _, err := pipe.writer.WriteString(text); err != nil {
		return err
	}

	return pipe.writer.Flush()
}

// ReadLine blocks until the bot writes a line. ErrEndOfInput is returned
// once the bot closes its output or exits.
func (pipe *Pipe) ReadLine() (string, error) {
	logrus.Tracef("(%s) waiting for a line", pipe.name)
	line, err := readLine(pipe.reader)
	if err != nil {
		logrus.Tracef("(%s) %v", pipe.name, err)
		return "", err
	}

	logrus.Tracef("(%s)> %s", pipe.name, strings.TrimRight(line, "\r\n"))
	return line, nil
}

// Close closes both ends of the Pipe. It is safe to call Close more than
// once; later calls return the result of the first.
func (pipe *Pipe) Close() error {
	pipe.closeOnce.Do(func() {
		pipe.closeErr = errors.Join(pipe.stdin.Close(), pipe.stdout.Close())
	})

	return pipe.closeErr
}
