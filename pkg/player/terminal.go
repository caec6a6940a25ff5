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
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Terminal is a Channel to a human player on an interactive terminal.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer

	// Clear makes Send clear the screen before writing.
	Clear bool
}

var _ Channel = (*Terminal)(nil)

// NewTerminal creates a Terminal reading from in and writing to out. The
// screen is cleared before every message only if out is a terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	terminal := &Terminal{
		reader: bufio.NewReader(in),
		writer: out,
	}

	if file, ok := out.(*os.File); ok {
		terminal.Clear = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}

	return terminal
}

// Stdio returns a Terminal on the standard input and output streams.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Send clears the screen and writes the given text.
func (terminal *Terminal) Send(text string) error {
	if terminal.Clear {
		text = clearScreen + text
	}

	_, err := io.WriteString(terminal.writer, text)
	return err
}

// ReadLine blocks until the user enters a line.
func (terminal *Terminal) ReadLine() (string, error) {
	return readLine(terminal.reader)
}
