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

// Package player implements the endpoints a match talks to. A player is
// anything which can be sent text and read lines from, so an interactive
// terminal and a bot running as a subprocess are used the same way.
package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEndOfInput is returned by ReadLine when the player's stream is closed
// before a line is available.
var ErrEndOfInput = errors.New("player: unexpected end of input")

// Channel is a bidirectional text stream to a player.
type Channel interface {
	// Send sends the given text to the player. It is best-effort: a
	// failing Send is reported but the following ReadLine decides if the
	// player is still usable.
	Send(text string) error

	// ReadLine blocks until the player sends a line, which is returned
	// with its line terminator. ErrEndOfInput is returned if the stream
	// has been closed.
	ReadLine() (string, error)
}

// readLine reads a single line from the reader, translating the ways a
// closed stream can show up into ErrEndOfInput. A final line without a
// terminator is still returned as a line.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	case errors.Is(err, io.EOF), errors.Is(err, os.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return "", ErrEndOfInput
	default:
		return "", fmt.Errorf("player: read: %w", err)
	}
}
