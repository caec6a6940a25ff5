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

import "strings"

// Script is an in-memory Channel which replays a fixed list of lines and
// records everything sent to it. It stands in for a player in tests and
// dry runs.
type Script struct {
	lines []string
	sent  []string
}

var _ Channel = (*Script)(nil)

// NewScript creates a Script which answers with the given lines, in order.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// Send records the given text.
func (script *Script) Send(text string) error {
	script.sent = append(script.sent, text)
	return nil
}

// ReadLine returns the next scripted line, or ErrEndOfInput if none are
// left.
func (script *Script) ReadLine() (string, error) {
	if len(script.lines) == 0 {
		return "", ErrEndOfInput
	}

	line := script.lines[0]
	script.lines = script.lines[1:]
	return line + "\n", nil
}

// Sent returns every text sent to the Script.
func (script *Script) Sent() []string {
	return script.sent
}

// Messages returns everything sent to the Script as a single string.
func (script *Script) Messages() string {
	return strings.Join(script.sent, "")
}

// Remaining returns the number of lines not read yet.
func (script *Script) Remaining() int {
	return len(script.lines)
}
