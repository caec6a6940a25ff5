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
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SPIN is the spinner character set shown while a bot is thinking.
const SPIN = 11

// Thinking wraps a Channel and shows a spinner while waiting for it to
// send a line. It is used for bots when a human is watching the terminal.
type Thinking struct {
	Channel

	spinner *spinner.Spinner
}

// NewThinking wraps the given Channel. The spinner is written to w, and
// is only shown if w is a terminal.
func NewThinking(channel Channel, label string, w io.Writer) *Thinking {
	return &Thinking{
		Channel: channel,
		spinner: spinner.New(
			spinner.CharSets[SPIN], 100*time.Millisecond,
			spinner.WithWriter(w),
			spinner.WithSuffix(" "+label),
		),
	}
}

// ReadLine reads a line from the wrapped channel with the spinner running.
func (thinking *Thinking) ReadLine() (string, error) {
	thinking.spinner.Start()
	defer thinking.spinner.Stop()

	return thinking.Channel.ReadLine()
}
