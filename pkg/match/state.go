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

package match

import (
	"fmt"

	"laptudirm.com/x/tictactoe/pkg/game"
)

// State is the state of a match: either awaiting a move from ToMove, or
// finished with Result.
type State struct {
	Result game.Result
	ToMove game.Mark
}

// Awaiting reports whether the match is waiting for a move.
func (state State) Awaiting() bool {
	return !state.Result.Terminal()
}

func (state State) String() string {
	switch state.Result {
	case game.InProgress:
		return fmt.Sprintf("awaiting move from %s", state.ToMove)
	case game.Draw:
		return "draw"
	default:
		return fmt.Sprintf("won by %s", state.Result.Winner())
	}
}
