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

package stats

import "math"

// Estimate is an elo difference measured from a number of games, with its
// 95% confidence interval.
type Estimate struct {
	Lower, Elo, Upper float64
}

// Margin returns the larger distance of the bounds from the estimate.
func (estimate Estimate) Margin() float64 {
	return math.Max(estimate.Upper-estimate.Elo, estimate.Elo-estimate.Lower)
}

// Measure estimates the elo difference of a player against its opponent
// from its number of wins, draws, and losses.
func Measure(ws, ds, ls int) Estimate {
	n := float64(ws + ds + ls)
	if n == 0 {
		return Estimate{}
	}

	score := Score(ws, ds, ls)

	// standard error of the per-game score
	variance := (float64(ws)*sq(1-score) + float64(ds)*sq(0.5-score) + float64(ls)*sq(score)) / n
	deviation := math.Sqrt(variance / n)

	z := phiInv(0.975)
	return Estimate{
		Lower: clampElo(score - z*deviation),
		Elo:   clampElo(score),
		Upper: clampElo(score + z*deviation),
	}
}

// Score returns the fraction of points scored, counting draws as half a
// point.
func Score(ws, ds, ls int) float64 {
	n := float64(ws + ds + ls)
	if n == 0 {
		return 0
	}

	return (float64(ws) + float64(ds)/2) / n
}

// clampElo converts a score to an elo difference. Scores of 0 and 1 have
// no finite elo and are reported as 0.
func clampElo(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}

	return -400 * math.Log10(1/x-1)
}

func sq(x float64) float64 { return x * x }

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
