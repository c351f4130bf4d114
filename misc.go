package perceptron

import (
	"math"
)

// CorrectRound rounds each output at 0.5 and reports whether every rounded
// value equals its target. Outputs are sigmoid-bounded to (0, 1), so this
// matches binary targets.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest just returns whether or not the largest value in each is at
// the same index.
func CorrectHighest(outs, targets []float64) bool {
	highest := func(vs []float64) int {
		h := 0
		for i := range vs {
			if vs[i] > vs[h] {
				h = i
			}
		}

		return h
	}

	return highest(outs) == highest(targets)
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus or
// TrainArgs.ShouldTest. 'frequency' is in units of iterations.
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// EndEvery returns a function that reports true on the last iteration of
// every run of 'frequency' iterations, for use as a DataSupplier's
// BatchEnded.
func EndEvery(frequency int) func(int) bool {
	if frequency == 1 {
		return func(iteration int) bool {
			return true
		}
	}

	return func(iteration int) bool {
		return iteration%frequency == frequency-1
	}
}
