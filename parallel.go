package perceptron

import (
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

// ReplicaResult is the outcome of training one independently seeded Network.
type ReplicaResult struct {
	Seed int64
	Net  *Network

	// RMS is the replica's root-mean-square error over the scoring data,
	// measured after training.
	RMS float64

	// Err is non-nil if this replica failed to build or train.
	Err error
}

// TrainReplicas builds one Network per seed from 'conf' (with Config.Init
// replaced by Uniform(seed)), trains each by calling 'train' on it, and
// scores each on 'data'. At most 'maxWorkers' replicas run at a time; if
// maxWorkers < 1, all run at once.
//
// Every replica owns its buffers outright, so this is the supported form of
// concurrent training: many instances, never one. 'train' must confine
// itself to the Network it is given, and 'data' must be safe for concurrent
// reads (suppliers from Data are).
//
// TrainReplicas returns the per-seed results and the index of the replica
// with the lowest RMS. It returns an error only if every replica failed;
// individual failures are reported in their ReplicaResult.
func TrainReplicas(conf Config, seeds []int64, maxWorkers int, data DataSupplier, train func(*Network) error) ([]ReplicaResult, int, error) {
	if train == nil {
		panic(NilArgError{"train function"})
	} else if data == nil {
		panic(NilArgError{"DataSupplier"})
	}

	if len(seeds) == 0 {
		return nil, -1, errors.Errorf("no seeds given (len == 0)")
	}

	if maxWorkers < 1 {
		maxWorkers = len(seeds)
	}

	results := make([]ReplicaResult, len(seeds))

	workers := pool.New().WithMaxGoroutines(maxWorkers)
	for i, seed := range seeds {
		i, seed := i, seed

		workers.Go(func() {
			results[i].Seed = seed

			c := conf
			c.Init = Uniform(seed)

			net, err := New(c)
			if err != nil {
				results[i].Err = errors.Wrapf(err, "Couldn't build replica %d\n", i)
				return
			}

			if err = train(net); err != nil {
				results[i].Err = errors.Wrapf(err, "Training replica %d failed\n", i)
				return
			}

			rms, _, err := net.Test(data, nil)
			if err != nil {
				results[i].Err = errors.Wrapf(err, "Scoring replica %d failed\n", i)
				return
			}

			results[i].Net = net
			results[i].RMS = rms
		})
	}
	workers.Wait()

	best := -1
	for i := range results {
		if results[i].Err != nil {
			continue
		}

		if best == -1 || results[i].RMS < results[best].RMS {
			best = i
		}
	}

	if best == -1 {
		return results, -1, errors.Errorf("all %d replicas failed", len(seeds))
	}

	return results, best, nil
}
