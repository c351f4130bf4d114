// Package perceptron implements a fixed three-layer (input, hidden, output)
// fully-connected neural network with logistic-sigmoid activations, trained by
// backpropagation with momentum.
//
// Creating Networks
//
// Networks are constructed from a Config, which fixes the topology and the
// training hyperparameters for the lifetime of the instance:
//
//		net, err := perceptron.New(perceptron.Config{
//			Inputs:    2,
//			Hidden:    3,
//			Outputs:   1,
//			LearnRate: 0.5,
//			Momentum:  0.9,
//		})
//
// Weights and thresholds start at uniformly random values in (-0.5, 0.5). The
// generator behind them can be replaced through Config.Init, which allows
// deterministic initialization:
//
//		conf.Init = perceptron.Uniform(seed)
//
// Training
//
// The lowest-level surface is the trio ComputeOutputs, CalcError, and Learn,
// which must be called in that order. CalcError may be repeated (one forward
// pass per call) to accumulate the gradients of several examples before a
// single Learn applies them:
//
//		net.ComputeOutputs(inputs)
//		net.CalcError(targets)
//		net.Learn()
//
// Train performs exactly that sequence for a single example; Predict is a
// forward pass alone. GetError reports the root-mean-square per-output error
// across the examples accumulated since it was last called, and resets the
// accumulator.
//
// For whole datasets, TrainWith runs the callback-driven training loop
// described by TrainArgs, applying weight updates at the batch boundaries its
// DataSupplier reports. See cmd/xor for a complete program.
//
// A Network is not safe for concurrent use; ComputeOutputs, CalcError, and
// Learn share transient state scoped to the instance. Concurrency belongs
// across instances, which share nothing -- see TrainReplicas.
//
// Persistence
//
// Save writes the weights followed by the thresholds as a flat sequence of
// little-endian IEEE-754 doubles; Load rebuilds a Network of the same topology
// from that file with bit-identical behavior.
package perceptron
