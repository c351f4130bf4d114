package perceptron

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Config holds the construction parameters of a Network. The three layer
// sizes and both hyperparameters are fixed for the lifetime of the instance.
type Config struct {
	// Inputs, Hidden, and Outputs are the number of neurons in each of the
	// three layers. All must be positive.
	Inputs, Hidden, Outputs int

	// LearnRate scales each gradient step, typically in (0, 1].
	LearnRate float64

	// Momentum is the fraction of the previous update step added to the
	// current one, typically in [0, 1).
	Momentum float64

	// Init generates the starting weights and thresholds. If nil, New uses a
	// time-seeded Uniform generator on (-0.5, 0.5).
	Init RNG
}

// neuronCount is the total number of neurons across all three layers.
func (conf Config) neuronCount() int {
	return conf.Inputs + conf.Hidden + conf.Outputs
}

// weightCount is the number of connections: one per input-hidden pair plus
// one per hidden-output pair.
func (conf Config) weightCount() int {
	return conf.Inputs*conf.Hidden + conf.Hidden*conf.Outputs
}

// Network is a three-layer perceptron. It exclusively owns all of its
// buffers; none are shared or aliased outside the instance, so independent
// Networks can always be used from independent goroutines. A single Network
// is not safe for concurrent use.
type Network struct {
	conf Config

	// the activation of every neuron, indexed by global neuron index:
	// [0, in) are inputs, [in, in+hid) hidden, [in+hid, neuronCount) outputs.
	// Overwritten on every forward pass.
	fire []float64

	// all connection weights as two concatenated dense blocks. The first
	// in*hid entries are the input->hidden weights, with the weights of each
	// hidden neuron forming a contiguous run; the remaining hid*out entries
	// are the hidden->output weights laid out the same way.
	matrix []float64

	// per-neuron bias, indexed like fire. Input entries are unused and stay
	// zero.
	thresholds []float64

	// transient per-neuron error state, recomputed by each CalcError
	errs       []float64
	errorDelta []float64

	// gradients accumulated by CalcError, drained to zero by Learn
	accMatrixDelta    []float64
	accThresholdDelta []float64

	// the previous update step, kept across calls to Learn for momentum
	matrixDelta    []float64
	thresholdDelta []float64

	// running sum of squared output errors since the last GetError
	globalError float64

	// whether or not the network should panic when a caller violates a
	// precondition, instead of returning the error
	panicErrors bool
}

// New allocates a Network with the given Config and randomly initializes its
// weights and thresholds. The only failure condition is a non-positive layer
// size.
func New(conf Config) (*Network, error) {
	if conf.Inputs < 1 || conf.Hidden < 1 || conf.Outputs < 1 {
		return nil, errors.Errorf("All layer sizes must be >= 1 (%d, %d, %d)",
			conf.Inputs, conf.Hidden, conf.Outputs)
	}

	if conf.Init == nil {
		conf.Init = Uniform(time.Now().UnixNano())
	}

	net := &Network{
		conf:              conf,
		fire:              make([]float64, conf.neuronCount()),
		matrix:            make([]float64, conf.weightCount()),
		thresholds:        make([]float64, conf.neuronCount()),
		errs:              make([]float64, conf.neuronCount()),
		errorDelta:        make([]float64, conf.neuronCount()),
		accMatrixDelta:    make([]float64, conf.weightCount()),
		accThresholdDelta: make([]float64, conf.neuronCount()),
		matrixDelta:       make([]float64, conf.weightCount()),
		thresholdDelta:    make([]float64, conf.neuronCount()),
	}

	for w := range net.matrix {
		net.matrix[w] = conf.Init.Gen()
	}

	// input neurons have no threshold; those entries stay zero
	for i := conf.Inputs; i < len(net.thresholds); i++ {
		net.thresholds[i] = conf.Init.Gen()
	}

	return net, nil
}

// PanicErrors makes the Network panic precondition violations instead of
// returning them, and returns the same Network.
func (net *Network) PanicErrors() *Network {
	net.panicErrors = true
	return net
}

// InputSize returns the number of input values the Network expects.
func (net *Network) InputSize() int {
	return net.conf.Inputs
}

// OutputSize returns the number of output values the Network produces.
func (net *Network) OutputSize() int {
	return net.conf.Outputs
}

// Predict runs a forward pass on the given inputs and returns the resulting
// outputs, each strictly between 0 and 1. Beyond overwriting the transient
// activations, Predict performs no mutation relevant to training.
func (net *Network) Predict(inputs []float64) ([]float64, error) {
	return net.ComputeOutputs(inputs)
}

// GetError returns the root-mean-square per-output error across the n
// examples whose error has been accumulated since the last call, and resets
// the accumulator to zero. n must match the number of contributing CalcError
// calls; the Network does not track it, and mismatched bookkeeping silently
// produces a meaningless result.
func (net *Network) GetError(n int) (float64, error) {
	if n < 1 {
		if net.panicErrors {
			panic(ErrExamplesNotPositive)
		}

		return 0, ErrExamplesNotPositive
	}

	rms := math.Sqrt(net.globalError / float64(n*net.conf.Outputs))
	net.globalError = 0
	return rms, nil
}
