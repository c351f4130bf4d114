package perceptron

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// sigmoid is the logistic activation applied to every hidden and output
// neuron. Extreme sums saturate to 0 or 1 in floating point; that is accepted
// behavior, not a fault.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ComputeOutputs runs a forward pass on the given inputs, overwriting the
// Network's activations, and returns the output-layer values. Each output is
// strictly between 0 and 1. A following CalcError depends on the activations
// left behind, so it must come before any other forward pass.
func (net *Network) ComputeOutputs(inputs []float64) ([]float64, error) {
	if len(inputs) != net.conf.Inputs {
		err := SizeMismatchError{net.conf.Inputs, len(inputs), "inputs"}
		if net.panicErrors {
			panic(err)
		}

		return nil, err
	}

	in, hid := net.conf.Inputs, net.conf.Hidden

	copy(net.fire[:in], inputs)

	// input -> hidden. The weights of hidden neuron i2 are the contiguous run
	// matrix[w : w+in], scanned in the same order by CalcError.
	w := 0
	for i2 := in; i2 < in+hid; i2++ {
		sum := net.thresholds[i2] + floats.Dot(net.matrix[w:w+in], net.fire[:in])
		net.fire[i2] = sigmoid(sum)
		w += in
	}

	// hidden -> output
	outs := make([]float64, net.conf.Outputs)
	hidFire := net.fire[in : in+hid]
	for i := in + hid; i < len(net.fire); i++ {
		sum := net.thresholds[i] + floats.Dot(net.matrix[w:w+hid], hidFire)
		net.fire[i] = sigmoid(sum)
		outs[i-in-hid] = net.fire[i]
		w += hid
	}

	return outs, nil
}

// CalcError computes the error between the activations left by the last
// forward pass and the given target values, backpropagates it, and adds the
// resulting gradients to the Network's accumulators (along with the squared
// error reported by GetError). Nothing is applied to the weights until Learn.
//
// CalcError may be called several times -- one forward pass each -- before a
// single Learn, accumulating the gradients of a whole batch additively.
func (net *Network) CalcError(targets []float64) error {
	if len(targets) != net.conf.Outputs {
		err := SizeMismatchError{net.conf.Outputs, len(targets), "targets"}
		if net.panicErrors {
			panic(err)
		}

		return err
	}

	in, hid := net.conf.Inputs, net.conf.Hidden
	outStart := in + hid

	for i := in; i < len(net.errs); i++ {
		net.errs[i] = 0
	}

	// output layer error and delta
	for i := outStart; i < len(net.fire); i++ {
		e := targets[i-outStart] - net.fire[i]
		net.errs[i] = e
		net.globalError += e * e
		net.errorDelta[i] = e * net.fire[i] * (1 - net.fire[i])
	}

	// backpropagate through the hidden->output block, scanning the weights in
	// forward-pass order
	w := in * hid
	hidFire := net.fire[in:outStart]
	for i := outStart; i < len(net.fire); i++ {
		delta := net.errorDelta[i]
		floats.AddScaled(net.accMatrixDelta[w:w+hid], delta, hidFire)
		floats.AddScaled(net.errs[in:outStart], delta, net.matrix[w:w+hid])
		net.accThresholdDelta[i] += delta
		w += hid
	}

	// hidden layer deltas from the propagated error
	for i2 := in; i2 < outStart; i2++ {
		net.errorDelta[i2] = net.errs[i2] * net.fire[i2] * (1 - net.fire[i2])
	}

	// backpropagate through the input->hidden block. The error propagated to
	// the input layer is never used; input neurons have nothing to train.
	w = 0
	inFire := net.fire[:in]
	for i2 := in; i2 < outStart; i2++ {
		delta := net.errorDelta[i2]
		floats.AddScaled(net.accMatrixDelta[w:w+in], delta, inFire)
		floats.AddScaled(net.errs[:in], delta, net.matrix[w:w+in])
		net.accThresholdDelta[i2] += delta
		w += in
	}

	return nil
}

// Learn applies one momentum-smoothed gradient step from the accumulated
// deltas to the weights and thresholds, and drains both accumulators to zero.
// This is the only place weights and thresholds change. The applied step is
// kept as the momentum term for the next call.
func (net *Network) Learn() {
	lr, mom := net.conf.LearnRate, net.conf.Momentum

	for w := range net.matrix {
		net.matrixDelta[w] = lr*net.accMatrixDelta[w] + mom*net.matrixDelta[w]
		net.matrix[w] += net.matrixDelta[w]
		net.accMatrixDelta[w] = 0
	}

	for i := net.conf.Inputs; i < len(net.thresholds); i++ {
		net.thresholdDelta[i] = lr*net.accThresholdDelta[i] + mom*net.thresholdDelta[i]
		net.thresholds[i] += net.thresholdDelta[i]
		net.accThresholdDelta[i] = 0
	}
}

// Train runs one online gradient-descent step on a single example: a forward
// pass, error accumulation, and a weight update, in that order.
func (net *Network) Train(inputs, targets []float64) error {
	if _, err := net.ComputeOutputs(inputs); err != nil {
		return errors.Wrapf(err, "Forward pass failed\n")
	}

	if err := net.CalcError(targets); err != nil {
		return errors.Wrapf(err, "Error calculation failed\n")
	}

	net.Learn()
	return nil
}
