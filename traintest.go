package perceptron

import (
	"math"

	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send training samples to the Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that
	// of the network's input layer.
	Inputs []float64

	// Targets is the expected output of the network, given the input.
	Targets []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Targets) == net.OutputSize()
}

// DataSupplier is the primary method of providing datasets to the Network,
// either for training or testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)

	// BatchEnded returns whether or not the most recent batch has ended,
	// given the current iteration. Weights are only updated at batch ends;
	// the gradients of everything since the previous end are accumulated and
	// applied as one step. To not use batching, BatchEnded should always
	// return true (effective batch size of 1).
	//
	// BatchEnded will be called after the last Datum in the batch has been
	// retrieved. It will not be called if the DataSupplier is being used for
	// testing.
	BatchEnded(int) bool

	// DoneTesting indicates whether or not the testing process has finished,
	// given the number of samples tested so far. This will only be called if
	// the DataSupplier is actually used for providing testing data.
	DoneTesting(int) bool
}

// A wrapper for sending back the progress of the training or testing
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Root-mean-square per-output error, from GetError
	RMS float64

	// The fraction correct, as per IsCorrect() from TrainArgs
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

type TrainArgs struct {
	TrainData DataSupplier

	// TestData is the source of cross-validation data while training. This
	// can be nil if ShouldTest is also nil
	TestData DataSupplier

	// ShouldTest indicates whether or not testing should be done before the
	// current iteration. ShouldTest can be left nil to represent an
	// unconditional false.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information
	// about the status of the training since the last time 'true' was
	// returned. SendStatus can be left nil to represent an unconditional
	// false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine
	// if training should continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given
	// the target outputs. In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// Update is how testing and status updates are returned. If both
	// ShouldTest and SendStatus are nil, then Update can also be left nil.
	Update func(Result)
}

// TrainWith runs the training loop described by 'args': each iteration is a
// forward pass and error accumulation on the next Datum, with a weight update
// whenever the DataSupplier reports the end of a batch.
//
// TrainWith drains the Network's error accumulator whenever it emits a status
// Result, so callers mixing TrainWith with their own GetError bookkeeping
// should not also set SendStatus.
func (net *Network) TrainWith(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			} else {
				args.ShouldTest = func(i int) bool { return false }
			}
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	iter := 0
	var statusCorrect float64
	var statusSize int

	for {
		if args.SendStatus(iter) && statusSize != 0 {
			rms, err := net.GetError(statusSize)
			if err != nil {
				return errors.Wrapf(err, "Failed to get error for status on iteration %d\n", iter)
			}

			r := Result{
				Iteration: iter,
				RMS:       rms,
				Correct:   statusCorrect / float64(statusSize),
				IsTest:    false,
			}

			args.Update(r)

			statusCorrect = 0
			statusSize = 0
		}

		if args.ShouldTest(iter) {
			rms, correct, err := net.Test(args.TestData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed\n", iter)
			}

			r := Result{
				Iteration: iter,
				RMS:       rms,
				Correct:   correct,
				IsTest:    true,
			}

			args.Update(r)
		}

		if !args.RunCondition(iter) {
			break
		}

		d, err := args.TrainData.Get(iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d\n", iter)
		} else if !d.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", iter)
		}

		outs, err := net.ComputeOutputs(d.Inputs)
		if err != nil {
			return errors.Wrapf(err, "Forward pass failed on iteration %d\n", iter)
		}

		if err = net.CalcError(d.Targets); err != nil {
			return errors.Wrapf(err, "Error calculation failed on iteration %d\n", iter)
		}

		if args.TrainData.BatchEnded(iter) {
			net.Learn()
		}

		if args.IsCorrect(outs, d.Targets) {
			statusCorrect += 1.0
		}
		statusSize++
		iter++
	}

	return nil
}

// Test runs every sample of 'data' through the Network and returns the
// root-mean-square per-output error and the fraction correct (as judged by
// 'isCorrect', which may be nil). Test does not touch the weights, the
// gradient accumulators, or the error accumulator behind GetError; only the
// transient activations are overwritten.
func (net *Network) Test(data DataSupplier, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if data == nil {
		return 0, 0, errors.Errorf("Can't test, data is nil")
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	var sumSq, correct float64
	size := 0

	for !data.DoneTesting(size) {
		d, err := data.Get(size)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d\n", size)
		} else if !d.Fits(net) {
			return 0, 0, errors.Errorf("Test sample %d does not fit Network dimensions", size)
		}

		outs, err := net.ComputeOutputs(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Forward pass failed on test sample %d\n", size)
		}

		for i := range outs {
			diff := d.Targets[i] - outs[i]
			sumSq += diff * diff
		}

		if isCorrect(outs, d.Targets) {
			correct += 1.0
		}

		size++
	}

	if size == 0 {
		return 0, 0, nil
	}

	rms := math.Sqrt(sumSq / float64(size*net.conf.Outputs))
	return rms, correct / float64(size), nil
}

type internalSupplier struct {
	get         func(int) (Datum, error)
	batchEnded  func(int) bool
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

func (s internalSupplier) BatchEnded(iter int) bool {
	return s.batchEnded(iter)
}

func (s internalSupplier) DoneTesting(size int) bool {
	return s.doneTesting(size)
}

// Data converts a 3D dataset of float64 to a DataSupplier, which can be used
// for training or testing. dataset indexing is: [data index][inputs,
// targets][values]. Training cycles through the dataset in order; testing
// makes a single pass.
//
// N.B.: Data does not check if the data fit a certain network; that will be
// done during training/testing
func Data(dataset [][][]float64, batchSize int) (DataSupplier, error) {
	d := dataset
	if len(d) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	} else if batchSize < 1 {
		return nil, errors.Errorf("batch size must be >= 1 (%d)", batchSize)
	}

	// check we won't get indexes out of bounds
	for i := range d {
		if len(d[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}
	}

	is := internalSupplier{
		get: func(iter int) (Datum, error) {
			i := iter % len(d)
			return Datum{d[i][0], d[i][1]}, nil
		},
		batchEnded: EndEvery(batchSize),
		doneTesting: func(size int) bool {
			return size >= len(d)
		},
	}

	return is, nil
}
