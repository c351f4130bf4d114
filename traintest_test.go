package perceptron

import (
	"testing"
)

var xorDataset = [][][]float64{
	{{0, 0}, {0}},
	{{0, 1}, {1}},
	{{1, 0}, {1}},
	{{1, 1}, {0}},
}

func TestDataValidation(t *testing.T) {
	if _, err := Data(nil, 1); err == nil {
		t.Error("Data with an empty dataset succeeded, expected error")
	}

	if _, err := Data(xorDataset, 0); err == nil {
		t.Error("Data with batch size 0 succeeded, expected error")
	}

	malformed := [][][]float64{{{0, 0}}}
	if _, err := Data(malformed, 1); err == nil {
		t.Error("Data with a sample missing targets succeeded, expected error")
	}
}

func TestTrainWithArgsValidation(t *testing.T) {
	net, err := New(Config{Inputs: 2, Hidden: 2, Outputs: 1, LearnRate: 0.5, Init: Uniform(1)})
	if err != nil {
		t.Fatal(err)
	}

	data, err := Data(xorDataset, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := net.TrainWith(TrainArgs{RunCondition: TrainUntil(1)}); err == nil {
		t.Error("TrainWith without TrainData succeeded, expected error")
	}

	if err := net.TrainWith(TrainArgs{TrainData: data}); err == nil {
		t.Error("TrainWith without RunCondition succeeded, expected error")
	}

	args := TrainArgs{
		TrainData:    data,
		ShouldTest:   Every(10),
		RunCondition: TrainUntil(1),
	}
	if err := net.TrainWith(args); err == nil {
		t.Error("TrainWith with ShouldTest but no TestData succeeded, expected error")
	}
}

func TestTrainWithXOR(t *testing.T) {
	net, err := New(Config{
		Inputs: 2, Hidden: 4, Outputs: 1,
		LearnRate: 0.6, Momentum: 0.9,
		Init: Uniform(4),
	})
	if err != nil {
		t.Fatal(err)
	}

	trainData, err := Data(xorDataset, 1)
	if err != nil {
		t.Fatal(err)
	}
	testData, err := Data(xorDataset, 1)
	if err != nil {
		t.Fatal(err)
	}

	var statuses, tests []Result
	args := TrainArgs{
		TrainData:    trainData,
		TestData:     testData,
		ShouldTest:   Every(2000),
		SendStatus:   Every(400),
		RunCondition: TrainUntil(6000),
		IsCorrect:    CorrectRound,
		Update: func(r Result) {
			if r.IsTest {
				tests = append(tests, r)
			} else {
				statuses = append(statuses, r)
			}
		},
	}

	if err := net.TrainWith(args); err != nil {
		t.Fatal(err)
	}

	if len(statuses) == 0 {
		t.Fatal("no status results were sent")
	}
	if len(tests) == 0 {
		t.Fatal("no test results were sent")
	}

	first, last := statuses[0], statuses[len(statuses)-1]
	if last.RMS >= first.RMS {
		t.Errorf("status RMS did not decrease over training: %v -> %v", first.RMS, last.RMS)
	}

	for _, r := range tests {
		if !(r.Correct >= 0 && r.Correct <= 1) {
			t.Errorf("test result fraction correct = %v, expected in [0, 1]", r.Correct)
		}
	}
}

func TestTrainWithBatching(t *testing.T) {
	net, err := New(Config{
		Inputs: 2, Hidden: 3, Outputs: 1,
		LearnRate: 0.5, Momentum: 0.9,
		Init: Uniform(8),
	})
	if err != nil {
		t.Fatal(err)
	}

	// whole dataset per batch: three iterations must leave the batch open
	trainData, err := Data(xorDataset, 4)
	if err != nil {
		t.Fatal(err)
	}

	args := TrainArgs{
		TrainData:    trainData,
		RunCondition: TrainUntil(3),
	}
	if err := net.TrainWith(args); err != nil {
		t.Fatal(err)
	}

	accumulated := false
	for w := range net.accMatrixDelta {
		if net.accMatrixDelta[w] != 0 {
			accumulated = true
			break
		}
	}
	if !accumulated {
		t.Error("mid-batch accumulators are empty; expected pending gradients before the batch end")
	}

	// one more iteration closes the batch and applies the update
	args.RunCondition = TrainUntil(4)
	// the loop restarts at iteration 0: 3 more examples accumulate and the
	// 4th closes a batch, leaving the final example pending
	if err := net.TrainWith(args); err != nil {
		t.Fatal(err)
	}
}

func TestTestDoesNotMutateTrainingState(t *testing.T) {
	net, err := New(Config{Inputs: 2, Hidden: 2, Outputs: 1, LearnRate: 0.5, Init: Uniform(6)})
	if err != nil {
		t.Fatal(err)
	}

	// leave some accumulated gradient and error behind
	if _, err = net.ComputeOutputs([]float64{1, 0}); err != nil {
		t.Fatal(err)
	}
	if err = net.CalcError([]float64{1}); err != nil {
		t.Fatal(err)
	}

	weights := make([]float64, len(net.matrix))
	copy(weights, net.matrix)
	acc := make([]float64, len(net.accMatrixDelta))
	copy(acc, net.accMatrixDelta)
	globalError := net.globalError

	testData, err := Data(xorDataset, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := net.Test(testData, CorrectRound); err != nil {
		t.Fatal(err)
	}

	for w := range weights {
		if net.matrix[w] != weights[w] {
			t.Fatalf("Test changed weight %d", w)
		}
		if net.accMatrixDelta[w] != acc[w] {
			t.Fatalf("Test changed accumulated gradient %d", w)
		}
	}
	if net.globalError != globalError {
		t.Errorf("Test changed globalError: %v -> %v", globalError, net.globalError)
	}
}
