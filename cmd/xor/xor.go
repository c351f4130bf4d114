package main

import (
	"fmt"

	"github.com/sharnoff/perceptron"
)

const (
	statusFrequency int = 400
	testFrequency   int = 1000

	// main hyperparameters
	learnRate     float64 = 0.5
	momentum      float64 = 0.9
	batchSize     int     = 1
	maxIterations int     = 8000

	seed int64 = 12

	// where to save/load the network
	path string = "xor.weights"
)

func train(net *perceptron.Network, dataset [][][]float64) {
	trainData, err := perceptron.Data(dataset, batchSize)
	if err != nil {
		panic(err.Error())
	}

	testData, err := perceptron.Data(dataset, 1)
	if err != nil {
		panic(err.Error())
	}

	args := perceptron.TrainArgs{
		TrainData:    trainData,
		TestData:     testData,
		ShouldTest:   perceptron.Every(testFrequency),
		SendStatus:   perceptron.Every(statusFrequency),
		RunCondition: perceptron.TrainUntil(maxIterations),
		IsCorrect:    perceptron.CorrectRound,
		Update: func(r perceptron.Result) {
			kind := "status"
			if r.IsTest {
				kind = "test"
			}

			fmt.Printf("%d, %s, rms %.4f, correct %.2f\n", r.Iteration, kind, r.RMS, r.Correct)
		},
	}

	fmt.Println("Starting training...")
	if err := net.TrainWith(args); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func test(net *perceptron.Network, dataset [][][]float64) {
	testData, err := perceptron.Data(dataset, 1)
	if err != nil {
		panic(err.Error())
	}

	rms, correct, err := net.Test(testData, perceptron.CorrectRound)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Testing... rms %.4f, correct %.2f\n", rms, correct)

	for _, sample := range dataset {
		outs, err := net.Predict(sample[0])
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("	%v -> %.4f (want %v)\n", sample[0], outs, sample[1])
	}
}

func save(net *perceptron.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path, true); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load(conf perceptron.Config) *perceptron.Network {
	fmt.Println("Loading...")
	net, err := perceptron.Load(path, conf)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	dataset := [][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	conf := perceptron.Config{
		Inputs:    2,
		Hidden:    3,
		Outputs:   1,
		LearnRate: learnRate,
		Momentum:  momentum,
		Init:      perceptron.Uniform(seed),
	}

	fmt.Println("Setting up network...")
	net, err := perceptron.New(conf)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	train(net, dataset)
	test(net, dataset)
	save(net)
	net = load(conf)
	test(net, dataset)
}
