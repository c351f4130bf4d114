package perceptron

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	conf := Config{Inputs: 3, Hidden: 4, Outputs: 2, LearnRate: 0.5, Init: Uniform(31)}
	net, err := New(conf)
	if err != nil {
		t.Fatal(err)
	}

	// train a little so the saved state isn't just the initialization
	for i := 0; i < 20; i++ {
		if err := net.Train([]float64{0.1, 0.2, 0.3}, []float64{1, 0}); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "net.weights")
	if err := net.Save(path, false); err != nil {
		t.Fatal(err)
	}

	// the loaded network's random initialization must be fully overwritten
	loaded, err := Load(path, conf)
	if err != nil {
		t.Fatal(err)
	}

	inputs := [][]float64{
		{0, 0, 0},
		{1, -1, 0.5},
		{0.25, 0.75, -2},
	}

	for _, input := range inputs {
		want, err := net.Predict(input)
		if err != nil {
			t.Fatal(err)
		}
		got, err := loaded.Predict(input)
		if err != nil {
			t.Fatal(err)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Predict(%v)[%d] after round trip = %v, expected bit-identical %v",
					input, i, got[i], want[i])
			}
		}
	}
}

func TestSaveRespectsOverwrite(t *testing.T) {
	net, err := New(Config{Inputs: 1, Hidden: 1, Outputs: 1, Init: Uniform(1)})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "net.weights")
	if err := net.Save(path, false); err != nil {
		t.Fatal(err)
	}

	if err := net.Save(path, false); err == nil {
		t.Error("Save over an existing file without overwrite succeeded, expected error")
	}

	if err := net.Save(path, true); err != nil {
		t.Errorf("Save with overwrite failed: %v", err)
	}
}

func TestLoadRejectsTopologyMismatch(t *testing.T) {
	net, err := New(Config{Inputs: 2, Hidden: 2, Outputs: 1, Init: Uniform(1)})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "net.weights")
	if err := net.Save(path, false); err != nil {
		t.Fatal(err)
	}

	// too large: the file runs out of values
	if _, err := Load(path, Config{Inputs: 3, Hidden: 3, Outputs: 2}); err == nil {
		t.Error("Load with a larger topology succeeded, expected error")
	}

	// too small: the file has values left over
	if _, err := Load(path, Config{Inputs: 1, Hidden: 1, Outputs: 1}); err == nil {
		t.Error("Load with a smaller topology succeeded, expected error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.weights")
	if _, err := Load(path, Config{Inputs: 1, Hidden: 1, Outputs: 1}); err == nil {
		t.Error("Load of a missing file succeeded, expected error")
	}
}
