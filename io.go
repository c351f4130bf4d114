package perceptron

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// The saved form of a Network is its weights followed by its thresholds: a
// flat sequence of weightCount + neuronCount little-endian IEEE-754 doubles,
// with no header. Topology is not stored; the caller supplies it again at
// load time. Fixed-width encoding keeps round trips bit-exact.

// Save writes the Network's weights and thresholds to the file at 'path'.
//
// If 'overwrite' is false and the file already exists, Save will return error.
func (net *Network) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save network, file %q already exists and overwrite is not enabled", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %q\n", path)
	}

	defer f.Close()

	if err = net.encode(f); err != nil {
		return errors.Wrapf(err, "Can't save network to %q\n", path)
	}

	return nil
}

// Load reads a Network previously written by Save. 'conf' must describe the
// same topology the file was saved with; Load validates the file's length
// against it. The loaded Network's outputs are bit-identical to the saved
// one's.
func Load(path string, conf Config) (*Network, error) {
	net, err := New(conf)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network\n")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("Can't load network, couldn't open file %q", path)
	}

	defer f.Close()

	if err = net.decode(f); err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q\n", path)
	}

	return net, nil
}

func (net *Network) encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, net.matrix); err != nil {
		return errors.Wrapf(err, "Failed to write weights\n")
	}

	if err := binary.Write(w, binary.LittleEndian, net.thresholds); err != nil {
		return errors.Wrapf(err, "Failed to write thresholds\n")
	}

	return nil
}

func (net *Network) decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, net.matrix); err != nil {
		return errors.Wrapf(err, "Failed to read weights; does the topology match?\n")
	}

	if err := binary.Read(r, binary.LittleEndian, net.thresholds); err != nil {
		return errors.Wrapf(err, "Failed to read thresholds; does the topology match?\n")
	}

	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return errors.Errorf("File holds more values than the topology calls for")
	}

	return nil
}
