package gpio

import "errors"

// FakeReader is a test double that returns scripted levels.
type FakeReader struct {
	// Samples contains scripted levels to return.
	// Each call to Read() consumes the next sample.
	Samples []Level

	// Errors, if non-nil, is consulted alongside Samples: a non-nil entry
	// at the current index is returned instead of the sample.
	Errors []error

	// index tracks current position in Samples
	index int

	// Reads counts calls to Read
	Reads int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by every Read()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Level) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeReader) Read() (Level, error) {
	f.Reads++

	if f.ReadError != nil {
		return Low, f.ReadError
	}

	if len(f.Samples) == 0 {
		return Low, errors.New("no samples configured")
	}

	i := f.index
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	if i < len(f.Errors) && f.Errors[i] != nil {
		return Low, f.Errors[i]
	}
	return f.Samples[i], nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Reads = 0
	f.Closed = false
}
