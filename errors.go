package sleap

import "fmt"

// ConfigurationError is returned when a tracker is constructed with an
// unknown policy name (candidate maker, similarity function, or matching
// function). It is raised eagerly at factory time and is not recoverable
// at the tracker boundary. Tracker.Track also returns one, with Option
// "t", when given a frame index not greater than the last one pushed.
type ConfigurationError struct {
	Option string // e.g. "tracker", "similarity", "match"
	Value  string // the offending value
	Valid  []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid --%s value %q, expecting one of %v", e.Option, e.Value, e.Valid)
}

// ErrShapeMismatch is returned when an image or instance's dimensions are
// inconsistent with what a component expects: the flow candidate maker
// called without an image, or an image whose rank is unsupported after
// squeezing singleton channels.
type ErrShapeMismatch struct {
	Context string
	Detail  string
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch in %s: %s", e.Context, e.Detail)
}

// newShapeMismatch builds an *ErrShapeMismatch for the given context.
func newShapeMismatch(context, format string, args ...interface{}) error {
	return &ErrShapeMismatch{Context: context, Detail: fmt.Sprintf(format, args...)}
}
