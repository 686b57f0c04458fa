package suurballe

import "errors"

// Sentinel errors returned by the Algorithm implementation.
var (
	// ErrNotInitialized indicates FindFlow was asked to operate on an
	// Algorithm that never had Init called (Run calls Init itself).
	ErrNotInitialized = errors.New("suurballe: Init must be called before FindFlow")

	// ErrFlowNotComputed indicates FindPaths was called before
	// FindFlow produced a flow to decompose.
	ErrFlowNotComputed = errors.New("suurballe: FindFlow must be called before FindPaths")

	// ErrPathIndexOutOfRange indicates Path(i) was called with i
	// outside [0, PathNum()).
	ErrPathIndexOutOfRange = errors.New("suurballe: path index out of range")

	// ErrNegativeLength indicates the length map contains a negative
	// value; the algorithm requires non-negative integer lengths.
	ErrNegativeLength = errors.New("suurballe: arc length map contains a negative value")

	// ErrUnknownNode indicates Init, FindFlow, or Run was given a node
	// that is not part of the bound digraph.
	ErrUnknownNode = errors.New("suurballe: node not found in digraph")
)
