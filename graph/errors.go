package graph

import (
	"errors"
	"fmt"

	"github.com/oliviagraph/olivia"
)

// ErrEmptyName indicates a package name of "" was supplied to AddPackage
// or AddDependency. Wraps olivia.MalformedInput.
var ErrEmptyName = fmt.Errorf("graph: empty package name: %w", olivia.MalformedInput)

// ErrAlreadyFrozen indicates Builder.Freeze was called more than once.
var ErrAlreadyFrozen = errors.New("graph: builder already frozen")

// ErrCSRMismatch indicates the adjacency slices passed to FromCSR do
// not agree with the supplied names in length. Wraps
// olivia.InvariantViolation.
var ErrCSRMismatch = fmt.Errorf("graph: mismatched CSR slice lengths: %w", olivia.InvariantViolation)
