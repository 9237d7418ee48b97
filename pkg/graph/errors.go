package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrOutOfRange         = errors.New("index out of range")
	ErrInvalidLabel       = errors.New("invalid label")
	ErrEmptyGraph         = errors.New("graph has no vertices")
	ErrInvalidVertexCount = errors.New("invalid vertex count")
)

// GraphError provides structured error information for graph and
// community operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "AddEdge", "Sweep")
	Entity  string // Entity type (e.g., "vertex", "label", "clique")
	ID      int    // Entity index (only meaningful when HasID is set)
	HasID   bool
	Context string // Additional context
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.HasID && e.Context != "":
		return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.ID, e.Context, e.Cause)
	case e.HasID:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Vertex sets the entity to "vertex" with the given id.
func (b *ErrorBuilder) Vertex(id int) *ErrorBuilder {
	return b.entity("vertex", id)
}

// Label sets the entity to "label" with the given value.
func (b *ErrorBuilder) Label(label int) *ErrorBuilder {
	return b.entity("label", label)
}

// Clique sets the entity to "clique" with the given index.
func (b *ErrorBuilder) Clique(index int) *ErrorBuilder {
	return b.entity("clique", index)
}

// Graph sets the entity to "graph".
func (b *ErrorBuilder) Graph() *ErrorBuilder {
	b.err.Entity = "graph"
	return b
}

func (b *ErrorBuilder) entity(name string, id int) *ErrorBuilder {
	b.err.Entity = name
	b.err.ID = id
	b.err.HasID = true
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(format string, args ...any) *ErrorBuilder {
	b.err.Context = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// OutOfRangeError reports a vertex id outside [0, vertexCount).
func OutOfRangeError(op string, vertex, vertexCount int) error {
	return NewError(op).Vertex(vertex).
		Context("valid range [0, %d)", vertexCount).
		Cause(ErrOutOfRange).Err()
}

// InvalidLabelError reports a label value outside [0, vertexCount) seen at vertex.
func InvalidLabelError(op string, vertex, label, vertexCount int) error {
	return NewError(op).Vertex(vertex).
		Context("label %d outside [0, %d)", label, vertexCount).
		Cause(ErrInvalidLabel).Err()
}

// IsOutOfRange returns true if the error is an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsInvalidLabel returns true if the error is an invalid label error.
func IsInvalidLabel(err error) bool {
	return errors.Is(err, ErrInvalidLabel)
}
