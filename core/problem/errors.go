package problem

import "fmt"

// Document names the input document a structural error originates from.
type Document string

const (
	DocInstance    Document = "instance"
	DocMaintenance Document = "maintenance"
	DocSolution    Document = "solution"
)

// MalformedError reports an input document that cannot be interpreted
// against the data model. It aborts the verification call before any
// constraint checking, as opposed to constraint violations which are
// collected exhaustively.
type MalformedError struct {
	Doc    Document
	Detail string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s document: %s: %v", e.Doc, e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed %s document: %s", e.Doc, e.Detail)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func malformed(doc Document, format string, args ...any) *MalformedError {
	return &MalformedError{Doc: doc, Detail: fmt.Sprintf(format, args...)}
}

func malformedWrap(doc Document, err error, format string, args ...any) *MalformedError {
	return &MalformedError{Doc: doc, Detail: fmt.Sprintf(format, args...), Err: err}
}
