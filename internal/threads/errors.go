package threads

import (
	"errors"
	"fmt"
)

// Operation names used in user-facing error messages.
const (
	OpLoad   = "loading comments"
	OpCreate = "creating comment"
	OpReply  = "creating reply"
	OpDelete = "deleting comment"
	OpSearch = "searching comments"
)

// ValidationError is a local input failure. No request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures, comparable with errors.Is.
var (
	ErrEmptyComment  = &ValidationError{Field: "text", Message: "Please enter a comment."}
	ErrParentID      = &ValidationError{Field: "parent_id", Message: "Parent ID must be a number."}
	ErrEmptyReply    = &ValidationError{Field: "text", Message: "Please enter a reply."}
	ErrEmptySearch   = &ValidationError{Field: "query", Message: "Please enter search text."}
	ErrUnknownIntent = errors.New("unknown intent")
)

// RequestError is a transport or server failure for a single operation.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("Error %s: %s", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Committed reports whether the mutation behind err reached the server. It is
// true on success and when only the follow-up reload failed.
func Committed(err error) bool {
	if err == nil {
		return true
	}
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Op == OpLoad
}
