package errors

import "fmt"

// Code identifies the invariant an EngineError was raised for.
type Code string

const (
	CodeDuplicatePredicateID  Code = "DUPLICATE_PREDICATE_ID"
	CodeMissingBoundPredicate Code = "MISSING_BOUND_PREDICATE"
	CodeAgentNotStarted       Code = "AGENT_NOT_STARTED"
)

// EngineError wraps an invariant violation. It is always paired with a
// panic at the call site that detects the violation; callers recover it
// the same way they would any other panic value.
type EngineError struct {
	Code    Code
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Err }

// New builds an EngineError with no wrapped cause.
func New(code Code, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// Wrap builds an EngineError around an existing cause.
func Wrap(code Code, message string, err error) *EngineError {
	return &EngineError{Code: code, Message: message, Err: err}
}

var (
	ErrDuplicatePredicateID  = New(CodeDuplicatePredicateID, "predicate with this id already exists")
	ErrMissingBoundPredicate = New(CodeMissingBoundPredicate, "action precondition could not be bound to a predicate instance")
	ErrAgentNotStarted       = New(CodeAgentNotStarted, "agent.Update called before Startup")
)
