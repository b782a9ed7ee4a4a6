package intake

import "fmt"

// ValidationError is the only error kind the engine raises for user input.
// It is always recoverable: the session stays on the same node and the record
// is untouched, so the caller can re-prompt.
type ValidationError struct {
	NodeID  string `json:"node_id"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for %q: %s", e.NodeID, e.Message)
}

func invalid(nodeID, format string, args ...interface{}) *ValidationError {
	return &ValidationError{NodeID: nodeID, Message: fmt.Sprintf(format, args...)}
}

// ErrSessionNotFound is returned by repositories for unknown session ids.
var ErrSessionNotFound = fmt.Errorf("session not found")

// ErrUnknownNode signals an internal invariant violation: the session points
// at a node the graph does not contain. It is never caused by user input.
var ErrUnknownNode = fmt.Errorf("unknown conversation node")

// ErrNodeMismatch is returned when an answer targets a node other than the
// session's current one (stale client state).
var ErrNodeMismatch = fmt.Errorf("answer does not target the current node")

// ErrSessionComplete is returned when answering a finished session.
var ErrSessionComplete = fmt.Errorf("session already completed")
