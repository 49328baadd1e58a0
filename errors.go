package parsel

import "fmt"

// GrammarError reports configuration misuse: preparing a grammar with
// no axiom, parsing before Prepare, or a token pattern that does not
// compile.  It is never produced by an ordinary match failure.
type GrammarError struct {
	Grammar string
	Message string
	Err     error
}

func (e *GrammarError) Error() string {
	if e.Grammar == "" {
		return fmt.Sprintf("grammar: %s", e.Message)
	}
	return fmt.Sprintf("grammar %s: %s", e.Grammar, e.Message)
}

func (e *GrammarError) Unwrap() error { return e.Err }

// CallbackError reports a Condition or Procedure callback that failed
// internally (returned a non-nil error or panicked).  It aborts the
// parse run instead of being folded into a match failure, which would
// mask client bugs, and it is never memoized.
type CallbackError struct {
	Element *Element
	Offset  int
	Err     error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback %s failed at offset %d: %v", e.Element, e.Offset, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// NoMatchError is returned by Parse when the axiom does not match.
// Farthest is the deepest offset any attempt reached during the run,
// which usually points at the actual trouble spot.
type NoMatchError struct {
	Grammar  string
	Farthest int
	Location Location
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("grammar %s: no match, failed around %s (offset %d)",
		e.Grammar, e.Location, e.Farthest)
}
