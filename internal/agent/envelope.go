package agent

// ErrorKind classifies a failure envelope. The set matches the service error
// taxonomy; every kind is recovered at the dispatcher boundary and rendered
// as user-visible text, never propagated as a fault.
type ErrorKind string

const (
	KindUnrecognizedIntent ErrorKind = "unrecognized_intent"
	KindInvalidArguments   ErrorKind = "invalid_arguments"
	KindNotFound           ErrorKind = "not_found"
	KindInvalidState       ErrorKind = "invalid_state"
	KindValidationFailure  ErrorKind = "validation_failure"
	KindInternal           ErrorKind = "internal_error"
)

// Failure is the error half of an envelope.
type Failure struct {
	Kind    ErrorKind
	Message string
}

// Envelope is the tagged result passed from dispatch to formatting. Exactly
// one of Result and Err is set.
type Envelope struct {
	Intent Intent
	Result any
	Err    *Failure
}

// OK reports whether the envelope carries a success result.
func (e Envelope) OK() bool {
	return e.Err == nil
}

// Success builds a success envelope.
func Success(intent Intent, result any) Envelope {
	return Envelope{Intent: intent, Result: result}
}

// Failed builds a failure envelope.
func Failed(intent Intent, kind ErrorKind, message string) Envelope {
	return Envelope{Intent: intent, Err: &Failure{Kind: kind, Message: message}}
}
