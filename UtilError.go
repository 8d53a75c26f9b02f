package gobittrex

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	API_ERROR ErrorKind = iota
	JSON_ERROR
	NO_RESULTS
)

var errorKindSymbol = [...]string{"api_error", "json_error", "no_results"}

func (k ErrorKind) String() string {
	if k < API_ERROR || k > NO_RESULTS {
		return "unknown"
	}
	return errorKindSymbol[k]
}

func (k ErrorKind) description() string {
	switch k {
	case API_ERROR:
		return "Error while calling Bittrex API"
	case JSON_ERROR:
		return "Error while converting response to Json Value"
	case NO_RESULTS:
		return "No results found"
	default:
		return "Unknown error"
	}
}

const (
	MSG_NO_RESULTS       = "Maybe check your parameters?"
	MSG_MULTIPLE_RESULTS = "Multiple results found! Maybe check your parameters?"
)

type Error interface {
	error
	Kind() ErrorKind
	// Message is the detail without the kind's description, e.g. the exchange's own message.
	Message() string
}

type apiError struct {
	kind    ErrorKind
	message string
	cause   error
}

func (this *apiError) Error() string {
	if this.kind == NO_RESULTS {
		return fmt.Sprintf("%s (%s)!", this.kind.description(), this.message)
	}
	return fmt.Sprintf("%s: %s", this.kind.description(), this.message)
}

func (this *apiError) Kind() ErrorKind {
	return this.kind
}

func (this *apiError) Message() string {
	return this.message
}

func (this *apiError) Unwrap() error {
	return this.cause
}

// NewError creates a new error of the kind with a message
func NewError(kind ErrorKind, message string, args ...interface{}) Error {
	if len(args) > 0 {
		return &apiError{kind: kind, message: fmt.Sprintf(message, args...)}
	}
	return &apiError{kind: kind, message: message}
}

// WrapError keeps cause reachable for errors.Is / errors.As. The message is prefixed to the cause's text.
func WrapError(kind ErrorKind, cause error, message string, args ...interface{}) Error {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &apiError{
		kind:    kind,
		message: fmt.Sprintf("%s: %v", message, cause),
		cause:   cause,
	}
}

// IsKind reports whether any error in err's chain is an Error of the kind.
func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind() == kind
}
