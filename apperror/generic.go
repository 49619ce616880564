package apperror

import "errors"

// Kind classifies errors the API boundary knows how to answer
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindNotFound
)

// Error carries a kind and the detail message sent to the client
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// BadRequest reports malformed input (ids, payloads)
func BadRequest(detail string) *Error {
	return &Error{Kind: KindBadRequest, Detail: detail}
}

// NotFound reports that no document matches the given identifier
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Detail returns the client message of the first *Error in err's chain
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Detail
	}
	return ""
}

// Message is used for fixed texts shared between packages
type Message string

func (m Message) Error() string { return string(m) }

const (
	MsgInvalidID     = Message("Invalid ID Format")
	MsgInvalidJSON   = Message("Invalid JSON")
	MsgInternalError = Message("Internal Server Error")
	MsgUnknownDomain = Message("Unknown Domain")
)
