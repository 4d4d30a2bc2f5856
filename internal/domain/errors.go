package domain

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
)

// Stable machine-readable error codes carried over the wire.
const (
	CodePayoutNotFound    = "PAYOUT_NOT_FOUND"
	CodePayoutAlreadyPaid = "PAYOUT_ALREADY_PAID"
	CodeInvalidDecision   = "INVALID_DECISION"
	CodeMissingDecidedBy  = "MISSING_DECIDED_BY"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInternal          = "INTERNAL_ERROR"
)

// Error is a domain failure with a stable code and a human message.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func NewInvalidInput(code, message string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Message: message}
}

func NewConflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}
