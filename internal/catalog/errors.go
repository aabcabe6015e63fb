package catalog

import (
	"strings"
)

// Source identifies which API request produced an error.
type Source string

const (
	SourceBooks    Source = "books"
	SourceSettings Source = "settings"
)

// ErrorKind separates application failures (success=false) from transport failures.
type ErrorKind int

const (
	KindApplication ErrorKind = iota
	KindTransport
)

func (k ErrorKind) String() string {
	if k == KindTransport {
		return "transport"
	}
	return "application"
}

// Messages shown when the API reports failure without explanation.
const (
	DefaultBooksError    = "Failed to fetch books"
	DefaultSettingsError = "Failed to fetch settings"
	transportPrefix      = "Error fetching data: "
)

// SourceError is a user-facing load failure tied to the request that caused it.
type SourceError struct {
	Source  Source
	Kind    ErrorKind
	Message string // text shown to the user
	Detail  string // server-provided error text, if any
	Err     error  // underlying transport error, if any
}

func (e *SourceError) Error() string {
	return e.Message
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// BooksFailure builds the error for a /books response with success=false.
// The server's text is shown verbatim when present.
func BooksFailure(serverText string) *SourceError {
	msg := serverText
	if strings.TrimSpace(msg) == "" {
		msg = DefaultBooksError
	}
	return &SourceError{Source: SourceBooks, Kind: KindApplication, Message: msg, Detail: serverText}
}

// SettingsFailure builds the error for a /settings response with success=false.
// The server's text is kept as Detail for logging only.
func SettingsFailure(serverText string) *SourceError {
	return &SourceError{Source: SourceSettings, Kind: KindApplication, Message: DefaultSettingsError, Detail: serverText}
}

// TransportFailure wraps a request that never produced a usable payload.
func TransportFailure(source Source, err error) *SourceError {
	return &SourceError{Source: source, Kind: KindTransport, Message: transportPrefix + err.Error(), Err: err}
}

// JoinErrors renders errors in the order given, separated by "; ".
func JoinErrors(errs []*SourceError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e == nil || e.Message == "" {
			continue
		}
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "; ")
}
