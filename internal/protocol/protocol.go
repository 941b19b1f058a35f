// Package protocol defines the line protocol spoken between relay clients and the server.
//
// The first line a client sends is its name. Every later line is a route request
// in the form "recipient<SEP>body". The server delivers "sender<SEP>body" lines
// (or just the body in raw mode) and answers protocol violations with a single
// "ERR: <CODE>" line before closing the connection.
package protocol

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator splits the recipient (or sender) from the body. Names may not contain it.
const Separator = " "

// MaxNameBytes is the longest name accepted.
const MaxNameBytes = 64

// error responses.
const (
	ErrorResponsePrefix = "ERR: "

	CodeBadName   = "BAD_NAME"
	CodeNameInUse = "NAME_IN_USE"
	CodeBadLine   = "BAD_LINE"
)

var (
	ErrInvalidName      = errors.New("invalid client name")
	ErrMissingSeparator = errors.New("missing recipient separator")
)

// ValidateName checks that the name can be used as a client identity on the wire.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > MaxNameBytes {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxNameBytes)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: not valid utf-8", ErrInvalidName)
	}
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("%w: contains whitespace", ErrInvalidName)
		case unicode.IsControl(r):
			return fmt.Errorf("%w: contains control characters", ErrInvalidName)
		case r == ':':
			return fmt.Errorf("%w: contains ':'", ErrInvalidName)
		}
	}
	return nil
}

// EncodeRoute builds a route request line. Body is expected to be a single line.
func EncodeRoute(to, body string) string {
	return to + Separator + body
}

// DecodeRoute splits a route request line into recipient and body.
// Body may be empty. Fails if the separator is missing or the recipient is not a valid name.
func DecodeRoute(line string) (string, string, error) {
	to, body, found := strings.Cut(line, Separator)
	if !found {
		return "", "", ErrMissingSeparator
	}
	if err := ValidateName(to); err != nil {
		return "", "", fmt.Errorf("bad recipient: %w", err)
	}
	return to, body, nil
}

// EncodeDelivery builds a sender framed delivery line.
func EncodeDelivery(from, body string) string {
	return from + Separator + body
}

// DecodeDelivery splits a sender framed delivery line. Returns false if the line
// does not start with a valid sender name followed by the separator.
func DecodeDelivery(line string) (string, string, bool) {
	from, body, found := strings.Cut(line, Separator)
	if !found || ValidateName(from) != nil {
		return "", "", false
	}
	return from, body, true
}

// ErrorResponse formats the error response line for the code.
func ErrorResponse(code string) string {
	return ErrorResponsePrefix + code
}

// ParseErrorResponse returns the code if the line is an error response.
func ParseErrorResponse(line string) (string, bool) {
	code, found := strings.CutPrefix(line, ErrorResponsePrefix)
	if !found || code == "" {
		return "", false
	}
	return code, true
}
