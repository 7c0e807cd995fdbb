package densestr

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when an element is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("densestr: invalid UTF-8")

// ErrBadBounds is returned by FromParts when boundary offsets are
// decreasing or point outside the buffer.
var ErrBadBounds = errors.New("densestr: bad boundary offsets")

var (
	errClosed = errors.New("densestr: builder is closed")
)

// Text is the set of types that can be stored as elements.
type Text interface {
	~string | ~[]byte
}

// --------------------------------------------------------------------

// toValid replaces each run of invalid UTF-8 bytes in s with U+FFFD.
func toValid(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// validBounds checks that offsets are non-decreasing and within data.
func validBounds(data string, bounds []int) error {
	prev := 0
	for _, off := range bounds {
		if off < prev || off > len(data) {
			return ErrBadBounds
		}
		prev = off
	}
	return nil
}

// alignedBounds reports whether no offset splits a UTF-8 sequence. Only
// meaningful when data is valid UTF-8.
func alignedBounds(data string, bounds []int) bool {
	for _, off := range bounds {
		if off < len(data) && !utf8.RuneStart(data[off]) {
			return false
		}
	}
	return true
}
