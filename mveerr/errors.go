// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package mveerr defines the error taxonomy used throughout the MVE
// decoder. Errors carry a closed Kind so callers can branch on category
// with errors.Is rather than matching message text.
package mveerr

import "fmt"

// Kind identifies the category of a decode error.
type Kind int

const (
	// InvalidSignature means the container header did not match the
	// expected MVE signature. Recoverable: the host may try a different
	// source.
	InvalidSignature Kind = iota

	// Truncated means the byte source ended before a declared payload
	// completed. Fatal for this stream.
	Truncated

	// UnknownOpcode means an opcode tag outside the defined table was
	// encountered. Fatal.
	UnknownOpcode

	// BadConfiguration means audio flags requested an unsupported
	// format, or video geometry was zero. Fatal.
	BadConfiguration

	// MapExhausted means a skip or decoding map ran out of data before
	// the block count was satisfied. Fatal.
	MapExhausted
)

func (k Kind) String() string {
	switch k {
	case InvalidSignature:
		return "InvalidSignature"
	case Truncated:
		return "Truncated"
	case UnknownOpcode:
		return "UnknownOpcode"
	case BadConfiguration:
		return "BadConfiguration"
	case MapExhausted:
		return "MapExhausted"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every package in this module.
type Error struct {
	Kind   Kind
	Detail string
}

// Errorf creates an Error of the given kind with a formatted detail
// message. Formatting happens eagerly, unlike the teacher's curated
// package, because Kind already gives callers a stable comparison key;
// there's no need to defer formatting to deduplicate repeated messages.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, mveerr.Errorf(Truncated, "")) matches on Kind alone;
// mveerr.Is(err, Truncated) is the shorter form of the same check.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
