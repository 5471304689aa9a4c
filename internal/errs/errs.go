// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errs defines the closed failure taxonomy shared by every layer of
// the Mesto server.
//
// Lower layers (store, validators, services, the auth middleware) wrap the
// failures they produce into an [*Error] carrying a [Kind]. The HTTP error
// normalizer is the only consumer that turns a Kind into a status code and a
// client-facing message; no other layer formats error responses.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The zero value is [KindInternal], so an error
// that was never classified is treated as an internal failure.
type Kind uint8

const (
	// KindInternal is an unexpected failure. Its cause is logged and never
	// shown to the client.
	KindInternal Kind = iota
	// KindMissingCredential means the request carried no session token.
	KindMissingCredential
	// KindInvalidCredential means the session token, or the email/password
	// pair, could not be verified.
	KindInvalidCredential
	// KindForbidden means the caller is authenticated but not entitled to
	// modify the resource.
	KindForbidden
	// KindNotFound means a lookup by id yielded no record.
	KindNotFound
	// KindInvalidData means the request failed structural or semantic
	// validation, including malformed identifiers.
	KindInvalidData
	// KindConflict means a uniqueness constraint was violated.
	KindConflict
)

var kindNames = [...]string{
	KindInternal:          "internal",
	KindMissingCredential: "missing credential",
	KindInvalidCredential: "invalid credential",
	KindForbidden:         "forbidden",
	KindNotFound:          "not found",
	KindInvalidData:       "invalid data",
	KindConflict:          "conflict",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds returns every Kind of the taxonomy in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindInternal,
		KindMissingCredential,
		KindInvalidCredential,
		KindForbidden,
		KindNotFound,
		KindInvalidData,
		KindConflict,
	}
}

// Error is a classified failure.
type Error struct {
	// Kind is the taxonomy class of the failure.
	Kind Kind
	// Op names the operation that failed, e.g. "cardRepository.FindCardByID".
	Op string
	// Err is the underlying cause. It may be nil.
	Err error
}

// E constructs a classified error. A nil cause is allowed.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf constructs a classified error whose cause is built with fmt.Errorf.
func Errorf(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the outermost [*Error] in err's chain, or
// [KindInternal] when err carries no classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether any [*Error] in err's tree, including every branch of
// joined errors, has the given kind.
func Is(err error, kind Kind) bool {
	found := false
	walk(err, func(e *Error) bool {
		if e.Kind == kind {
			found = true
			return false
		}
		return true
	})
	return found
}

// walk visits every *Error in err's tree depth-first until visit returns false.
func walk(err error, visit func(*Error) bool) bool {
	if err == nil {
		return true
	}

	if e, ok := err.(*Error); ok {
		if !visit(e) {
			return false
		}
	}

	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if !walk(inner, visit) {
				return false
			}
		}
	case interface{ Unwrap() error }:
		return walk(x.Unwrap(), visit)
	}

	return true
}
