package parse

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNoMatch is the root of every recognizer failure.
var ErrNoMatch = errors.New("no match")

// MismatchError reports a literal that was expected but not found.
type MismatchError struct {
	Rule      string // sub-grammar that failed, if labelled
	Expected  string
	Remaining string
	// Committed is set when the failure happened after an opening
	// delimiter matched. Opt does not absorb committed failures.
	Committed bool
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("expected %q at %q", e.Expected, e.Remaining)
	if e.Rule != "" {
		msg = e.Rule + ": " + msg
	}
	return msg
}

func (e *MismatchError) Unwrap() error { return ErrNoMatch }

// Parser consumes a prefix of input and returns its value and the rest.
// On failure the input is not consumed.
type Parser[T any] func(input string) (T, string, error)

// Option holds a value that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Tag matches the literal prefix.
func Tag(literal string) Parser[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, literal) {
			return "", input, &MismatchError{Expected: literal, Remaining: input}
		}
		return input[:len(literal)], input[len(literal):], nil
	}
}

// TakeWhile consumes the longest prefix whose runes all satisfy pred.
// It never fails; no matching runes yields an empty match.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(input string) (string, string, error) {
		n := 0
		for n < len(input) {
			r, size := utf8.DecodeRuneInString(input[n:])
			if !pred(r) {
				break
			}
			n += size
		}
		return input[:n], input[n:], nil
	}
}

// Delimited runs open, inner and close in sequence and returns inner's value.
// Once open has matched, any later failure is committed.
func Delimited[O, T, C any](open Parser[O], inner Parser[T], close Parser[C]) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		_, rest, err := open(input)
		if err != nil {
			return zero, input, err
		}
		v, rest, err := inner(rest)
		if err != nil {
			return zero, input, commit(err)
		}
		_, rest, err = close(rest)
		if err != nil {
			return zero, input, commit(err)
		}
		return v, rest, nil
	}
}

// Opt turns a plain failure of p into None. Committed failures propagate.
func Opt[T any](p Parser[T]) Parser[Option[T]] {
	return func(input string) (Option[T], string, error) {
		v, rest, err := p(input)
		if err == nil {
			return Some(v), rest, nil
		}
		var mm *MismatchError
		if errors.As(err, &mm) && mm.Committed {
			return None[T](), input, err
		}
		if errors.Is(err, ErrNoMatch) {
			return None[T](), input, nil
		}
		return None[T](), input, err
	}
}

// Map applies f to a successful result of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) (U, string, error) {
		v, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return f(v), rest, nil
	}
}

// Named labels unlabelled mismatches from p with rule.
func Named[T any](rule string, p Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		v, rest, err := p(input)
		var mm *MismatchError
		if errors.As(err, &mm) && mm.Rule == "" {
			mm.Rule = rule
		}
		return v, rest, err
	}
}

func commit(err error) error {
	var mm *MismatchError
	if errors.As(err, &mm) {
		mm.Committed = true
	}
	return err
}
