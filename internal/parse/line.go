package parse

import (
	"errors"
	"fmt"

	"github.com/Johannes-Berggren/gonebranch/internal/models"
)

// ErrMalformedLine wraps the mismatch that stopped a line from parsing.
var ErrMalformedLine = errors.New("malformed branch line")

// goneAnnotation is what git prints when the upstream was deleted.
const goneAnnotation = "gone"

// lineSpans holds every piece of input consumed by the line grammar, in order.
type lineSpans struct {
	marker     string
	name       string
	nameSep    string
	hash       models.HexValue
	hashSep    string
	annotation Option[string]
	annoSep    Option[string]
	comment    string
}

// Line parses one line of `git branch -vv` output:
//
//	[marker] name  hash  [annotation]  comment
//
// The remainder it returns is the comment.
func Line(input string) (models.BranchLine, string, error) {
	spans, err := scanLine(input)
	if err != nil {
		return models.BranchLine{}, input, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	status := models.StatusActive
	if text, ok := spans.annotation.Get(); ok && text == goneAnnotation {
		status = models.StatusDeleted
	}

	return models.BranchLine{
		Name:    spans.name,
		Status:  status,
		Hash:    spans.hash,
		Comment: spans.comment,
	}, spans.comment, nil
}

func scanLine(input string) (lineSpans, error) {
	var s lineSpans
	var err error
	rest := input

	// None of these steps can fail.
	s.marker, rest, _ = Marker(rest)
	s.name, rest, _ = BranchName(rest)
	s.nameSep, rest, _ = Whitespace(rest)
	s.hash, rest, _ = Hash(rest)
	s.hashSep, rest, _ = Whitespace(rest)

	s.annotation, rest, err = Opt(Annotation)(rest)
	if err != nil {
		return lineSpans{}, err
	}
	s.annoSep, rest, _ = Opt(Whitespace)(rest)

	s.comment = rest
	return s, nil
}
