package parse

import "github.com/Johannes-Berggren/gonebranch/internal/models"

var (
	branchNameRune = AnyOf(IsAlphabetic, IsAllowedPunctuation, IsDecimalDigit)
	annotationRune = AnyOf(IsAlphabetic, IsAllowedPunctuation, IsDecimalDigit, IsWhitespace)
)

// BranchName matches letters, digits and - _ /. It may match nothing.
var BranchName = TakeWhile(branchNameRune)

// Marker absorbs indentation and the current-branch star.
var Marker = TakeWhile(AnyOf(IsWhitespace, Is('*')))

var Whitespace = TakeWhile(IsWhitespace)

// Hash matches a run of hex digits. An empty run is accepted.
var Hash = Map(TakeWhile(IsHexDigit), func(s string) models.HexValue {
	return models.HexValue(s)
})

// Annotation matches "[...]" and returns the text between the brackets.
var Annotation = Named("annotation", Delimited(Tag("["), TakeWhile(annotationRune), Tag("]")))
