package validation

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// markupPolicy drops every element and keeps text content. Policies are safe
// for concurrent use once built.
var markupPolicy = bluemonday.StrictPolicy()

// The tokenizer folds CR and CRLF into LF in text, so input is folded the same
// way before comparing.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// HasMarkup reports whether s carries HTML elements or comments. Escaped
// entities such as "&lt;b&gt;" and a bare "<" in "a < b" are plain text.
func HasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	stripped := html.UnescapeString(markupPolicy.Sanitize(s))
	return stripped != newlines.Replace(html.UnescapeString(s))
}

// NoTags rejects free text containing markup. Values are stored exactly as
// sent, so markup is refused instead of rewritten.
func NoTags(fl validator.FieldLevel) bool {
	return !HasMarkup(fl.Field().String())
}
