// Package extract pulls structured component code out of unstructured
// model output. Model responses are free text, so extraction is
// deliberately best-effort pattern matching rather than parsing: it takes
// the first match it finds and degrades to empty strings instead of
// failing.
package extract

import (
	"regexp"
	"strings"
)

var (
	// jsxPattern matches the first tag-delimited block: an opening tag,
	// arbitrary content including newlines (non-greedy), then a closing
	// tag. Unbalanced or malformed tags simply fail to match.
	jsxPattern = regexp.MustCompile(`(?s)<[^>]+>.*?</[^>]+>`)

	// cssPattern captures the content of the first fenced code block
	// labeled as CSS.
	cssPattern = regexp.MustCompile("(?s)```css(.*?)```")
)

// Extract returns the JSX and CSS fragments found in the raw model
// response. It is a pure function and never fails: when a fragment is not
// present the corresponding result is the empty string. If the response
// contains multiple JSX blocks or CSS fences, only the first of each is
// kept.
func Extract(raw string) (jsx, css string) {
	jsx = jsxPattern.FindString(raw)

	if m := cssPattern.FindStringSubmatch(raw); m != nil {
		css = strings.TrimSpace(m[1])
	}

	return jsx, css
}
