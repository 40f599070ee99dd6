// Package extract turns raw model output into plain source text.
package extract

import "strings"

const fence = "```"

// Strip removes every opener fence ("```"+lang) and every bare fence from text,
// then trims surrounding whitespace. Inner whitespace is left untouched.
//
// Matching is leftmost-first with the opener preferred over the bare fence, so
// "```python" never degrades into a stray "python". Because each run of
// backticks shrinks below three, the result never contains a fence and Strip is
// idempotent.
func Strip(text, lang string) string {
	var r *strings.Replacer
	if lang == "" {
		r = strings.NewReplacer(fence, "")
	} else {
		r = strings.NewReplacer(fence+lang, "", fence, "")
	}
	return strings.TrimSpace(r.Replace(text))
}
