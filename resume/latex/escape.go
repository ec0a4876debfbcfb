package latex

import "strings"

var textEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
	`_`, `\_`,
	`$`, `\$`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// hyperref reads \href targets with # and ~ as literals; everything that would
// still break argument parsing is percent-encoded instead.
var urlEscaper = strings.NewReplacer(
	`\`, `%5C`,
	`{`, `%7B`,
	`}`, `%7D`,
	`^`, `%5E`,
	`%`, `\%`,
	" ", `%20`,
	"\t", `%09`,
	"\n", `%0A`,
	"\r", `%0D`,
)

// Escape returns raw with every LaTeX-reserved character replaced by its
// literal form. Replacement is single-pass, so inserted macros are never
// re-escaped. Each run of line breaks becomes one space: a blank line would
// end the paragraph inside a braced argument such as \textbf{...}.
func Escape(raw string) string {
	return textEscaper.Replace(foldLineBreaks(raw))
}

func foldLineBreaks(raw string) string {
	if !strings.ContainsAny(raw, "\r\n") {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	inBreak := false
	for _, r := range raw {
		if r == '\r' || r == '\n' {
			if !inBreak {
				b.WriteByte(' ')
				inBreak = true
			}
			continue
		}
		inBreak = false
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeURL prepares a hyperlink target for the first argument of \href.
func EscapeURL(raw string) string {
	return urlEscaper.Replace(strings.TrimSpace(raw))
}
