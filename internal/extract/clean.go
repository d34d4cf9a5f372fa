package extract

import (
	"regexp"
	"strings"
)

// mojibake pairs seen when UTF-8 punctuation is decoded as Latin-1 by mail
// clients. Order matters: longer sequences first.
var mojibakeReplacer = strings.NewReplacer(
	"â€œ", `"`,
	"â€", `"`,
	"â€™", "'",
	"â€˜", "'",
	"â€“", "-",
	"â€”", "-",
	"â€¦", "...",
	"Â ", " ",
	" ", " ",
)

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// CleanBody repairs common encoding artifacts and collapses whitespace.
// Newlines are preserved (collapsed to at most two) because the signature
// heuristics depend on line structure.
func CleanBody(text string) string {
	text = mojibakeReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
