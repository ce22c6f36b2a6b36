package edgar

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Tags whose subtrees carry no filing prose: scripts, styles and the inline
// XBRL bookkeeping elements.
var skippedTags = map[string]bool{
	"script":         true,
	"style":          true,
	"ix:nonfraction": true,
	"ix:nonnumeric":  true,
	"ix:header":      true,
	"ix:hidden":      true,
	"ix:references":  true,
}

var (
	separatorRuns = regexp.MustCompile(`[_=\-]{10,}`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// extractText strips a filing document down to readable plain text.
func extractText(raw string) string {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		// fall back to the raw bytes; downstream truncation still applies
		return cleanWhitespace(raw)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedTags[strings.ToLower(n.Data)] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString("\n")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return cleanWhitespace(b.String())
}

func cleanWhitespace(text string) string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	text = strings.Join(lines, "\n")
	text = separatorRuns.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return text
}
