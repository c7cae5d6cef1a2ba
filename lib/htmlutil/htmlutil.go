// Package htmlutil extracts text from parsed html the way a browser
// would render it.
package htmlutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// elements that force a line break in rendered output
var blockTags = map[string]bool{
	"article":    true,
	"aside":      true,
	"blockquote": true,
	"div":        true,
	"dd":         true,
	"dt":         true,
	"fieldset":   true,
	"figcaption": true,
	"figure":     true,
	"footer":     true,
	"form":       true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"header":     true,
	"hr":         true,
	"li":         true,
	"main":       true,
	"nav":        true,
	"ol":         true,
	"p":          true,
	"pre":        true,
	"section":    true,
	"table":      true,
	"tbody":      true,
	"td":         true,
	"th":         true,
	"thead":      true,
	"tr":         true,
	"ul":         true,
}

// elements whose contents never render
var hiddenTags = map[string]bool{
	"head":     true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"template": true,
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// RenderedText approximates the text a browser renders for the
// selection: block elements and <br> produce line breaks, runs of
// whitespace collapse to a single space and blank lines are dropped.
// goquery's Text() concatenates text nodes with no separators at all,
// which loses the line structure of cells that stack several values.
func RenderedText(sel *goquery.Selection) string {
	var raw strings.Builder
	for _, node := range sel.Nodes {
		renderText(node, &raw)
	}

	var lines []string
	for _, line := range strings.Split(raw.String(), "\n") {
		line = removeNonPrintable(line)
		line = innerWhitespace.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderText(node *html.Node, out *strings.Builder) {
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		out.WriteString(node.Data)
	case html.ElementNode:
		if hiddenTags[node.Data] {
			return
		}
		if node.Data == "br" {
			out.WriteString("\n")
			return
		}
		block := blockTags[node.Data]
		if block {
			out.WriteString("\n")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			renderText(child, out)
		}
		if block {
			out.WriteString("\n")
		}
	case html.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			renderText(child, out)
		}
	}
}

// FirstLine returns everything before the first line break, which for
// rendered text is the most prominent value in a stacked cell.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
