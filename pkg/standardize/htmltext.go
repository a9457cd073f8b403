package standardize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags end a line of visible text
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "br": true,
	"dd": true, "div": true, "dl": true, "dt": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "section": true, "table": true, "tbody": true, "thead": true,
	"tfoot": true, "tr": true, "ul": true,
}

// looksLikeHTML reports whether s contains markup worth parsing
func looksLikeHTML(s string) bool {
	return strings.Contains(s, "<") && strings.Contains(s, ">")
}

// VisibleText renders an HTML fragment as plain text, one line per block
// element, with scripts and styles dropped. Plain text is returned as is.
func VisibleText(input string) string {
	if !looksLikeHTML(input) {
		return input
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input
	}
	doc.Find("script, style, noscript, template").Remove()

	var b strings.Builder
	writeText(&b, doc.Selection)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeText(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
			return
		case html.ElementNode:
		default:
			return
		}

		tag := goquery.NodeName(child)
		if tag == "td" || tag == "th" {
			b.WriteString(" ")
		}
		if blockTags[tag] {
			b.WriteString("\n")
		}
		writeText(b, child)
		if blockTags[tag] {
			b.WriteString("\n")
		}
	})
}
