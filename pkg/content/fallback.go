package content

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// contentClassRe matches div class names that usually wrap article bodies
var contentClassRe = regexp.MustCompile(`(?i)content|article|post|main`)

// noiseTags are elements that never carry article text
var noiseTags = map[string]bool{
	"script": true, "style": true, "nav": true, "footer": true,
	"header": true, "aside": true, "iframe": true, "form": true,
	"noscript": true,
}

// noiseMarkers flag elements by class or id substring, ads and
// social widgets mostly
var noiseMarkers = []string{
	"ad", "banner", "comment", "sidebar", "menu", "navigation",
	"share", "social", "related", "recommended",
}

// extractFallback pulls the page title and main text out of raw HTML.
// Candidate containers are tried in order: <main>, <article>, a div with a
// content-looking class, then <body>. Returns empty strings on parse failure.
func extractFallback(r io.Reader) (title, text string) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", ""
	}

	title = pageTitle(doc)

	container := findElement(doc, "main")
	if container == nil {
		container = findElement(doc, "article")
	}
	if container == nil {
		container = findContentDiv(doc)
	}
	if container == nil {
		container = findElement(doc, "body")
	}
	if container == nil {
		return title, ""
	}

	return title, collectText(container)
}

// pageTitle returns the <title> content, or the first <h1> when absent
func pageTitle(doc *html.Node) string {
	if t := findElement(doc, "title"); t != nil {
		if s := nodeText(t); s != "" {
			return s
		}
	}
	if h1 := findElement(doc, "h1"); h1 != nil {
		return nodeText(h1)
	}
	return ""
}

// findElement returns the first element with the given tag name, depth-first
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findContentDiv returns the first div whose class looks like an article container
func findContentDiv(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" && contentClassRe.MatchString(attrValue(n, "class")) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findContentDiv(c); found != nil {
			return found
		}
	}
	return nil
}

// collectText walks the subtree and joins text nodes line by line,
// skipping noise elements
func collectText(n *html.Node) string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isNoise(n) {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				lines = append(lines, strings.Join(strings.Fields(s), " "))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(lines, "\n")
}

// isNoise reports whether an element is boilerplate to skip
func isNoise(n *html.Node) bool {
	if noiseTags[n.Data] {
		return true
	}
	marker := strings.ToLower(attrValue(n, "class") + " " + attrValue(n, "id"))
	if marker == " " {
		return false
	}
	for _, m := range noiseMarkers {
		if strings.Contains(marker, m) {
			return true
		}
	}
	return false
}

// nodeText returns the trimmed concatenated text of a node's subtree
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// attrValue returns the value of the named attribute, empty when missing
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
