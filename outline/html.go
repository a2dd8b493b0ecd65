package outline

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const handoutStyle = `body{background:#000;color:#fff;font-family:Arial,sans-serif;max-width:60em;margin:auto}` +
	`h1,h2{color:#ffd633}section{border-top:2px solid #ffd633;padding:1em 0}`

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendLines adds s to n with newlines as <br> elements.
func appendLines(n *html.Node, s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			n.AppendChild(element(atom.Br))
		}
		n.AppendChild(textNode(line))
	}
}

func withText(n *html.Node, s string) *html.Node {
	appendLines(n, s)
	return n
}

// WriteHTML renders the outline as a standalone HTML handout. Each slide
// becomes a <section class="slide" id="slide-N">.
func (o *Outline) WriteHTML(w io.Writer) error {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(element(atom.Title), o.Title))
	if o.Author != "" {
		head.AppendChild(element(atom.Meta, attr("name", "author"), attr("content", o.Author)))
	}
	if o.Subject != "" {
		head.AppendChild(element(atom.Meta, attr("name", "description"), attr("content", o.Subject)))
	}
	head.AppendChild(withText(element(atom.Style), handoutStyle))

	body := element(atom.Body)
	if o.Title != "" {
		body.AppendChild(withText(element(atom.H1), o.Title))
	}
	for _, s := range o.Slides {
		sec := element(atom.Section, attr("class", "slide"), attr("id", fmt.Sprintf("slide-%d", s.Number)))
		sec.AppendChild(withText(element(atom.H2), s.Title))
		for _, blk := range s.Blocks {
			if len(blk.Bullets) > 0 {
				ul := element(atom.Ul)
				for _, item := range blk.Bullets {
					ul.AppendChild(withText(element(atom.Li), item))
				}
				sec.AppendChild(ul)
				continue
			}
			sec.AppendChild(withText(element(atom.P), blk.Text))
		}
		body.AppendChild(sec)
	}

	root := element(atom.Html, attr("lang", "en"))
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering handout: %w", err)
	}
	return nil
}

// ParseHTML reads a handout written by WriteHTML back into an outline.
func ParseHTML(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	o := &Outline{}
	if head := findElement(doc, "head"); head != nil {
		for c := head.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				o.Title = textContent(c)
			case "meta":
				switch attrVal(c, "name") {
				case "author":
					o.Author = attrVal(c, "content")
				case "description":
					o.Subject = attrVal(c, "content")
				}
			}
		}
	}

	body := findElement(doc, "body")
	if body == nil {
		return o, nil
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "section" || attrVal(c, "class") != "slide" {
			continue
		}
		s := Slide{}
		fmt.Sscanf(attrVal(c, "id"), "slide-%d", &s.Number)
		for n := c.FirstChild; n != nil; n = n.NextSibling {
			if n.Type != html.ElementNode {
				continue
			}
			switch n.Data {
			case "h2":
				s.Title = textContent(n)
			case "p":
				s.Blocks = append(s.Blocks, Block{Text: textContent(n)})
			case "ul":
				var items []string
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type == html.ElementNode && li.Data == "li" {
						items = append(items, textContent(li))
					}
				}
				s.Blocks = append(s.Blocks, Block{Bullets: items})
			}
		}
		o.Slides = append(o.Slides, s)
	}
	return o, nil
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent returns the text below n with <br> as "\n".
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
