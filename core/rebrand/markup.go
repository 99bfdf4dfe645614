package rebrand

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// walkTextAndAttributes applies fn to every text node outside script and style
// elements and to every attribute value under n. Selector hooks (class, id) are
// left alone so stylesheet rules keep matching.
func walkTextAndAttributes(n *html.Node, fn func(string) string) {
	switch n.Type {
	case html.TextNode:
		if !insideRawText(n) {
			n.Data = fn(n.Data)
		}
	case html.ElementNode:
		for i := range n.Attr {
			if selectorAttributes[n.Attr[i].Key] {
				continue
			}
			n.Attr[i].Val = fn(n.Attr[i].Val)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkTextAndAttributes(c, fn)
	}
}

var selectorAttributes = map[string]bool{
	"class": true,
	"id":    true,
}

func insideRawText(n *html.Node) bool {
	p := n.Parent
	return p != nil && p.Type == html.ElementNode && (p.DataAtom == atom.Script || p.DataAtom == atom.Style)
}

// setRawText replaces n's children with a single unescaped text node
func setRawText(n *html.Node, text string) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func ensureFontLink(head *goquery.Selection, href string) {
	exists := false
	head.Find(`link[rel="stylesheet"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("href", "") == href {
			exists = true
		}
		return !exists
	})
	if exists {
		return
	}
	appendElement(head, atom.Link, []html.Attribute{
		{Key: "rel", Val: "stylesheet"},
		{Key: "href", Val: href},
	})
}

func ensureGeneratorMeta(head *goquery.Selection) {
	if head.Find(`meta[name="generator"][content="` + GeneratorName + `"]`).Length() > 0 {
		return
	}
	appendElement(head, atom.Meta, []html.Attribute{
		{Key: "name", Val: "generator"},
		{Key: "content", Val: GeneratorName},
	})
}

func appendElement(parent *goquery.Selection, a atom.Atom, attrs []html.Attribute) {
	if parent.Length() == 0 {
		return
	}
	parent.Get(0).AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	})
}
