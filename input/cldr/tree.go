package cldr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/npillmayer/emojiconv/core"
	"golang.org/x/net/html"
)

// Parse reads an XML document into a tree of html nodes. Element and
// attribute names keep their case; namespaces are kept in Namespace fields.
// The returned node is of type html.DocumentNode.
func Parse(r io.Reader) (*html.Node, error) {
	dec := xml.NewDecoder(r)
	doc := &html.Node{Type: html.DocumentNode}
	current := doc
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "annotation document is not valid XML")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &html.Node{
				Type:      html.ElementNode,
				Data:      t.Name.Local,
				Namespace: t.Name.Space,
			}
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, html.Attribute{
					Namespace: a.Name.Space,
					Key:       a.Name.Local,
					Val:       a.Value,
				})
			}
			current.AppendChild(n)
			current = n
		case xml.EndElement:
			if current.Parent != nil {
				current = current.Parent
			}
		case xml.CharData:
			if current == doc {
				continue // whitespace outside of the root element
			}
			current.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
		case xml.Comment:
			current.AppendChild(&html.Node{Type: html.CommentNode, Data: string(t)})
		}
	}
	if doc.FirstChild == nil {
		return nil, core.Error(core.EINVALID, "annotation document is empty")
	}
	return doc, nil
}

// innerText returns the text between the start and end tags of n.
func innerText(n *html.Node) string {
	var output func(*bytes.Buffer, *html.Node)
	output = func(buf *bytes.Buffer, n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(buf, child)
		}
	}

	var buf bytes.Buffer
	output(&buf, n)
	return buf.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
