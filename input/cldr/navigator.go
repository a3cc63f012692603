package cldr

import (
	"errors"
	"fmt"

	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Navigator is an xpath.NodeNavigator for a tree of html nodes.
type Navigator struct {
	root, current *html.Node
	attr          int // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for a node tree.
func NewNavigator(node *html.Node) *Navigator {
	return &Navigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// CurrentNode returns the html node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (*html.Node, error) {
	mynav, ok := nav.(*Navigator)
	if !ok {
		return nil, errors.New("navigator is not of type cldr.Navigator")
	}
	return mynav.current, nil
}

func (nav *Navigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode:
		return xpath.RootNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	case html.DoctypeNode:
		return xpath.RootNode
	}
	panic(fmt.Sprintf("unknown node type: %v", nav.current.Type))
}

func (nav *Navigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attr[nav.attr].Key
	}
	return nav.current.Data
}

func (*Navigator) Prefix() string {
	return ""
}

func (nav *Navigator) Value() string {
	switch nav.current.Type {
	case html.CommentNode:
		return nav.current.Data
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return innerText(nav.current)
	case html.TextNode:
		return nav.current.Data
	case html.DocumentNode:
		return innerText(nav.current)
	}
	return ""
}

func (nav *Navigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *Navigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *Navigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *Navigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *Navigator) MoveToChild() bool {
	if nav.attr != -1 || nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *Navigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.PrevSibling == nil || nav.current == nav.root {
		return false
	}
	for nav.current.PrevSibling != nil {
		nav.current = nav.current.PrevSibling
	}
	return true
}

func (nav *Navigator) String() string {
	return nav.Value()
}

func (nav *Navigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *Navigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *Navigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*Navigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &Navigator{}
