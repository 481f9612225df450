package preview

import (
	"strconv"

	"github.com/goliatone/go-screengen/pkg/interpret"
)

// Kind names the structural role of a node.
type Kind string

const (
	KindBox      Kind = "box"
	KindText     Kind = "text"
	KindIcon     Kind = "icon"
	KindImage    Kind = "image"
	KindButton   Kind = "button"
	KindInput    Kind = "input"
	KindSelect   Kind = "select"
	KindOption   Kind = "option"
	KindToggle   Kind = "toggle"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindList     Kind = "list"
	KindItem     Kind = "item"
	KindTable    Kind = "table"
	KindRow      Kind = "row"
	KindCell     Kind = "cell"
	KindBubble   Kind = "bubble"
)

// Style keys.
const (
	StyleBackground     = "background"
	StyleColor          = "color"
	StyleBorder         = "border"
	StyleBorderRadius   = "border-radius"
	StylePadding        = "padding"
	StyleMargin         = "margin"
	StyleWidth          = "width"
	StyleHeight         = "height"
	StyleFlexDirection  = "flex-direction"
	StyleJustifyContent = "justify-content"
	StyleAlignItems     = "align-items"
	StyleAlignSelf      = "align-self"
	StyleGap            = "gap"
	StyleOpacity        = "opacity"
	StyleBoxShadow      = "box-shadow"
	StyleFontWeight     = "font-weight"
	StyleFontSize       = "font-size"
	StyleOverflow       = "overflow"
)

// Node is one element of a preview tree.
type Node struct {
	Kind     Kind              `json:"kind"`
	ID       string            `json:"id,omitempty"`
	Text     string            `json:"text,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

func node(kind Kind, children ...Node) Node {
	return Node{Kind: kind, Children: children}
}

func textNode(s string) Node {
	return Node{Kind: KindText, Text: s}
}

func (n Node) with(key, value string) Node {
	if n.Style == nil {
		n.Style = map[string]string{}
	}
	n.Style[key] = value
	return n
}

func (n Node) attr(key, value string) Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
	return n
}

// Find returns the first node of the given kind in depth-first order.
func (n Node) Find(kind Kind) (Node, bool) {
	if n.Kind == kind {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(kind); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Count returns how many nodes of the given kind the tree holds.
func (n Node) Count(kind Kind) int {
	total := 0
	if n.Kind == kind {
		total++
	}
	for _, child := range n.Children {
		total += child.Count(kind)
	}
	return total
}

func px(v float64) string {
	return interpret.FormatNumber(interpret.Length(v)) + "px"
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}
