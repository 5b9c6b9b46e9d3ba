package sep

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is one match of a grammar rule.
//
// Tag holds the names of every rule that matched the node, separated by '|'
// and outermost first, e.g. "expr|number|regex". Contents is the matched text
// of a terminal and is empty for composite nodes.
type Node struct {
	Tag      string
	Contents string
	Pos      int
	Children []*Node
}

func (n *Node) HasTag(name string) bool {
	if n == nil {
		return false
	}
	for _, t := range strings.Split(n.Tag, "|") {
		if t == name {
			return true
		}
	}
	return false
}

func (n *Node) IsTerminal() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	if n == nil {
		return ""
	}
	if n.IsTerminal() {
		return n.Contents
	}
	var buf bytes.Buffer
	prev := ""
	for _, child := range n.Children {
		s := child.String()
		if s == "" {
			continue
		}
		if buf.Len() > 0 && prev != "(" && s != ")" {
			buf.WriteByte(' ')
		}
		buf.WriteString(s)
		prev = s
	}
	return buf.String()
}

// Print writes the tree to w, one node per line, children indented below
// their parent.
func (n *Node) Print(w io.Writer) error {
	return n.print(w, 0)
}

func (n *Node) print(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	if n.IsTerminal() {
		_, err = fmt.Fprintf(w, "%s%s %q\n", indent, n.Tag, n.Contents)
	} else {
		_, err = fmt.Fprintf(w, "%s%s\n", indent, n.Tag)
	}
	if err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.print(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
