package nfe

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Namespace is the fixed XML namespace of NF-e documents. Every element
// lookup is qualified against it.
const Namespace = "http://www.portalfiscal.inf.br/nfe"

// element is one node of the parsed invoice tree. Only what the extractor
// needs is kept: the namespace-qualified name, the direct character data
// and the child elements in document order.
type element struct {
	space    string
	local    string
	text     string
	children []*element
}

// parseTree builds the element tree for a whole document using the stdlib
// decoder. Attributes are dropped; NF-e scalar fields are element text.
func parseTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{space: t.Name.Space, local: t.Name.Local}
			if len(stack) == 0 {
				// The stdlib decoder tolerates multiple top-level
				// elements; a well-formed document has exactly one.
				if root != nil {
					return nil, fmt.Errorf("junk after document element: unexpected <%s>", t.Name.Local)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					if root == nil {
						return nil, fmt.Errorf("text before document element")
					}
					return nil, fmt.Errorf("junk after document element: unexpected text")
				}
				continue
			}
			// Only the character data preceding the first child counts as
			// the element's text, as in the reference scalar-field reads.
			cur := stack[len(stack)-1]
			if len(cur.children) == 0 {
				cur.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	return root, nil
}

// find returns the first direct child with the given local name in the
// NF-e namespace, or nil. It never searches deeper than one level.
func (e *element) find(local string) *element {
	for _, c := range e.children {
		if c.space == Namespace && c.local == local {
			return c
		}
	}
	return nil
}

// findAll returns all direct children with the given local name in the
// NF-e namespace, in document order.
func (e *element) findAll(local string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.space == Namespace && c.local == local {
			out = append(out, c)
		}
	}
	return out
}

// content returns the element's own character data with surrounding
// whitespace removed.
func (e *element) content() string {
	return strings.TrimSpace(e.text)
}

// requiredChild resolves a required sub-element. Absence is a Malformed
// error naming the expected path, never a nil dereference further down.
func requiredChild(parent *element, parentName, local string) (*element, error) {
	el := parent.find(local)
	if el == nil {
		return nil, &Error{
			Kind: KindMalformed,
			msg:  fmt.Sprintf("required element <%s> missing under <%s>", local, parentName),
		}
	}
	return el, nil
}

// requiredText resolves a required scalar field to its text content.
func requiredText(parent *element, parentName, local string) (string, error) {
	el, err := requiredChild(parent, parentName, local)
	if err != nil {
		return "", err
	}
	return el.content(), nil
}

// requiredFloat resolves a required scalar field and parses it as a
// decimal number.
func requiredFloat(parent *element, parentName, local string) (float64, error) {
	text, err := requiredText(parent, parentName, local)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &Error{
			Kind: KindMalformed,
			msg:  fmt.Sprintf("element <%s> under <%s> has non-numeric value %q", local, parentName, text),
		}
	}
	return v, nil
}

// optionalText resolves an optional scalar field. The second result
// reports presence so the caller decides where a fallback applies.
func optionalText(parent *element, local string) (string, bool) {
	el := parent.find(local)
	if el == nil {
		return "", false
	}
	return el.content(), true
}
