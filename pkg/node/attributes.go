package node

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes maps attribute names to values.
//
// A string value renders as name="value". A nil value or true renders the
// bare name, for boolean attributes such as disabled. false omits the
// attribute. Any other value is formatted with fmt.Sprint.
type Attributes map[string]any

// priorityAttributes render first, in this order, when present.
var priorityAttributes = [...]string{"id", "class", "style", "title"}

// invalidNameChars are the characters rejected in attribute names.
const invalidNameChars = " \"'>/="

// Clone returns a shallow copy of a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// ValidateAttributeName returns ErrInvalidAttributeName if name cannot be
// serialized as an attribute name.
func ValidateAttributeName(name string) error {
	if name == "" || strings.ContainsAny(name, invalidNameChars) {
		return fmt.Errorf("%w: %q", ErrInvalidAttributeName, name)
	}
	return nil
}

// AttributeOrder returns the names of attrs in serialization order:
// id, class, style and title first, then the rest sorted ascending.
func AttributeOrder(attrs Attributes) []string {
	order := make([]string, 0, len(attrs))
	for _, k := range priorityAttributes {
		if _, ok := attrs[k]; ok {
			order = append(order, k)
		}
	}

	rest := make([]string, 0, len(attrs))
	for k := range attrs {
		if isPriorityAttribute(k) {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(order, rest...)
}

func isPriorityAttribute(name string) bool {
	for _, k := range priorityAttributes {
		if k == name {
			return true
		}
	}
	return false
}

// RenderAttributes serializes attrs as a space separated list, without a
// leading space. It fails on the first invalid attribute name and returns
// no partial output.
func RenderAttributes(attrs Attributes, escapeAmpersands bool) (string, error) {
	if len(attrs) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, name := range AttributeOrder(attrs) {
		if err := ValidateAttributeName(name); err != nil {
			return "", err
		}

		value := attrs[name]
		if v, ok := value.(bool); ok && !v {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)

		switch v := value.(type) {
		case nil, bool:
		case string:
			b.WriteString(`="`)
			b.WriteString(EscapeAttribute(v, escapeAmpersands))
			b.WriteByte('"')
		default:
			b.WriteString(`="`)
			b.WriteString(EscapeAttribute(fmt.Sprint(v), escapeAmpersands))
			b.WriteByte('"')
		}
	}

	return b.String(), nil
}
