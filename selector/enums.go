package selector

import (
	"fmt"
	"strings"
)

// Part identifies one kind of simple selector inside a compound selector.
// The declaration order is the canonical order parts must appear in.
type Part int

const (
	PartElement Part = iota // div
	PartID                  // #main
	PartClass               // .container
	PartAttr                // [href$=".png"]
	PartPseudoClass         // :focus
	PartPseudoElement       // ::before
)

// String returns the human readable part name.
func (p Part) String() string {
	switch p {
	case PartElement:
		return "element"
	case PartID:
		return "id"
	case PartClass:
		return "class"
	case PartAttr:
		return "attribute"
	case PartPseudoClass:
		return "pseudo-class"
	case PartPseudoElement:
		return "pseudo-element"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// Exclusive reports whether the part may occur at most once per compound
// selector.
func (p Part) Exclusive() bool {
	return p == PartElement || p == PartID || p == PartPseudoElement
}

// Render returns the marker-prefixed textual form of a part value.
func (p Part) Render(v string) string {
	switch p {
	case PartID:
		return "#" + v
	case PartClass:
		return "." + v
	case PartAttr:
		return "[" + v + "]"
	case PartPseudoClass:
		return ":" + v
	case PartPseudoElement:
		return "::" + v
	default:
		return v
	}
}

// PartNames returns all part names in canonical order.
func PartNames() []string {
	return []string{"element", "id", "class", "attribute", "pseudo-class", "pseudo-element"}
}

// ParsePart converts a part name to a Part. Accepts a few widespread
// aliases ("type" for element, "attr" for attribute).
func ParsePart(name string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "element", "type", "tag":
		return PartElement, nil
	case "id":
		return PartID, nil
	case "class":
		return PartClass, nil
	case "attribute", "attr":
		return PartAttr, nil
	case "pseudo-class", "pseudoclass":
		return PartPseudoClass, nil
	case "pseudo-element", "pseudoelement":
		return PartPseudoElement, nil
	default:
		return 0, fmt.Errorf("unknown selector part %q (supported parts: %s)", name, strings.Join(PartNames(), ", "))
	}
}

// Combinator expresses the relationship between two joined selectors.
// Values are the literal CSS tokens and are not validated anywhere - any
// string is accepted into the joint verbatim.
type Combinator string

const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Sibling    Combinator = "~"
	Adjacent   Combinator = "+"
)

// Name returns the human readable combinator name, or the literal token
// for combinators outside the canonical four.
func (c Combinator) Name() string {
	switch c {
	case Descendant:
		return "descendant"
	case Child:
		return "child"
	case Sibling:
		return "sibling"
	case Adjacent:
		return "adjacent"
	default:
		return string(c)
	}
}

// ParseCombinator converts a combinator name or token to a Combinator.
func ParseCombinator(name string) (Combinator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "descendant", " ", "":
		return Descendant, nil
	case "child", ">":
		return Child, nil
	case "sibling", "~":
		return Sibling, nil
	case "adjacent", "adjacent-sibling", "+":
		return Adjacent, nil
	default:
		return "", fmt.Errorf("unknown combinator %q (supported: descendant, child, sibling, adjacent)", name)
	}
}
