package selector

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Part ordering and occurrence violations are unrecoverable for the chain
// that produced them - the caller has to restart from an earlier builder.
var (
	// ErrDuplicatePart is reported when element, id or pseudo-element is
	// supplied more than once inside one compound selector.
	ErrDuplicatePart = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOutOfOrderPart is reported when a part is supplied after a part
	// that must follow it.
	ErrOutOfOrderPart = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// Builder accumulates the textual form of a CSS selector. The zero value is
// an empty selector ready for use.
//
// Builder is a value type and every operation returns a new Builder, leaving
// the receiver untouched. A violation of the part rules does not surface
// immediately - the returned builder carries the first error of its chain
// and Finalize or Err report it.
type Builder struct {
	out  string
	used uint8 // exclusive parts already present, bit per Part
	last Part  // highest part kind appended so far
	some bool  // anything appended yet
	err  error
}

// New returns an empty selector builder.
func New() Builder {
	return Builder{}
}

// Add appends one part to the selector and returns the extended builder.
// Named wrappers below exist for fluent chains; Add itself is useful when
// the part kind is data driven.
func (b Builder) Add(p Part, v string) Builder {
	if b.err != nil {
		return b
	}
	// Occurrence check goes first so that a repeated exclusive part is
	// always reported as a duplicate even when ordering is violated too.
	if p.Exclusive() && b.used&(1<<uint(p)) != 0 {
		b.err = fmt.Errorf("%s %q: %w", p, v, ErrDuplicatePart)
		return b
	}
	if b.some && p < b.last {
		b.err = fmt.Errorf("%s %q after %s: %w", p, v, b.last, ErrOutOfOrderPart)
		return b
	}
	b.out += p.Render(v)
	if p.Exclusive() {
		b.used |= 1 << uint(p)
	}
	b.last = p
	b.some = true
	return b
}

// Element appends an element (type) selector, e.g. "div".
func (b Builder) Element(v string) Builder { return b.Add(PartElement, v) }

// ID appends an id selector, rendered as "#v".
func (b Builder) ID(v string) Builder { return b.Add(PartID, v) }

// Class appends a class selector, rendered as ".v". Classes may repeat.
func (b Builder) Class(v string) Builder { return b.Add(PartClass, v) }

// Attr appends an attribute selector, rendered as "[v]". The payload is
// taken verbatim, no attribute grammar validation is performed.
func (b Builder) Attr(v string) Builder { return b.Add(PartAttr, v) }

// PseudoClass appends a pseudo-class selector, rendered as ":v".
func (b Builder) PseudoClass(v string) Builder { return b.Add(PartPseudoClass, v) }

// PseudoElement appends a pseudo-element selector, rendered as "::v".
func (b Builder) PseudoElement(v string) Builder { return b.Add(PartPseudoElement, v) }

// Combine joins two selectors with a combinator into a new builder whose
// text is "a SP c SP b". The combinator value is not validated. Part marks
// of the operands do not carry over - the result is a complex selector and
// further parts start a fresh compound. Errors of both operands do carry
// over.
//
// Note that with the Descendant combinator (a single space token) the joint
// renders as three consecutive spaces. That is the documented behavior and
// is preserved byte for byte.
func Combine(a Builder, c Combinator, b Builder) Builder {
	return Builder{
		out: a.out + " " + string(c) + " " + b.out,
		err: multierr.Append(a.err, b.err),
	}
}

// String returns the text accumulated so far regardless of chain errors.
func (b Builder) String() string {
	return b.out
}

// Err returns the first part rule violation of this chain, if any.
func (b Builder) Err() error {
	return b.err
}

// Finalize returns the accumulated selector string, or the first error of
// the chain. The builder itself stays usable - finalizing is not
// destructive.
func (b Builder) Finalize() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.out, nil
}
