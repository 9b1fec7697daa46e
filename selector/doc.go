// Package selector builds and decomposes CSS complex selectors.
//
// The Builder assembles one compound selector part by part while enforcing
// the canonical part order (element, id, class, attribute, pseudo-class,
// pseudo-element) and the single-occurrence rule for element, id and
// pseudo-element. Builders are immutable values: every operation returns a
// new Builder, so several selectors can be grown from a shared prefix
// without interfering with each other.
//
//	b := selector.New().Element("div").ID("main").Class("container")
//	s, err := b.Class("draggable").Finalize() // "div#main.container.draggable"
//
// Compound selectors are joined into complex selectors with Combine and one
// of the four combinators (descendant, child, sibling, adjacent).
//
// The Parser goes the other way: it tokenizes an existing selector string
// and replays it through a Builder, so decomposition is subject to the same
// ordering rules.
package selector
