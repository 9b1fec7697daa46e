package selector

import (
	"errors"
	"testing"
)

func TestBuilder_PartOrderings(t *testing.T) {
	tests := []struct {
		name string
		b    Builder
		want string
	}{
		{"element only", New().Element("div"), "div"},
		{"id only", New().ID("main"), "#main"},
		{"class only", New().Class("container"), ".container"},
		{"attr only", New().Attr("href"), "[href]"},
		{"pseudo-class only", New().PseudoClass("focus"), ":focus"},
		{"pseudo-element only", New().PseudoElement("before"), "::before"},
		{"element attr pseudo-class", New().Element("a").Attr(`href$=".png"`).PseudoClass("focus"), `a[href$=".png"]:focus`},
		{"repeatable class", New().ID("main").Class("container").Class("editable"), "#main.container.editable"},
		{"full ordering", New().Element("div").ID("main").Class("c").Attr("a").PseudoClass("hover").PseudoElement("after"), "div#main.c[a]:hover::after"},
		{"repeatable attr", New().Element("input").Attr("type=text").Attr("required"), "input[type=text][required]"},
		{"repeatable pseudo-class", New().Element("li").PseudoClass("first-child").PseudoClass("hover"), "li:first-child:hover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.b.Finalize()
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Finalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_DuplicateExclusivePart(t *testing.T) {
	tests := []struct {
		name string
		b    Builder
	}{
		{"element twice", New().Element("div").Element("span")},
		{"id twice", New().ID("main").ID("other")},
		{"pseudo-element twice", New().PseudoElement("before").PseudoElement("after")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Finalize(); !errors.Is(err, ErrDuplicatePart) {
				t.Errorf("Finalize() error = %v, want ErrDuplicatePart", err)
			}
		})
	}
}

func TestBuilder_OutOfOrderPart(t *testing.T) {
	tests := []struct {
		name string
		b    Builder
	}{
		{"class before id", New().Class("container").ID("main")},
		{"attr before class", New().Attr("href").Class("link")},
		{"pseudo-class before attr", New().PseudoClass("hover").Attr("href")},
		{"pseudo-element before pseudo-class", New().PseudoElement("after").PseudoClass("hover")},
		{"element after id", New().ID("main").Element("div")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Finalize(); !errors.Is(err, ErrOutOfOrderPart) {
				t.Errorf("Finalize() error = %v, want ErrOutOfOrderPart", err)
			}
		})
	}
}

func TestBuilder_DuplicateWinsOverOrdering(t *testing.T) {
	// id supplied again after a later part violates both rules; the
	// duplicate must be the one reported.
	b := New().ID("main").Class("container").ID("other")
	if _, err := b.Finalize(); !errors.Is(err, ErrDuplicatePart) {
		t.Errorf("Finalize() error = %v, want ErrDuplicatePart", err)
	}
}

func TestBuilder_ErrorIsSticky(t *testing.T) {
	bad := New().Class("c").ID("main")
	// Later valid operations must not clear the chain error.
	b := bad.Class("another").PseudoClass("hover")
	if _, err := b.Finalize(); !errors.Is(err, ErrOutOfOrderPart) {
		t.Errorf("Finalize() error = %v, want ErrOutOfOrderPart", err)
	}
	if b.String() != ".c" {
		t.Errorf("errored chain accumulated %q, want %q", b.String(), ".c")
	}
}

func TestBuilder_BranchingFromSharedPrefix(t *testing.T) {
	base := New().Element("div")

	a, err := base.ID("a").Finalize()
	if err != nil {
		t.Fatalf("first branch error = %v", err)
	}
	b, err := base.ID("b").Finalize()
	if err != nil {
		t.Fatalf("second branch error = %v", err)
	}

	if a != "div#a" {
		t.Errorf("first branch = %q, want %q", a, "div#a")
	}
	if b != "div#b" {
		t.Errorf("second branch = %q, want %q", b, "div#b")
	}

	// The shared prefix itself must still be pristine.
	if got, err := base.Finalize(); err != nil || got != "div" {
		t.Errorf("shared prefix = %q, %v, want %q, nil", got, err, "div")
	}
}

func TestCombine_Simple(t *testing.T) {
	a := New().Element("p")
	b := New().Element("div")

	tests := []struct {
		c    Combinator
		want string
	}{
		{Adjacent, "p + div"},
		{Child, "p > div"},
		{Sibling, "p ~ div"},
		{Descendant, "p   div"},
	}

	for _, tt := range tests {
		got, err := Combine(a, tt.c, b).Finalize()
		if err != nil {
			t.Fatalf("Combine(%q) error = %v", tt.c, err)
		}
		if got != tt.want {
			t.Errorf("Combine(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestCombine_NestedLeftToRight(t *testing.T) {
	a := New().Element("div").ID("main").Class("container").Class("draggable")
	b := New().Element("table").ID("data")
	c := New().Element("tr").PseudoClass("nth-of-type(even)")
	d := New().Element("td").PseudoClass("nth-of-type(even)")

	got, err := Combine(Combine(Combine(a, Adjacent, b), Sibling, c), Descendant, d).Finalize()
	if err != nil {
		t.Fatalf("nested Combine error = %v", err)
	}
	// The inner descendant combinator is a single space token with the
	// outer join spacing around it, hence the triple space.
	want := "div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)"
	if got != want {
		t.Errorf("nested Combine = %q, want %q", got, want)
	}
}

func TestCombine_PropagatesOperandErrors(t *testing.T) {
	good := New().Element("p")
	bad := New().ID("a").ID("b")

	if _, err := Combine(good, Child, bad).Finalize(); !errors.Is(err, ErrDuplicatePart) {
		t.Errorf("Combine with errored right operand: error = %v, want ErrDuplicatePart", err)
	}
	if _, err := Combine(bad, Child, good).Finalize(); !errors.Is(err, ErrDuplicatePart) {
		t.Errorf("Combine with errored left operand: error = %v, want ErrDuplicatePart", err)
	}
}

func TestCombine_StartsFreshCompound(t *testing.T) {
	// Part marks must not leak across a combinator: the right side of a
	// complex selector may use an id even when the left side already did.
	left := New().Element("ul").ID("nav")
	right := New().Element("li").ID("active")

	got, err := Combine(left, Child, right).Finalize()
	if err != nil {
		t.Fatalf("Combine error = %v", err)
	}
	if want := "ul#nav > li#active"; got != want {
		t.Errorf("Combine = %q, want %q", got, want)
	}
}

func TestBuilder_FinalizeNotDestructive(t *testing.T) {
	b := New().Element("div").Class("a")
	first, err := b.Finalize()
	if err != nil {
		t.Fatalf("first Finalize error = %v", err)
	}
	second, err := b.Finalize()
	if err != nil {
		t.Fatalf("second Finalize error = %v", err)
	}
	if first != second {
		t.Errorf("repeated Finalize differs: %q vs %q", first, second)
	}
	// And the finalized builder can still be extended.
	if got := b.Class("b").String(); got != "div.a.b" {
		t.Errorf("extending finalized builder = %q, want %q", got, "div.a.b")
	}
}
