package stylesheet

import (
	"testing"

	"go.uber.org/zap"
)

func TestScanner_Selectors(t *testing.T) {
	cssText := []byte(`
p { text-indent: 1em; }
.epigraph { font-style: italic; }
div#main > p.lead { margin: 0; }
h2, h3, h4 { font-weight: bold; }
`)

	s := NewScanner(zap.NewNop())
	got := s.Selectors(cssText)

	want := []string{"p", ".epigraph", "div#main > p.lead", "h2", "h3", "h4"}
	if len(got) != len(want) {
		t.Fatalf("Selectors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selector %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_MediaBlock(t *testing.T) {
	cssText := []byte(`
@media screen {
  .online { display: block; }
}
blockquote { margin-left: 1em; }
`)

	s := NewScanner(zap.NewNop())
	got := s.Selectors(cssText)

	want := []string{".online", "blockquote"}
	if len(got) != len(want) {
		t.Fatalf("Selectors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selector %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_SkipsOtherAtRules(t *testing.T) {
	cssText := []byte(`
@import "other.css";
@font-face { font-family: "Vollkorn"; src: url(fonts/Vollkorn.ttf); }
a:hover { color: red; }
`)

	s := NewScanner(zap.NewNop())
	got := s.Selectors(cssText)

	if len(got) != 1 || got[0] != "a:hover" {
		t.Errorf("Selectors() = %v, want [a:hover]", got)
	}
}

func TestScanner_Empty(t *testing.T) {
	s := NewScanner(nil)
	if got := s.Selectors(nil); len(got) != 0 {
		t.Errorf("Selectors(nil) = %v, want none", got)
	}
}
