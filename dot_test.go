package vellum

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	text := NewText("hi", "", 12, Px(0), Px(0))
	root := NewNode(NewGroup(),
		NewNode(NewRectangle(Px(1), Px(2), Px(30), Px(40))).Named("box").OnClick(1),
		NewNode(text),
		Embed(NewComp[int](&boxModel{count: 3})),
	).Named("root")
	Recalculate(root, screen, newFixedFonts())

	dot := ToDOT(root, DOTOptions{Bounds: true})
	for _, want := range []string{
		"digraph vellum {",
		`root (group)`,
		`box (rect)`,
		`on: mousedown`,
		`\"hi\"`,
		`1.0,2.0 30.0x40.0`,
		"style=\"rounded,filled,dashed\"",
		"shape=folder",
		"n0 -> n1;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTWithoutBounds(t *testing.T) {
	root := NewNode(NewRectangle(Px(1), Px(2), Px(30), Px(40)))
	Recalculate(root, screen, nil)
	if strings.Contains(ToDOT(root, DOTOptions{}), "30.0x40.0") {
		t.Error("bounds should be omitted")
	}
}
