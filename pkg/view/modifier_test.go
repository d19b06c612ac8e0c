package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/tessera/pkg/vdom"
)

func TestModifierTargetsLastNode(t *testing.T) {
	v := Modify(NewGroup2(El("label"), El("input")), Attr("name", "q"))
	want := []string{"label()", `input[name="q"]()`}
	if diff := cmp.Diff(want, render(v)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestModifierAccumulates(t *testing.T) {
	v := Modify(El("p", Text("x")),
		Style("color", "red"),
		Style("margin", "0"),
		Class("a", "", "b"),
		Class("c"),
		ID("para"),
	)
	want := []string{`p[style="color:red;margin:0;" class="a b c " id="para"]("x")`}
	if diff := cmp.Diff(want, render(v)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestAttrConcatenationLaw(t *testing.T) {
	root := BuildRoot(Modify(El("div"), Attr("k", "a"), Attr("k", "b")))
	if v, _ := root.Attrs.Get("k"); v != "ab" {
		t.Errorf("k = %q, want ab", v)
	}
}

func TestListenerOrderLaw(t *testing.T) {
	var order []string
	root := BuildRoot(Modify(El("button"),
		On("click", func(vdom.Event) { order = append(order, "h1") }),
		On("click", func(vdom.Event) { order = append(order, "h2") }),
	))

	root.Dispatch(vdom.Event{Name: "click"})
	if diff := cmp.Diff([]string{"h1", "h2"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestModifierOnEmptyContent(t *testing.T) {
	v := NewGroup2(El("a"), Modify(If(false, El("b")), Attr("id", "x")))
	want := []string{"a()"}
	if diff := cmp.Diff(want, render(v)); diff != "" {
		t.Errorf("modifier leaked onto a preceding sibling (-want +got):\n%s", diff)
	}
}

func TestNestedModifiers(t *testing.T) {
	field := El("div", El("label", Text("Name"), El("input")))

	tests := []struct {
		name string
		mod  Contributor
		want string
	}{
		{"self", Attr("data-x", "1"), `div[data-x="1"](label("Name", input()))`},
		{"depth 1", Nested(1, Attr("data-x", "1")), `div(label[data-x="1"]("Name", input()))`},
		{"innermost", Innermost(Attr("data-x", "1")), `div(label("Name", input[data-x="1"]()))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff([]string{tt.want}, render(Modify(field, tt.mod))); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEachAppliesToSiblings(t *testing.T) {
	items := ForEach([]string{"a", "b"}, func(s string, _ int) View { return El("li", Text(s)) })
	v := El("ul", Modify(items, Each(Class("item"))), El("li", Text("tail")))

	want := []string{`ul(li[class="item "]("a"), li[class="item "]("b"), li("tail"))`}
	if diff := cmp.Diff(want, render(v)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestWithCombines(t *testing.T) {
	c := With(ID("x"), On("click", func(vdom.Event) {}))
	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	want := []string{`span[id="x" onclick*1]()`}
	if diff := cmp.Diff(want, render(Modify(El("span"), c))); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestModifierFuncAndNil(t *testing.T) {
	wrap := ModifierFunc(func(b *vdom.Builder, content View) {
		b.Append(vdom.Comment("before"))
		buildInto(b, content)
	})
	want := []string{`comment("before")`, "hr()"}
	if diff := cmp.Diff(want, render(Modify(El("hr"), wrap))); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"hr()"}, render(Modified{Content: El("hr")})); diff != "" {
		t.Errorf("nil modifier mismatch (-want +got):\n%s", diff)
	}
}
