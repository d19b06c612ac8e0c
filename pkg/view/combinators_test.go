package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptional(t *testing.T) {
	tests := []struct {
		name string
		view View
		want []string
	}{
		{"some", Some(Text("x")), []string{`"x"`}},
		{"none", None[View](), nil},
		{"if true", If(true, El("p")), []string{"p()"}},
		{"if false", If(false, El("p")), nil},
		{"some nil interface", Some[View](nil), nil},
		{"absent leaves no placeholder", El("div", Text("a"), If(false, Text("b")), Text("c")), []string{`div("a", "c")`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, render(tt.view)); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionalAccessors(t *testing.T) {
	o := Some(Text("x"))
	if !o.Present() {
		t.Error("Present() = false")
	}
	if _, ok := None[View]().Get(); ok {
		t.Error("None().Get() reported present")
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	v := When(false, func() View {
		called = true
		return Text("x")
	})
	if called {
		t.Error("When evaluated fn for a false condition")
	}
	if got := render(v); got != nil {
		t.Errorf("render = %v, want nothing", got)
	}
	if diff := cmp.Diff([]string{`"y"`}, render(When(true, func() View { return Text("y") }))); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestEither(t *testing.T) {
	tests := []struct {
		name string
		view View
		want []string
	}{
		{"first", First[View, View](Text("a")), []string{`"a"`}},
		{"second", Second[View](El("b")), []string{"b()"}},
		{"if else true", IfElse(true, El("yes"), Text("no")), []string{"yes()"}},
		{"if else false", IfElse(false, El("yes"), Text("no")), []string{`"no"`}},
		{"group branch", IfElse(false, Text("one"), NewGroup2(Text("x"), Text("y"))), []string{`"x"`, `"y"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, render(tt.view)); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEitherBuildsOnlyChosenBranch(t *testing.T) {
	var built []string
	track := func(name string) View {
		return Func(func() View {
			built = append(built, name)
			return Text(name)
		})
	}

	render(IfElse(true, track("a"), track("b")))
	if diff := cmp.Diff([]string{"a"}, built); diff != "" {
		t.Errorf("built mismatch (-want +got):\n%s", diff)
	}

	constructed := 0
	e := WhenElse(false,
		func() View { constructed++; return Text("a") },
		func() View { return Text("b") },
	)
	if constructed != 0 || e.IsFirst() {
		t.Error("WhenElse constructed the unchosen branch")
	}
}

func TestGroupsPreserveOrder(t *testing.T) {
	tests := []struct {
		name string
		view View
		want int
	}{
		{"2", NewGroup2(Text("0"), El("p")), 2},
		{"3", NewGroup3(Text("0"), Text("1"), Text("2")), 3},
		{"4", NewGroup4(Text("0"), Text("1"), Text("2"), Text("3")), 4},
		{"5", NewGroup5(Text("0"), Text("1"), Text("2"), Text("3"), Text("4")), 5},
		{"6", NewGroup6(Text("0"), Text("1"), Text("2"), Text("3"), Text("4"), Text("5")), 6},
		{"7", NewGroup7(Text("0"), Text("1"), Text("2"), Text("3"), Text("4"), Text("5"), Text("6")), 7},
		{"8", NewGroup8(Text("0"), Text("1"), Text("2"), Text("3"), Text("4"), Text("5"), Text("6"), Text("7")), 8},
		{"9", NewGroup9(Text("0"), Text("1"), Text("2"), Text("3"), Text("4"), Text("5"), Text("6"), Text("7"), Text("8")), 9},
		{"10", NewGroup10(Text("0"), Text("1"), Text("2"), Text("3"), Text("4"), Text("5"), Text("6"), Text("7"), Text("8"), Text("9")), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := Build(tt.view)
			if len(nodes) != tt.want {
				t.Fatalf("len = %d, want %d", len(nodes), tt.want)
			}
			if nodes[0].Text != "0" {
				t.Errorf("first node = %v", nodes[0])
			}
		})
	}
}

func TestHeterogeneousGroup(t *testing.T) {
	g := NewGroup3(
		El("h1", Text("Title")),
		If(false, Text("hidden")),
		ForEach([]int{1, 2}, func(n, _ int) View { return Textf("%d", n) }),
	)
	want := []string{`h1("Title")`, `"1"`, `"2"`}
	if diff := cmp.Diff(want, render(g)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestArray(t *testing.T) {
	if got := render(Array[View](nil)); got != nil {
		t.Errorf("empty array rendered %v", got)
	}

	items := []string{"a", "b", "c"}
	v := ForEach(items, func(s string, i int) View { return Textf("%d:%s", i, s) })
	want := []string{`"0:a"`, `"1:b"`, `"2:c"`}
	if diff := cmp.Diff(want, render(v)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{`"0"`, `"1"`}, render(Repeat(2, func(i int) View { return Textf("%d", i) }))); diff != "" {
		t.Errorf("Repeat mismatch (-want +got):\n%s", diff)
	}
	if Repeat(0, func(int) View { return Empty() }) != nil {
		t.Error("Repeat(0) should be nil")
	}
}

func TestArrayLengthVaries(t *testing.T) {
	list := func(n int) View {
		return El("ul", Repeat(n, func(i int) View { return El("li") }))
	}
	if got := len(BuildRoot(list(2)).Children); got != 2 {
		t.Errorf("children = %d, want 2", got)
	}
	if got := len(BuildRoot(list(5)).Children); got != 5 {
		t.Errorf("children = %d, want 5", got)
	}
}

func TestErase(t *testing.T) {
	pick := func(kind int) AnyView {
		switch kind {
		case 0:
			return Erase(Text("text"))
		case 1:
			return Erase(El("div"))
		default:
			return Erase(NewGroup2(Text("a"), Text("b")))
		}
	}

	if diff := cmp.Diff([]string{`"text"`}, render(pick(0))); diff != "" {
		t.Errorf("erased text mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"div()"}, render(pick(1))); diff != "" {
		t.Errorf("erased element mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`"a"`, `"b"`}, render(pick(2))); diff != "" {
		t.Errorf("erased group mismatch (-want +got):\n%s", diff)
	}

	inner := Erase(Text("x"))
	if outer := Erase(inner); outer.Unwrap() != inner.Unwrap() {
		t.Error("erasing an AnyView should not box it again")
	}
	if got := render(AnyView{}); got != nil {
		t.Errorf("zero AnyView rendered %v", got)
	}
}
