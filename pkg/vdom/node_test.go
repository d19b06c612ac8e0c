package vdom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindRawText, "RawText"},
		{KindComment, "Comment"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		kind Kind
		text string
	}{
		{"text", Text("hello"), KindText, "hello"},
		{"raw", RawText("<b>x</b>"), KindRawText, "<b>x</b>"},
		{"comment", Comment("note"), KindComment, "note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.node.Kind, tt.kind)
			}
			if tt.node.Text != tt.text {
				t.Errorf("Text = %q, want %q", tt.node.Text, tt.text)
			}
			if !tt.node.IsTextLike() {
				t.Error("IsTextLike() = false, want true")
			}
		})
	}

	el := Element("div")
	if !el.IsElement() || el.Tag != "div" {
		t.Errorf("Element(div) = %v", el)
	}
	if el.IsTextLike() {
		t.Error("element reported as text-like")
	}
}

func TestEqual(t *testing.T) {
	noop := func(Event) {}
	build := func(class string, handlers int, children ...*Node) *Node {
		n := Element("div")
		n.Attrs.Merge("class", class)
		for i := 0; i < handlers; i++ {
			n.Listeners.Add("click", noop)
		}
		n.Children = children
		return n
	}

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", Text("a"), nil, false},
		{"same text", Text("a"), Text("a"), true},
		{"different text", Text("a"), Text("b"), false},
		{"text vs raw", Text("a"), RawText("a"), false},
		{"different tag", Element("div"), Element("span"), false},
		{"same element", build("x", 1, Text("t")), build("x", 1, Text("t")), true},
		{"different attr", build("x", 1), build("y", 1), false},
		{"different handler count", build("x", 1), build("x", 2), false},
		{"different children", build("x", 0, Text("a")), build("x", 0, Text("b")), false},
		{"child count", build("x", 0, Text("a")), build("x", 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualAttributeOrder(t *testing.T) {
	a := Element("div")
	a.Attrs.Merge("id", "x")
	a.Attrs.Merge("class", "y")
	b := Element("div")
	b.Attrs.Merge("class", "y")
	b.Attrs.Merge("id", "x")

	if Equal(a, b) {
		t.Error("attribute order should be significant")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Element("ul")
	orig.Attrs.Merge("class", "list")
	li := Element("li")
	li.Children = []*Node{Text("one")}
	orig.Children = []*Node{li}

	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal: %v vs %v", orig, cp)
	}

	cp.Attrs.Merge("class", " extra")
	cp.Children[0].Children[0].Text = "changed"

	if v, _ := orig.Attrs.Get("class"); v != "list" {
		t.Errorf("original class mutated: %q", v)
	}
	if orig.Children[0].Children[0].Text != "one" {
		t.Error("original child mutated")
	}
}

func TestNodeCount(t *testing.T) {
	root := Element("div")
	p := Element("p")
	p.Children = []*Node{Text("a"), Comment("b")}
	root.Children = []*Node{p, RawText("c")}

	if got := root.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	var nilNode *Node
	if got := nilNode.Count(); got != 0 {
		t.Errorf("nil Count() = %d, want 0", got)
	}
}

func TestNodeString(t *testing.T) {
	n := Element("button")
	n.Attrs.Merge("id", "go")
	n.Listeners.Add("click", func(Event) {})
	n.Children = []*Node{Text("Go"), Comment("c")}

	want := `button[id="go" onclick*1]("Go", comment("c"))`
	if got := n.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestNodeDispatch(t *testing.T) {
	var order []string
	n := Element("button")
	n.Listeners.Add("click", func(Event) { order = append(order, "h1") })
	n.Listeners.Add("click", func(Event) { order = append(order, "h2") })

	if got := n.Dispatch(Event{Name: "click"}); got != 2 {
		t.Errorf("Dispatch() = %d, want 2", got)
	}
	if len(order) != 2 || order[0] != "h1" || order[1] != "h2" {
		t.Errorf("order = %v, want [h1 h2]", order)
	}
	if got := Text("x").Dispatch(Event{Name: "click"}); got != 0 {
		t.Errorf("text Dispatch() = %d, want 0", got)
	}
}
