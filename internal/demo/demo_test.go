package demo

import (
	"testing"

	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/reconcile"
	"github.com/vango-dev/tessera/pkg/vdom"
	"github.com/vango-dev/tessera/pkg/view"
)

// page mounts app under a fresh host and returns a function that re-renders
// it in place.
func page(app *App) (*memhost.Host, func()) {
	h := memhost.New("body")
	prev := view.Build(app.Render())
	reconcile.ReconcileChildren[*memhost.Node](h, nil, prev, h.Root())
	return h, func() {
		next := view.Build(app.Render())
		reconcile.ReconcileChildren[*memhost.Node](h, prev, next, h.Root())
		prev = next
	}
}

// find returns the element with the given tag in document order, after
// skipping skip earlier matches.
func find(n *memhost.Node, tag string, skip int) *memhost.Node {
	var out *memhost.Node
	var walk func(*memhost.Node)
	walk = func(n *memhost.Node) {
		if out != nil {
			return
		}
		if n.Kind() == vdom.KindElement && n.Tag() == tag {
			if skip == 0 {
				out = n
				return
			}
			skip--
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}

func TestRender(t *testing.T) {
	h, _ := page(New())

	want := `<body><main><h1 class="title ">Todos</h1><input placeholder="What needs doing?">` +
		`<button>Add</button><ul><li><s>Read the docs</s></li><li>Ship it</li></ul>` +
		`<p>1 of 2 done</p></main></body>`
	if got := memhost.HTML(h.Root()); got != want {
		t.Errorf("HTML() =\n%s\nwant\n%s", got, want)
	}
}

func TestToggle(t *testing.T) {
	app := New()
	h, rerender := page(app)

	find(h.Root(), "li", 1).Dispatch(vdom.Event{Name: "click"})
	rerender()

	if !app.Todos[1].Done {
		t.Fatal("second entry not toggled")
	}
	li := find(h.Root(), "li", 1)
	if got := memhost.HTML(li); got != "<li><s>Ship it</s></li>" {
		t.Errorf("li = %s", got)
	}
	if got := memhost.HTML(find(h.Root(), "p", 0)); got != "<p>2 of 2 done</p>" {
		t.Errorf("summary = %s", got)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  int
	}{
		{"title", "Write tests", 3},
		{"blank", "   ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New()
			h, rerender := page(app)

			find(h.Root(), "input", 0).Dispatch(vdom.Event{Name: "input", Payload: tt.draft})
			find(h.Root(), "button", 0).Dispatch(vdom.Event{Name: "click"})
			rerender()

			if len(app.Todos) != tt.want {
				t.Fatalf("len(Todos) = %d, want %d", len(app.Todos), tt.want)
			}
			if got := len(find(h.Root(), "ul", 0).Children()); got != tt.want {
				t.Errorf("rendered %d entries, want %d", got, tt.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	app := &App{Title: "Empty"}
	h, _ := page(app)

	want := `<body><main><h1 class="title ">Empty</h1><input placeholder="What needs doing?">` +
		`<button>Add</button><ul></ul>Nothing to do</main></body>`
	if got := memhost.HTML(h.Root()); got != want {
		t.Errorf("HTML() = %s", got)
	}
}
