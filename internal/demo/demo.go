// Package demo is the todo list served by the tessera CLI.
package demo

import (
	"strings"

	"github.com/vango-dev/tessera/pkg/vdom"
	"github.com/vango-dev/tessera/pkg/view"
)

// Todo is one list entry.
type Todo struct {
	Title string
	Done  bool
}

// App is the state behind one rendered page. It is not safe for
// concurrent use; a live session touches it from its loop only.
type App struct {
	Title string
	Todos []Todo
	draft string
}

// New returns an App with two sample entries.
func New() *App {
	return &App{
		Title: "Todos",
		Todos: []Todo{
			{Title: "Read the docs", Done: true},
			{Title: "Ship it"},
		},
	}
}

// Render builds the page.
func (a *App) Render() view.View {
	return view.El("main",
		view.Modify(view.El("h1", view.Text(a.Title)), view.Class("title")),
		view.Modify(view.El("input"),
			view.Attr("placeholder", "What needs doing?"),
			view.On("input", a.setDraft),
		),
		view.Modify(view.El("button", view.Text("Add")), view.On("click", a.add)),
		view.El("ul", view.ForEach(a.Todos, a.item)),
		view.IfElse(len(a.Todos) == 0,
			view.Text("Nothing to do"),
			view.El("p", view.Textf("%d of %d done", a.done(), len(a.Todos))),
		),
	)
}

// item renders one entry. Handlers address entries by index, which stays
// valid because entries are only ever appended.
func (a *App) item(t Todo, i int) view.View {
	title := view.IfElse(t.Done, view.El("s", view.Text(t.Title)), view.Text(t.Title))
	return view.Modify(view.El("li", title), view.On("click", func(vdom.Event) {
		a.Todos[i].Done = !a.Todos[i].Done
	}))
}

func (a *App) setDraft(ev vdom.Event) {
	a.draft = ev.Payload
}

func (a *App) add(vdom.Event) {
	title := strings.TrimSpace(a.draft)
	if title == "" {
		return
	}
	a.Todos = append(a.Todos, Todo{Title: title})
	a.draft = ""
}

func (a *App) done() int {
	n := 0
	for _, t := range a.Todos {
		if t.Done {
			n++
		}
	}
	return n
}
