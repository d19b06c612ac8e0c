package view

import "github.com/vango-dev/tessera/pkg/vdom"

// AnyView boxes a view of any concrete type behind one static type.
// It defers to the boxed view and never alters the nodes it produces.
type AnyView struct {
	view View
}

// Erase boxes v. Erasing an AnyView returns it unchanged.
func Erase(v View) AnyView {
	if av, ok := v.(AnyView); ok {
		return av
	}
	return AnyView{view: v}
}

// Unwrap returns the boxed view.
func (a AnyView) Unwrap() View {
	return a.view
}

// Build implements View.
func (a AnyView) Build(b *vdom.Builder) {
	buildInto(b, a.view)
}
