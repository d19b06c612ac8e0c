// Package view is the composition layer: typed view values that fold into a
// render node sequence.
//
// Every declared unit of UI implements View and contributes nodes to a
// vdom.Builder. The concrete View types form a closed set of combinators:
//
//   - Element, Text, Raw, Comment and Func are single units.
//   - Optional contributes its value or nothing.
//   - Either contributes exactly one of two branches.
//   - Group2 through Group10 concatenate heterogeneous members in order.
//   - Array concatenates a dynamic number of homogeneous members.
//   - AnyView erases a concrete type so functions can return one static type.
//   - Modified applies a Modifier to the nodes its content produced.
//
// Composition is a pure function of the value graph: building the same
// values twice yields vdom.Equal trees.
//
//	card := view.Modify(
//	    view.El("div",
//	        view.El("h2", view.Text(title)),
//	        view.If(subtitle != "", view.El("p", view.Text(subtitle))),
//	    ),
//	    view.Class("card"),
//	    view.On("click", onOpen),
//	)
//	nodes := view.Build(card)
package view
