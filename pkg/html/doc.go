// Package html provides the HTML element catalog for treesite documents.
//
// Every element has a constructor taking variadic arguments, in the same
// style for all tags:
//
//	html.Div(html.Class("card"),
//	    html.H1("Title"),
//	    html.P("Some ", html.Em("emphasized"), " text."),
//	)
//
// Arguments may be attributes (Attr, []Attr, Attrs), children of any kind
// the expansion engine accepts (nodes, strings, callables, slices), or nil,
// which is ignored so conditional content reads naturally.
//
// # Render modes
//
// Each element carries a Mode that decides its formatting policy:
//
//   - ModeBlock puts every child on its own indented line.
//   - ModePhrase keeps children on the element's line.
//   - ModeInline additionally keeps the element on its neighbours' line.
//   - ModePre never touches whitespace inside the element.
//
// The mode of a catalog element follows its role in the HTML living
// standard. SetMode and SetFormatting override it per element.
//
// # Script and style content
//
// String children of Script and Style are emitted without escaping tag
// delimiters. Sequences that would end the element early are rewritten.
package html
