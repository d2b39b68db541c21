// Package site orchestrates static site builds.
//
// A Site holds page groups, each an ordered set of pages keyed by path.
// Build runs every group through a fixed sequence of phases: prepare,
// build (layout), prepare expansion, expand, render, export and finalize.
// Processors registered for a named stage run before or after the phase
// of the same name.
//
//	s := site.New(site.WithExportRoot("public"))
//	_ = s.AddPage("/", &html.Document{Title: "Home", BodyContent: []any{html.H1("Hi")}})
//	res, err := s.Build(ctx)
//
// Groups are built one after another by default. With StrategyParallel
// each group runs on its own goroutine and owns its BuildContext, so page
// processors need no locking as long as they stay within their group.
package site
