// Package errors provides coded, actionable error messages for the
// treesite command line.
//
// Library packages return plain sentinel errors wrapped with %w. At the
// CLI boundary they are classified into an *Error carrying a code, a
// plain-language detail and a suggestion.
//
// # Error Codes
//
// Codes are grouped by the stage that failed:
//   - E1xx: configuration and content discovery
//   - E2xx: site build
//   - E3xx: export
//   - E4xx: preview server
//
// # Usage
//
//	err := errors.New("E102").
//	    WithLocation("treesite.yaml", 4, 3).
//	    Wrap(parseErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Invalid configuration file
//	//
//	//   treesite.yaml:4:3
//	//
//	//        2 │ content: content
//	//        3 │ build:
//	//   →    4 │   strategy: [parallel
//	//          │   ^
//	//
//	//   Hint: Check the YAML syntax near the reported line
package errors
