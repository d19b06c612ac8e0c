// Package errors provides structured, actionable errors for tessera's
// configuration loading, CLI and live sessions.
//
// Each error carries a code that maps to a registered message and detail,
// plus an optional suggestion and wrapped cause:
//
//	err := errors.New("T002").
//	    WithDetail(`"addr" must be host:port`).
//	    WithSuggestion(`Set "addr" to a value like ":3000"`)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR T002: Invalid configuration
//	//
//	//   "addr" must be host:port
//	//
//	//   Hint: Set "addr" to a value like ":3000"
//
// Colors are on by default; the CLI turns them off when stderr is not a
// terminal.
package errors
