// Package errors provides the coded, actionable errors reported by the
// donut CLI and its supporting services.
//
// Every error has a code from the registry that fixes its category and a
// short message. Call sites add the specifics:
//
//	err := errors.New("E101").
//	    WithLocation("design/theme.yaml", 7, 0).
//	    WithSuggestion("Quote hex colors in YAML: \"#ec4899\"").
//	    Wrap(cause)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E101: Theme file could not be parsed
//	//
//	//   design/theme.yaml:7
//	//
//	//        5 │ ramps:
//	//        6 │   donut:
//	//   →    7 │     500: #ec4899
//	//        8 │ roles:
//	//
//	//   Hint: Quote hex colors in YAML: "#ec4899"
//
// # Error Codes
//
//   - E100-E119 theme: invalid tokens, parse failures, unknown formats
//   - E120-E139 config: donut.json problems
//   - E140-E159 build: Tailwind binary and output files
//   - E160-E179 publish: object storage uploads
//   - E180-E199 gallery: component preview server
package errors
