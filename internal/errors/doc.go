// Package errors provides structured, coded errors for trackable.
//
// Every error carries a code (e.g. "T001") that maps to a registered
// category, message and detail. Builders add a suggestion or wrap an
// underlying cause:
//
//	err := errors.New("T001").
//	    WithSuggestion("Pass tracking.Default() or a config from tracking.Provide()")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T001: Naming configuration missing
//	//
//	//   Attributes were requested without a NamingConfig in scope.
//	//
//	//   Hint: Pass tracking.Default() or a config from tracking.Provide()
//
// Two errors with the same code match under errors.Is, so callers can test
// against exported sentinels without naming this package's types.
package errors
