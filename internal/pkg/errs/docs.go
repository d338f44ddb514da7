// Package errs holds the error taxonomy shared by the domain, the ingest
// pipeline and the adapters.
//
// Every kind pairs a sentinel with a struct carrying the details:
//
//	ErrValueIsRequired    ValueIsRequiredError{ParamName}
//	ErrValueIsInvalid     ValueIsInvalidError{ParamName, Cause}
//	ErrValueIsOutOfRange  ValueIsOutOfRangeError{ParamName, Value, Min, Max}
//	ErrObjectNotFound     ObjectNotFoundError{ParamName, ID}
//	ErrConversionFailed   ConversionError{Kind, Field, Value}
//
// The structs unwrap to their sentinel, so callers branch with errors.Is and
// read the details with errors.As.
package errs
