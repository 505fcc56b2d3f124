// Package validation binds and validates request data.
//
// Struct rules are expressed with go-playground/validator tags; failures are
// converted into *errs.HTTPError values carrying per-field errors the client
// can act on.
package validation
