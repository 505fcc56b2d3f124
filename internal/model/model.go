// Package model defines the domain types shared by the handler, service and
// repository layers, together with their request payloads.
package model

import "github.com/shopspring/decimal"

func init() {
	// Salaries go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
