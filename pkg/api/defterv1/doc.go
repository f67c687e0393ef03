// Package defterv1 holds the request and response messages of the defter.v1
// API. Messages travel as JSON with snake_case field names; see
// defterv1connect for the Connect bindings.
//
// Amounts in requests are decimal strings or numbers ("12.50" or 12.5).
// Amounts in responses are numbers with exactly two decimals.
package defterv1
