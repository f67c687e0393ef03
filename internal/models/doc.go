// Package models defines the persisted domain models for defter.
//
// # Models
//
//   - Group: a shared ledger scope (a household, a trip)
//   - Person: a participant inside a group, optionally linked to a User
//   - Purchase: a shared expense with one Split per participant
//   - Payment: a real transfer between two people, confirmed by the recipient
//   - User: a registered account used for authentication
//
// Money is stored as integer cents (money.Cents). Dates that come from the
// user (purchase date, payment paid-at) are calendar strings in YYYY-MM-DD
// form; bookkeeping timestamps are Unix seconds.
//
// Relationships use ID strings rather than pointers.
package models
