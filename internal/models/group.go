package models

// Group is a ledger scope: people, purchases and payments belong to exactly
// one group and balances never cross group boundaries.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Flat 3B", "Lisbon trip").
	Name string

	// CreatedBy is the user ID that created the group.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Person is a participant in a group.
//
// People are independent of user accounts so that a group can track someone
// who never signs up. UserID links a person to the account allowed to act
// on their behalf.
type Person struct {
	ID      string
	GroupID string
	Name    string

	// UserID is empty for people without an account.
	UserID string

	// Active is false for people who left the group. Inactive people keep
	// their history but cannot be added to new purchases.
	Active bool

	CreatedAt int64
}
