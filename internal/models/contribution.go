package models

// Contribution is an immutable payment into a group's kitty. It is always
// created in the same transaction that increments Group.KittyBalance.
type Contribution struct {
	// ID is the unique identifier for the contribution (UUID format).
	ID string

	// GroupID is the group whose kitty received the payment.
	GroupID string

	// MemberID is the user ID of the contributing member.
	MemberID string

	// MemberName is the member's display name, copied for display.
	MemberName string

	// Amount is the contributed amount in whole shillings. Always positive.
	Amount int64

	// Date is the RFC 3339 time the contribution was recorded.
	Date string

	// Ref is the free-text payment reference (e.g., an M-Pesa code),
	// upper-cased at entry. It is never validated against a canonical format.
	Ref string

	// CreatedAt is the Unix timestamp when the contribution was stored.
	CreatedAt int64

	// GroupName is filled in by listings; it is not stored with the row.
	GroupName string
}
