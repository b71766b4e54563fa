package models

// LoanStatus is the state of a loan in the voting state machine.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// Terminal reports whether no further votes may change the status.
func (s LoanStatus) Terminal() bool {
	return s == LoanApproved || s == LoanRejected
}

// Valid reports whether s is one of the known statuses.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanRejected:
		return true
	}
	return false
}

// Loan is a member's request to borrow from the kitty, resolved by a vote
// of the group's members.
type Loan struct {
	// ID is the unique identifier for the loan (UUID format).
	ID string

	// GroupID is the group whose members vote on the loan.
	GroupID string

	// MemberID is the user ID of the requesting member.
	MemberID string

	// MemberName is the requester's display name, copied for display.
	MemberName string

	// Amount is the requested amount in whole shillings. Always positive.
	Amount int64

	// Status moves from pending to approved or rejected, never back.
	Status LoanStatus

	// Votes are the ballots cast so far, in casting order.
	// A user appears at most once.
	Votes []Vote

	// CreatedAt is the Unix timestamp when the loan was requested.
	CreatedAt int64

	// ResolvedAt is the Unix timestamp of the vote that made the status
	// terminal. Zero while pending.
	ResolvedAt int64
}

// Vote is a single member's ballot on a loan.
type Vote struct {
	UserID  string
	Approve bool
	CastAt  int64
}

// HasVoted reports whether userID already cast a vote on the loan.
func (l *Loan) HasVoted(userID string) bool {
	for _, v := range l.Votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}
