package ledger

import (
	"fmt"
	"strings"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// Tally counts approving and rejecting ballots.
func Tally(votes []models.Vote) (approvals, rejections int) {
	for _, v := range votes {
		if v.Approve {
			approvals++
		} else {
			rejections++
		}
	}
	return approvals, rejections
}

// Resolve applies the majority rule to a vote list for a group of
// memberCount members. Approval needs strictly more than half the members;
// rejection needs at least half, so an exact tie rejects.
//
// Halves are compared in integer arithmetic (2*x against memberCount) so odd
// member counts behave as real-valued halves.
func Resolve(votes []models.Vote, memberCount int) models.LoanStatus {
	approvals, rejections := Tally(votes)
	switch {
	case 2*approvals > memberCount:
		return models.LoanApproved
	case 2*rejections >= memberCount:
		return models.LoanRejected
	default:
		return models.LoanPending
	}
}

// NextIndex returns the merry-go-round position after current.
func NextIndex(current, memberCount int) (int, error) {
	if memberCount <= 0 {
		return 0, fmt.Errorf("%w: group has no members to rotate", ErrInvalidState)
	}
	if current < 0 {
		current = 0
	}
	return (current + 1) % memberCount, nil
}

// indexAfterRemoval keeps the rotation pointer on the same member when an
// earlier member leaves, and wraps it when it falls off the end.
func indexAfterRemoval(index, removed, remaining int) int {
	if removed < index {
		index--
	}
	if index >= remaining || index < 0 {
		return 0
	}
	return index
}

// NormalizeRef trims a payment reference and upper-cases it.
func NormalizeRef(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}
