package ledger

import (
	"errors"
	"testing"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

func ballots(approve, reject int) []models.Vote {
	var votes []models.Vote
	for i := 0; i < approve; i++ {
		votes = append(votes, models.Vote{UserID: "a" + string(rune('0'+i)), Approve: true})
	}
	for i := 0; i < reject; i++ {
		votes = append(votes, models.Vote{UserID: "r" + string(rune('0'+i)), Approve: false})
	}
	return votes
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		approvals   int
		rejections  int
		memberCount int
		want        models.LoanStatus
	}{
		{"3 of 5 approve", 3, 0, 5, models.LoanApproved},
		{"2 of 5 approve stays pending", 2, 0, 5, models.LoanPending},
		{"3 of 5 reject", 0, 3, 5, models.LoanRejected},
		{"2 of 5 reject stays pending", 0, 2, 5, models.LoanPending},
		{"2 of 4 reject on tie", 0, 2, 4, models.LoanRejected},
		{"2 of 4 approve is not a majority", 2, 0, 4, models.LoanPending},
		{"3 of 4 approve", 3, 1, 4, models.LoanApproved},
		{"single member approves", 1, 0, 1, models.LoanApproved},
		{"single member rejects", 0, 1, 1, models.LoanRejected},
		{"2 members split rejects", 1, 1, 2, models.LoanRejected},
		{"no votes in large group", 0, 0, 10, models.LoanPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(ballots(tt.approvals, tt.rejections), tt.memberCount)
			if got != tt.want {
				t.Errorf("Resolve(%d approve, %d reject, n=%d) = %s, want %s",
					tt.approvals, tt.rejections, tt.memberCount, got, tt.want)
			}
		})
	}
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		current, n, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{0, 1, 0},
		{4, 5, 0},
	}

	for _, tt := range tests {
		got, err := NextIndex(tt.current, tt.n)
		if err != nil {
			t.Fatalf("NextIndex(%d, %d) unexpected error: %v", tt.current, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.current, tt.n, got, tt.want)
		}
	}

	if _, err := NextIndex(0, 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("NextIndex with no members: got %v, want ErrInvalidState", err)
	}
}

func TestIndexAfterRemoval(t *testing.T) {
	tests := []struct {
		name                      string
		index, removed, remaining int
		want                      int
	}{
		{"earlier member leaves", 2, 0, 3, 1},
		{"later member leaves", 1, 3, 3, 1},
		{"beneficiary leaves mid list", 1, 1, 3, 1},
		{"last beneficiary leaves", 3, 3, 3, 0},
		{"everyone gone", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indexAfterRemoval(tt.index, tt.removed, tt.remaining); got != tt.want {
				t.Errorf("indexAfterRemoval(%d, %d, %d) = %d, want %d",
					tt.index, tt.removed, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestNormalizeRef(t *testing.T) {
	if got := NormalizeRef("  qwe123rty9 "); got != "QWE123RTY9" {
		t.Errorf("NormalizeRef = %q", got)
	}
	if got := NormalizeRef("   "); got != "" {
		t.Errorf("NormalizeRef(blank) = %q, want empty", got)
	}
}
