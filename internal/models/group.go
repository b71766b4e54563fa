package models

// Group represents a chama: a set of members pooling money into a kitty.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Umoja Women Group").
	Name string

	// Description is a free-text summary shown on the group page.
	Description string

	// CreatedBy is the user ID of the founding member.
	CreatedBy string

	// Members is the ordered member list. Order is join order and defines
	// the merry-go-round payout order. Member IDs are unique.
	Members []Member

	// KittyBalance is the pooled balance in whole shillings. Never negative.
	KittyBalance int64

	// MerryGoRoundIndex points at the member due for the current payout.
	// Always 0 <= index < len(Members), or 0 when Members is empty.
	MerryGoRoundIndex int

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member is the denormalised member profile embedded in a Group.
type Member struct {
	// ID is the member's user ID.
	ID string

	// Name is the display name at the time the member joined.
	Name string

	// AvatarURL is an optional profile picture URL.
	AvatarURL string
}

// HasMember reports whether userID is in the member list.
func (g *Group) HasMember(userID string) bool {
	return g.MemberIndex(userID) >= 0
}

// MemberIndex returns the position of userID in the member list, or -1.
func (g *Group) MemberIndex(userID string) int {
	for i, m := range g.Members {
		if m.ID == userID {
			return i
		}
	}
	return -1
}

// Beneficiary returns the member at the merry-go-round pointer.
// The second return value is false when the group has no members.
func (g *Group) Beneficiary() (Member, bool) {
	if len(g.Members) == 0 || g.MerryGoRoundIndex < 0 || g.MerryGoRoundIndex >= len(g.Members) {
		return Member{}, false
	}
	return g.Members[g.MerryGoRoundIndex], true
}
