// Package models defines the core domain models for a chama (savings group).
//
// # Models
//
//   - Group: the authoritative record of a savings group. It owns the kitty
//     balance, the ordered member list and the merry-go-round pointer.
//   - Member: a denormalised member profile embedded in Group.
//   - Contribution: an immutable payment into the kitty.
//   - Loan and Vote: a loan request and the ballots cast on it.
//   - Message and Receipt: the group feed.
//   - User and Identity: registered accounts and the authenticated actor.
//
// # Design Principles
//
//  1. Group is the single source of truth for balance and rotation state.
//     Contributions and loans reference it by GroupID and never own group state.
//  2. Member names are copied into contributions and loans so they can be
//     displayed without joins.
//  3. Amounts are whole shillings (int64); the kitty never goes negative.
//  4. Relationships use ID strings, never pointers.
package models
