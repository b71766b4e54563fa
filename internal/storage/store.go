// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. a second vote by the same user or a duplicate member.
	ErrConflict = errors.New("record already exists")

	// ErrConstraint is returned when a write violates a check constraint,
	// e.g. a negative kitty balance.
	ErrConstraint = errors.New("constraint violated")
)

// Reader holds the lookups available both inside and outside a transaction.
type Reader interface {
	// GetGroup retrieves a group with its ordered member list.
	// Inside a transaction the group row is locked until commit where the
	// backend supports row locks.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetLoan retrieves a loan with its votes in casting order.
	// Inside a transaction the loan row is locked until commit where the
	// backend supports row locks.
	GetLoan(ctx context.Context, loanID string) (*models.Loan, error)
}

// Tx is the set of writes that must commit or fail together.
// A Tx is only valid inside the function passed to Store.WithTx.
type Tx interface {
	Reader

	// AddMember appends a member to the end of the group's member list.
	AddMember(ctx context.Context, groupID string, member models.Member) error

	// RemoveMember removes a member from the group's member list.
	RemoveMember(ctx context.Context, groupID, memberID string) error

	// SetKittyBalance overwrites the group's kitty balance.
	SetKittyBalance(ctx context.Context, groupID string, balance int64) error

	// SetRotationIndex overwrites the group's merry-go-round pointer.
	SetRotationIndex(ctx context.Context, groupID string, index int) error

	// InsertContribution persists a contribution; ID and CreatedAt are
	// populated if empty.
	InsertContribution(ctx context.Context, c *models.Contribution) error

	// InsertLoan persists a loan; ID and CreatedAt are populated if empty.
	InsertLoan(ctx context.Context, loan *models.Loan) error

	// InsertVote records a ballot. Returns ErrConflict if the user already
	// voted on the loan.
	InsertVote(ctx context.Context, loanID string, vote models.Vote) error

	// SetLoanStatus updates the loan status and resolution time.
	SetLoanStatus(ctx context.Context, loanID string, status models.LoanStatus, resolvedAt int64) error
}

// UserStore defines user account persistence used by the identity provider.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
type Store interface {
	Reader
	UserStore

	// WithTx runs fn inside a transaction. If fn returns an error the
	// transaction is rolled back and the error is returned unchanged.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// CreateGroup persists a new group together with its initial members.
	// The group.ID and group.CreatedAt fields are populated if empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// ListGroupsByMember returns the groups memberID belongs to, oldest first.
	ListGroupsByMember(ctx context.Context, memberID string) ([]*models.Group, error)

	// ListContributionsByGroup returns the group's contributions, newest first.
	ListContributionsByGroup(ctx context.Context, groupID string) ([]*models.Contribution, error)

	// ListContributionsByMember returns the contributions to every group
	// memberID currently belongs to, newest first, made by any member.
	ListContributionsByMember(ctx context.Context, memberID string) ([]*models.Contribution, error)

	// ListLoansByGroup returns the group's loans, newest first. An empty
	// status returns loans in every status.
	ListLoansByGroup(ctx context.Context, groupID string, status models.LoanStatus) ([]*models.Loan, error)

	// CreateMessage persists a group message.
	CreateMessage(ctx context.Context, msg *models.Message) error

	// ListMessagesByGroup returns the group's messages, oldest first.
	ListMessagesByGroup(ctx context.Context, groupID string) ([]*models.Message, error)

	// CreateReceipt persists a receipt record.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// ListReceiptsByGroup returns the group's receipts, newest first.
	ListReceiptsByGroup(ctx context.Context, groupID string) ([]*models.Receipt, error)

	// Close releases any resources held by the store.
	Close() error
}
