package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// InsertContribution stores a contribution row. The caller adjusts the kitty
// balance in the same transaction.
func (t *sqliteTx) InsertContribution(ctx context.Context, c *models.Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := t.q.ExecContext(ctx,
		`INSERT INTO contributions (id, group_id, member_id, member_name, amount, date, ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.GroupID, c.MemberID, c.MemberName, c.Amount, c.Date, c.Ref, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", mapError(err))
	}
	return nil
}

// ListContributionsByGroup retrieves contributions, newest first.
func (s *SQLiteStore) ListContributionsByGroup(ctx context.Context, groupID string) ([]*models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.group_id, c.member_id, c.member_name, c.amount, c.date, c.ref, c.created_at, g.name
		 FROM contributions c JOIN groups g ON g.id = c.group_id
		 WHERE c.group_id = ?
		 ORDER BY c.created_at DESC, c.rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return scanContributions(rows)
}

// ListContributionsByMember retrieves contributions to all of memberID's
// groups, newest first.
func (s *SQLiteStore) ListContributionsByMember(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.group_id, c.member_id, c.member_name, c.amount, c.date, c.ref, c.created_at, g.name
		 FROM contributions c
		 JOIN groups g ON g.id = c.group_id
		 JOIN group_members m ON m.group_id = c.group_id
		 WHERE m.member_id = ?
		 ORDER BY c.created_at DESC, c.rowid DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions by member: %w", err)
	}
	return scanContributions(rows)
}

func scanContributions(rows *sql.Rows) ([]*models.Contribution, error) {
	defer rows.Close()

	var contributions []*models.Contribution
	for rows.Next() {
		c := &models.Contribution{}
		if err := rows.Scan(&c.ID, &c.GroupID, &c.MemberID, &c.MemberName,
			&c.Amount, &c.Date, &c.Ref, &c.CreatedAt, &c.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return contributions, nil
}

// InsertLoan stores a new loan request.
func (t *sqliteTx) InsertLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	if loan.CreatedAt == 0 {
		loan.CreatedAt = time.Now().Unix()
	}
	if loan.Status == "" {
		loan.Status = models.LoanPending
	}

	_, err := t.q.ExecContext(ctx,
		`INSERT INTO loans (id, group_id, member_id, member_name, amount, status, created_at, resolved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		loan.ID, loan.GroupID, loan.MemberID, loan.MemberName, loan.Amount,
		string(loan.Status), loan.CreatedAt, loan.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", mapError(err))
	}
	return nil
}

// InsertVote records a ballot. The (loan_id, user_id) primary key rejects a
// second vote by the same user.
func (t *sqliteTx) InsertVote(ctx context.Context, loanID string, vote models.Vote) error {
	if vote.CastAt == 0 {
		vote.CastAt = time.Now().Unix()
	}

	_, err := t.q.ExecContext(ctx,
		"INSERT INTO loan_votes (loan_id, user_id, approve, cast_at) VALUES (?, ?, ?, ?)",
		loanID, vote.UserID, vote.Approve, vote.CastAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", mapError(err))
	}
	return nil
}

// SetLoanStatus updates the loan's status.
func (t *sqliteTx) SetLoanStatus(ctx context.Context, loanID string, status models.LoanStatus, resolvedAt int64) error {
	res, err := t.q.ExecContext(ctx,
		"UPDATE loans SET status = ?, resolved_at = ? WHERE id = ?",
		string(status), resolvedAt, loanID,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", mapError(err))
	}
	return expectOneRow(res, "loan", loanID)
}

// GetLoan retrieves a loan with its votes.
func (s *SQLiteStore) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	return getLoan(ctx, s.db, loanID)
}

// GetLoan retrieves a loan inside the transaction.
func (t *sqliteTx) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	return getLoan(ctx, t.q, loanID)
}

func getLoan(ctx context.Context, q querier, loanID string) (*models.Loan, error) {
	loan := &models.Loan{}
	var status string
	err := q.QueryRowContext(ctx,
		`SELECT id, group_id, member_id, member_name, amount, status, created_at, resolved_at
		 FROM loans WHERE id = ?`,
		loanID,
	).Scan(&loan.ID, &loan.GroupID, &loan.MemberID, &loan.MemberName,
		&loan.Amount, &status, &loan.CreatedAt, &loan.ResolvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loan not found: %s: %w", loanID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	loan.Status = models.LoanStatus(status)

	votes, err := listVotes(ctx, q, loanID)
	if err != nil {
		return nil, err
	}
	loan.Votes = votes

	return loan, nil
}

// listVotes returns ballots in insertion order.
func listVotes(ctx context.Context, q querier, loanID string) ([]models.Vote, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT user_id, approve, cast_at FROM loan_votes WHERE loan_id = ? ORDER BY rowid",
		loanID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.UserID, &v.Approve, &v.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}

// ListLoansByGroup retrieves loans, newest first, optionally filtered by status.
func (s *SQLiteStore) ListLoansByGroup(ctx context.Context, groupID string, status models.LoanStatus) ([]*models.Loan, error) {
	query := `SELECT id FROM loans WHERE group_id = ?`
	args := []any{groupID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan loan id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}

	loans := make([]*models.Loan, 0, len(ids))
	for _, id := range ids {
		loan, err := s.GetLoan(ctx, id)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, nil
}
