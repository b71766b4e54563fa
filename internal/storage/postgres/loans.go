package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

func (t *pgTx) InsertContribution(ctx context.Context, c *models.Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := t.q.Exec(ctx,
		`INSERT INTO contributions (id, group_id, member_id, member_name, amount, date, ref, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.GroupID, c.MemberID, c.MemberName, c.Amount, c.Date, c.Ref, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListContributionsByGroup(ctx context.Context, groupID string) ([]*models.Contribution, error) {
	rows, err := s.db.Query(ctx,
		`SELECT c.id, c.group_id, c.member_id, c.member_name, c.amount, c.date, c.ref, c.created_at, g.name
		 FROM contributions c JOIN groups g ON g.id = c.group_id
		 WHERE c.group_id = $1
		 ORDER BY c.created_at DESC, c.seq DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	contributions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Contribution])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contributions: %w", err)
	}
	return contributions, nil
}

func (s *Store) ListContributionsByMember(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	rows, err := s.db.Query(ctx,
		`SELECT c.id, c.group_id, c.member_id, c.member_name, c.amount, c.date, c.ref, c.created_at, g.name
		 FROM contributions c
		 JOIN groups g ON g.id = c.group_id
		 JOIN group_members m ON m.group_id = c.group_id
		 WHERE m.member_id = $1
		 ORDER BY c.created_at DESC, c.seq DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions by member: %w", err)
	}
	contributions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Contribution])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contributions: %w", err)
	}
	return contributions, nil
}

func (t *pgTx) InsertLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	if loan.CreatedAt == 0 {
		loan.CreatedAt = time.Now().Unix()
	}
	if loan.Status == "" {
		loan.Status = models.LoanPending
	}

	_, err := t.q.Exec(ctx,
		`INSERT INTO loans (id, group_id, member_id, member_name, amount, status, created_at, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		loan.ID, loan.GroupID, loan.MemberID, loan.MemberName, loan.Amount,
		string(loan.Status), loan.CreatedAt, loan.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", mapError(err))
	}
	return nil
}

func (t *pgTx) InsertVote(ctx context.Context, loanID string, vote models.Vote) error {
	if vote.CastAt == 0 {
		vote.CastAt = time.Now().Unix()
	}

	_, err := t.q.Exec(ctx,
		"INSERT INTO loan_votes (loan_id, user_id, approve, cast_at) VALUES ($1, $2, $3, $4)",
		loanID, vote.UserID, vote.Approve, vote.CastAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", mapError(err))
	}
	return nil
}

func (t *pgTx) SetLoanStatus(ctx context.Context, loanID string, status models.LoanStatus, resolvedAt int64) error {
	tag, err := t.q.Exec(ctx,
		"UPDATE loans SET status = $1, resolved_at = $2 WHERE id = $3",
		string(status), resolvedAt, loanID,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", mapError(err))
	}
	return expectOneRow(tag, "loan", loanID)
}

func (s *Store) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	return getLoan(ctx, s.db, loanID, false)
}

// GetLoan locks the loan row until the transaction ends.
func (t *pgTx) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	return getLoan(ctx, t.q, loanID, true)
}

func getLoan(ctx context.Context, q querier, loanID string, lock bool) (*models.Loan, error) {
	loan := &models.Loan{}
	var status string
	err := q.QueryRow(ctx,
		`SELECT id, group_id, member_id, member_name, amount, status, created_at, resolved_at
		 FROM loans WHERE id = $1`+lockClause(lock),
		loanID,
	).Scan(&loan.ID, &loan.GroupID, &loan.MemberID, &loan.MemberName,
		&loan.Amount, &status, &loan.CreatedAt, &loan.ResolvedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("loan not found: %s: %w", loanID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	loan.Status = models.LoanStatus(status)

	rows, err := q.Query(ctx,
		"SELECT user_id, approve, cast_at FROM loan_votes WHERE loan_id = $1 ORDER BY seq",
		loanID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan votes: %w", err)
	}
	loan.Votes, err = pgx.CollectRows(rows, pgx.RowToStructByPos[models.Vote])
	if err != nil {
		return nil, fmt.Errorf("failed to scan votes: %w", err)
	}

	return loan, nil
}

func (s *Store) ListLoansByGroup(ctx context.Context, groupID string, status models.LoanStatus) ([]*models.Loan, error) {
	query := "SELECT id FROM loans WHERE group_id = $1"
	args := []any{groupID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC, seq DESC"

	ids, err := collectIDs(ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
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
