package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/errs"
	"github.com/grouplib/library-app/library/internal/model"
)

// CreateLoan inserts a LOANED record. The partial unique index on
// (book_name) where status='LOANED' is the concurrency guard: of two
// racing inserts for the same book name exactly one commits, the other
// gets a unique violation and is reported as ErrAlreadyLoaned.
func (r *repository) CreateLoan(ctx context.Context, userID int, bookName string) (model.LoanRecord, error) {
	q, args, err := qb.Insert(loanHistoryTableName).
		Columns("record_uid", "user_id", "book_name", "status").
		Values(uuid.New(), userID, bookName, model.StatusLoaned).
		Suffix("returning id, record_uid, user_id, book_name, status").
		ToSql()
	if err != nil {
		return model.LoanRecord{}, err
	}

	var record model.LoanRecord
	if err := r.db.GetContext(ctx, &record, q, args...); err != nil {
		if isLoanConflict(err) {
			return model.LoanRecord{}, errs.ErrAlreadyLoaned
		}
		r.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.LoanRecord{}, err
	}
	return record, nil
}

// isLoanConflict reports whether err is the unique violation raised by
// uq_loan_history_outstanding when a second LOANED record for the same
// book name is inserted.
func isLoanConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ReturnLoan flips the newest outstanding record for (user, book) to
// RETURNED. The invariant keeps more than one outstanding record per book
// unreachable; the order-by pins the choice deterministically anyway.
func (r *repository) ReturnLoan(ctx context.Context, userID int, bookName string) (model.LoanRecord, error) {
	q := fmt.Sprintf(`update %s
	set status = '%s'
	where id = (select id from %s
	            where user_id = $1 and book_name = $2 and status = '%s'
	            order by id desc limit 1)
	returning id, record_uid, user_id, book_name, status`,
		loanHistoryTableName, model.StatusReturned, loanHistoryTableName, model.StatusLoaned)

	var record model.LoanRecord
	if err := r.db.GetContext(ctx, &record, q, userID, bookName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanRecord{}, errs.ErrInvalidState
		}
		return model.LoanRecord{}, err
	}
	return record, nil
}

func (r *repository) CountLoaned(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where status = '%s'`,
		loanHistoryTableName, model.StatusLoaned)

	var count int
	if err := r.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) UserLoanRows(ctx context.Context) ([]model.UserLoanRow, error) {
	q := fmt.Sprintf(`
	select u.id as user_id, u.name as user_name, lh.book_name, lh.status
	from %s u
	left join %s lh on lh.user_id = u.id
	order by u.id, lh.id`, usersTableName, loanHistoryTableName)

	var rows []model.UserLoanRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) InsertLoanEvent(ctx context.Context, event model.LoanEventRecord) error {
	q, args, err := qb.Insert(loanEventsTableName).
		Columns("timestamp", "record_uid", "username", "book_name", "event_type").
		Values(event.Timestamp, event.RecordUid, event.UserName, event.BookName, event.EventType).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
