package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// catalog
	CreateBook(ctx context.Context, name string, category model.Category) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	DeleteBooks(ctx context.Context) error
	CategoryCounts(ctx context.Context) ([]model.CategoryStat, error)

	// directory
	CreateUser(ctx context.Context, name string, age *int) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByName(ctx context.Context, name string) (model.User, error)
	UpdateUserName(ctx context.Context, id int, name string) error
	DeleteUserByName(ctx context.Context, name string) error
	DeleteUsers(ctx context.Context) error

	// ledger
	CreateLoan(ctx context.Context, userID int, bookName string) (model.LoanRecord, error)
	ReturnLoan(ctx context.Context, userID int, bookName string) (model.LoanRecord, error)
	CountLoaned(ctx context.Context) (int, error)
	UserLoanRows(ctx context.Context) ([]model.UserLoanRow, error)

	// audit
	InsertLoanEvent(ctx context.Context, event model.LoanEventRecord) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	usersTableName       = `users`
	loanHistoryTableName = `loan_history`
	loanEventsTableName  = `loan_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
