package handler

import (
	"context"

	"github.com/grouplib/library-app/library/internal/model"
	"github.com/grouplib/library-app/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)

	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	RenameUser(ctx context.Context, req model.UpdateUserRequest) error
	RemoveUserByName(ctx context.Context, name string) error

	LoanBook(ctx context.Context, req model.LoanRequest) (model.LoanRecord, error)
	ReturnBook(ctx context.Context, req model.LoanRequest) (model.LoanRecord, error)
	CountLoanedBooks(ctx context.Context) (int, error)

	BookStatistics(ctx context.Context) ([]model.CategoryStat, error)
	UserLoanHistories(ctx context.Context) ([]model.UserLoanHistory, error)
}

var _ LibraryService = (*service.Service)(nil)
