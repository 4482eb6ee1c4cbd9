package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/errs"
	"github.com/grouplib/library-app/library/internal/model"
	"github.com/grouplib/library-app/library/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.Book{}, errs.ErrInvalidName
	}
	return s.repo.CreateBook(ctx, req.Name, req.Type)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

// RemoveAllBooks bulk-clears the catalog. Reset hook for test
// collaborators, not exposed over HTTP.
func (s *Service) RemoveAllBooks(ctx context.Context) error {
	return s.repo.DeleteBooks(ctx)
}

// RemoveAllUsers bulk-clears the directory. Reset hook for test
// collaborators, not exposed over HTTP.
func (s *Service) RemoveAllUsers(ctx context.Context) error {
	return s.repo.DeleteUsers(ctx)
}

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return s.repo.CreateUser(ctx, req.Name, req.Age)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) RenameUser(ctx context.Context, req model.UpdateUserRequest) error {
	return s.repo.UpdateUserName(ctx, req.ID, req.Name)
}

func (s *Service) RemoveUserByName(ctx context.Context, name string) error {
	return s.repo.DeleteUserByName(ctx, name)
}

func (s *Service) RecordLoanEvent(ctx context.Context, event model.LoanEventRecord) error {
	return s.repo.InsertLoanEvent(ctx, event)
}
