package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/model"
)

// LoanBook resolves the user by name and issues a new LOANED record.
// The outstanding-loan check and the insert race as one unit against the
// partial unique index, so concurrent calls for the same book name cannot
// both succeed.
func (s *Service) LoanBook(ctx context.Context, req model.LoanRequest) (model.LoanRecord, error) {
	user, err := s.repo.GetUserByName(ctx, req.UserName)
	if err != nil {
		return model.LoanRecord{}, err
	}

	record, err := s.repo.CreateLoan(ctx, user.ID, req.BookName)
	if err != nil {
		return model.LoanRecord{}, err
	}
	s.log.Debug("loan issued",
		zap.String("user", req.UserName),
		zap.String("book", req.BookName),
		zap.String("recordUid", record.RecordUid))
	return record, nil
}

func (s *Service) ReturnBook(ctx context.Context, req model.LoanRequest) (model.LoanRecord, error) {
	user, err := s.repo.GetUserByName(ctx, req.UserName)
	if err != nil {
		return model.LoanRecord{}, err
	}

	record, err := s.repo.ReturnLoan(ctx, user.ID, req.BookName)
	if err != nil {
		return model.LoanRecord{}, err
	}
	s.log.Debug("loan returned",
		zap.String("user", req.UserName),
		zap.String("book", req.BookName),
		zap.String("recordUid", record.RecordUid))
	return record, nil
}

func (s *Service) CountLoanedBooks(ctx context.Context) (int, error) {
	return s.repo.CountLoaned(ctx)
}
