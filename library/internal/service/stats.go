package service

import (
	"context"

	"github.com/grouplib/library-app/library/internal/model"
)

func (s *Service) BookStatistics(ctx context.Context) ([]model.CategoryStat, error) {
	return s.repo.CategoryCounts(ctx)
}

// UserLoanHistories lists every registered user with all their loan
// records. Users without records appear with an empty books list.
func (s *Service) UserLoanHistories(ctx context.Context) ([]model.UserLoanHistory, error) {
	rows, err := s.repo.UserLoanRows(ctx)
	if err != nil {
		return nil, err
	}

	histories := make([]model.UserLoanHistory, 0)
	idx := make(map[int]int)
	for _, row := range rows {
		i, ok := idx[row.UserID]
		if !ok {
			i = len(histories)
			idx[row.UserID] = i
			histories = append(histories, model.UserLoanHistory{
				Name:  row.UserName,
				Books: make([]model.LoanedBook, 0),
			})
		}
		if row.BookName == nil || row.Status == nil {
			continue
		}
		histories[i].Books = append(histories[i].Books, model.LoanedBook{
			Name:     *row.BookName,
			Returned: *row.Status == string(model.StatusReturned),
		})
	}
	return histories, nil
}
