package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/errs"
	"github.com/grouplib/library-app/library/internal/model"
	repo_mocks "github.com/grouplib/library-app/library/internal/repository/mocks"
	"github.com/grouplib/library-app/library/internal/service"
)

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateBookRequest)

	var tests = []struct {
		name         string
		req          model.CreateBookRequest
		mockBehavior mockBehavior
		want         model.Book
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.CreateBookRequest{Name: "book", Type: model.CategoryComputer},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookRequest) {
				r.EXPECT().
					CreateBook(context.Background(), req.Name, req.Type).
					Return(model.Book{ID: 1, Name: "book", Type: model.CategoryComputer}, nil)
			},
			want: model.Book{ID: 1, Name: "book", Type: model.CategoryComputer},
		},
		{
			name:         "err. empty name",
			req:          model.CreateBookRequest{Name: "", Type: model.CategoryComputer},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookRequest) {},
			wantErr:      errs.ErrInvalidName,
		},
		{
			name:         "err. whitespace name",
			req:          model.CreateBookRequest{Name: "   ", Type: model.CategoryScience},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookRequest) {},
			wantErr:      errs.ErrInvalidName,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)
			svc := service.NewService(repo, zap.NewNop())

			book, err := svc.CreateBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, book)
		})
	}
}

func TestService_LoanBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository, req model.LoanRequest)

	user := model.User{ID: 7, Name: "junwoo"}

	var tests = []struct {
		name         string
		req          model.LoanRequest
		mockBehavior mockBehavior
		want         model.LoanRecord
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.LoanRequest{UserName: "junwoo", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(user, nil)
				r.EXPECT().
					CreateLoan(context.Background(), user.ID, req.BookName).
					Return(model.LoanRecord{
						ID:        1,
						RecordUid: "5df2b4a5-3bf2-4d55-92e5-d113a0f7a2be",
						UserID:    user.ID,
						BookName:  req.BookName,
						Status:    model.StatusLoaned,
					}, nil)
			},
			want: model.LoanRecord{
				ID:        1,
				RecordUid: "5df2b4a5-3bf2-4d55-92e5-d113a0f7a2be",
				UserID:    user.ID,
				BookName:  "book",
				Status:    model.StatusLoaned,
			},
		},
		{
			name: "err. user not found",
			req:  model.LoanRequest{UserName: "ghost", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. already loaned",
			req:  model.LoanRequest{UserName: "junwoo", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(user, nil)
				r.EXPECT().
					CreateLoan(context.Background(), user.ID, req.BookName).
					Return(model.LoanRecord{}, errs.ErrAlreadyLoaned)
			},
			wantErr: errs.ErrAlreadyLoaned,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)
			svc := service.NewService(repo, zap.NewNop())

			record, err := svc.LoanBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, record)
		})
	}
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository, req model.LoanRequest)

	user := model.User{ID: 7, Name: "junwoo"}

	var tests = []struct {
		name         string
		req          model.LoanRequest
		mockBehavior mockBehavior
		want         model.LoanRecord
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.LoanRequest{UserName: "junwoo", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(user, nil)
				r.EXPECT().
					ReturnLoan(context.Background(), user.ID, req.BookName).
					Return(model.LoanRecord{
						ID:        1,
						RecordUid: "5df2b4a5-3bf2-4d55-92e5-d113a0f7a2be",
						UserID:    user.ID,
						BookName:  req.BookName,
						Status:    model.StatusReturned,
					}, nil)
			},
			want: model.LoanRecord{
				ID:        1,
				RecordUid: "5df2b4a5-3bf2-4d55-92e5-d113a0f7a2be",
				UserID:    user.ID,
				BookName:  "book",
				Status:    model.StatusReturned,
			},
		},
		{
			name: "err. no outstanding loan",
			req:  model.LoanRequest{UserName: "junwoo", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(user, nil)
				r.EXPECT().
					ReturnLoan(context.Background(), user.ID, req.BookName).
					Return(model.LoanRecord{}, errs.ErrInvalidState)
			},
			wantErr: errs.ErrInvalidState,
		},
		{
			name: "err. user not found",
			req:  model.LoanRequest{UserName: "ghost", BookName: "book"},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.LoanRequest) {
				r.EXPECT().
					GetUserByName(context.Background(), req.UserName).
					Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)
			svc := service.NewService(repo, zap.NewNop())

			record, err := svc.ReturnBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, record)
		})
	}
}

func TestService_RenameUser(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, zap.NewNop())

	repo.EXPECT().
		UpdateUserName(context.Background(), 42, "B").
		Return(nil)
	require.NoError(t, svc.RenameUser(context.Background(), model.UpdateUserRequest{ID: 42, Name: "B"}))

	repo.EXPECT().
		UpdateUserName(context.Background(), 43, "B").
		Return(errs.ErrNotFound)
	require.ErrorIs(t,
		svc.RenameUser(context.Background(), model.UpdateUserRequest{ID: 43, Name: "B"}),
		errs.ErrNotFound)
}

func TestService_RemoveAll(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, zap.NewNop())

	repo.EXPECT().DeleteBooks(context.Background()).Return(nil)
	require.NoError(t, svc.RemoveAllBooks(context.Background()))

	repo.EXPECT().DeleteUsers(context.Background()).Return(nil)
	require.NoError(t, svc.RemoveAllUsers(context.Background()))
}

func TestService_CountLoanedBooks(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, zap.NewNop())

	repo.EXPECT().
		CountLoaned(context.Background()).
		Return(2, nil)
	count, err := svc.CountLoanedBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	repo.EXPECT().
		CountLoaned(context.Background()).
		Return(0, errors.New("db internal"))
	_, err = svc.CountLoanedBooks(context.Background())
	require.Error(t, err)
}
