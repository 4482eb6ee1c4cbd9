package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, name string, category model.Category) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("name", "type").
		Values(name, category).
		Suffix("returning id, name, type").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "name", "type").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) DeleteBooks(ctx context.Context) error {
	q, args, err := qb.Delete(booksTableName).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) CategoryCounts(ctx context.Context) ([]model.CategoryStat, error) {
	q, args, err := qb.Select("type", "count(*) as count").
		From(booksTableName).
		GroupBy("type").
		OrderBy("type").
		ToSql()
	if err != nil {
		return nil, err
	}

	var stats []model.CategoryStat
	if err := r.db.SelectContext(ctx, &stats, q, args...); err != nil {
		return nil, err
	}
	return stats, nil
}
