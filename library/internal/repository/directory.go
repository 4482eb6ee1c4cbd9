package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/errs"
	"github.com/grouplib/library-app/library/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, name string, age *int) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("name", "age").
		Values(name, age).
		Suffix("returning id, name, age").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		r.log.Error("CreateUser", zap.String("q", q), zap.Any("args", args))
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "name", "age").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetUserByName(ctx context.Context, name string) (model.User, error) {
	q, args, err := qb.Select("id", "name", "age").
		From(usersTableName).
		Where(sq.Eq{"name": name}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUserName(ctx context.Context, id int, name string) error {
	q, args, err := qb.Update(usersTableName).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteUserByName removes the first match by lowest id when the name
// is shared by several users.
func (r *repository) DeleteUserByName(ctx context.Context, name string) error {
	q := fmt.Sprintf(`delete from %s
	where id = (select id from %s where name = $1 order by id limit 1)`,
		usersTableName, usersTableName)

	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteUsers(ctx context.Context) error {
	q, args, err := qb.Delete(usersTableName).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
