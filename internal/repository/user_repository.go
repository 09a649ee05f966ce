package repository

import (
	"context"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/query"
	"file-storage-server/internal/util"
	"fmt"
	"github.com/lib/pq"
)

const userColumns = `id, full_name, email, avatar, account_id, created_at, updated_at`

type UserRepository struct {
	*config.Database
	table string
}

func NewUserRepository(database *config.Database, collectionID string) *UserRepository {
	return &UserRepository{Database: database, table: pq.QuoteIdentifier(collectionID)}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, full_name, email, avatar, account_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, r.table, userColumns)

	created := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.Avatar,
		user.AccountID,
	).StructScan(created)
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка создания пользователя", err)
	}

	return created, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, queries []query.Query) (*model.UserList, error) {
	compiled, err := compileQueries(userAttributes, queries)
	if err != nil {
		return nil, err
	}

	statement := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total FROM %s%s`, userColumns, r.table, compiled.suffix())

	var rows []struct {
		model.User
		Total int `db:"total"`
	}
	if err := r.DB.SelectContext(ctx, &rows, statement, compiled.args...); err != nil {
		return nil, util.LogError("[UserRepo] ошибка выборки пользователей", err)
	}

	list := &model.UserList{Documents: make([]*model.User, 0, len(rows))}
	for i := range rows {
		list.Total = rows[i].Total
		user := rows[i].User
		list.Documents = append(list.Documents, &user)
	}

	return list, nil
}
