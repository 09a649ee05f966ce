package repository

import (
	"context"
	"database/sql"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
	"github.com/lib/pq"
)

type AccountRepository struct {
	*config.Database
	table string
}

func NewAccountRepository(database *config.Database, collectionID string) *AccountRepository {
	return &AccountRepository{Database: database, table: pq.QuoteIdentifier(collectionID)}
}

// GetOrCreate : возвращает учётную запись с данным email, создавая её с accountID при отсутствии
func (r *AccountRepository) GetOrCreate(ctx context.Context, accountID, email string) (*model.Account, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, email) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at`, r.table)

	account := &model.Account{}
	if err := r.DB.QueryRowxContext(ctx, query, accountID, email).StructScan(account); err != nil {
		return nil, util.LogError("[AccountRepo] ошибка сохранения учётной записи", err)
	}

	return account, nil
}

// FindByID ищет учётную запись по идентификатору
// Возвращает ErrNotFound, если записи нет
func (r *AccountRepository) FindByID(ctx context.Context, accountID string) (*model.Account, error) {
	query := fmt.Sprintf(`SELECT id, email, created_at FROM %s WHERE id = $1`, r.table)

	account := &model.Account{}
	err := r.DB.GetContext(ctx, account, query, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[AccountRepo] ошибка получения учётной записи", err)
	}

	return account, nil
}
