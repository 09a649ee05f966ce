package repository

import (
	"context"
	"database/sql"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/query"
	"file-storage-server/internal/util"
	"fmt"
	"github.com/lib/pq"
	"time"
)

const fileColumns = `id, type, name, url, extension, size, owner, account_id, users, bucket_file_id, created_at, updated_at`

// fileRow : строка таблицы файлов, users хранится как TEXT[]
type fileRow struct {
	model.File
	Users pq.StringArray `db:"users"`
}

func (r fileRow) toModel() *model.File {
	file := r.File
	file.Users = []string(r.Users)
	if file.Users == nil {
		file.Users = []string{}
	}
	return &file
}

type fileListRow struct {
	fileRow
	Total int `db:"total"`
}

type FileRepository struct {
	*config.Database
	table string
}

func NewFileRepository(database *config.Database, collectionID string) *FileRepository {
	return &FileRepository{Database: database, table: pq.QuoteIdentifier(collectionID)}
}

// CreateFile : вставляет запись о файле, $createdAt и $updatedAt проставляет БД
func (r *FileRepository) CreateFile(ctx context.Context, file *model.File) (*model.File, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, type, name, url, extension, size, owner, account_id, users, bucket_file_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, r.table, fileColumns)

	users := file.Users
	if users == nil {
		users = []string{}
	}

	var row fileRow
	err := r.DB.QueryRowxContext(ctx, query,
		file.ID,
		file.Type,
		file.Name,
		file.URL,
		file.Extension,
		file.Size,
		file.Owner,
		file.AccountID,
		pq.StringArray(users),
		file.BucketFileID,
	).StructScan(&row)
	if err != nil {
		return nil, util.LogError("[FileRepo] ошибка вставки файла", err)
	}

	return row.toModel(), nil
}

func (r *FileRepository) GetFile(ctx context.Context, fileID string) (*model.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, fileColumns, r.table)

	var row fileRow
	err := r.DB.GetContext(ctx, &row, query, fileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] ошибка получения файла", err)
	}

	return row.toModel(), nil
}

// ListFiles : выборка по предикатам, total считается без учёта лимита
func (r *FileRepository) ListFiles(ctx context.Context, queries []query.Query) (*model.FileList, error) {
	compiled, err := compileQueries(fileAttributes, queries)
	if err != nil {
		return nil, err
	}

	statement := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total FROM %s%s`, fileColumns, r.table, compiled.suffix())

	var rows []fileListRow
	if err := r.DB.SelectContext(ctx, &rows, statement, compiled.args...); err != nil {
		return nil, util.LogError("[FileRepo] ошибка выборки файлов", err)
	}

	list := &model.FileList{Documents: make([]*model.File, 0, len(rows))}
	for _, row := range rows {
		list.Total = row.Total
		list.Documents = append(list.Documents, row.toModel())
	}

	return list, nil
}

// UpdateFile : меняет только заданные поля, users перезаписывается целиком
func (r *FileRepository) UpdateFile(ctx context.Context, fileID string, update model.FileUpdate) (*model.File, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = COALESCE($2, name),
		    users = COALESCE($3, users),
		    updated_at = $4
		WHERE id = $1
		RETURNING %s`, r.table, fileColumns)

	var users any
	if update.Users != nil {
		users = pq.StringArray(update.Users)
	}

	var row fileRow
	err := r.DB.QueryRowxContext(ctx, query, fileID, update.Name, users, time.Now().UTC()).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] ошибка обновления файла", err)
	}

	return row.toModel(), nil
}

func (r *FileRepository) DeleteFile(ctx context.Context, fileID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.DB.ExecContext(ctx, query, fileID)
	if err != nil {
		return util.LogError("[FileRepo] ошибка удаления файла", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[FileRepo] не удалось проверить удаление файла", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SpaceUsage : суммарный размер и последнее обновление по типам файлов владельца
func (r *FileRepository) SpaceUsage(ctx context.Context, ownerID string) (map[string]model.TypeUsage, error) {
	query := fmt.Sprintf(`
		SELECT type, COALESCE(SUM(size), 0) AS size, MAX(updated_at) AS latest_date
		FROM %s
		WHERE owner = $1
		GROUP BY type`, r.table)

	var rows []struct {
		Type string `db:"type"`
		model.TypeUsage
	}
	if err := r.DB.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, util.LogError("[FileRepo] ошибка подсчёта занятого места", err)
	}

	usage := make(map[string]model.TypeUsage, len(rows))
	for _, row := range rows {
		usage[row.Type] = row.TypeUsage
	}

	return usage, nil
}
