package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/query"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

var fileColumnNames = []string{"id", "type", "name", "url", "extension", "size", "owner", "account_id", "users", "bucket_file_id", "created_at", "updated_at"}

func fileValues(id, name string, users string, at time.Time) []driver.Value {
	return []driver.Value{id, "document", name, "http://x/" + id, "pdf", int64(42), "u1", "acc1", users, "b-" + id, at, at}
}

func TestFileRepository_CreateFile(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+"files"\s+\(id, type, name.*RETURNING\s+id,`).
		WithArgs("f1", "document", "report.pdf", "http://x/f1", "pdf", int64(42), "u1", "acc1", pq.StringArray{}, "b-f1").
		WillReturnRows(sqlmock.NewRows(fileColumnNames).AddRow(fileValues("f1", "report.pdf", "{}", now)...))

	created, err := repo.CreateFile(context.Background(), &model.File{
		ID:           "f1",
		Type:         "document",
		Name:         "report.pdf",
		URL:          "http://x/f1",
		Extension:    "pdf",
		Size:         42,
		Owner:        "u1",
		AccountID:    "acc1",
		BucketFileID: "b-f1",
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", created.ID)
	assert.Equal(t, []string{}, created.Users)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetFile_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	mock.ExpectQuery(`SELECT .* FROM "files" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(fileColumnNames))

	file, err := repo.GetFile(context.Background(), "missing")
	assert.Nil(t, file)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileRepository_ListFiles(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")
	now := time.Now().UTC()

	columns := append(append([]string{}, fileColumnNames...), "total")
	rows := sqlmock.NewRows(columns).
		AddRow(append(fileValues("f1", "a.pdf", `{"x@y.z"}`, now), 5)...).
		AddRow(append(fileValues("f2", "b.pdf", "{}", now), 5)...)

	mock.ExpectQuery(`(?s)SELECT .*COUNT\(\*\) OVER\(\) AS total FROM "files" WHERE \(owner = \$1 OR \$2 = ANY\(users\)\) ORDER BY size ASC LIMIT \$3`).
		WithArgs("u1", "a@b.c", 2).
		WillReturnRows(rows)

	list, err := repo.ListFiles(context.Background(), []query.Query{
		query.Or(query.Equal("owner", "u1"), query.Contains("users", "a@b.c")),
		query.Limit(2),
		query.OrderAsc("size"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, list.Total)
	require.Len(t, list.Documents, 2)
	assert.Equal(t, []string{"x@y.z"}, list.Documents[0].Users)
	assert.Equal(t, "b.pdf", list.Documents[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_ListFiles_Empty(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	mock.ExpectQuery(`SELECT .* FROM "files"`).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, fileColumnNames...), "total")))

	list, err := repo.ListFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Documents)
	assert.Empty(t, list.Documents)
}

func TestFileRepository_ListFiles_UnknownAttribute(t *testing.T) {
	db, _ := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	_, err := repo.ListFiles(context.Background(), []query.Query{query.OrderDesc("secret")})
	assert.True(t, errors.Is(err, query.ErrUnknownAttribute))
}

func TestFileRepository_UpdateFile_Name(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")
	now := time.Now().UTC()
	name := "final.pdf"

	mock.ExpectQuery(`(?s)UPDATE "files"\s+SET name = COALESCE\(\$2, name\).*WHERE id = \$1`).
		WithArgs("f1", name, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(fileColumnNames).AddRow(fileValues("f1", name, "{}", now)...))

	updated, err := repo.UpdateFile(context.Background(), "f1", model.FileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_UpdateFile_Users(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE "files"`).
		WithArgs("f1", nil, pq.StringArray{"a@b.c", "d@e.f"}, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(fileColumnNames).AddRow(fileValues("f1", "a.pdf", `{"a@b.c","d@e.f"}`, now)...))

	updated, err := repo.UpdateFile(context.Background(), "f1", model.FileUpdate{Users: []string{"a@b.c", "d@e.f"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.c", "d@e.f"}, updated.Users)
}

func TestFileRepository_UpdateFile_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	mock.ExpectQuery(`UPDATE "files"`).WillReturnRows(sqlmock.NewRows(fileColumnNames))

	_, err := repo.UpdateFile(context.Background(), "f1", model.FileUpdate{Users: []string{}})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileRepository_DeleteFile(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	mock.ExpectExec(`DELETE FROM "files" WHERE id = \$1`).
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "files" WHERE id = \$1`).
		WithArgs("f2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteFile(context.Background(), "f1"))
	assert.True(t, errors.Is(repo.DeleteFile(context.Background(), "f2"), ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_DeleteFile_DBError(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")

	mock.ExpectExec(`DELETE FROM "files"`).WillReturnError(errors.New("connection reset"))

	err := repo.DeleteFile(context.Background(), "f1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestFileRepository_SpaceUsage(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFileRepository(db, "files")
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)SELECT type, COALESCE\(SUM\(size\), 0\) AS size, MAX\(updated_at\) AS latest_date\s+FROM "files"\s+WHERE owner = \$1\s+GROUP BY type`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"type", "size", "latest_date"}).
			AddRow("image", int64(100), now).
			AddRow("document", int64(7), now))

	usage, err := repo.SpaceUsage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), usage["image"].Size)
	assert.Equal(t, int64(7), usage["document"].Size)
	require.NotNil(t, usage["document"].LatestDate)
	_, ok := usage["video"]
	assert.False(t, ok)
}
