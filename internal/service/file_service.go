package service

import (
	"context"
	"encoding/base64"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/query"
	"file-storage-server/internal/repository"
	"file-storage-server/internal/util"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	dataURLMarker = ";base64,"
	defaultSort   = "$createdAt-desc"
)

type FileService struct {
	clients  ports.ClientFactory
	users    ports.UserService
	cache    ports.FileCache
	routes   ports.RouteCache
	platform config.PlatformConfig
	limits   config.LimitsConfig
}

func NewFileService(
	clients ports.ClientFactory,
	users ports.UserService,
	cache ports.FileCache,
	routes ports.RouteCache,
	platform config.PlatformConfig,
	limits config.LimitsConfig,
) *FileService {
	return &FileService{
		clients:  clients,
		users:    users,
		cache:    cache,
		routes:   routes,
		platform: platform,
		limits:   limits,
	}
}

// UploadFile : кладёт файл в бакет и создаёт запись о нём.
// Если запись создать не удалось, объект в бакете остаётся
func (s *FileService) UploadFile(ctx context.Context, params ports.UploadFileParams) (*model.File, error) {
	data, err := decodeDataURL(params.File.Base64String)
	if err != nil {
		return nil, util.LogError("[FileService] ошибка декодирования файла", fmt.Errorf("%w: %v", ErrInvalidFile, err))
	}
	if s.limits.MaxUploadBytes > 0 && int64(len(data)) > s.limits.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	name := util.Sanitize(params.File.FileName)
	if name == "" {
		return nil, fmt.Errorf("%w: пустое имя файла", ErrInvalidFile)
	}

	admin := s.clients.Admin()

	bucketFile, err := admin.Storage().CreateFile(ctx, uuid.NewString(), model.InputFile{
		Name:        name,
		ContentType: params.File.FileType,
		Data:        data,
	})
	if err != nil {
		return nil, util.LogError("[FileService] не удалось загрузить файл в бакет", err)
	}

	fileType, extension := util.GetFileType(bucketFile.Name)

	created, err := admin.Databases().CreateFile(ctx, &model.File{
		ID:           uuid.NewString(),
		Type:         fileType,
		Name:         bucketFile.Name,
		URL:          util.ConstructFileURL(&s.platform, bucketFile.ID),
		Extension:    extension,
		Size:         bucketFile.SizeOriginal,
		Owner:        params.OwnerID,
		AccountID:    params.AccountID,
		Users:        []string{},
		BucketFileID: bucketFile.ID,
	})
	if err != nil {
		return nil, util.LogError("[FileService] не удалось создать запись о файле", err)
	}

	s.cacheFile(ctx, created)
	s.revalidate(ctx, params.Path)

	util.Sugar.Infow("[FileService] файл загружен", "fileId", created.ID, "bucketFileId", created.BucketFileID, "size", created.Size)

	return util.ParseStringify(created)
}

// CreateQueries : предикаты выборки файлов, видимых пользователю
func CreateQueries(user *model.User, types []string, searchText, sort string, limit int) []query.Query {
	queries := []query.Query{
		query.Or(
			query.Equal("owner", user.ID),
			query.Contains("users", user.Email),
		),
	}

	if len(types) > 0 {
		queries = append(queries, query.Equal("type", types...))
	}
	if searchText != "" {
		queries = append(queries, query.Contains("name", searchText))
	}
	if limit > 0 {
		queries = append(queries, query.Limit(limit))
	}

	if sort != "" {
		field, direction, _ := strings.Cut(sort, "-")
		if direction == "asc" {
			queries = append(queries, query.OrderAsc(field))
		} else {
			queries = append(queries, query.OrderDesc(field))
		}
	}

	return queries
}

// GetFiles : файлы, которыми владеет текущий пользователь или которые ему открыты
func (s *FileService) GetFiles(ctx context.Context, sessionSecret string, params ports.GetFilesParams) (*model.FileList, error) {
	user := s.users.GetCurrentUser(ctx, sessionSecret)
	if user == nil {
		return nil, util.LogError("[FileService] не удалось получить файлы", ErrUserNotFound)
	}

	sort := params.Sort
	if sort == "" {
		sort = defaultSort
	}

	queries := CreateQueries(user, params.Types, params.SearchText, sort, params.Limit)

	files, err := s.clients.Admin().Databases().ListFiles(ctx, queries)
	if err != nil {
		return nil, util.LogError("[FileService] не удалось получить файлы", err)
	}

	return util.ParseStringify(files)
}

// GetFile : запись о файле, сначала из кэша Redis
func (s *FileService) GetFile(ctx context.Context, actor *model.User, fileID string) (*model.File, error) {
	file, err := s.accessibleFile(ctx, actor, fileID)
	if err != nil {
		return nil, err
	}
	return util.ParseStringify(file)
}

// RenameFile : новое имя = name.extension, расширение может быть пустым
func (s *FileService) RenameFile(ctx context.Context, actor *model.User, params ports.RenameFileParams) (*model.File, error) {
	if _, err := s.accessibleFile(ctx, actor, params.FileID); err != nil {
		return nil, err
	}

	newName := util.Sanitize(params.Name)
	if newName == "" {
		return nil, fmt.Errorf("%w: пустое имя файла", ErrInvalidFile)
	}
	if params.Extension != "" {
		newName = fmt.Sprintf("%s.%s", newName, params.Extension)
	}

	updated, err := s.clients.Admin().Databases().UpdateFile(ctx, params.FileID, model.FileUpdate{Name: &newName})
	if err != nil {
		return nil, util.LogError("[FileService] не удалось переименовать файл", notFound(err))
	}

	s.cacheFile(ctx, updated)
	s.revalidate(ctx, params.Path)

	return util.ParseStringify(updated)
}

// UpdateFileUsers : полностью заменяет список email, которым открыт файл
func (s *FileService) UpdateFileUsers(ctx context.Context, actor *model.User, params ports.UpdateFileUsersParams) (*model.File, error) {
	if _, err := s.accessibleFile(ctx, actor, params.FileID); err != nil {
		return nil, err
	}

	emails := uniqueEmails(params.Emails)

	updated, err := s.clients.Admin().Databases().UpdateFile(ctx, params.FileID, model.FileUpdate{Users: emails})
	if err != nil {
		return nil, util.LogError("[FileService] не удалось обновить доступ к файлу", notFound(err))
	}

	s.cacheFile(ctx, updated)
	s.revalidate(ctx, params.Path)

	return util.ParseStringify(updated)
}

// DeleteFile : удаляет запись, затем объект в бакете.
// Ошибка удаления объекта возвращается, запись при этом уже удалена
func (s *FileService) DeleteFile(ctx context.Context, actor *model.User, params ports.DeleteFileParams) (map[string]string, error) {
	file, err := s.accessibleFile(ctx, actor, params.FileID)
	if err != nil {
		return nil, err
	}
	if file.BucketFileID != params.BucketFileID {
		return nil, util.LogError("[FileService] объект не принадлежит записи", ErrAccessDenied)
	}

	admin := s.clients.Admin()

	if err := admin.Databases().DeleteFile(ctx, params.FileID); err != nil {
		return nil, util.LogError("[FileService] не удалось удалить запись о файле", notFound(err))
	}

	if err := s.cache.DeleteFile(ctx, params.FileID); err != nil {
		util.Sugar.Warnw("[FileService] не удалось удалить файл из кэша", "fileId", params.FileID, "error", err)
	}

	if err := admin.Storage().DeleteFile(ctx, params.BucketFileID); err != nil {
		return nil, util.LogError("[FileService] не удалось удалить объект из бакета", err)
	}

	s.revalidate(ctx, params.Path)

	return map[string]string{"status": "success"}, nil
}

// GetTotalSpaceUsed : занятое место по типам и квота
func (s *FileService) GetTotalSpaceUsed(ctx context.Context, actor *model.User) (*model.SpaceUsage, error) {
	usage, err := s.clients.Admin().Databases().SpaceUsage(ctx, actor.ID)
	if err != nil {
		return nil, util.LogError("[FileService] не удалось посчитать занятое место", err)
	}

	total := &model.SpaceUsage{
		Document: usage[util.FileTypeDocument],
		Image:    usage[util.FileTypeImage],
		Video:    usage[util.FileTypeVideo],
		Audio:    usage[util.FileTypeAudio],
		Other:    usage[util.FileTypeOther],
		All:      s.limits.StorageQuota,
	}
	for _, u := range usage {
		total.Used += u.Size
	}

	return total, nil
}

// ViewFile : содержимое объекта бакета
func (s *FileService) ViewFile(ctx context.Context, bucketFileID string) (io.ReadCloser, *model.BucketFile, error) {
	body, info, err := s.clients.Admin().Storage().GetFile(ctx, bucketFileID)
	if err != nil {
		return nil, nil, err
	}
	return body, info, nil
}

func (s *FileService) RevalidatedAt(ctx context.Context, path string) (*time.Time, error) {
	return s.routes.RevalidatedAt(ctx, path)
}

func (s *FileService) accessibleFile(ctx context.Context, actor *model.User, fileID string) (*model.File, error) {
	file, err := s.cache.GetFile(ctx, fileID)
	if err != nil {
		util.Sugar.Warnw("[FileService] ошибка чтения кэша", "fileId", fileID, "error", err)
	}

	if file == nil {
		file, err = s.clients.Admin().Databases().GetFile(ctx, fileID)
		if err != nil {
			return nil, util.LogError("[FileService] не удалось получить файл", notFound(err))
		}
		s.cacheFile(ctx, file)
	}

	if !canAccess(actor, file) {
		return nil, ErrAccessDenied
	}

	return file, nil
}

func (s *FileService) cacheFile(ctx context.Context, file *model.File) {
	if err := s.cache.SetFile(ctx, file); err != nil {
		util.Sugar.Warnw("[FileService] ошибка кэширования файла", "fileId", file.ID, "error", err)
	}
}

// revalidate : ошибка инвалидации не отменяет уже выполненное действие
func (s *FileService) revalidate(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.routes.RevalidatePath(ctx, path); err != nil {
		util.Sugar.Warnw("[FileService] не удалось инвалидировать маршрут", "path", path, "error", err)
	}
}

func canAccess(actor *model.User, file *model.File) bool {
	if actor == nil {
		return false
	}
	if file.Owner == actor.ID {
		return true
	}
	for _, email := range file.Users {
		if strings.EqualFold(email, actor.Email) {
			return true
		}
	}
	return false
}

func decodeDataURL(value string) ([]byte, error) {
	if idx := strings.Index(value, dataURLMarker); idx >= 0 {
		value = value[idx+len(dataURLMarker):]
	}
	return base64.StdEncoding.DecodeString(value)
}

// uniqueEmails : приводит адреса к нижнему регистру, как email пользователей,
// убирает пустые и повторяющиеся, порядок сохраняется
func uniqueEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	result := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		result = append(result, email)
	}
	return result
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFileNotFound
	}
	return err
}
