package model

import "time"

// File : метаданные загруженного файла, 1:1 с объектом в бакете
type File struct {
	ID           string    `db:"id" json:"$id"`
	Type         string    `db:"type" json:"type"`
	Name         string    `db:"name" json:"name"`
	URL          string    `db:"url" json:"url"`
	Extension    string    `db:"extension" json:"extension"`
	Size         int64     `db:"size" json:"size"`
	Owner        string    `db:"owner" json:"owner"`
	AccountID    string    `db:"account_id" json:"accountId"`
	Users        []string  `db:"-" json:"users"`
	BucketFileID string    `db:"bucket_file_id" json:"bucketFileId"`
	CreatedAt    time.Time `db:"created_at" json:"$createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"$updatedAt"`
}

// FileList : результат выборки документов коллекции файлов
type FileList struct {
	Total     int     `json:"total"`
	Documents []*File `json:"documents"`
}

// FileUpdate : частичное обновление записи, nil-поля не меняются
type FileUpdate struct {
	Name  *string
	Users []string
}

// InputFile : бинарное содержимое для записи в бакет
type InputFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// BucketFile : объект в бакете
type BucketFile struct {
	ID           string    `json:"$id"`
	BucketID     string    `json:"bucketId"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	SizeOriginal int64     `json:"sizeOriginal"`
	CreatedAt    time.Time `json:"$createdAt"`
}

// TypeUsage : занятое место по одному типу файлов
type TypeUsage struct {
	Size       int64      `db:"size" json:"size"`
	LatestDate *time.Time `db:"latest_date" json:"latestDate"`
}

// SpaceUsage : сводка занятого места пользователя
type SpaceUsage struct {
	Document TypeUsage `json:"document"`
	Image    TypeUsage `json:"image"`
	Video    TypeUsage `json:"video"`
	Audio    TypeUsage `json:"audio"`
	Other    TypeUsage `json:"other"`
	Used     int64     `json:"used"`
	All      int64     `json:"all"`
}

// UploadedFile : файл из формы загрузки в виде data-URL
type UploadedFile struct {
	Base64String string `json:"base64String"`
	FileName     string `json:"fileName"`
	FileType     string `json:"fileType"`
}
