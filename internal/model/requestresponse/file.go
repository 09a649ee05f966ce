package requestresponse

import "time"

// FileObject : содержимое файла в виде data-URL
type FileObject struct {
	Base64String string `json:"base64String" validate:"required" example:"data:text/plain;base64,aGVsbG8="`
	FileName     string `json:"fileName" validate:"required,max=255" example:"notes.txt"`
	FileType     string `json:"fileType" example:"text/plain"`
}

// UploadFileRequest : тело запроса загрузки
type UploadFileRequest struct {
	File      FileObject `json:"file" validate:"required"`
	OwnerID   string     `json:"ownerId" validate:"required" example:"6f1e8b29"`
	AccountID string     `json:"accountId" validate:"required" example:"b6a1e1c4"`
	Path      string     `json:"path" validate:"required,startswith=/" example:"/documents"`
}

// RenameFileRequest : новое имя без расширения
type RenameFileRequest struct {
	Name      string `json:"name" validate:"required,max=255" example:"report"`
	Extension string `json:"extension" validate:"max=32" example:"pdf"`
	Path      string `json:"path" validate:"required,startswith=/" example:"/documents"`
}

// UpdateFileUsersRequest : полный список email, которым открыт файл
type UpdateFileUsersRequest struct {
	Emails []string `json:"emails" validate:"dive,email" example:"friend@example.com"`
	Path   string   `json:"path" validate:"required,startswith=/" example:"/documents"`
}

// DeleteFileResponse : маркер успешного удаления
type DeleteFileResponse struct {
	Status string `json:"status" example:"success"`
}

// RevalidatedResponse : время последней инвалидации маршрута
type RevalidatedResponse struct {
	Path          string     `json:"path" example:"/documents"`
	RevalidatedAt *time.Time `json:"revalidatedAt"`
}
