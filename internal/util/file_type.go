package util

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeDocument = "document"
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeAudio    = "audio"
	FileTypeOther    = "other"
)

var extensionTypes = map[string]string{}

func init() {
	register := func(fileType string, extensions ...string) {
		for _, ext := range extensions {
			extensionTypes[ext] = fileType
		}
	}

	register(FileTypeDocument,
		"pdf", "doc", "docx", "txt", "xls", "xlsx", "csv", "rtf", "ods", "ppt", "odp", "md",
		"html", "htm", "epub", "pages", "fig", "psd", "ai", "indd", "xd", "sketch", "afdesign", "afphoto")
	register(FileTypeImage, "jpg", "jpeg", "png", "gif", "bmp", "svg", "webp")
	register(FileTypeVideo, "mp4", "avi", "mov", "mkv", "webm")
	register(FileTypeAudio, "mp3", "wav", "ogg", "flac")
}

// GetFileType : определяет тип файла и расширение (в нижнем регистре, без точки) по имени
func GetFileType(fileName string) (fileType string, extension string) {
	extension = strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if extension == "" {
		return FileTypeOther, ""
	}

	if t, ok := extensionTypes[extension]; ok {
		return t, extension
	}

	return FileTypeOther, extension
}

// GetFileTypesParams : переводит сегмент маршрута (documents, images, media, others) в список типов
func GetFileTypesParams(route string) []string {
	switch route {
	case "documents":
		return []string{FileTypeDocument}
	case "images":
		return []string{FileTypeImage}
	case "media":
		return []string{FileTypeVideo, FileTypeAudio}
	case "others":
		return []string{FileTypeOther}
	default:
		return []string{FileTypeDocument}
	}
}

// IsFileType : true для одного из пяти известных типов
func IsFileType(value string) bool {
	switch value {
	case FileTypeDocument, FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeOther:
		return true
	}
	return false
}
