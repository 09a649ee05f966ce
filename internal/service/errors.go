package service

import "errors"

var (
	ErrUserNotFound = errors.New("User not Found")
	ErrAccessDenied = errors.New("доступ к файлу запрещён")
	ErrFileNotFound = errors.New("файл не найден")
	ErrInvalidFile  = errors.New("некорректное содержимое файла")
	ErrFileTooLarge = errors.New("файл превышает допустимый размер")
	ErrOTPNotSent   = errors.New("Failed to send an OTP")
)
