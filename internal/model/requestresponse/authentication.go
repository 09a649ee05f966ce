package requestresponse

// CreateAccountRequest : тело запроса регистрации
type CreateAccountRequest struct {
	FullName string `json:"fullName" validate:"required,max=128" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
}

// SignInRequest : тело запроса входа
type SignInRequest struct {
	Email string `json:"email" validate:"required,email" example:"jane@example.com"`
}

// VerifySecretRequest : подтверждение одноразового кода
type VerifySecretRequest struct {
	AccountID string `json:"accountId" validate:"required" example:"b6a1e1c44b1d4f1e8b29"`
	Password  string `json:"password" validate:"required,numeric" example:"123456"`
}

// AccountResponse : ответ регистрации и входа; при неизвестном email accountId = null
type AccountResponse struct {
	AccountID *string `json:"accountId"`
	Error     string  `json:"error,omitempty"`
}

// VerifySecretResponse : идентификатор созданной сессии
type VerifySecretResponse struct {
	SessionID string `json:"sessionId" example:"4f1e8b291234567890ab"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"некорректный JSON"`
	Code    int    `json:"code" example:"400"`
}
