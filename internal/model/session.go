package model

import "time"

// Account : учётная запись платформы, к которой привязываются email-токены и сессии
type Account struct {
	ID        string    `db:"id" json:"$id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"$createdAt"`
}

// Token : выданный одноразовый код, сам код уходит только на почту
type Token struct {
	ID       string    `json:"$id"`
	UserID   string    `json:"userId"`
	ExpireAt time.Time `json:"expire"`
}

// Session : сессия платформы, Secret кладётся в cookie
type Session struct {
	ID        string    `json:"$id"`
	UserID    string    `json:"userId"`
	Secret    string    `json:"secret,omitempty"`
	ExpireAt  time.Time `json:"expire"`
	CreatedAt time.Time `json:"$createdAt"`
}

// StoredSession : то, что лежит в Redis под ключом сессии
type StoredSession struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"`
}
