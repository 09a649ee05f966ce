package model

import "time"

type User struct {
	ID        string    `db:"id" json:"$id"`
	FullName  string    `db:"full_name" json:"fullName"`
	Email     string    `db:"email" json:"email"`
	Avatar    string    `db:"avatar" json:"avatar"`
	AccountID string    `db:"account_id" json:"accountId"`
	CreatedAt time.Time `db:"created_at" json:"$createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"$updatedAt"`
}

type UserList struct {
	Total     int     `json:"total"`
	Documents []*User `json:"documents"`
}
