package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email" gorm:"unique"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	ConfirmedAt  *time.Time `json:"confirmed_at" db:"confirmed_at"`
	ConfirmToken string     `json:"-" db:"confirm_token" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Confirmed 邮箱是否已确认
func (u *User) Confirmed() bool {
	return u.ConfirmedAt != nil
}

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	ID       int
	Email    string
	Username string
	Role     string
}
