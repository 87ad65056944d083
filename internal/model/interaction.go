package model

import (
	"time"
)

// WatchlistItem 想看清单条目
// (user_id, movie_id) 唯一约束保证同一部电影最多收藏一次
type WatchlistItem struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Rating 用户评分，(user_id, movie_id) 唯一，重复提交走 upsert
type Rating struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_rating_user_movie"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_rating_user_movie"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Comment 用户短评，只增不改
type Comment struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"index"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	User      *User     `json:"user,omitempty"` // 关联查询时填充
}
