package repository

import (
	"errors"
	"time"

	"github.com/user/moviedex/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert 写入评分，同一 (user_id, movie_id) 只保留最新一条
func (r *RatingRepository) Upsert(userID, movieID, rating int) error {
	now := time.Now()
	record := &model.Rating{
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(record).Error
}

// GetByUserAndMovie 获取用户对某部电影的评分，没有评过返回 nil
func (r *RatingRepository) GetByUserAndMovie(userID, movieID int) (*model.Rating, error) {
	var rec model.Rating
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Remove 删除评分
func (r *RatingRepository) Remove(userID, movieID int) error {
	return r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.Rating{}).Error
}

// CountByMovie 统计某部电影的评分人数
func (r *RatingRepository) CountByMovie(movieID int) (int, error) {
	var count int64
	err := r.db.Model(&model.Rating{}).Where("movie_id = ?", movieID).Count(&count).Error
	return int(count), err
}
