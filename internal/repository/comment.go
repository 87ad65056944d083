package repository

import (
	"time"

	"github.com/user/moviedex/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 发表短评
func (r *CommentRepository) Create(userID, movieID int, content string) (*model.Comment, error) {
	comment := &model.Comment{
		UserID:    userID,
		MovieID:   movieID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByMovie 获取某部电影的全部短评（不区分用户），附带作者信息
func (r *CommentRepository) ListByMovie(movieID int, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// CountByMovie 统计某部电影的短评数量
func (r *CommentRepository) CountByMovie(movieID int) (int, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("movie_id = ?", movieID).Count(&count).Error
	return int(count), err
}
