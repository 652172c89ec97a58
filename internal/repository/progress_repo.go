package repository

import (
	"errors"
	"time"

	"github.com/easyonboard/backend/internal/model"
	"gorm.io/gorm"
)

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(topicID string) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	err := r.db.Where("topic_id = ?", topicID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Upsert 写入完成状态，topic_id 上的唯一索引保证并发写只留一行
func (r *progressRepository) Upsert(topicID string, completed bool) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("topic_id = ?", topicID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = model.ProgressRecord{
				TopicID:   topicID,
				Completed: completed,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}
		rec.Completed = completed
		rec.UpdatedAt = time.Now()
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *progressRepository) Delete(topicID string) error {
	return r.db.Where("topic_id = ?", topicID).Delete(&model.ProgressRecord{}).Error
}

// CompletionMap 返回 topicID -> completed 映射，列表合并时使用
func (r *progressRepository) CompletionMap() (map[string]bool, error) {
	var records []model.ProgressRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	m := make(map[string]bool, len(records))
	for _, rec := range records {
		m[rec.TopicID] = rec.Completed
	}
	return m, nil
}
