package repository

import (
	"errors"

	"github.com/easyonboard/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type ProgressRepository interface {
	Get(topicID string) (*model.ProgressRecord, error)
	Upsert(topicID string, completed bool) (*model.ProgressRecord, error)
	Delete(topicID string) error
	CompletionMap() (map[string]bool, error)
}
