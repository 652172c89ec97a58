package model

import (
	"strings"
	"time"
)

// Topic 一个入职引导主题，单文件或目录两种形态
type Topic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // 目录主题为各小节内容按序拼接
	UploadedAt  time.Time `json:"uploadedAt"`
	Completed   bool      `json:"completed"`
	IsDirectory bool      `json:"isDirectory,omitempty"`
	Sections    []Section `json:"sections,omitempty"` // 仅目录主题存在
	Filename    string    `json:"filename,omitempty"`  // 仅单文件主题存在
}

// Section 目录主题中的一个有序小节
type Section struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Filename string `json:"filename"` // NN- 前缀文件名，决定排序
	Order    int    `json:"order"`    // 按文件名排序后重新推导，不单独持久化
}

// SectionSeparator 目录主题拼接小节时使用的分隔符
const SectionSeparator = "\n\n---\n\n"

// CombineSections 按小节顺序拼接内容
func CombineSections(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Content)
	}
	return strings.Join(parts, SectionSeparator)
}

// ProgressRecord 主题完成状态持久化记录
// 内容存储中没有完成状态字段，完成状态单独落库
type ProgressRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TopicID   string    `json:"topic_id" gorm:"size:255;uniqueIndex;not null"`
	Completed bool      `json:"completed" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
