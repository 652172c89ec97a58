package service

import "errors"

var (
	// ErrValidation 请求缺少必填字段
	ErrValidation = errors.New("validation failed")
	// ErrConflict 推导出的文件名/目录名已存在
	ErrConflict = errors.New("already exists")
	// ErrNotFound 主题或目录不存在
	ErrNotFound = errors.New("not found")
)
