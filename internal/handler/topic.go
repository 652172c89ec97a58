package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/model"
	"github.com/easyonboard/backend/internal/service"
)

type TopicHandler struct {
	service *service.TopicService
}

// NewTopicHandler 创建主题处理器
func NewTopicHandler(service *service.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// List 获取全部主题
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.service.List()
	if err != nil {
		klog.Errorf("加载主题列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load topics"})
		return
	}
	if topics == nil {
		topics = []model.Topic{}
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

type createTopicRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	SectionTitle string `json:"sectionTitle"`
	IsDirectory  bool   `json:"isDirectory"`
}

// Create 创建主题，按请求体形态分派：
// 带 sectionTitle 追加小节（title 字段承载目录主题 id），
// isDirectory 为真创建目录主题，否则创建单文件主题
func (h *TopicHandler) Create(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch {
	case req.SectionTitle != "":
		filename, err := h.service.AddSection(c, req.Title, req.SectionTitle, req.Content)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Section added successfully", "filename": filename})

	case req.IsDirectory:
		dirName, err := h.service.CreateDirectoryTopic(c, req.Title, req.Content)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Topic directory created successfully", "directoryName": dirName})

	default:
		filename, err := h.service.CreateFileTopic(c, req.Title, req.Content)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Topic created successfully", "filename": filename})
	}
}

type updateCompletionRequest struct {
	ID        string `json:"id" binding:"required"`
	Completed *bool  `json:"completed" binding:"required"`
}

// UpdateCompletion 更新主题完成状态
func (h *TopicHandler) UpdateCompletion(c *gin.Context) {
	var req updateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and completed are required"})
		return
	}

	topic, err := h.service.SetCompletion(c, req.ID, *req.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic})
}

// Delete 删除主题
func (h *TopicHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError 按错误类别映射状态码
// 意外 I/O 错误只落日志，不把内部路径暴露给调用方
func (h *TopicHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "A topic with this title already exists"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic directory not found"})
	default:
		klog.Errorf("主题操作失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
