package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/contentstore"
	"github.com/easyonboard/backend/internal/eventbus"
	"github.com/easyonboard/backend/internal/model"
	"github.com/easyonboard/backend/internal/normalizer"
	"github.com/easyonboard/backend/internal/repository"
	"github.com/easyonboard/backend/internal/slugs"
)

type TopicService struct {
	store        *contentstore.Store
	normalizer   *normalizer.Normalizer
	progressRepo repository.ProgressRepository
	bus          *eventbus.TopicEventBus
}

// NewTopicService 创建主题服务
func NewTopicService(
	store *contentstore.Store,
	norm *normalizer.Normalizer,
	progressRepo repository.ProgressRepository,
	bus *eventbus.TopicEventBus,
) *TopicService {
	return &TopicService{
		store:        store,
		normalizer:   norm,
		progressRepo: progressRepo,
		bus:          bus,
	}
}

// List 物化全部主题并合并完成状态
// 内容目录不存在时返回空列表，不是错误
func (s *TopicService) List() ([]model.Topic, error) {
	topics, err := s.normalizer.Topics()
	if err != nil {
		return nil, err
	}

	completion, err := s.progressRepo.CompletionMap()
	if err != nil {
		return nil, err
	}
	for i := range topics {
		topics[i].Completed = completion[topics[i].ID]
	}
	return topics, nil
}

// CreateFileTopic 创建单文件主题，返回落盘文件名
// 文件中的一级标题总是由提交的 title 重新生成，不信任正文自带的标题
func (s *TopicService) CreateFileTopic(ctx context.Context, title, content string) (string, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	name := slugs.FileSlug(title, slugs.MaxTopicSlug)
	if name == "" {
		return "", fmt.Errorf("%w: title yields an empty filename", ErrValidation)
	}
	filename := name + ".md"

	body := fmt.Sprintf("# %s\n\n%s", title, content)
	if err := s.store.CreateFileExclusive(filename, body); err != nil {
		if err == contentstore.ErrExists {
			return "", fmt.Errorf("%w: a topic with this title already exists", ErrConflict)
		}
		return "", err
	}

	s.publish(ctx, eventbus.TopicEvent{Type: eventbus.TopicEventCreated, TopicID: name, Filename: filename})
	klog.V(6).Infof("主题已创建: %s", filename)
	return filename, nil
}

// CreateDirectoryTopic 创建目录主题，返回目录名
// 提供了初始内容时作为第一个小节写入 01-overview.md
func (s *TopicService) CreateDirectoryTopic(ctx context.Context, title, content string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}

	dirName := slugs.FileSlug(title, slugs.MaxTopicSlug)
	if dirName == "" {
		return "", fmt.Errorf("%w: title yields an empty directory name", ErrValidation)
	}

	if err := s.store.CreateDirExclusive(dirName); err != nil {
		if err == contentstore.ErrExists {
			return "", fmt.Errorf("%w: a topic directory with this title already exists", ErrConflict)
		}
		return "", err
	}

	if strings.TrimSpace(content) != "" {
		body := fmt.Sprintf("# %s\n\n%s", title, content)
		if err := s.store.WriteFile(filepath.Join(dirName, "01-overview.md"), body); err != nil {
			return "", err
		}
	}

	s.publish(ctx, eventbus.TopicEvent{Type: eventbus.TopicEventDirCreated, TopicID: dirName})
	klog.V(6).Infof("目录主题已创建: %s", dirName)
	return dirName, nil
}

// AddSection 向已有目录主题追加小节，返回小节文件名
// 序号 = 已有 markdown 文件数 + 1，两位补零，顺序跟随创建次序而非标题
func (s *TopicService) AddSection(ctx context.Context, dirID, sectionTitle, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: content is required", ErrValidation)
	}
	if strings.TrimSpace(sectionTitle) == "" {
		return "", fmt.Errorf("%w: section title is required", ErrValidation)
	}
	if !s.store.IsDir(dirID) {
		return "", fmt.Errorf("%w: topic directory %q", ErrNotFound, dirID)
	}

	existing, err := s.store.ListMarkdown(dirID)
	if err != nil {
		return "", err
	}

	name := slugs.FileSlug(sectionTitle, slugs.MaxSectionSlug)
	if name == "" {
		return "", fmt.Errorf("%w: section title yields an empty filename", ErrValidation)
	}
	filename := fmt.Sprintf("%02d-%s.md", len(existing)+1, name)

	body := fmt.Sprintf("# %s\n\n%s", sectionTitle, content)
	if err := s.store.CreateFileExclusive(filepath.Join(dirID, filename), body); err != nil {
		if err == contentstore.ErrExists {
			return "", fmt.Errorf("%w: section %q already exists", ErrConflict, filename)
		}
		return "", err
	}

	s.publish(ctx, eventbus.TopicEvent{Type: eventbus.TopicEventSectionAdded, TopicID: dirID, Filename: filename})
	klog.V(6).Infof("小节已追加: %s/%s", dirID, filename)
	return filename, nil
}

// SetCompletion 更新完成状态并返回合并后的主题
// 完成状态不写入内容文件，单独落库
func (s *TopicService) SetCompletion(ctx context.Context, id string, completed bool) (*model.Topic, error) {
	topic, err := s.topicByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.progressRepo.Upsert(id, completed); err != nil {
		return nil, err
	}
	topic.Completed = completed

	s.publish(ctx, eventbus.TopicEvent{Type: eventbus.TopicEventCompleted, TopicID: id, Completed: completed})
	return topic, nil
}

// Delete 删除主题：单文件主题删除文件，目录主题删除整个目录（含小节）
func (s *TopicService) Delete(ctx context.Context, id string) error {
	var target string
	switch {
	case s.store.PathExists(id + ".md"):
		target = id + ".md"
	case s.store.IsDir(id):
		target = id
	default:
		return fmt.Errorf("%w: topic %q", ErrNotFound, id)
	}

	if err := s.store.Remove(target); err != nil {
		return err
	}

	s.publish(ctx, eventbus.TopicEvent{Type: eventbus.TopicEventDeleted, TopicID: id})
	klog.V(6).Infof("主题已删除: %s", id)
	return nil
}

// topicByID 按 id 物化单个主题
// 单文件与目录两个命名空间可能撞名，文件优先
func (s *TopicService) topicByID(id string) (*model.Topic, error) {
	if s.store.PathExists(id + ".md") {
		topic, err := s.normalizer.FileTopic(id + ".md")
		if err != nil {
			return nil, err
		}
		return &topic, nil
	}
	if s.store.IsDir(id) {
		topic, err := s.normalizer.DirectoryTopic(id)
		if err != nil {
			return nil, err
		}
		if topic != nil {
			return topic, nil
		}
	}
	return nil, fmt.Errorf("%w: topic %q", ErrNotFound, id)
}

func (s *TopicService) publish(ctx context.Context, event eventbus.TopicEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		klog.Errorf("主题事件发布失败: type=%s, topicID=%s, error=%v", event.Type, event.TopicID, err)
	}
}
