package subscriber

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/eventbus"
	"github.com/easyonboard/backend/internal/repository"
)

// TopicEventSubscriber 监听主题生命周期事件
// 主题被删除时清除对应的完成状态记录，避免留下孤儿行
type TopicEventSubscriber struct {
	progressRepo repository.ProgressRepository
}

func NewTopicEventSubscriber(progressRepo repository.ProgressRepository) *TopicEventSubscriber {
	return &TopicEventSubscriber{progressRepo: progressRepo}
}

func (s *TopicEventSubscriber) Register(bus *eventbus.TopicEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.TopicEventDeleted, s.handleTopicDeleted)
	bus.Subscribe(eventbus.TopicEventCreated, s.handleTopicCreated)
	bus.Subscribe(eventbus.TopicEventCompleted, s.handleTopicCompleted)
}

func (s *TopicEventSubscriber) handleTopicDeleted(ctx context.Context, event eventbus.TopicEvent) error {
	if err := s.progressRepo.Delete(event.TopicID); err != nil {
		klog.Errorf("清除完成状态记录失败: topicID=%s, error=%v", event.TopicID, err)
		return err
	}
	klog.V(6).Infof("完成状态记录已清除: topicID=%s", event.TopicID)
	return nil
}

func (s *TopicEventSubscriber) handleTopicCreated(ctx context.Context, event eventbus.TopicEvent) error {
	klog.V(6).Infof("主题事件: type=%s, topicID=%s, filename=%s", event.Type, event.TopicID, event.Filename)
	return nil
}

func (s *TopicEventSubscriber) handleTopicCompleted(ctx context.Context, event eventbus.TopicEvent) error {
	klog.V(6).Infof("主题完成状态变更: topicID=%s, completed=%v", event.TopicID, event.Completed)
	return nil
}
