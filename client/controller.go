package client

import (
	"context"
	"sync"

	"github.com/easyonboard/backend/internal/model"
)

// Controller 持有一份内存中的主题列表
// 变更先等待远端调用成功，再改写本地切片，失败时列表保持不变
type Controller struct {
	mutex  sync.Mutex
	client *Client
	topics []model.Topic
}

func NewController(client *Client) *Controller {
	return &Controller{client: client}
}

// Refresh 重新拉取主题列表
func (c *Controller) Refresh(ctx context.Context) error {
	topics, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	c.mutex.Lock()
	c.topics = topics
	c.mutex.Unlock()
	return nil
}

// Topics 返回当前列表的副本
func (c *Controller) Topics() []model.Topic {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := make([]model.Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Create 创建主题并追加到列表
func (c *Controller) Create(ctx context.Context, title, content string) (model.Topic, error) {
	topic, err := c.client.Create(ctx, title, content)
	if err != nil {
		return model.Topic{}, err
	}
	c.mutex.Lock()
	c.topics = append(c.topics, topic)
	c.mutex.Unlock()
	return topic, nil
}

// SetCompletion 更新完成状态，调用成功后改写本地列表
func (c *Controller) SetCompletion(ctx context.Context, id string, completed bool) error {
	if _, err := c.client.UpdateCompletion(ctx, id, completed); err != nil {
		return err
	}
	c.mutex.Lock()
	for i := range c.topics {
		if c.topics[i].ID == id {
			c.topics[i].Completed = completed
		}
	}
	c.mutex.Unlock()
	return nil
}

// Delete 删除主题，调用成功后从本地列表移除
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.client.Delete(ctx, id); err != nil {
		return err
	}
	c.mutex.Lock()
	filtered := c.topics[:0]
	for _, topic := range c.topics {
		if topic.ID != id {
			filtered = append(filtered, topic)
		}
	}
	c.topics = filtered
	c.mutex.Unlock()
	return nil
}
