package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/easyonboard/backend/internal/model"
)

// Cache 主题列表的本地 JSON 文件缓存，服务端不可用时兜底
type Cache struct {
	mutex sync.Mutex
	path  string
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Load 读取缓存的主题列表，文件不存在视为空缓存
func (c *Cache) Load() ([]model.Topic, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.load()
}

func (c *Cache) load() ([]model.Topic, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var topics []model.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// Save 覆盖写入整个主题列表
func (c *Cache) Save(topics []model.Topic) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.save(topics)
}

func (c *Cache) save(topics []model.Topic) error {
	data, err := json.Marshal(topics)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Append 追加一条主题
func (c *Cache) Append(topic model.Topic) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	topics, err := c.load()
	if err != nil {
		return err
	}
	return c.save(append(topics, topic))
}

// Remove 按 id 删除主题，不存在时不报错
func (c *Cache) Remove(id string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	topics, err := c.load()
	if err != nil {
		return err
	}
	filtered := topics[:0]
	for _, topic := range topics {
		if topic.ID != id {
			filtered = append(filtered, topic)
		}
	}
	return c.save(filtered)
}

// SetCompletion 更新缓存中指定主题的完成状态
func (c *Cache) SetCompletion(id string, completed bool) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	topics, err := c.load()
	if err != nil {
		return err
	}
	for i := range topics {
		if topics[i].ID == id {
			topics[i].Completed = completed
		}
	}
	return c.save(topics)
}
