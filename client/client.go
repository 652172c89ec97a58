package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/model"
)

// Client 主题 API 客户端
// 网络优先，请求失败时退回本地缓存（目录与小节操作除外）
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	token      string
}

type Option func(*Client)

// WithHTTPClient 替换底层 HTTP 客户端
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken 为每个请求附加 Bearer 令牌
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New 创建客户端，baseURL 形如 http://host:port，cachePath 为本地缓存文件路径
func New(baseURL, cachePath string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      NewCache(cachePath),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List 拉取主题列表，失败时退回缓存，缓存为空再退到内置欢迎主题
func (c *Client) List(ctx context.Context) ([]model.Topic, error) {
	var resp struct {
		Topics []model.Topic `json:"topics"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/topics", nil, &resp); err != nil {
		klog.V(6).Infof("拉取主题列表失败，退回本地缓存: %v", err)
		return c.cachedOrDefault(), nil
	}
	if resp.Topics == nil {
		return []model.Topic{}, nil
	}
	return resp.Topics, nil
}

// Create 创建单文件主题
// 失败时在本地缓存中伪造一条主题并返回，保证离线也能继续录入
func (c *Client) Create(ctx context.Context, title, content string) (model.Topic, error) {
	body := map[string]any{"title": title, "content": content}
	var resp struct {
		Filename string `json:"filename"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/topics", body, &resp); err != nil {
		klog.V(6).Infof("创建主题失败，写入本地缓存: %v", err)
		c.ensureSeeded()
		topic := model.Topic{
			ID:         strconv.FormatInt(time.Now().UnixMilli(), 10),
			Title:      title,
			Content:    content,
			UploadedAt: time.Now(),
		}
		if cacheErr := c.cache.Append(topic); cacheErr != nil {
			return model.Topic{}, cacheErr
		}
		return topic, nil
	}
	return model.Topic{
		ID:         strings.TrimSuffix(resp.Filename, ".md"),
		Title:      title,
		Content:    content,
		UploadedAt: time.Now(),
		Filename:   resp.Filename,
	}, nil
}

// CreateDirectory 创建目录主题，失败直接返回错误，不做缓存兜底
func (c *Client) CreateDirectory(ctx context.Context, title, content string) (string, error) {
	body := map[string]any{"title": title, "content": content, "isDirectory": true}
	var resp struct {
		DirectoryName string `json:"directoryName"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/topics", body, &resp); err != nil {
		return "", err
	}
	return resp.DirectoryName, nil
}

// AddSection 向目录主题追加小节，失败直接返回错误
func (c *Client) AddSection(ctx context.Context, topicID, sectionTitle, content string) (string, error) {
	body := map[string]any{"title": topicID, "sectionTitle": sectionTitle, "content": content}
	var resp struct {
		Filename string `json:"filename"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/topics", body, &resp); err != nil {
		return "", err
	}
	return resp.Filename, nil
}

// UpdateCompletion 更新完成状态
// 失败时改写本地缓存并返回 nil 主题，调用方据此得知走了兜底路径
func (c *Client) UpdateCompletion(ctx context.Context, id string, completed bool) (*model.Topic, error) {
	body := map[string]any{"id": id, "completed": completed}
	var resp struct {
		Topic model.Topic `json:"topic"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/topics", body, &resp); err != nil {
		klog.V(6).Infof("更新完成状态失败，改写本地缓存: %v", err)
		c.ensureSeeded()
		if cacheErr := c.cache.SetCompletion(id, completed); cacheErr != nil {
			return nil, cacheErr
		}
		return nil, nil
	}
	return &resp.Topic, nil
}

// Delete 删除主题，失败时从本地缓存移除并视为成功
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/api/topics?id=" + url.QueryEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		klog.V(6).Infof("删除主题失败，从本地缓存移除: %v", err)
		c.ensureSeeded()
		return c.cache.Remove(id)
	}
	return nil
}

// CachedTopics 返回本地缓存内容，供状态对账使用
func (c *Client) CachedTopics() ([]model.Topic, error) {
	return c.cache.Load()
}

// SyncStates 拉取服务端列表并与本地缓存对账
// 返回每个主题的同步状态，服务端不可达时直接报错，不做兜底
func (c *Client) SyncStates(ctx context.Context) (map[string]SyncState, error) {
	var resp struct {
		Topics []model.Topic `json:"topics"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/topics", nil, &resp); err != nil {
		return nil, err
	}
	cached, err := c.cache.Load()
	if err != nil {
		return nil, err
	}
	return Reconcile(resp.Topics, cached), nil
}

func (c *Client) cachedOrDefault() []model.Topic {
	c.ensureSeeded()
	topics, err := c.cache.Load()
	if err != nil || len(topics) == 0 {
		return DefaultTopics()
	}
	return topics
}

// ensureSeeded 缓存为空时先落盘内置欢迎主题
// 后续的兜底写操作（追加、删除、改完成状态）都在种子列表之上进行，
// 不会把种子主题丢掉
func (c *Client) ensureSeeded() {
	topics, err := c.cache.Load()
	if err == nil && len(topics) > 0 {
		return
	}
	if err := c.cache.Save(DefaultTopics()); err != nil {
		klog.V(6).Infof("写入内置欢迎主题失败: %v", err)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
