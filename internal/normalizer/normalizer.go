package normalizer

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/easyonboard/backend/internal/contentstore"
	"github.com/easyonboard/backend/internal/markdown"
	"github.com/easyonboard/backend/internal/model"
	"github.com/easyonboard/backend/internal/slugs"
)

// Normalizer 把存储中的原始条目物化为统一的 Topic 记录
// 每次读取都重新物化，主题没有独立于文件的持久身份
type Normalizer struct {
	store *contentstore.Store
}

func New(store *contentstore.Store) *Normalizer {
	return &Normalizer{store: store}
}

// Topics 物化全部主题
// 条目按原始名称升序，保证展示顺序与文件系统遍历顺序无关
func (n *Normalizer) Topics() ([]model.Topic, error) {
	entries, err := n.store.ListEntries()
	if err != nil {
		return nil, err
	}

	topics := make([]model.Topic, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir {
			topic, err := n.DirectoryTopic(entry.Name)
			if err != nil {
				return nil, err
			}
			if topic != nil {
				topics = append(topics, *topic)
			}
			continue
		}
		if !strings.HasSuffix(entry.Name, ".md") {
			continue
		}
		topic, err := n.FileTopic(entry.Name)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// FileTopic 物化单文件主题
func (n *Normalizer) FileTopic(filename string) (model.Topic, error) {
	content, err := n.store.ReadFile(filename)
	if err != nil {
		return model.Topic{}, err
	}

	id := strings.TrimSuffix(filename, ".md")
	title, ok := markdown.FirstTitle(content)
	if !ok {
		title = id
	}

	return model.Topic{
		ID:         id,
		Title:      title,
		Content:    content,
		UploadedAt: time.Now(),
		Filename:   filename,
	}, nil
}

// DirectoryTopic 物化目录主题
// 目录中没有 markdown 文件时不产出主题，返回 nil
func (n *Normalizer) DirectoryTopic(dirname string) (*model.Topic, error) {
	names, err := n.store.ListMarkdown(dirname)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	sections := make([]model.Section, 0, len(names))
	for i, name := range names {
		content, err := n.store.ReadFile(filepath.Join(dirname, name))
		if err != nil {
			return nil, err
		}

		base := strings.TrimSuffix(name, ".md")
		title, ok := markdown.FirstTitle(content)
		if !ok {
			title = base
		}

		sections = append(sections, model.Section{
			ID:       dirname + "/" + base,
			Title:    title,
			Content:  content,
			Filename: name,
			Order:    i, // 顺序总是由排序后的文件名重新推导
		})
	}

	title, ok := markdown.FirstTitle(sections[0].Content)
	if !ok {
		title = slugs.HumanizeName(dirname)
	}

	return &model.Topic{
		ID:          dirname,
		Title:       title,
		Content:     model.CombineSections(sections),
		UploadedAt:  time.Now(),
		IsDirectory: true,
		Sections:    sections,
	}, nil
}
