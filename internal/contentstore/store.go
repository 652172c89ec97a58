package contentstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrExists 目标文件或目录已存在
var ErrExists = errors.New("path already exists")

// ErrNotExist 目标文件或目录不存在
var ErrNotExist = errors.New("path does not exist")

// Entry 内容根目录下的一个条目
type Entry struct {
	Name  string
	IsDir bool
}

// Store 基于文件系统的主题内容存储
// 所有相对路径都会解析到 baseDir 之下，禁止越界
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) BaseDir() string {
	return s.baseDir
}

// resolve 将相对路径解析到根目录下，校验是否越界
func (s *Store) resolve(rel string) (string, error) {
	full := filepath.Join(s.baseDir, rel)
	base := filepath.Clean(s.baseDir)
	if full != base && !strings.HasPrefix(full, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes content directory: %s", rel)
	}
	return full, nil
}

// ListEntries 列出根目录下所有条目
// 根目录不存在视为空存储，不是错误：新部署合法地从零开始
func (s *Store) ListEntries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// ListMarkdown 列出子目录内的 markdown 文件名，按文件名升序
func (s *Store) ListMarkdown(dir string) ([]string, error) {
	full, err := s.resolve(dir)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) ReadFile(rel string) (string, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile 写入文本，父目录不存在时自动创建，已存在则覆盖
func (s *Store) WriteFile(rel string, content string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0644)
}

// CreateFileExclusive 独占创建文件，已存在返回 ErrExists
// 用 O_EXCL 把"检查-再写入"合并为单次原子操作，关闭并发创建竞态
func (s *Store) CreateFileExclusive(rel string, content string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return err
	}
	return nil
}

// CreateDirExclusive 独占创建目录，已存在返回 ErrExists
func (s *Store) CreateDirExclusive(rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	if err := os.Mkdir(full, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return err
	}
	return nil
}

// EnsureDir 幂等创建目录
func (s *Store) EnsureDir(rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	return os.MkdirAll(full, 0755)
}

func (s *Store) PathExists(rel string) bool {
	full, err := s.resolve(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// IsDir 判断条目是否为目录
func (s *Store) IsDir(rel string) bool {
	full, err := s.resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// Remove 删除文件或整个目录（含小节文件）
func (s *Store) Remove(rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotExist
		}
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(full)
	}
	return os.Remove(full)
}
