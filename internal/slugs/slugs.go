package slugs

import (
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"
)

// MaxTopicSlug 主题文件/目录名最大长度
const MaxTopicSlug = 50

// MaxSectionSlug 小节文件名最大长度
const MaxSectionSlug = 40

var leadingOrdinal = regexp.MustCompile(`^\d+-`)

func init() {
	// & 按分隔符处理，不转写为 "and"
	goslug.CustomSub = map[string]string{"&": " "}
}

// FileSlug 由标题推导文件名安全的 slug，超长截断
func FileSlug(title string, maxLen int) string {
	s := goslug.Make(title)
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen]
	}
	return strings.Trim(s, "-")
}

// HumanizeName 将目录/文件名还原为可读标题
// 去掉 NN- 序号前缀，连字符替换为空格
func HumanizeName(name string) string {
	name = leadingOrdinal.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
