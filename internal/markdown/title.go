package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstTitle 提取内容中第一个一级标题的文本
// 找不到时返回 ok=false，调用方自行回退到文件名
func FirstTitle(content string) (string, bool) {
	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}

		// 标题内可能有强调、行内代码等嵌套节点，收集整棵子树的文本
		var sb strings.Builder
		ast.Walk(heading, func(inner ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if textNode, ok := inner.(*ast.Text); ok {
					sb.Write(textNode.Segment.Value([]byte(content)))
				}
			}
			return ast.WalkContinue, nil
		})

		if t := strings.TrimSpace(sb.String()); t != "" {
			title = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title, title != ""
}
