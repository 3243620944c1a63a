package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToHTML(t *testing.T) {
	html := MarkdownToHTML("# 标题\n\n正文**加粗**")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>加粗</strong>")

	// 脚本标签被净化
	html = MarkdownToHTML("正文<script>alert(1)</script>")
	assert.NotContains(t, html, "<script>")
}

func TestHTMLToMarkdown(t *testing.T) {
	markdown, err := HTMLToMarkdown("<h1>标题</h1><p>正文<strong>加粗</strong></p>")
	require.NoError(t, err)
	assert.Contains(t, markdown, "# 标题")
	assert.Contains(t, markdown, "**加粗**")
}

func TestExtractText(t *testing.T) {
	text := ExtractText("<p>第一段</p><p>第二段</p>", 0)
	assert.Contains(t, text, "第一段")
	assert.Contains(t, text, "第二段")

	// 按字符数截断摘要
	text = ExtractText("<p>一二三四五六七八九十</p>", 5)
	assert.Equal(t, "一二三四五", text)
}
