package utils

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// MarkdownToHTML 将Markdown渲染为净化后的HTML
func MarkdownToHTML(markdown string) string {
	unsafe := blackfriday.Run([]byte(markdown))
	return string(bluemonday.UGCPolicy().SanitizeBytes(unsafe))
}

// HTMLToMarkdown 将HTML转换为Markdown，用于文章导出
func HTMLToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return markdown, nil
}

// ExtractText 提取HTML中的纯文本，用于生成摘要
func ExtractText(html string, limit int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
