// 仅提取带title属性、href为站内路径的a标签
// 红链(class=new，页面不存在)与外链(class=external)被忽略
package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type SimpleAnalyzer struct{}

func NewSimpleAnalyzer() Analyzer {
	return &SimpleAnalyzer{}
}

func (a *SimpleAnalyzer) Analyze(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var (
		titles []string
		seen   = make(map[string]struct{})
	)

	doc.Find("a[title]").Each(func(index int, element *goquery.Selection) {
		if element.HasClass("new") || element.HasClass("external") {
			return
		}
		href, exists := element.Attr("href")
		if !exists || !isLocalPath(href) {
			return
		}
		title, _ := element.Attr("title")
		title = strings.TrimSpace(title)
		if title == "" {
			return
		}
		if _, ok := seen[title]; ok {
			return
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	})

	return titles, nil
}

// "//host/path" 是协议相对的外部地址
func isLocalPath(href string) bool {
	return strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")
}
