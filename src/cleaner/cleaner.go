// 对snp页面的原始wikitext做简单的正则清洗，不是完整的wiki语法解析
// 嵌套的{{...{{...}}...}}只会移除最短匹配，可能残留花括号
package cleaner

import (
	"regexp"
	"strings"
)

var (
	// 双花括号中的内容，即模板/表格
	templatePattern = regexp.MustCompile(`(\{\{(.|\n)*?\}\})`)
	// 链接中的url部分，空白与单词字符按unicode判断
	urlPattern = regexp.MustCompile(`((www|http:|https:)+[^\s\p{Z}\x{85}\x{1c}-\x{1f}]+[\p{L}\p{N}_])`)

	controlReplacer = strings.NewReplacer("\n", "", "\r", "", "\t", "")
	bracketReplacer = strings.NewReplacer("[", "", "]", "")
)

// Clean 步骤顺序不可调换，后面的步骤依赖前面的结果
func Clean(text string) string {
	text = controlReplacer.Replace(text)

	text = RemoveWithRegex(templatePattern, text, "")

	// 去掉url，保留链接中不是url的文字
	text = RemoveWithRegex(urlPattern, text, "")
	text = bracketReplacer.Replace(text)

	return strings.TrimSpace(text)
}

// RemoveWithRegex 对每个匹配，将第一个分组匹配到的文本在整个字符串中全部替换，
// 而不只是匹配所在的位置
func RemoveWithRegex(re *regexp.Regexp, text string, replaceWith string) string {
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		if len(match) < 2 || match[1] == "" {
			continue
		}
		text = strings.ReplaceAll(text, match[1], replaceWith)
	}
	return strings.TrimSpace(text)
}
