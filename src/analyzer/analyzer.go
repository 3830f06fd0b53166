package analyzer

// Analyzer 从渲染后的页面html中提取站内链接的页面标题
type Analyzer interface {
	Analyze(html string) ([]string, error)
}
