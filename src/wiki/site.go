package wiki

import (
	"context"
	"fmt"
)

const CategoryPrefix = "Category:"

// Site 远端wiki站点，所有方法都可能失败，错误直接返回给调用方
type Site interface {
	// 返回属于该分类的所有页面名称
	CategoryMembers(ctx context.Context, category string) ([]string, error)
	// 只构造页面句柄，不发请求
	Page(name string) Page
}

type Page interface {
	Name() string
	Links(ctx context.Context) ([]Page, error)
	Categories(ctx context.Context) ([]string, error)
	// 页面不存在时返回空字符串
	Text(ctx context.Context) (string, error)
}

// mediawiki api返回的error字段
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediawiki api error, code: %s, info: %s", e.Code, e.Info)
}
