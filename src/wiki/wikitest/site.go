// Package wikitest 提供内存中的wiki.Site实现，供测试使用
package wikitest

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrewyi/snpcrawler/src/wiki"
)

type FakePage struct {
	Links      []string
	Categories []string
	Text       string
}

type Site struct {
	Categories map[string][]string
	Pages      map[string]FakePage

	// 针对某个页面的某种操作返回错误，key形如 "text:rs123"、"links:APOE"、"categories:rs1"
	Errors map[string]error

	// 记录请求过的页面与操作，便于断言请求顺序
	Calls []string
}

func NewSite() *Site {
	return &Site{
		Categories: make(map[string][]string),
		Pages:      make(map[string]FakePage),
		Errors:     make(map[string]error),
	}
}

func (s *Site) CategoryMembers(ctx context.Context, category string) ([]string, error) {
	if !strings.HasPrefix(category, wiki.CategoryPrefix) {
		category = wiki.CategoryPrefix + category
	}
	if err := s.call("members", category); err != nil {
		return nil, err
	}
	return append([]string(nil), s.Categories[category]...), nil
}

func (s *Site) Page(name string) wiki.Page {
	return &page{site: s, name: name}
}

func (s *Site) call(op string, name string) error {
	key := fmt.Sprintf("%s:%s", op, name)
	s.Calls = append(s.Calls, key)
	return s.Errors[key]
}

type page struct {
	site *Site
	name string
}

func (p *page) Name() string {
	return p.name
}

func (p *page) Links(ctx context.Context) ([]wiki.Page, error) {
	if err := p.site.call("links", p.name); err != nil {
		return nil, err
	}
	var pages []wiki.Page
	for _, l := range p.site.Pages[p.name].Links {
		pages = append(pages, p.site.Page(l))
	}
	return pages, nil
}

func (p *page) Categories(ctx context.Context) ([]string, error) {
	if err := p.site.call("categories", p.name); err != nil {
		return nil, err
	}
	return append([]string(nil), p.site.Pages[p.name].Categories...), nil
}

func (p *page) Text(ctx context.Context) (string, error) {
	if err := p.site.call("text", p.name); err != nil {
		return "", err
	}
	return p.site.Pages[p.name].Text, nil
}
