// 基于mediawiki action api (api.php, formatversion=2) 的实现
// 默认不重试，请求失败直接返回错误；限速为可选项
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/andrewyi/snpcrawler/src/analyzer"
	"github.com/andrewyi/snpcrawler/src/enum"
)

type Options struct {
	Timeout           time.Duration
	Retry             uint32
	RequestsPerSecond float64
	UserAgent         string
	LinkSource        string
}

type SimpleSite struct {
	endpoint   string
	linkSource string

	client   *resty.Client
	limiter  *rate.Limiter
	analyzer analyzer.Analyzer
}

func NewSimpleSite(endpoint string, opts Options) (*SimpleSite, error) {
	linkSource := opts.LinkSource
	if linkSource == "" {
		linkSource = enum.LinkSourceAPI
	}
	if linkSource != enum.LinkSourceAPI && linkSource != enum.LinkSourceHTML {
		return nil, fmt.Errorf("unknown link source: %s", linkSource)
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(int(opts.Retry))
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	s := &SimpleSite{
		endpoint:   endpoint,
		linkSource: linkSource,
		client:     client,
		analyzer:   analyzer.NewSimpleAnalyzer(),
	}
	if opts.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return s, nil
}

func (s *SimpleSite) CategoryMembers(ctx context.Context, category string) ([]string, error) {
	if !strings.HasPrefix(category, CategoryPrefix) {
		category = CategoryPrefix + category
	}

	var names []string
	err := s.queryAll(ctx, map[string]string{
		"action":  "query",
		"list":    "categorymembers",
		"cmtitle": category,
		"cmlimit": "max",
	}, func(resp *queryResponse) {
		for _, m := range resp.Query.CategoryMembers {
			names = append(names, m.Title)
		}
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *SimpleSite) Page(name string) Page {
	return &SimplePage{site: s, name: name}
}

type SimplePage struct {
	site *SimpleSite
	name string
}

func (p *SimplePage) Name() string {
	return p.name
}

func (p *SimplePage) Links(ctx context.Context) ([]Page, error) {
	var titles []string
	var err error
	if p.site.linkSource == enum.LinkSourceHTML {
		titles, err = p.site.renderedLinks(ctx, p.name)
	} else {
		titles, err = p.site.apiLinks(ctx, p.name)
	}
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(titles))
	for _, t := range titles {
		pages = append(pages, p.site.Page(t))
	}
	return pages, nil
}

func (p *SimplePage) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := p.site.queryAll(ctx, map[string]string{
		"action":  "query",
		"prop":    "categories",
		"titles":  p.name,
		"cllimit": "max",
	}, func(resp *queryResponse) {
		for _, page := range resp.Query.Pages {
			for _, c := range page.Categories {
				categories = append(categories, c.Title)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (p *SimplePage) Text(ctx context.Context) (string, error) {
	var resp queryResponse
	_, err := p.site.query(ctx, map[string]string{
		"action":  "query",
		"prop":    "revisions",
		"rvprop":  "content",
		"rvslots": "main",
		"titles":  p.name,
	}, &resp)
	if err != nil {
		return "", err
	}

	for _, page := range resp.Query.Pages {
		if page.Missing || len(page.Revisions) == 0 {
			continue
		}
		rev := page.Revisions[0]
		if rev.Slots.Main.Content != "" {
			return rev.Slots.Main.Content, nil
		}
		// 老版本mediawiki不支持rvslots，内容直接挂在revision上
		return rev.Content, nil
	}
	return "", nil
}

func (s *SimpleSite) apiLinks(ctx context.Context, name string) ([]string, error) {
	var titles []string
	err := s.queryAll(ctx, map[string]string{
		"action":  "query",
		"prop":    "links",
		"titles":  name,
		"pllimit": "max",
	}, func(resp *queryResponse) {
		for _, page := range resp.Query.Pages {
			for _, l := range page.Links {
				titles = append(titles, l.Title)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (s *SimpleSite) renderedLinks(ctx context.Context, name string) ([]string, error) {
	var resp parseResponse
	_, err := s.query(ctx, map[string]string{
		"action": "parse",
		"page":   name,
		"prop":   "text",
	}, &resp)
	if err != nil {
		// 与api方式保持一致，页面不存在视为没有外链
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "missingtitle" {
			return nil, nil
		}
		return nil, err
	}
	return s.analyzer.Analyze(resp.Parse.Text)
}

// 按continue字段翻页，直到没有continue为止
func (s *SimpleSite) queryAll(ctx context.Context, params map[string]string, fn func(*queryResponse)) error {
	var cont map[string]string
	for {
		p := make(map[string]string, len(params)+len(cont))
		for k, v := range params {
			p[k] = v
		}
		for k, v := range cont {
			p[k] = v
		}

		var resp queryResponse
		next, err := s.query(ctx, p, &resp)
		if err != nil {
			return err
		}
		fn(&resp)

		if len(next) == 0 {
			return nil
		}
		cont = next
	}
}

func (s *SimpleSite) query(ctx context.Context, params map[string]string, out interface{}) (map[string]string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("format", "json").
		SetQueryParam("formatversion", "2").
		Get(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fail to request %s, err: %w", s.endpoint, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fail to request %s, status: %s", s.endpoint, resp.Status())
	}

	var envelope struct {
		Error    *APIError              `json:"error"`
		Continue map[string]interface{} `json:"continue"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("fail to decode response, err: %w", err)
	}
	if envelope.Error != nil {
		return nil, envelope.Error
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return nil, fmt.Errorf("fail to decode response, err: %w", err)
	}

	var next map[string]string
	if len(envelope.Continue) != 0 {
		next = make(map[string]string, len(envelope.Continue))
		for k, v := range envelope.Continue {
			next[k] = fmt.Sprint(v)
		}
	}
	return next, nil
}

type pageRef struct {
	NS    int    `json:"ns"`
	Title string `json:"title"`
}

type revision struct {
	Content string `json:"content"`
	Slots   struct {
		Main struct {
			Content string `json:"content"`
		} `json:"main"`
	} `json:"slots"`
}

type queryResponse struct {
	Query struct {
		CategoryMembers []pageRef `json:"categorymembers"`
		Pages           []struct {
			Title      string     `json:"title"`
			Missing    bool       `json:"missing"`
			Links      []pageRef  `json:"links"`
			Categories []pageRef  `json:"categories"`
			Revisions  []revision `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
}
