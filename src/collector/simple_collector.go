// 任何一步请求失败都直接返回错误，不做单页面的重试或跳过
package collector

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/snpcrawler/src/entity"
	"github.com/andrewyi/snpcrawler/src/wiki"
)

type SimpleCollector struct {
	logger      *log.Logger
	site        wiki.Site
	snpCategory string
}

func NewSimpleCollector(site wiki.Site, snpCategory string, logger *log.Logger) Collector {
	return &SimpleCollector{
		logger:      logger,
		site:        site,
		snpCategory: snpCategory,
	}
}

func (c *SimpleCollector) Collect(ctx context.Context, gene string) (*entity.SnpTexts, error) {
	snps := entity.NewSnpTexts()

	genePage := c.site.Page(gene)
	links, err := genePage.Links(ctx)
	if err != nil {
		return nil, fmt.Errorf("fail to list links of %s, err: %w", gene, err)
	}

	for _, linked := range links {
		isSnp, err := c.inCategory(ctx, linked)
		if err != nil {
			return nil, err
		}
		if !isSnp {
			continue
		}

		text, err := linked.Text(ctx)
		if err != nil {
			return nil, fmt.Errorf("fail to get text of %s, err: %w", linked.Name(), err)
		}
		snps.Set(linked.Name(), text)
	}

	c.logger.WithField("gene", gene).WithField("links", len(links)).WithField(
		"snps", snps.Len()).Debug("gene collected")
	return snps, nil
}

func (c *SimpleCollector) inCategory(ctx context.Context, page wiki.Page) (bool, error) {
	categories, err := page.Categories(ctx)
	if err != nil {
		return false, fmt.Errorf("fail to list categories of %s, err: %w", page.Name(), err)
	}
	for _, category := range categories {
		if category == c.snpCategory {
			return true, nil
		}
	}
	return false, nil
}
