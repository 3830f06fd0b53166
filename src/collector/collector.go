package collector

import (
	"context"

	"github.com/andrewyi/snpcrawler/src/entity"
)

// Collector 收集一个gene页面所链接的全部snp页面的原始文本
type Collector interface {
	Collect(ctx context.Context, gene string) (*entity.SnpTexts, error)
}
