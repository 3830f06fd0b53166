package core

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/snpcrawler/src/collector"
	"github.com/andrewyi/snpcrawler/src/entity"
)

// Pauser 每处理完一批gene后的等待策略，测试中可以替换为不等待的实现
type Pauser interface {
	Pause(ctx context.Context, d time.Duration) error
}

type PauserFunc func(ctx context.Context, d time.Duration) error

func (f PauserFunc) Pause(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

type SleepPauser struct{}

func (SleepPauser) Pause(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type DriverConfig struct {
	// 本次最多处理的gene数量，<=0 表示不限制
	Limit int
	// 每处理PauseAfter个gene暂停一次，<=0 表示从不暂停
	PauseAfter    int
	PauseDuration time.Duration
	// 为true时单个gene失败只记录日志并跳过，默认直接终止
	IsolateGeneErrors bool

	Pauser Pauser
}

type Driver struct {
	logger    *log.Logger
	collector collector.Collector
	config    DriverConfig
}

func NewDriver(c collector.Collector, cfg DriverConfig, logger *log.Logger) *Driver {
	if cfg.Pauser == nil {
		cfg.Pauser = SleepPauser{}
	}
	return &Driver{
		logger:    logger,
		collector: c,
		config:    cfg,
	}
}

// Run 顺序抓取，每个gene完整收集后才开始下一个
func (d *Driver) Run(ctx context.Context, genes []string) (*entity.GeneSnpIndex, error) {
	index := entity.NewGeneSnpIndex()

	total := len(genes)
	if d.config.Limit > 0 && total > d.config.Limit {
		total = d.config.Limit
	}

	for i, gene := range genes[:total] {
		processed := i + 1

		snps, err := d.collector.Collect(ctx, gene)
		if err != nil {
			if !d.config.IsolateGeneErrors || ctx.Err() != nil {
				return nil, fmt.Errorf("fail to collect gene %s, err: %w", gene, err)
			}
			d.logger.WithError(err).WithField("gene", gene).Error("fail to collect gene, skipped")
		} else {
			index.Insert(gene, snps)
		}

		if d.config.PauseAfter > 0 && processed%d.config.PauseAfter == 0 && processed < total {
			d.logger.WithField("processed", processed).WithField("total", total).Info("pause scraping")
			if err := d.config.Pauser.Pause(ctx, d.config.PauseDuration); err != nil {
				return nil, err
			}
		}
	}

	d.logger.WithField("genes", index.Len()).Info("completed the scraping step")
	return index, nil
}
