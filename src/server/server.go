package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/snpcrawler/src/collector"
	"github.com/andrewyi/snpcrawler/src/config"
	"github.com/andrewyi/snpcrawler/src/core"
	"github.com/andrewyi/snpcrawler/src/dbstorage"
	"github.com/andrewyi/snpcrawler/src/entity"
	"github.com/andrewyi/snpcrawler/src/enum"
	"github.com/andrewyi/snpcrawler/src/filestorage"
	"github.com/andrewyi/snpcrawler/src/util"
	"github.com/andrewyi/snpcrawler/src/wiki"
)

type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	config *config.Config

	site      wiki.Site
	collector collector.Collector
	file      filestorage.FileStorage
	dbStorage *dbstorage.SimpleDBStorage

	finished chan error
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:      ctx,
		cancel:   cancel,
		finished: make(chan error, 1),
	}
}

func (s *Server) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
}

func (s *Server) Start(ctx *cli.Context) error {
	var err error

	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err = util.ReadConfig(configPath, config.Defaults(), cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	s.config = cfg

	s.initLog()

	site, err := wiki.NewSimpleSite(cfg.MediaWiki.URL, wiki.Options{
		Timeout:           time.Duration(cfg.MediaWiki.Timeout) * time.Second,
		Retry:             cfg.MediaWiki.Retry,
		RequestsPerSecond: cfg.MediaWiki.RequestsPerSecond,
		UserAgent:         cfg.MediaWiki.UserAgent,
		LinkSource:        cfg.MediaWiki.LinkSource,
	})
	if err != nil {
		return fmt.Errorf("fail to create site, err: %w", err)
	}
	s.site = site
	s.collector = collector.NewSimpleCollector(site, cfg.MediaWiki.SnpCategory, s.logger)
	s.file = filestorage.NewSimpleFileStorage(cfg.Storage.Location)

	// 数据库为可选输出
	if cfg.Database.URL != "" {
		dbStorage, err := dbstorage.NewSimpleDBStorage(cfg.Database.URL)
		if err != nil {
			// 无法恢复的灾难，直接终止
			s.logger.WithError(err).Fatal("fail to create dbstorage handler")
		}
		if err = dbStorage.Sync(); err != nil {
			s.logger.WithError(err).Fatal("fail to sync dbstorage schema")
		}
		s.dbStorage = dbStorage
	}

	go func() {
		s.finished <- s.run(s.ctx)
	}()

	err = s.wait()
	s.Stop()

	return err
}

func (s *Server) run(ctx context.Context) error {
	genes, err := s.loadGenes(ctx)
	if err != nil {
		return err
	}

	driver := core.NewDriver(s.collector, core.DriverConfig{
		Limit:             s.config.Core.GeneLimit,
		PauseAfter:        s.config.Core.PauseAfter,
		PauseDuration:     time.Duration(s.config.Core.PauseSeconds) * time.Second,
		IsolateGeneErrors: s.config.Core.IsolateGeneErrors,
	}, s.logger)

	index, err := driver.Run(ctx, genes)
	if err != nil {
		return err
	}

	raw, cleaned := core.BuildTables(index)
	return s.store(raw, cleaned, core.BuildGeneTable(index))
}

// 优先使用seed文件中的gene，否则列举gene分类
func (s *Server) loadGenes(ctx context.Context) ([]string, error) {
	var (
		genes []string
		err   error
	)

	if s.config.Core.SeedFilePath != "" {
		genes, err = core.ReadSeedFile(s.config.Core.SeedFilePath)
		if err != nil {
			return nil, fmt.Errorf("fail to read seed file, err: %w", err)
		}
	} else {
		genes, err = core.ListGenes(ctx, s.site, s.config.MediaWiki.GeneCategory)
		if err != nil {
			return nil, err
		}
	}
	s.logger.WithField("genes", len(genes)).Info("gene names loaded")

	if s.config.Core.KeggFilePath == "" {
		return genes, nil
	}

	ids, err := core.LoadKeggIdentifiers(s.config.Core.KeggFilePath)
	if err != nil {
		return nil, fmt.Errorf("fail to load kegg file, err: %w", err)
	}
	kegg := core.KeggGenes(genes, ids)
	s.logger.WithField("kegg_identifiers", len(ids)).WithField(
		"genes_in_kegg", len(kegg)).Info("kegg identifiers loaded")

	if s.config.Core.KeggOnly {
		return kegg, nil
	}
	return genes, nil
}

func (s *Server) store(raw []entity.OutputRow, cleaned []entity.OutputRow, genes []entity.OutputRow) error {
	if err := s.file.Store(enum.TextKindRaw, raw); err != nil {
		return fmt.Errorf("fail to store raw table, err: %w", err)
	}
	if err := s.file.Store(enum.TextKindCleaned, cleaned); err != nil {
		return fmt.Errorf("fail to store cleaned table, err: %w", err)
	}
	if err := s.file.Store(enum.TextKindConcatenated, genes); err != nil {
		return fmt.Errorf("fail to store gene table, err: %w", err)
	}
	s.logger.WithField("raw_rows", len(raw)).WithField(
		"cleaned_rows", len(cleaned)).WithField("gene_rows", len(genes)).WithField(
		"location", s.config.Storage.Location).Info("tables stored")

	if s.dbStorage == nil {
		return nil
	}

	t, err := s.dbStorage.NewTransaction()
	if err != nil {
		return fmt.Errorf("fail to start transaction, err: %w", err)
	}
	defer t.Close()

	if _, err = t.InsertRows(enum.TextKindRaw, raw); err != nil {
		return fmt.Errorf("fail to insert raw rows, err: %w", err)
	}
	if _, err = t.InsertRows(enum.TextKindCleaned, cleaned); err != nil {
		return fmt.Errorf("fail to insert cleaned rows, err: %w", err)
	}
	if _, err = t.InsertRows(enum.TextKindConcatenated, genes); err != nil {
		return fmt.Errorf("fail to insert gene rows, err: %w", err)
	}
	return t.Commit()
}

func (s *Server) wait() error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
		s.logger.Warn("interrupt signal, scraping gonna stop")
		s.cancel()
		return <-s.finished
	case err := <-s.finished:
		if err != nil {
			s.logger.WithError(err).Error("scraping failed")
			return err
		}
		s.logger.Info("task finished")
		return nil
	}
}

func (s *Server) Stop() {
	s.cancel()
	if s.dbStorage != nil {
		s.dbStorage.Close()
	}
}
