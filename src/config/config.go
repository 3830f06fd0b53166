package config

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
	} `mapstructure:"log"`

	Core struct {
		GeneLimit         int    `mapstructure:"gene_limit"`
		PauseAfter        int    `mapstructure:"pause_after"`
		PauseSeconds      uint32 `mapstructure:"pause_seconds"`
		SeedFilePath      string `mapstructure:"seed_file_path"`
		KeggFilePath      string `mapstructure:"kegg_file_path"`
		KeggOnly          bool   `mapstructure:"kegg_only"`
		IsolateGeneErrors bool   `mapstructure:"isolate_gene_errors"`
	} `mapstructure:"core"`

	MediaWiki struct {
		URL               string  `mapstructure:"url"`
		GeneCategory      string  `mapstructure:"gene_category"`
		SnpCategory       string  `mapstructure:"snp_category"`
		LinkSource        string  `mapstructure:"link_source"`
		Timeout           uint32  `mapstructure:"timeout"`
		Retry             uint32  `mapstructure:"retry"`
		RequestsPerSecond float64 `mapstructure:"requests_per_second"`
		UserAgent         string  `mapstructure:"user_agent"`
	} `mapstructure:"mediawiki"`

	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`

	Storage struct {
		Location string `mapstructure:"location"`
	} `mapstructure:"storage"`
}

// 未在配置文件中出现的key使用这里的默认值，同时也让环境变量覆盖对这些key生效
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.context": false,
		"log.level":   "info",

		"core.gene_limit":          5000,
		"core.pause_after":         50,
		"core.pause_seconds":       10,
		"core.seed_file_path":      "",
		"core.kegg_file_path":      "",
		"core.kegg_only":           false,
		"core.isolate_gene_errors": false,

		"mediawiki.url":                 "https://bots.snpedia.com/api.php",
		"mediawiki.gene_category":       "Is_a_gene",
		"mediawiki.snp_category":        "Category:Is a snp",
		"mediawiki.link_source":         "api",
		"mediawiki.timeout":             30,
		"mediawiki.retry":               0,
		"mediawiki.requests_per_second": 0,
		"mediawiki.user_agent":          "snpcrawler/0.1.0",

		"database.url": "",

		"storage.location": "data",
	}
}
