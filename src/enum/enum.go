package enum

const (
	// 输出表的文本种类
	// concatenated: 每个gene一行，所有snp原始文本以空格拼接后再清洗
	TextKindRaw          = "raw"
	TextKindCleaned      = "cleaned"
	TextKindConcatenated = "concatenated"

	// gene页面的外链获取方式
	// api: 通过prop=links获取
	// html: 渲染页面后从html中解析a标签
	LinkSourceAPI  = "api"
	LinkSourceHTML = "html"

	// 输出的csv文件名
	RawTableFile     = "snps_and_scraped_text.csv"
	CleanedTableFile = "snps_and_cleaned_text.csv"
	GeneTableFile    = "dataset_for_oats.csv"

	// 按gene拼接的表中固定的物种与来源
	GeneTableSpecies = "hsa"
	GeneTableSource  = "SNPedia"

	// kegg通路文件中存放基因标识的列，多个标识以|分隔
	KeggGeneIdentifiersColumn = "gene_identifiers"
	KeggIdentifierSeparator   = "|"
)

var TableColumns = []string{"gene", "snp", "text"}

var GeneTableColumns = []string{"species", "gene_names", "description", "gene_synonyms", "term_ids", "sources"}
