package core

import (
	"strings"

	"github.com/andrewyi/snpcrawler/src/cleaner"
	"github.com/andrewyi/snpcrawler/src/entity"
)

// BuildTables 按索引的插入顺序生成原始文本表与清洗后文本表，文本为空的行被过滤
func BuildTables(index *entity.GeneSnpIndex) (raw []entity.OutputRow, cleaned []entity.OutputRow) {
	index.Each(func(gene string, snps *entity.SnpTexts) {
		snps.Each(func(snp string, text string) {
			if text != "" {
				raw = append(raw, entity.OutputRow{Gene: gene, Snp: snp, Text: text})
			}
			if c := cleaner.Clean(text); c != "" {
				cleaned = append(cleaned, entity.OutputRow{Gene: gene, Snp: snp, Text: c})
			}
		})
	})
	return raw, cleaned
}

// BuildGeneTable 每个gene一行，snp原始文本按顺序以空格拼接后清洗
// 没有snp文本的gene也保留，description为空
func BuildGeneTable(index *entity.GeneSnpIndex) []entity.OutputRow {
	rows := make([]entity.OutputRow, 0, index.Len())
	index.Each(func(gene string, snps *entity.SnpTexts) {
		texts := make([]string, 0, snps.Len())
		snps.Each(func(snp string, text string) {
			texts = append(texts, text)
		})
		rows = append(rows, entity.OutputRow{
			Gene: gene,
			Text: cleaner.Clean(strings.Join(texts, " ")),
		})
	})
	return rows
}
