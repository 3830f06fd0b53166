package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewyi/snpcrawler/src/entity"
)

func TestBuildTables(t *testing.T) {
	index := entity.NewGeneSnpIndex()

	apoe := entity.NewSnpTexts()
	apoe.Set("Rs429358", "{{Rsnum|rsid=429358}} one of two SNPs, see [[APOE]]")
	apoe.Set("Rs7412", "")
	apoe.Set("Rs1", "{{only a template}}")
	index.Insert("APOE", apoe)

	index.Insert("EMPTY", entity.NewSnpTexts())

	mthfr := entity.NewSnpTexts()
	mthfr.Set("Rs1801133", "C677T \"common\"")
	index.Insert("MTHFR", mthfr)

	raw, cleaned := BuildTables(index)

	assert.Equal(t, []entity.OutputRow{
		{Gene: "APOE", Snp: "Rs429358", Text: "{{Rsnum|rsid=429358}} one of two SNPs, see [[APOE]]"},
		{Gene: "APOE", Snp: "Rs1", Text: "{{only a template}}"},
		{Gene: "MTHFR", Snp: "Rs1801133", Text: "C677T \"common\""},
	}, raw)

	assert.Equal(t, []entity.OutputRow{
		{Gene: "APOE", Snp: "Rs429358", Text: "one of two SNPs, see APOE"},
		{Gene: "MTHFR", Snp: "Rs1801133", Text: "C677T \"common\""},
	}, cleaned)
}

func TestBuildGeneTable(t *testing.T) {
	index := entity.NewGeneSnpIndex()

	apoe := entity.NewSnpTexts()
	apoe.Set("Rs429358", "{{Rsnum|rsid=429358}}one of two")
	apoe.Set("Rs7412", "")
	apoe.Set("Rs1", "see [[APOE]]")
	index.Insert("APOE", apoe)
	index.Insert("LONELY", nil)

	rows := BuildGeneTable(index)
	// 先拼接再清洗，空文本也参与拼接
	assert.Equal(t, []entity.OutputRow{
		{Gene: "APOE", Text: "one of two  see APOE"},
		{Gene: "LONELY", Text: ""},
	}, rows)
}

func TestBuildTablesEmptyIndex(t *testing.T) {
	raw, cleaned := BuildTables(entity.NewGeneSnpIndex())
	assert.Empty(t, raw)
	assert.Empty(t, cleaned)
	assert.Empty(t, BuildGeneTable(entity.NewGeneSnpIndex()))
}
