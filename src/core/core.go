package core

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrewyi/snpcrawler/src/enum"
	"github.com/andrewyi/snpcrawler/src/util"
	"github.com/andrewyi/snpcrawler/src/wiki"
)

// ListGenes 列出gene分类下的全部页面名，顺序只决定抓取顺序
func ListGenes(ctx context.Context, site wiki.Site, category string) ([]string, error) {
	genes, err := site.CategoryMembers(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fail to list category %s, err: %w", category, err)
	}
	return genes, nil
}

// 从seed文件读取gene列表，每行一个，替代分类列举
func ReadSeedFile(seedFilePath string) ([]string, error) {
	file, err := os.Open(seedFilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	var genes []string

	for scanner.Scan() {
		gene := strings.TrimSpace(scanner.Text())
		if gene == "" {
			continue
		}
		genes = append(genes, gene)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return genes, nil
}

// LoadKeggIdentifiers 读取kegg通路csv中的gene_identifiers列，返回小写后的标识集合
func LoadKeggIdentifiers(keggFilePath string) (map[string]struct{}, error) {
	file, err := os.Open(keggFilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readKeggIdentifiers(file)
}

func readKeggIdentifiers(r io.Reader) (map[string]struct{}, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("fail to read kegg header, err: %w", err)
	}

	column := -1
	for i, name := range header {
		if strings.TrimSpace(name) == enum.KeggGeneIdentifiersColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("kegg file has no %s column", enum.KeggGeneIdentifiersColumn)
	}

	var rows []util.Nested[string]
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fail to read kegg record, err: %w", err)
		}
		if column >= len(record) {
			continue
		}
		rows = append(rows, util.Strings(strings.Split(record[column], enum.KeggIdentifierSeparator)))
	}

	ids := make(map[string]struct{})
	for _, id := range util.Flatten(rows...) {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}

// MarkKegg 标记每个gene是否出现在kegg中，比较时忽略大小写
func MarkKegg(genes []string, ids map[string]struct{}) map[string]bool {
	marks := make(map[string]bool, len(genes))
	for _, gene := range genes {
		_, ok := ids[strings.ToLower(gene)]
		marks[gene] = ok
	}
	return marks
}

// 只保留出现在kegg中的gene，顺序不变
func KeggGenes(genes []string, ids map[string]struct{}) []string {
	marks := MarkKegg(genes, ids)
	var kept []string
	for _, gene := range genes {
		if marks[gene] {
			kept = append(kept, gene)
		}
	}
	return kept
}
