package entity

// 一个gene下所有snp页面的原始文本，按首次出现顺序保存
// 同名snp重复写入时后写覆盖，但位置保持首次出现的位置
type SnpTexts struct {
	names []string
	texts map[string]string
}

func NewSnpTexts() *SnpTexts {
	return &SnpTexts{
		texts: make(map[string]string),
	}
}

func (s *SnpTexts) Set(snp string, text string) {
	if _, exists := s.texts[snp]; !exists {
		s.names = append(s.names, snp)
	}
	s.texts[snp] = text
}

func (s *SnpTexts) Get(snp string) (string, bool) {
	text, ok := s.texts[snp]
	return text, ok
}

func (s *SnpTexts) Len() int {
	return len(s.names)
}

func (s *SnpTexts) Names() []string {
	return append([]string(nil), s.names...)
}

// Each 按插入顺序遍历
func (s *SnpTexts) Each(fn func(snp string, text string)) {
	for _, name := range s.names {
		fn(name, s.texts[name])
	}
}

// 一次抓取过程中 gene -> (snp -> raw text) 的完整索引
// 只在抓取循环中插入，输出前已全部在内存中
type GeneSnpIndex struct {
	genes []string
	snps  map[string]*SnpTexts
}

func NewGeneSnpIndex() *GeneSnpIndex {
	return &GeneSnpIndex{
		snps: make(map[string]*SnpTexts),
	}
}

func (g *GeneSnpIndex) Insert(gene string, snps *SnpTexts) {
	if snps == nil {
		snps = NewSnpTexts()
	}
	if _, exists := g.snps[gene]; !exists {
		g.genes = append(g.genes, gene)
	}
	g.snps[gene] = snps
}

func (g *GeneSnpIndex) Get(gene string) (*SnpTexts, bool) {
	snps, ok := g.snps[gene]
	return snps, ok
}

func (g *GeneSnpIndex) Len() int {
	return len(g.genes)
}

func (g *GeneSnpIndex) Genes() []string {
	return append([]string(nil), g.genes...)
}

func (g *GeneSnpIndex) Each(fn func(gene string, snps *SnpTexts)) {
	for _, gene := range g.genes {
		fn(gene, g.snps[gene])
	}
}

// 输出表中的一行，Text为原始文本或清洗后文本，取决于所在的表
type OutputRow struct {
	Gene string
	Snp  string
	Text string
}
