// 数据库表，各输出表合并为一张，以kind区分
// concatenated的行snp为空
package schema

import (
	"time"
)

type SnpText struct {
	ID        uint64    `xorm:"bigint pk autoincr 'id'"`
	Gene      string    `xorm:"varchar(256) notnull index(idx_gene_snp) 'gene'"`
	Snp       string    `xorm:"varchar(256) notnull index(idx_gene_snp) 'snp'"`
	Kind      string    `xorm:"varchar(16) notnull 'kind'"`
	Text      string    `xorm:"text 'text'"`
	CreatedAt time.Time `xorm:"created notnull 'created_at'"`
}

func (s *SnpText) TableName() string {
	return "snp_texts"
}
