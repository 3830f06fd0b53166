package filestorage

import (
	"github.com/andrewyi/snpcrawler/src/entity"
)

type FileStorage interface {
	Store(kind string, rows []entity.OutputRow) error
}
