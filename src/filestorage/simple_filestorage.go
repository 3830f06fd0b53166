package filestorage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrewyi/snpcrawler/src/entity"
	"github.com/andrewyi/snpcrawler/src/enum"
)

type SimpleFileStorage struct {
	location string
}

func NewSimpleFileStorage(location string) FileStorage {
	return &SimpleFileStorage{
		location: location,
	}
}

// 文件名由kind决定，已存在的文件会被覆盖
func FileName(kind string) (string, error) {
	switch kind {
	case enum.TextKindRaw:
		return enum.RawTableFile, nil
	case enum.TextKindCleaned:
		return enum.CleanedTableFile, nil
	case enum.TextKindConcatenated:
		return enum.GeneTableFile, nil
	}
	return "", fmt.Errorf("unknown text kind: %s", kind)
}

func (s *SimpleFileStorage) Store(kind string, rows []entity.OutputRow) error {
	fileName, err := FileName(kind)
	if err != nil {
		return err
	}

	err = os.MkdirAll(s.location, os.ModePerm)
	if err != nil {
		if os.IsExist(err) {
			err = nil // ignore
		} else {
			return err
		}
	}

	f, err := os.Create(filepath.Join(s.location, fileName))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if kind == enum.TextKindConcatenated {
		err = writeGeneTable(w, rows)
	} else {
		err = writeSnpTable(w, rows)
	}
	if err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// 空文本行不写入
func writeSnpTable(w *csv.Writer, rows []entity.OutputRow) error {
	if err := w.Write(enum.TableColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if row.Text == "" {
			continue
		}
		if err := w.Write([]string{row.Gene, row.Snp, row.Text}); err != nil {
			return err
		}
	}
	return nil
}

// 每个gene一行，description为空也写入
func writeGeneTable(w *csv.Writer, rows []entity.OutputRow) error {
	if err := w.Write(enum.GeneTableColumns); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{enum.GeneTableSpecies, row.Gene, row.Text, "", "", enum.GeneTableSource}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
