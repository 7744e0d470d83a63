// Package frequency loads word frequency lists (word,count) used for
// information-content scoring.
package frequency

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// Table holds lower-cased word counts and their total. Read-only after loading.
type Table struct {
	counts map[string]int64
	total  int64
}

// Load reads a frequency list from filePath. Files ending in .tsv are
// tab-separated, everything else is comma-separated.
func Load(filePath string) (*Table, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(filePath), ".tsv") {
		comma = '\t'
	}

	t, err := Parse(f, comma)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(filePath), err)
	}
	return t, nil
}

// Parse reads word,count rows from r. A first row whose count column is not
// a number is treated as a header. Repeated words are summed.
func Parse(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.Comment = '#'

	t := &Table{counts: make(map[string]int64)}
	row := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row++

		if len(record) < 2 {
			continue
		}

		word := domain.NormalizeText(record[0])
		if word == "" {
			continue
		}

		count, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: invalid count %q: %w", row, record[1], err)
		}
		if count < 0 {
			return nil, fmt.Errorf("row %d: negative count %d", row, count)
		}

		t.counts[word] += count
		t.total += count
	}

	return t, nil
}

// Frequency returns the count for word and whether it was seen at all.
func (t *Table) Frequency(word string) (int64, bool) {
	if t == nil {
		return 0, false
	}
	c, ok := t.counts[domain.NormalizeText(word)]
	return c, ok
}

// Total returns the sum of all counts.
func (t *Table) Total() int64 {
	if t == nil {
		return 0
	}
	return t.total
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}
