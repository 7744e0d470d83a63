package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// row is the exported shape of one record.
type row struct {
	Theme    string `json:"theme_word"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func rows(records []domain.PunRecord) []row {
	out := make([]row, len(records))
	for i, r := range records {
		out[i] = row{Theme: r.Theme, Question: r.Question, Answer: r.Answer}
	}
	return out
}

var csvHeader = []string{"theme_word", "question", "answer"}

// WriteCSV writes a header row and one row per record.
func WriteCSV(w io.Writer, records []domain.PunRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows(records) {
		if err := cw.Write([]string{r.Theme, r.Question, r.Answer}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []domain.PunRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows(records)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteText writes a numbered, human-readable report.
func WriteText(w io.Writer, records []domain.PunRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "PUN GENERATOR DATASET\n%s\n\n", strings.Repeat("=", 50))
	for i, r := range records {
		fmt.Fprintf(bw, "%d. Theme: %s\n", i+1, r.Theme)
		fmt.Fprintf(bw, "   Q: %s\n", r.Question)
		fmt.Fprintf(bw, "   A: %s\n\n", r.Answer)
	}
	return bw.Flush()
}
