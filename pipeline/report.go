package pipeline

import (
	"fmt"
	"io"

	"github.com/teatak/mmseg/freq"
	"github.com/teatak/mmseg/tfidf"
)

// WriteReport writes the top-n frequency entries, one per line as
// "word => count (ratio)", where ratio is count over the cumulative
// record total, to 4 decimal places.
func WriteReport(w io.Writer, table *freq.Table, n int) error {
	total := table.Total()
	for _, e := range table.TopN(n) {
		ratio := 0.0
		if total > 0 {
			ratio = float64(e.Count) / float64(total)
		}
		if _, err := fmt.Fprintf(w, "%s => %d (%.4f)\n", e.Word, e.Count, ratio); err != nil {
			return err
		}
	}
	return nil
}

// WriteTFIDFReport writes one "=== name ===" section per document with
// its top-k terms as "term: weight", then an overall section combining
// every document.
func WriteTFIDFReport(w io.Writer, c *tfidf.Corpus, k int) error {
	for i, doc := range c.Documents() {
		if _, err := fmt.Fprintf(w, "=== %s ===\n", doc.Name); err != nil {
			return err
		}
		for _, term := range c.TopTerms(i, k) {
			if _, err := fmt.Fprintf(w, "%s: %.4f\n", term.Word, term.Weight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "=== overall ==="); err != nil {
		return err
	}
	for _, term := range c.Combined(k) {
		if _, err := fmt.Fprintf(w, "%s: %.4f\n", term.Word, term.Weight); err != nil {
			return err
		}
	}
	return nil
}
