package pipeline

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/teatak/mmseg/freq"
	"github.com/teatak/mmseg/lexicon"
	"github.com/teatak/mmseg/tokenizer"
)

// Config names the inputs and outputs of a segmentation run.
type Config struct {
	DictPath      string
	StopwordsPath string
	InputPath     string
	SegmentedPath string
	ReportPath    string
	TopN          int
	Encoding      string
}

// Result carries what a run produced beyond its output files.
type Result struct {
	Lines int
	Table *freq.Table
}

// Run segments the input corpus line by line: emitted tokens are written
// to the segmented output as [tok][tok]... per line and recorded in the
// frequency table, then the top-N report is written.
func Run(cfg Config) (*Result, error) {
	lex, err := loadLexicon(cfg.DictPath, cfg.StopwordsPath)
	if err != nil {
		return nil, err
	}
	tok := tokenizer.NewTokenizer(lex)

	in, err := openText(cfg.InputPath, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	segFile, err := os.Create(cfg.SegmentedPath)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", cfg.SegmentedPath)
	}
	defer segFile.Close()
	writer := bufio.NewWriter(segFile)

	table := freq.NewTable()
	lines := 0

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		for _, t := range tok.Cut(line) {
			fmt.Fprintf(writer, "[%s]", t)
			table.Record(t)
		}
		fmt.Fprintln(writer)
		lines++
		if lines%1000 == 0 {
			log.Printf("Processed %d lines...", lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", cfg.InputPath)
	}
	if err := writer.Flush(); err != nil {
		return nil, errors.Wrapf(err, "write %s", cfg.SegmentedPath)
	}

	log.Printf("Total words: %d", table.Total())

	if cfg.ReportPath != "" {
		reportFile, err := os.Create(cfg.ReportPath)
		if err != nil {
			return nil, errors.Wrapf(err, "create %s", cfg.ReportPath)
		}
		defer reportFile.Close()
		if err := WriteReport(reportFile, table, cfg.TopN); err != nil {
			return nil, errors.Wrapf(err, "write %s", cfg.ReportPath)
		}
	}

	return &Result{Lines: lines, Table: table}, nil
}

func loadLexicon(dictPath, stopwordsPath string) (*lexicon.Lexicon, error) {
	lex := lexicon.New()
	if err := lex.LoadDictionary(dictPath); err != nil {
		return nil, err
	}
	if stopwordsPath != "" {
		if err := lex.LoadStopwords(stopwordsPath); err != nil {
			return nil, err
		}
	}
	log.Printf("Loaded %d dictionary words, %d stopwords", lex.WordCount(), lex.StopwordCount())
	return lex, nil
}
