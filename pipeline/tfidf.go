package pipeline

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/teatak/mmseg/freq"
	"github.com/teatak/mmseg/tfidf"
	"github.com/teatak/mmseg/tokenizer"
)

// TFIDFConfig names the inputs and outputs of a tf-idf run over a
// directory of text documents.
type TFIDFConfig struct {
	DictPath      string
	StopwordsPath string
	InputDir      string
	ReportPath    string
	TopK          int
	Encoding      string
}

// RunTFIDF builds a per-document term-frequency table for every .txt
// file under the input directory and writes a tf-idf report. Tokens of
// a single character are skipped: they dominate raw counts without
// discriminating between documents.
func RunTFIDF(cfg TFIDFConfig) (*tfidf.Corpus, error) {
	lex, err := loadLexicon(cfg.DictPath, cfg.StopwordsPath)
	if err != nil {
		return nil, err
	}
	tok := tokenizer.NewTokenizer(lex)

	paths, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.txt"))
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", cfg.InputDir)
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no .txt documents under %s", cfg.InputDir)
	}
	sort.Strings(paths)

	corpus := tfidf.NewCorpus()
	for _, path := range paths {
		table, err := documentTable(tok, path, cfg.Encoding)
		if err != nil {
			return nil, err
		}
		corpus.AddDocument(filepath.Base(path), table)
		log.Printf("Scored %s (%d distinct terms)", filepath.Base(path), table.Distinct())
	}

	reportFile, err := os.Create(cfg.ReportPath)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", cfg.ReportPath)
	}
	defer reportFile.Close()
	if err := WriteTFIDFReport(reportFile, corpus, cfg.TopK); err != nil {
		return nil, errors.Wrapf(err, "write %s", cfg.ReportPath)
	}

	return corpus, nil
}

func documentTable(tok *tokenizer.Tokenizer, path, encodingName string) (*freq.Table, error) {
	in, err := openText(path, encodingName)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	table := freq.NewTable()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, t := range tok.Cut(scanner.Text()) {
			if utf8.RuneCountInString(t) > 1 {
				table.Record(t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return table, nil
}
