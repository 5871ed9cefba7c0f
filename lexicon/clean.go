package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/teatak/mmseg/util"
)

// maxWordRunes is the longest entry the matcher can ever reach:
// MaxTokenBytes / 3 bytes per CJK character.
const maxWordRunes = 7

// CleanResult summarizes a CleanDictionary run.
type CleanResult struct {
	Kept    int
	Dropped int
}

// CleanDictionary prepares a raw word list for maximum-forward matching.
// It drops blank lines, entries containing punctuation, entries longer
// than maxWordRunes characters, and duplicates, preserving first-seen
// order of the survivors.
func CleanDictionary(inputPath, outputPath string) (CleanResult, error) {
	var res CleanResult

	file, err := os.Open(inputPath)
	if err != nil {
		return res, errors.Wrapf(err, "open %s", inputPath)
	}
	defer file.Close()

	seen := make(map[string]struct{})
	var kept []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word := strings.Fields(line)[0]
		if util.ContainsPunctuation(word) || len([]rune(word)) > maxWordRunes {
			res.Dropped++
			continue
		}
		if _, ok := seen[word]; ok {
			res.Dropped++
			continue
		}
		seen[word] = struct{}{}
		kept = append(kept, word)
	}
	if err := scanner.Err(); err != nil {
		return res, errors.Wrapf(err, "read %s", inputPath)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return res, errors.Wrapf(err, "create %s", outputPath)
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for _, w := range kept {
		fmt.Fprintln(writer, w)
	}
	if err := writer.Flush(); err != nil {
		return res, errors.Wrapf(err, "write %s", outputPath)
	}

	res.Kept = len(kept)
	return res, nil
}
