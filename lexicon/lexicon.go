package lexicon

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// MaxTokenBytes caps candidate length during matching: 7 CJK characters
// at 3 bytes each. Dictionary entries longer than this can never match.
const MaxTokenBytes = 21

// Lexicon holds the dictionary word set and the stopword set. Both are
// membership-only; lookup is exact byte equality.
type Lexicon struct {
	words     map[string]struct{}
	stopwords map[string]struct{}
	maxBytes  int
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		words:     make(map[string]struct{}),
		stopwords: make(map[string]struct{}),
	}
}

// AddWord inserts a dictionary word. Duplicate inserts are idempotent.
func (l *Lexicon) AddWord(word string) {
	if word == "" {
		return
	}
	l.words[word] = struct{}{}
	if len(word) > l.maxBytes {
		l.maxBytes = len(word)
	}
}

// AddStopword inserts a stopword.
func (l *Lexicon) AddStopword(word string) {
	if word == "" {
		return
	}
	l.stopwords[word] = struct{}{}
}

// LoadDictionary loads dictionary words from a file, one entry per line.
// Lines may carry a trailing frequency column, which is ignored.
func (l *Lexicon) LoadDictionary(path string) error {
	return l.loadLines(path, l.AddWord)
}

// LoadStopwords loads stopwords from a file, one entry per line.
func (l *Lexicon) LoadStopwords(path string) error {
	return l.loadLines(path, l.AddStopword)
}

func (l *Lexicon) loadLines(path string, add func(string)) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		add(strings.Fields(line)[0])
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

// Contains checks if a word is in the dictionary.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// IsStopword checks if a word is in the stopword set.
func (l *Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[word]
	return ok
}

// MaxWordBytes returns the longest candidate length worth probing,
// capped at MaxTokenBytes.
func (l *Lexicon) MaxWordBytes() int {
	if l.maxBytes > MaxTokenBytes {
		return MaxTokenBytes
	}
	return l.maxBytes
}

// WordCount returns the number of distinct dictionary words.
func (l *Lexicon) WordCount() int {
	return len(l.words)
}

// StopwordCount returns the number of distinct stopwords.
func (l *Lexicon) StopwordCount() int {
	return len(l.stopwords)
}
