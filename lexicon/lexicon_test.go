package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "lexicon*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

func TestLexicon_LoadDictionary(t *testing.T) {
	path := writeTemp(t, "自然\n语言\n\n处理\n自然\n长江大桥 100\n")

	lex := New()
	if err := lex.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary() error = %v", err)
	}

	if lex.WordCount() != 4 {
		t.Errorf("WordCount() = %d, want 4 (blank and duplicate lines skipped)", lex.WordCount())
	}
	if !lex.Contains("自然") {
		t.Errorf("lexicon should contain '自然'")
	}
	if !lex.Contains("长江大桥") {
		t.Errorf("lexicon should contain '长江大桥' (frequency column stripped)")
	}
	if lex.Contains("不在") {
		t.Errorf("lexicon should not contain '不在'")
	}
	if lex.MaxWordBytes() != 12 { // 长江大桥 is 4 characters
		t.Errorf("MaxWordBytes() = %d, want 12", lex.MaxWordBytes())
	}
}

func TestLexicon_LoadStopwords(t *testing.T) {
	path := writeTemp(t, "的\n了\n")

	lex := New()
	if err := lex.LoadStopwords(path); err != nil {
		t.Fatalf("LoadStopwords() error = %v", err)
	}
	if !lex.IsStopword("的") {
		t.Errorf("'的' should be a stopword")
	}
	if lex.IsStopword("自然") {
		t.Errorf("'自然' should not be a stopword")
	}
	if lex.StopwordCount() != 2 {
		t.Errorf("StopwordCount() = %d, want 2", lex.StopwordCount())
	}
}

func TestLexicon_MaxWordBytesCap(t *testing.T) {
	lex := New()
	lex.AddWord("一二三四五六七八九十") // 10 characters, 30 bytes
	if lex.MaxWordBytes() != MaxTokenBytes {
		t.Errorf("MaxWordBytes() = %d, want cap %d", lex.MaxWordBytes(), MaxTokenBytes)
	}
}

func TestCleanDictionary(t *testing.T) {
	in := writeTemp(t, "自然\n你，好\n一二三四五六七八\n语言\n自然\n\n")
	out := filepath.Join(t.TempDir(), "cleaned.txt")

	res, err := CleanDictionary(in, out)
	if err != nil {
		t.Fatalf("CleanDictionary() error = %v", err)
	}
	if res.Kept != 2 {
		t.Errorf("Kept = %d, want 2", res.Kept)
	}
	if res.Dropped != 3 {
		t.Errorf("Dropped = %d, want 3 (punctuated, overlong, duplicate)", res.Dropped)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(string(data))
	if got != "自然\n语言" {
		t.Errorf("cleaned output = %q, want first-seen order 自然, 语言", got)
	}
}
