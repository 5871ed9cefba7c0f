package tfidf

import (
	"math"
	"testing"

	"github.com/teatak/mmseg/freq"
)

func tableOf(words ...string) *freq.Table {
	t := freq.NewTable()
	for _, w := range words {
		t.Record(w)
	}
	return t
}

func TestCorpus_IDF(t *testing.T) {
	c := NewCorpus()
	c.AddDocument("a", tableOf("长江", "大桥"))
	c.AddDocument("b", tableOf("长江"))
	c.AddDocument("c", tableOf("南京"))

	idf := c.IDF()

	// 长江 in 2 of 3 docs: ln(3/(2+1)) = 0.
	if got := idf["长江"]; math.Abs(got) > 1e-9 {
		t.Errorf("idf(长江) = %v, want 0", got)
	}
	// 大桥 in 1 of 3 docs: ln(3/2).
	want := math.Log(1.5)
	if got := idf["大桥"]; math.Abs(got-want) > 1e-9 {
		t.Errorf("idf(大桥) = %v, want %v", got, want)
	}
}

func TestCorpus_TopTerms(t *testing.T) {
	c := NewCorpus()
	c.AddDocument("a", tableOf("大桥", "大桥", "长江"))
	c.AddDocument("b", tableOf("长江"))

	got := c.TopTerms(0, 1)
	if len(got) != 1 || got[0].Word != "大桥" {
		t.Errorf("TopTerms(0, 1) = %v, want the document-specific term 大桥", got)
	}

	// 长江 appears in both docs: idf = ln(2/3) < 0, so it must rank
	// below the doc-specific term.
	all := c.TopTerms(0, 10)
	if len(all) != 2 || all[1].Word != "长江" {
		t.Errorf("TopTerms(0, 10) = %v, want 长江 ranked last", all)
	}
}

func TestCorpus_Combined(t *testing.T) {
	c := NewCorpus()
	c.AddDocument("a", tableOf("大桥", "大桥"))
	c.AddDocument("b", tableOf("南京", "大桥"))

	got := c.Combined(10)
	if len(got) != 2 {
		t.Fatalf("Combined(10) returned %d terms, want 2", len(got))
	}

	// 大桥: count 3 across docs, idf = ln(2/3); 南京: count 1, idf = ln(2/2) = 0.
	wantTop := 3 * math.Log(2.0/3.0)
	var topWeight float64
	for _, term := range got {
		if term.Word == "大桥" {
			topWeight = term.Weight
		}
	}
	if math.Abs(topWeight-wantTop) > 1e-9 {
		t.Errorf("combined weight(大桥) = %v, want %v", topWeight, wantTop)
	}
}
