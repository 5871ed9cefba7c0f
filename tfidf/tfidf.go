package tfidf

import (
	"math"
	"sort"

	"github.com/teatak/mmseg/freq"
)

// Term is a token weighted by tf-idf within one document.
type Term struct {
	Word   string
	Weight float64
}

// Document pairs a name with its term-frequency table.
type Document struct {
	Name string
	TF   *freq.Table
}

// Corpus scores terms across a set of documents: term frequency is the
// raw in-document count, inverse document frequency is
// ln(docs / (docFreq+1)).
type Corpus struct {
	docs []Document
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// AddDocument appends a document with its term-frequency table.
func (c *Corpus) AddDocument(name string, tf *freq.Table) {
	c.docs = append(c.docs, Document{Name: name, TF: tf})
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Documents returns the documents in insertion order.
func (c *Corpus) Documents() []Document {
	return c.docs
}

// IDF computes the inverse document frequency for every term in the
// corpus vocabulary.
func (c *Corpus) IDF() map[string]float64 {
	docFreq := make(map[string]int)
	for _, doc := range c.docs {
		for _, e := range doc.TF.Entries() {
			docFreq[e.Word]++
		}
	}

	idf := make(map[string]float64, len(docFreq))
	total := float64(len(c.docs))
	for word, df := range docFreq {
		idf[word] = math.Log(total / float64(df+1))
	}
	return idf
}

// TopTerms returns the k highest tf-idf terms of document i, weight
// descending with first-seen order breaking ties.
func (c *Corpus) TopTerms(i, k int) []Term {
	idf := c.IDF()
	return topTerms(c.docs[i].TF, idf, k)
}

// Combined sums tf-idf weights over all documents into one ranking of
// the whole corpus, k terms long.
func (c *Corpus) Combined(k int) []Term {
	idf := c.IDF()

	combined := freq.NewTable()
	weights := make(map[string]float64)
	for _, doc := range c.docs {
		combined.Merge(doc.TF)
		for _, e := range doc.TF.Entries() {
			weights[e.Word] += float64(e.Count) * idf[e.Word]
		}
	}

	terms := make([]Term, 0, combined.Distinct())
	for _, e := range combined.Entries() {
		terms = append(terms, Term{Word: e.Word, Weight: weights[e.Word]})
	}
	sort.SliceStable(terms, func(a, b int) bool {
		return terms[a].Weight > terms[b].Weight
	})
	if k < len(terms) {
		terms = terms[:k]
	}
	return terms
}

func topTerms(tf *freq.Table, idf map[string]float64, k int) []Term {
	terms := make([]Term, 0, tf.Distinct())
	for _, e := range tf.Entries() {
		terms = append(terms, Term{Word: e.Word, Weight: float64(e.Count) * idf[e.Word]})
	}
	sort.SliceStable(terms, func(a, b int) bool {
		return terms[a].Weight > terms[b].Weight
	})
	if k < len(terms) {
		terms = terms[:k]
	}
	return terms
}
