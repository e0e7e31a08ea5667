package textsim

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrNotFitted is returned when vectorization is attempted before Fit.
	ErrNotFitted = errors.New("vectorizer not fitted")
	// ErrEmptyCorpus is returned when Fit receives zero documents.
	ErrEmptyCorpus = errors.New("cannot fit on empty corpus")
)

// Params bound the fitted vector space. Zero values fall back to the
// defaults used by the matching engine.
type Params struct {
	MaxFeatures int
	NgramMin    int
	NgramMax    int
	MinDF       int
	MaxDF       float64
}

func DefaultParams() Params {
	return Params{
		MaxFeatures: 5000,
		NgramMin:    1,
		NgramMax:    2,
		MinDF:       1,
		MaxDF:       0.95,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MaxFeatures <= 0 {
		p.MaxFeatures = d.MaxFeatures
	}
	if p.NgramMin <= 0 {
		p.NgramMin = d.NgramMin
	}
	if p.NgramMax < p.NgramMin {
		p.NgramMax = p.NgramMin
	}
	if p.MinDF <= 0 {
		p.MinDF = d.MinDF
	}
	if p.MaxDF <= 0 || p.MaxDF > 1 {
		p.MaxDF = d.MaxDF
	}
	return p
}

// Vector is a dense TF-IDF document vector in a fitted space. Vectors
// produced by Vectorize are L2-normalized.
type Vector []float64

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer builds a TF-IDF term-vector space over a corpus and projects
// documents into it. A vectorizer is fitted once per ranking batch; the
// vocabulary is corpus-specific, so instances are never shared across
// batches.
type Vectorizer struct {
	params Params

	vocab  map[string]int
	idf    []float64
	fitted bool
}

func NewVectorizer(params Params) *Vectorizer {
	return &Vectorizer{params: params.withDefaults()}
}

func (v *Vectorizer) IsFitted() bool {
	return v != nil && v.fitted
}

// Fit builds the vocabulary and IDF weights from the corpus. Terms are
// unigrams and bigrams of stopword-filtered word tokens, pruned by
// document-frequency bounds and capped at MaxFeatures by corpus frequency.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	total := make(map[string]int)
	for _, doc := range docs {
		counts := v.termCounts(doc)
		for term, c := range counts {
			df[term]++
			total[term] += c
		}
	}

	n := len(docs)
	maxDF := v.params.MaxDF * float64(n)
	terms := make([]string, 0, len(df))
	for term, d := range df {
		if d < v.params.MinDF {
			continue
		}
		if float64(d) > maxDF {
			continue
		}
		terms = append(terms, term)
	}

	if len(terms) > v.params.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.params.MaxFeatures]
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF, so terms present in every kept document still
		// carry a positive weight.
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	v.fitted = true
	return nil
}

// Vectorize projects a single document into the fitted space. Text with
// no in-vocabulary terms maps to the zero vector.
func (v *Vectorizer) Vectorize(text string) (Vector, error) {
	if !v.IsFitted() {
		return nil, ErrNotFitted
	}

	vec := make(Vector, len(v.idf))
	if strings.TrimSpace(text) == "" {
		return vec, nil
	}

	for term, c := range v.termCounts(text) {
		if i, ok := v.vocab[term]; ok {
			vec[i] = float64(c) * v.idf[i]
		}
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// Similarity is the cosine similarity between two vectors, clamped to
// [0,1]. A zero vector on either side yields 0.
func (v *Vectorizer) Similarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// FeatureNames returns the fitted vocabulary in index order.
func (v *Vectorizer) FeatureNames() []string {
	if !v.IsFitted() {
		return nil
	}
	out := make([]string, len(v.idf))
	for term, i := range v.vocab {
		out[i] = term
	}
	return out
}

func (v *Vectorizer) termCounts(doc string) map[string]int {
	tokens := tokenize(doc)
	counts := make(map[string]int)
	for n := v.params.NgramMin; n <= v.params.NgramMax; n++ {
		if n <= 0 || n > len(tokens) {
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return counts
}

func tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}
