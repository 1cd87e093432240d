// Package yaml loads site vocabularies from YAML files using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"io"
	"os"

	"github.com/fwojciec/captaingang"
	"gopkg.in/yaml.v3"
)

// VocabularyFile is the on-disk form of a vocabulary.
//
//	replace: false        # true discards the built-in vocabulary
//	labels: [Walnut Creek, Danville]
//	stopwords: [from]
//	site_words: [NorCal]
//	captain_labels: [NTRP]
type VocabularyFile struct {
	Replace       bool     `yaml:"replace"`
	Labels        []string `yaml:"labels"`
	Stopwords     []string `yaml:"stopwords"`
	SiteWords     []string `yaml:"site_words"`
	CaptainLabels []string `yaml:"captain_labels"`
}

// Vocabulary returns the words of the file as a vocabulary.
func (f *VocabularyFile) Vocabulary() *captaingang.Vocabulary {
	return &captaingang.Vocabulary{
		Labels:        captaingang.NewWordSet(f.Labels...),
		Stopwords:     captaingang.NewWordSet(f.Stopwords...),
		SiteWords:     captaingang.NewWordSet(f.SiteWords...),
		CaptainLabels: captaingang.NewWordSet(f.CaptainLabels...),
	}
}

// DecodeVocabulary reads a vocabulary file from r and applies it to the
// built-in vocabulary: words are added, unless replace is set.
func DecodeVocabulary(r io.Reader) (*captaingang.Vocabulary, error) {
	var f VocabularyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, captaingang.Errorf(captaingang.EINVALID, "invalid vocabulary: %v", err)
	}

	if f.Replace {
		return f.Vocabulary(), nil
	}
	v := captaingang.DefaultVocabulary()
	v.Merge(f.Vocabulary())
	return v, nil
}

// LoadVocabulary reads the vocabulary file at path.
// An empty path returns the built-in vocabulary.
func LoadVocabulary(path string) (*captaingang.Vocabulary, error) {
	if path == "" {
		return captaingang.DefaultVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, captaingang.Errorf(captaingang.ENOTFOUND, "vocabulary file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	return DecodeVocabulary(bytes.NewReader(data))
}
