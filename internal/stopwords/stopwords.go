package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kljensen/snowball/english"
)

// Set is an immutable stop list. It is safe for concurrent use.
type Set struct {
	source   string
	words    map[string]struct{}
	snowball bool
}

// Contains reports whether token is a stopword. Tokens are expected to be
// normalized (lower-cased) already.
func (s *Set) Contains(token string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.words[token]; ok {
		return true
	}
	return s.snowball && isSnowballStop(token)
}

// isSnowballStop is swapped in tests to simulate a broken stop list.
var isSnowballStop = english.IsStopWord

// Source names the resource backing the set: snowball, builtin or file:<path>.
func (s *Set) Source() string { return s.source }

// Builtin returns the hard-coded fallback list.
func Builtin() *Set {
	return &Set{source: "builtin", words: builtinWords()}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process-wide stop list. The Snowball English list is
// probed once; if it does not behave, the builtin list is used for the
// lifetime of the process.
func Default() *Set {
	defaultOnce.Do(func() {
		if err := probeSnowball(); err != nil {
			defaultSet = Builtin()
			return
		}
		defaultSet = &Set{source: "snowball", words: builtinWords(), snowball: true}
	})
	return defaultSet
}

func probeSnowball() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("snowball stop list panicked: %v", r)
		}
	}()
	for _, w := range []string{"the", "and", "of"} {
		if !isSnowballStop(w) {
			return fmt.Errorf("snowball stop list is missing %q", w)
		}
	}
	if isSnowballStop("summary") {
		return errors.New("snowball stop list matches content words")
	}
	return nil
}

// FromFile loads a newline-separated stop list. Blank lines and lines
// starting with # are ignored. Contraction fragments are always included.
func FromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stop list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("stop list %s is empty", path)
	}
	for _, w := range contractionFragments {
		words[w] = struct{}{}
	}
	return &Set{source: "file:" + path, words: words}, nil
}

func builtinWords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
		"i", "we", "you", "he", "she", "they", "have", "has", "had", "do", "does", "did", "not", "no",
	}
	m := make(map[string]struct{}, len(words)+len(contractionFragments))
	for _, w := range words {
		m[w] = struct{}{}
	}
	for _, w := range contractionFragments {
		m[w] = struct{}{}
	}
	return m
}

// contractionFragments are left behind by word splitting ("don't" -> "don", "t").
var contractionFragments = []string{"s", "t", "d", "ll", "m", "re", "ve", "n"}
