// Package textgen wraps a Markov chain as the statistical text model behind
// the mashup generator: incremental training from multiple text sources,
// bounded sentence generation, and an explicit clear for ephemeral use.
package textgen

import (
	"strings"

	"github.com/mb-14/gomarkov"
)

const (
	chainOrder   = 1
	maxTokens    = 30
	genAttempts  = 5
	sentenceEnds = ".!?"
)

// Model is the black-box text capability: train on arbitrary natural-language
// text, generate n sentences on demand, and release the trained state.
// Generated content is non-deterministic by design.
type Model interface {
	Train(text string)
	Sentences(n int) []string
	Clear()
}

type chainModel struct {
	chain *gomarkov.Chain
}

// NewEphemeralModel returns an empty model meant to live for one request.
// Callers must Clear it on every exit path.
func NewEphemeralModel() Model {
	return &chainModel{chain: gomarkov.NewChain(chainOrder)}
}

func (m *chainModel) Train(text string) {
	for _, sentence := range splitSentences(text) {
		tokens := strings.Fields(sentence)
		if len(tokens) < 2 {
			continue
		}
		m.chain.Add(tokens)
	}
}

func (m *chainModel) Sentences(n int) []string {
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var sentence string
		for attempt := 0; attempt < genAttempts && sentence == ""; attempt++ {
			sentence = m.generate()
		}
		sentences = append(sentences, sentence)
	}
	return sentences
}

func (m *chainModel) Clear() {
	m.chain = gomarkov.NewChain(chainOrder)
}

// generate walks the chain from the start token until the end token or the
// length bound. An untrained chain yields an empty string.
func (m *chainModel) generate() string {
	tokens := []string{gomarkov.StartToken}
	for len(tokens) < maxTokens {
		next, err := m.chain.Generate(tokens[len(tokens)-1:])
		if err != nil || next == gomarkov.EndToken {
			break
		}
		tokens = append(tokens, next)
	}
	return strings.Join(tokens[1:], " ")
}

// splitSentences breaks text on line boundaries and terminal punctuation.
// Lyrics mostly delimit phrases by line, prose by punctuation.
func splitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		var current strings.Builder
		for _, r := range line {
			current.WriteRune(r)
			if strings.ContainsRune(sentenceEnds, r) {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
