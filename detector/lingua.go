package detector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"forge.capytal.company/capytal/dislate-relay/translator"

	"github.com/pemistahl/lingua-go"
)

var ErrTooFewLanguages = errors.New("Language detection needs at least two languages")

// Lingua detects languages in-process with lingua-go, restricted to a fixed set of
// languages so only their models get loaded.
type Lingua struct {
	detector lingua.LanguageDetector
}

func NewLingua(languages []translator.Language, preload bool) (*Lingua, error) {
	byCode := make(map[translator.Language]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		byCode[translator.Language(code(l))] = l
	}

	ls := make([]lingua.Language, 0, len(languages))
	for _, l := range languages {
		ll, ok := byCode[l]
		if !ok {
			return nil, fmt.Errorf("Language %q is not supported by the detector", l)
		}
		ls = append(ls, ll)
	}
	if len(ls) < 2 {
		return nil, ErrTooFewLanguages
	}

	b := lingua.NewLanguageDetectorBuilder().FromLanguages(ls...)
	if preload {
		b = b.WithPreloadedLanguageModels()
	}

	return &Lingua{b.Build()}, nil
}

// Detect returns every language with a non-zero confidence, in lingua's order
// (descending confidence).
func (l *Lingua) Detect(_ context.Context, text string) ([]Candidate, error) {
	vs := l.detector.ComputeLanguageConfidenceValues(text)

	cs := make([]Candidate, 0, len(vs))
	for _, v := range vs {
		if v.Value() <= 0 {
			continue
		}
		cs = append(cs, Candidate{
			Code:  code(v.Language()),
			Score: v.Value(),
		})
	}
	return cs, nil
}

func code(l lingua.Language) string {
	return strings.ToLower(l.IsoCode639_1().String())
}
