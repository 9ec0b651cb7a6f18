package detector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"forge.capytal.company/capytal/dislate-relay/translator"
)

var (
	ErrNoCandidates        = errors.New("no detected languages")
	ErrUnsupportedLanguage = errors.New("detected language not supported")
)

// Candidate is a single language guess. Score semantics belong to the Service.
type Candidate struct {
	Code  string
	Score float64
}

type Service interface {
	Detect(ctx context.Context, text string) ([]Candidate, error)
}

type Detector struct {
	service Service
	valid   []translator.Language
	logger  *slog.Logger
}

func New(service Service, valid []translator.Language, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{service, slices.Clone(valid), logger}
}

// DetectPrimaryLanguage returns the highest scoring candidate for text, as long as its
// language is one of the valid languages.
func (d *Detector) DetectPrimaryLanguage(ctx context.Context, text string) (Candidate, error) {
	cs, err := d.service.Detect(ctx, text)
	if err != nil {
		return Candidate{}, err
	}

	c, err := HighestScoring(cs)
	if err != nil {
		return Candidate{}, err
	}

	d.logger.Debug("Detected language",
		slog.String("code", c.Code),
		slog.Float64("score", c.Score),
		slog.Int("candidates", len(cs)),
	)

	if !slices.Contains(d.valid, translator.Language(c.Code)) {
		return Candidate{}, fmt.Errorf("%w: %q not in %s", ErrUnsupportedLanguage, c.Code, d.validString())
	}

	return c, nil
}

func (d *Detector) validString() string {
	s := make([]string, len(d.valid))
	for i, l := range d.valid {
		s[i] = l.String()
	}
	return strings.Join(s, ",")
}

// HighestScoring picks the candidate with the strictly highest score. On ties the
// earliest candidate wins.
func HighestScoring(cs []Candidate) (Candidate, error) {
	if len(cs) == 0 {
		return Candidate{}, ErrNoCandidates
	}

	h := cs[0]
	for _, c := range cs[1:] {
		if h.Score < c.Score {
			h = c
		}
	}
	return h, nil
}
