package router

import (
	"errors"

	"forge.capytal.company/capytal/dislate-relay/detector"
)

var (
	ErrTranslation = errors.New("translation failed")
	ErrSend        = errors.New("send failed")
	ErrNoRoute     = errors.New("detected language has no route")
)

// Kind tags a routing failure so callers can tell expected domain failures from
// unexpected faults.
type Kind int

const (
	KindUnknown Kind = iota
	KindDetection
	KindTranslation
	KindSend
)

func (k Kind) String() string {
	switch k {
	case KindDetection:
		return "detection"
	case KindTranslation:
		return "translation"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrSend):
		return KindSend
	case errors.Is(err, ErrTranslation):
		return KindTranslation
	case errors.Is(err, detector.ErrNoCandidates),
		errors.Is(err, detector.ErrUnsupportedLanguage),
		errors.Is(err, ErrNoRoute):
		return KindDetection
	default:
		return KindUnknown
	}
}

// Recoverable reports whether err is an expected domain failure, one that is
// reported to the error channel instead of being treated as a fault.
func Recoverable(err error) bool {
	return KindOf(err) == KindDetection
}
