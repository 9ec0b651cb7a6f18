package translator

import (
	"fmt"
	"strings"
)

// Language is a two-letter ISO 639-1 code, always lower case.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
)

func (l Language) String() string {
	return string(l)
}

func ParseLanguage(code string) (Language, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if len(c) != 2 {
		return "", fmt.Errorf("Invalid language code %q", code)
	}
	for _, r := range c {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("Invalid language code %q", code)
		}
	}
	return Language(c), nil
}

func ParseLanguages(codes string) ([]Language, error) {
	var ls []Language
	for _, c := range strings.Split(codes, ",") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		l, err := ParseLanguage(c)
		if err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}
	return ls, nil
}
