package detector

import (
	"context"
	"testing"

	"forge.capytal.company/capytal/dislate-relay/translator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLingua_Validation(t *testing.T) {
	_, err := NewLingua([]translator.Language{translator.EN}, false)
	require.ErrorIs(t, err, ErrTooFewLanguages)

	_, err = NewLingua([]translator.Language{translator.EN, "xx"}, false)
	require.Error(t, err)
}

func TestLingua_Detect(t *testing.T) {
	l, err := NewLingua([]translator.Language{translator.EN, translator.RU, "fr"}, false)
	require.NoError(t, err)

	tests := []struct {
		text string
		want string
	}{
		{"The weather is lovely today and we are going for a walk in the park.", "en"},
		{"Сегодня прекрасная погода, и мы идём гулять в парк.", "ru"},
		{"Il fait très beau aujourd'hui et nous allons nous promener dans le parc.", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cs, err := l.Detect(context.Background(), tt.text)
			require.NoError(t, err)
			require.NotEmpty(t, cs)

			c, err := HighestScoring(cs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Code)
			for _, c := range cs {
				assert.Positive(t, c.Score)
			}
		})
	}
}
