package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockPhrase(t *testing.T) {
	for _, tc := range []struct {
		name     string
		hour     int
		minute   int
		expected string
	}{
		{
			name:     "full hour",
			hour:     4,
			minute:   0,
			expected: "It is four o'clock.",
		},
		{
			name:     "midnight",
			hour:     0,
			minute:   0,
			expected: "It is midnight.",
		},
		{
			name:     "rounds up to the next hour",
			hour:     4,
			minute:   58,
			expected: "It is five o'clock.",
		},
		{
			name:     "quarter to, 24h clock wrapped to 12h",
			hour:     16,
			minute:   47,
			expected: "It is quarter to five.",
		},
		{
			name:     "twenty past",
			hour:     16,
			minute:   20,
			expected: "It is twenty past four.",
		},
		{
			name:     "half past rounded down",
			hour:     4,
			minute:   29,
			expected: "It is half past four.",
		},
		{
			name:     "half past exactly",
			hour:     4,
			minute:   30,
			expected: "It is half past four.",
		},
		{
			name:     "half past rounded up",
			hour:     4,
			minute:   31,
			expected: "It is half past four.",
		},
		{
			name:     "twenty to",
			hour:     13,
			minute:   40,
			expected: "It is twenty to two.",
		},
		{
			name:     "quarter past",
			hour:     11,
			minute:   13,
			expected: "It is quarter past eleven.",
		},
		{
			name:     "noon hour",
			hour:     12,
			minute:   58,
			expected: "It is one o'clock.",
		},
		{
			name:     "rounds up across the day boundary",
			hour:     23,
			minute:   58,
			expected: "It is midnight.",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dt := time.Date(2017, 6, 3, tc.hour, tc.minute, 0, 0, time.Local)
			require.Equal(t, tc.expected, clockPhrase(dt))
		})
	}
}

func TestSpeakTime(t *testing.T) {
	said := ""
	testee := &SpeakTime{
		Say: func(text string) { said = text },
		Now: func() time.Time {
			return time.Date(2017, 6, 3, 16, 47, 12, 0, time.Local)
		},
	}

	require.NoError(t, testee.Run("what time is it"))
	require.Equal(t, "It is quarter to five.", said)
}
