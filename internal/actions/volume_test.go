package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVolumeControl(t *testing.T) {
	for _, tc := range []struct {
		name          string
		current       string
		change        int
		expectedSaid  string
		expectedLevel string
	}{
		{
			name:          "volume up",
			current:       "50\n",
			change:        10,
			expectedSaid:  "Volume at 60 %.",
			expectedLevel: "amixer -q set Master 60%",
		},
		{
			name:          "clamped to 100",
			current:       "95\n",
			change:        10,
			expectedSaid:  "Volume at 100 %.",
			expectedLevel: "amixer -q set Master 100%",
		},
		{
			name:          "clamped to 0",
			current:       "5",
			change:        -10,
			expectedSaid:  "Volume at 0 %.",
			expectedLevel: "amixer -q set Master 0%",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			said := ""
			commands := []string{}

			testee := &VolumeControl{
				Say:    func(text string) { said = text },
				Change: tc.change,
				Runner: func(command string) ([]byte, error) {
					commands = append(commands, command)
					if len(commands) == 1 {
						return []byte(tc.current), nil
					}
					return nil, nil
				},
			}

			require.NoError(t, testee.Run("volume up"))
			require.Equal(t, tc.expectedSaid, said)
			require.Len(t, commands, 2)
			require.Equal(t, DefaultGetVolumeCommand, commands[0])
			require.Equal(t, tc.expectedLevel, commands[1])
		})
	}
}

func TestVolumeControlAbsorbsFailures(t *testing.T) {
	for _, tc := range []struct {
		name   string
		runner CommandRunner
	}{
		{
			name: "query failure",
			runner: func(command string) ([]byte, error) {
				return nil, errors.New("fake amixer failure")
			},
		},
		{
			name: "unparseable volume",
			runner: func(command string) ([]byte, error) {
				return []byte("not a number"), nil
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			said := ""

			testee := &VolumeControl{
				Say:    func(text string) { said = text },
				Change: 10,
				Runner: tc.runner,
			}

			require.NoError(t, testee.Run("volume up"), "failures must be absorbed, not propagated")
			require.Equal(t, "Sorry, I couldn't do that", said)
		})
	}
}
