package actions

import (
	"fmt"
	"time"
)

var (
	hoursText = []string{"midnight", "one", "two", "three", "four", "five", "six",
		"seven", "eight", "nine", "ten", "eleven", "twelve"}
	minutesText = []string{"five", "ten", "quarter", "twenty", "twenty-five", "half"}
)

// SpeakTime says the current local time as a natural clock phrase,
// e.g. "It is twenty past four.".
type SpeakTime struct {
	Say Say
	Now func() time.Time
}

func (a *SpeakTime) Run(utterance string) error {
	now := a.Now
	if now == nil {
		now = time.Now
	}

	a.Say(clockPhrase(now()))

	return nil
}

func clockPhrase(t time.Time) string {
	hour := t.Hour()

	// round to the nearest five-minute increment
	rounded := (t.Minute() + 2) / 5

	// past the half hour the phrase counts down to the next hour
	inverted := rounded > 6
	if inverted {
		rounded = 12 - rounded
		hour = (hour + 1) % 24
	}

	if hour > 12 {
		hour -= 12
	}

	if rounded == 0 {
		if hour == 0 {
			return "It is midnight."
		}

		return fmt.Sprintf("It is %s o'clock.", hoursText[hour])
	}

	if inverted {
		return fmt.Sprintf("It is %s to %s.", minutesText[rounded-1], hoursText[hour])
	}

	return fmt.Sprintf("It is %s past %s.", minutesText[rounded-1], hoursText[hour])
}
