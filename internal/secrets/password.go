// Package secrets generates and distributes tenant entry passwords.
package secrets

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/bryanq/doorman/internal/entities"
)

// WordList holds the password candidates, one word per line in the
// backing file.
type WordList struct {
	words []string
}

func LoadWordList(path string) (WordList, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return WordList{}, fmt.Errorf("read word list: %w", err)
	}

	lines := strings.Split(string(b), "\n")
	words := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}

	if len(words) == 0 {
		return WordList{}, fmt.Errorf("word list at %s is empty", path)
	}

	return WordList{words: words}, nil
}

func (w WordList) Random() string {
	return w.words[rand.Intn(len(w.words))]
}

func (w WordList) Len() int {
	return len(w.words)
}

// Texter sends a text message to a phone number.
type Texter interface {
	SendText(to, message string) error
}

// Rotator assigns tenants a fresh random password and texts it to them.
// There is no uniqueness check against prior passwords and no expiry.
type Rotator struct {
	Words     WordList
	Messenger Texter
}

// Rotate persists a new password for the tenant and sends it via SMS.
func (r *Rotator) Rotate(tenant entities.Tenant) (string, error) {
	word := r.Words.Random()

	err := tenant.SetPassword(word)
	if err != nil {
		return "", fmt.Errorf("rotate password for %s: %w", tenant.Name(), err)
	}

	err = r.Messenger.SendText(tenant.PhoneNo(), word)
	if err != nil {
		return "", fmt.Errorf("text password to %s: %w", tenant.Name(), err)
	}

	slog.Debug(fmt.Sprintf("rotated password for %s", tenant.Name()))

	return word, nil
}
