package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bryanq/doorman/internal/secrets"
	"github.com/stretchr/testify/require"
)

type fakeTexter struct {
	to       string
	messages []string
}

func (f *fakeTexter) SendText(to, message string) error {
	f.to = to
	f.messages = append(f.messages, message)
	return nil
}

func newTestRotator(t *testing.T, texter secrets.Texter) *secrets.Rotator {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("zebra\n"), 0o644))

	words, err := secrets.LoadWordList(path)
	require.NoError(t, err)

	return &secrets.Rotator{Words: words, Messenger: texter}
}

func TestGainEntryPass(t *testing.T) {
	store := loadTestEntities(t)
	tenant, ok := store.Tenant("Bryan")
	require.True(t, ok)

	texter := &fakeTexter{}
	said := ""
	testee := &GainEntry{
		Say:     func(text string) { said = text },
		Tenant:  tenant,
		Rotator: newTestRotator(t, texter),
	}

	require.NoError(t, testee.Run("open up, the password is AARDVARK"))
	require.True(t, strings.HasPrefix(said, "that is the correct password: aardvark. "), "success response, got: %s", said)
	require.NotContains(t, said, "$tenant")

	// rotation happens only after the response was spoken
	require.Equal(t, "zebra", tenant.Password(), "password rotated after a successful entry")
	require.Equal(t, []string{"zebra"}, texter.messages, "new password texted to the tenant")
	require.Equal(t, "+15005550006", texter.to)
}

func TestGainEntryFail(t *testing.T) {
	store := loadTestEntities(t)
	tenant, ok := store.Tenant("Bryan")
	require.True(t, ok)

	texter := &fakeTexter{}
	said := ""
	testee := &GainEntry{
		Say:     func(text string) { said = text },
		Tenant:  tenant,
		Rotator: newTestRotator(t, texter),
	}

	require.NoError(t, testee.Run("open up, the password is wombat"))
	require.True(t, strings.HasPrefix(said, "i didn't recognize the password. "), "failure response, got: %s", said)

	require.Equal(t, "aardvark", tenant.Password(), "password must not rotate on failure")
	require.Empty(t, texter.messages, "no SMS on failure")
}

func TestGainEntryDefaultPasswordNeverMatches(t *testing.T) {
	store := loadTestEntities(t)
	tenant, ok := store.Tenant("Quiet")
	require.True(t, ok)

	texter := &fakeTexter{}
	said := ""
	testee := &GainEntry{
		Say:     func(text string) { said = text },
		Tenant:  tenant,
		Rotator: newTestRotator(t, texter),
	}

	require.NoError(t, testee.Run("let me in, my password is "))
	require.True(t, strings.HasPrefix(said, "i didn't recognize the password. "), "sentinel must not match, got: %s", said)
	require.Empty(t, texter.messages)
}

func TestRequestPassword(t *testing.T) {
	store := loadTestEntities(t)
	tenant, ok := store.Tenant("Bryan")
	require.True(t, ok)

	texter := &fakeTexter{}
	said := ""
	testee := &RequestPassword{
		Say:     func(text string) { said = text },
		Tenant:  tenant,
		Rotator: newTestRotator(t, texter),
	}

	require.NoError(t, testee.Run("i forgot my password"))
	require.Contains(t, said, "Bryan", "tenant name substituted into the confirmation")
	require.NotContains(t, said, "$tenant")

	require.Equal(t, "zebra", tenant.Password())
	require.Equal(t, []string{"zebra"}, texter.messages)
	require.Equal(t, "+15005550006", texter.to)
}
