package admin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stubPasswords replaces the terminal read with canned responses.
func stubPasswords(t *testing.T, entries ...string) {
	t.Helper()

	orig := readPassword
	i := 0
	readPassword = func(fd int) ([]byte, error) {
		entry := entries[i]
		i++
		return []byte(entry), nil
	}
	t.Cleanup(func() {
		readPassword = orig
	})
}

func TestPromptPassword_Match(t *testing.T) {
	stubPasswords(t, "supersecret", "supersecret")

	pw, err := promptPassword()
	require.NoError(t, err)
	require.Equal(t, "supersecret", pw)
}

func TestPromptPassword_Mismatch(t *testing.T) {
	stubPasswords(t, "supersecret", "something-else")

	_, err := promptPassword()
	require.EqualError(t, err, "passwords do not match")
}

func TestRun_RequiresName(t *testing.T) {
	err := Run(nil)
	require.EqualError(t, err, "--name is required")
}
