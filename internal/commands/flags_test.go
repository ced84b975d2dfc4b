package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath_uses_xdg(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "lobby", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile(t *testing.T) {
	t.Run("xdg state home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)
		assert.Equal(t, filepath.Join(dir, "lobby", "lobby.log"), DefaultLogFile())
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", home)

		want := filepath.Join(home, ".local", "state", "lobby", "lobby.log")
		if runtime.GOOS == "darwin" {
			want = filepath.Join(home, "Library", "Logs", "lobby", "lobby.log")
		}
		assert.Equal(t, want, DefaultLogFile())
	})
}
