package gitinfo

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/eirnym-learn/promptline/internal/ports"
)

func setRepoOption(t *testing.T, dir, key, value string) {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Raw = cfg.Raw.AddOption(ConfigSection, "", key, value)
	require.NoError(t, repo.SetConfig(cfg))
}

func TestResolveOptions_DefaultsWithoutOverrides(t *testing.T) {
	_, _, dir := initTestRepo(t)

	opts, err := ResolveOptions(dir, ports.DefaultGitRequest())
	require.NoError(t, err)
	require.Equal(t, Options{
		IncludeUntracked:    true,
		IncludeAheadBehind:  true,
		IncludeWorkdirStats: true,
	}, opts)
}

func TestResolveOptions_StoredValueWins(t *testing.T) {
	_, _, dir := initTestRepo(t)
	setRepoOption(t, dir, "include-untracked", "false")
	setRepoOption(t, dir, "include-submodules", "yes")

	opts, err := ResolveOptions(dir, ports.DefaultGitRequest())
	require.NoError(t, err)
	require.False(t, opts.IncludeUntracked)
	require.True(t, opts.IncludeSubmodules)
}

func TestResolveOptions_MalformedValueKeepsDefault(t *testing.T) {
	_, _, dir := initTestRepo(t)
	setRepoOption(t, dir, "include-ahead-behind", "sometimes")

	opts, err := ResolveOptions(dir, ports.DefaultGitRequest())
	require.NoError(t, err)
	require.True(t, opts.IncludeAheadBehind)
}

func TestResolveOptions_NotARepository(t *testing.T) {
	_, err := ResolveOptions(t.TempDir(), ports.DefaultGitRequest())
	require.ErrorIs(t, err, ErrConfigUnavailable)
}

func TestParseGitBool(t *testing.T) {
	tests := []struct {
		in    string
		value bool
		ok    bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"yes", true, true},
		{"on", true, true},
		{"1", true, true},
		{"", true, true}, // bare key means true
		{"false", false, true},
		{"no", false, true},
		{"off", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"2", false, false},
	}

	for _, tt := range tests {
		value, ok := parseGitBool(tt.in)
		if value != tt.value || ok != tt.ok {
			t.Errorf("parseGitBool(%q) = (%v, %v), want (%v, %v)", tt.in, value, ok, tt.value, tt.ok)
		}
	}
}
