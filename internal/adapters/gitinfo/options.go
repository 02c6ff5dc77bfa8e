package gitinfo

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// ConfigSection is the git config section holding per-repository overrides,
// e.g. `git config promptline.include-untracked false`.
const ConfigSection = "promptline"

// Options are the five behavior flags after merging request defaults with
// repository configuration. Derived once per collection, read-only after.
type Options struct {
	IncludeSubmodules   bool
	IncludeUntracked    bool
	RefreshStatus       bool
	IncludeAheadBehind  bool
	IncludeWorkdirStats bool
}

// ResolveOptions opens the repository's merged configuration (local layered
// over global and system) and overrides each request flag for which a
// well-formed boolean key exists under the promptline section.
func ResolveOptions(repoPath string, req ports.GitRequest) (Options, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	cfg, err := repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	return Options{
		IncludeSubmodules:   configBool(cfg, "include-submodules", req.IncludeSubmodules),
		IncludeUntracked:    configBool(cfg, "include-untracked", req.IncludeUntracked),
		RefreshStatus:       configBool(cfg, "refresh-status", req.RefreshStatus),
		IncludeAheadBehind:  configBool(cfg, "include-ahead-behind", req.IncludeAheadBehind),
		IncludeWorkdirStats: configBool(cfg, "include-workdir-stats", req.IncludeWorkdirStats),
	}, nil
}

// configBool reads a boolean key from the promptline section. Section and
// key names compare case-insensitively and the last occurrence wins, per
// git config semantics. Missing or malformed values keep the default.
func configBool(cfg *config.Config, key string, def bool) bool {
	raw, ok := lookupOption(cfg, key)
	if !ok {
		return def
	}
	val, ok := parseGitBool(raw)
	if !ok {
		return def
	}
	return val
}

func lookupOption(cfg *config.Config, key string) (string, bool) {
	var raw string
	found := false
	for _, section := range cfg.Raw.Sections {
		if !strings.EqualFold(section.Name, ConfigSection) {
			continue
		}
		for _, opt := range section.Options {
			if strings.EqualFold(opt.Key, key) {
				raw = opt.Value
				found = true
			}
		}
	}
	return raw, found
}

// parseGitBool follows git's boolean grammar. A key present with no value
// means true.
func parseGitBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1", "":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
