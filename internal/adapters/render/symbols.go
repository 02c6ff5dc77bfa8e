// Package render assembles the prompt line from gathered segment data.
package render

// Symbols is the glyph set used by the renderer.
type Symbols struct {
	Separator  string
	Branch     string
	Detached   string
	Ahead      string
	Behind     string
	Staged     string
	Unstaged   string
	Untracked  string
	Conflict   string
	Typechange string
	Python     string
}

// UTFPower returns the powerline-style glyph set.
func UTFPower() Symbols {
	return Symbols{
		Separator:  "",
		Branch:     "",
		Detached:   "➦",
		Ahead:      "↑",
		Behind:     "↓",
		Staged:     "●",
		Unstaged:   "✚",
		Untracked:  "…",
		Conflict:   "✖",
		Typechange: "◆",
		Python:     "\U0001f40d",
	}
}

// ASCII returns a plain fallback set for terminals without the powerline
// font patches.
func ASCII() Symbols {
	return Symbols{
		Separator:  ">",
		Branch:     "git:",
		Detached:   "detached:",
		Ahead:      "^",
		Behind:     "v",
		Staged:     "+",
		Unstaged:   "*",
		Untracked:  "?",
		Conflict:   "!",
		Typechange: "~",
		Python:     "py:",
	}
}
