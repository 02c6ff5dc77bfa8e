package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eirnym-learn/promptline/internal/domain"
	"github.com/eirnym-learn/promptline/internal/ports"
)

// Palette holds the per-segment styles.
type Palette struct {
	Time     lipgloss.Style
	Host     lipgloss.Style
	User     lipgloss.Style
	Python   lipgloss.Style
	GitClean lipgloss.Style
	GitDirty lipgloss.Style
}

// DefaultPalette returns the stock color scheme.
func DefaultPalette() Palette {
	return Palette{
		Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Host:     lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		User:     lipgloss.NewStyle().Foreground(lipgloss.Color("144")),
		Python:   lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
		GitClean: lipgloss.NewStyle().Foreground(lipgloss.Color("72")),
		GitDirty: lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	}
}

// Renderer turns PromptData into a single prompt line. Empty or nil
// segments are dropped rather than rendered as placeholders.
type Renderer struct {
	symbols Symbols
	palette Palette
	color   bool
}

// NewRenderer creates a renderer. colorEnabled should be false when
// stdout is not a terminal or the user asked for plain output.
func NewRenderer(symbols Symbols, palette Palette, colorEnabled bool) *Renderer {
	return &Renderer{symbols: symbols, palette: palette, color: colorEnabled}
}

// Render assembles the prompt line, segments separated by the theme
// separator.
func (r *Renderer) Render(data domain.PromptData) string {
	var segments []string

	if data.DateTime != "" {
		segments = append(segments, r.style(r.palette.Time, data.DateTime))
	}
	if data.Username != "" {
		segments = append(segments, r.style(r.palette.User, data.Username))
	}
	if data.Hostname != "" {
		segments = append(segments, r.style(r.palette.Host, data.Hostname))
	}
	if data.Python != nil && data.Python.Name != "" {
		segments = append(segments, r.style(r.palette.Python, r.symbols.Python+" "+data.Python.Name))
	}
	if git := r.GitSegment(data.Git); git != "" {
		segments = append(segments, git)
	}

	return strings.Join(segments, " "+r.symbols.Separator+" ")
}

// GitSegment renders the repository part of the prompt: reference (or
// short commit id when detached), divergence counts, and dirtiness glyphs.
// Returns "" when no head information is available.
func (r *Renderer) GitSegment(snapshot *ports.GitSnapshot) string {
	if snapshot == nil || snapshot.Head == nil {
		return ""
	}
	head := snapshot.Head

	var b strings.Builder
	if head.Detached {
		b.WriteString(r.symbols.Detached)
		if oid := head.ShortOID(); oid != "" {
			b.WriteString(oid)
		} else {
			b.WriteString(head.ShortRef())
		}
	} else {
		b.WriteString(r.symbols.Branch)
		if ref := head.ShortRef(); ref != "" {
			b.WriteString(ref)
		} else {
			b.WriteString(head.ShortOID())
		}
	}

	if ab := snapshot.AheadBehind; ab != nil {
		if ab.Ahead > 0 {
			fmt.Fprintf(&b, " %s%d", r.symbols.Ahead, ab.Ahead)
		}
		if ab.Behind > 0 {
			fmt.Fprintf(&b, " %s%d", r.symbols.Behind, ab.Behind)
		}
	}

	dirty := false
	if fs := snapshot.FileStatus; fs != nil && !fs.Clean() {
		dirty = true
		b.WriteString(" ")
		if fs.Conflict {
			b.WriteString(r.symbols.Conflict)
		}
		if fs.Staged {
			b.WriteString(r.symbols.Staged)
		}
		if fs.Unstaged {
			b.WriteString(r.symbols.Unstaged)
		}
		if fs.Typechange {
			b.WriteString(r.symbols.Typechange)
		}
		if fs.Untracked {
			b.WriteString(r.symbols.Untracked)
		}
	}

	style := r.palette.GitClean
	if dirty {
		style = r.palette.GitDirty
	}
	return r.style(style, b.String())
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
