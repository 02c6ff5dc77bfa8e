// Package domain holds the aggregate consumed by the prompt renderer.
package domain

import "github.com/eirnym-learn/promptline/internal/ports"

// PromptData is everything one prompt redraw needs. Fields are gathered
// concurrently and never mutated after assembly; a nil or empty field
// means the segment is skipped.
type PromptData struct {
	DateTime string
	Hostname string
	Username string
	Python   *ports.PythonEnv
	Git      *ports.GitSnapshot
}
