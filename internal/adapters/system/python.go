package system

import (
	"os"
	"path/filepath"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// PythonProvider detects an activated python environment from the process
// environment. Virtualenv takes precedence over conda when both are set,
// matching the environment the `python` binary would actually come from.
type PythonProvider struct {
	// getenv is swappable for tests; defaults to os.Getenv.
	getenv func(string) string
}

// NewPythonProvider creates a python environment detector.
func NewPythonProvider() *PythonProvider {
	return &PythonProvider{getenv: os.Getenv}
}

var _ ports.PythonDetector = (*PythonProvider)(nil)

// Detect returns the active environment or nil when none is set.
func (p *PythonProvider) Detect() *ports.PythonEnv {
	if venv := p.getenv("VIRTUAL_ENV"); venv != "" {
		return &ports.PythonEnv{Name: filepath.Base(venv)}
	}
	if conda := p.getenv("CONDA_DEFAULT_ENV"); conda != "" {
		return &ports.PythonEnv{Name: conda, Conda: true}
	}
	return nil
}
