package ports

// HostInfo identifies where the prompt is being rendered.
type HostInfo struct {
	Hostname string
	Username string
}

// PythonEnv describes an activated python environment.
type PythonEnv struct {
	// Name is the display name, e.g. the virtualenv directory basename.
	Name string
	// Conda is true when the environment came from conda rather than venv.
	Conda bool
}

// HostInfoProvider resolves hostname and username for the host segment.
type HostInfoProvider interface {
	HostInfo() HostInfo
}

// PythonDetector inspects the process environment for an active python
// environment. Returns nil when none is active.
type PythonDetector interface {
	Detect() *PythonEnv
}
