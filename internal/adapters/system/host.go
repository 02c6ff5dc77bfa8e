// Package system provides host and python-environment lookups for the
// non-git prompt segments.
package system

import (
	"os"
	"os/user"
	"strings"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// HostProvider resolves hostname and username from the operating system.
type HostProvider struct{}

// NewHostProvider creates a host info provider.
func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

var _ ports.HostInfoProvider = (*HostProvider)(nil)

// HostInfo returns the short hostname (domain suffix trimmed) and the
// current username. Lookup failures leave the field empty; the renderer
// drops empty segments.
func (p *HostProvider) HostInfo() ports.HostInfo {
	var info ports.HostInfo

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname, _, _ = strings.Cut(hostname, ".")
	}

	if u, err := user.Current(); err == nil {
		info.Username = u.Username
	} else if name := os.Getenv("USER"); name != "" {
		info.Username = name
	}

	return info
}
