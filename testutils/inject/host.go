package inject

import (
	"github.com/lcr-robotics/lilpanini/host"
)

// Host is an injected host.
type Host struct {
	host.Host
	IsActiveFunc func() bool
	YieldFunc    func()
}

// IsActive calls the injected IsActive or the real version.
func (h *Host) IsActive() bool {
	if h.IsActiveFunc == nil {
		return h.Host.IsActive()
	}
	return h.IsActiveFunc()
}

// Yield calls the injected Yield or the real version.
func (h *Host) Yield() {
	if h.YieldFunc == nil {
		h.Host.Yield()
		return
	}
	h.YieldFunc()
}
