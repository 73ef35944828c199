package beacon

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

// ConnectLogger attaches loggers for diagnostics. Nil loggers are skipped. The
// default transport receives the same loggers; a transport passed to
// ConnectTransport keeps its own.
func (b *Beacon) ConnectLogger(l ...types.Logger) {
	added := make([]types.Logger, 0, len(l))
	for _, logger := range l {
		if logger != nil {
			added = append(added, logger)
		}
	}
	if len(added) == 0 {
		return
	}

	b.loggersLock.Lock()
	b.loggers = append(b.loggers, added...)
	b.loggersLock.Unlock()

	b.configLock.Lock()
	own := b.ownTransport
	if b.transport != own {
		own = nil
	}
	b.configLock.Unlock()

	if own != nil {
		own.ConnectLogger(added...)
	}
}

// ConnectTransport replaces the transport. A nil transport is ignored.
func (b *Beacon) ConnectTransport(t types.Transport) {
	if t == nil {
		return
	}
	b.configLock.Lock()
	b.transport = t
	b.configLock.Unlock()
}
