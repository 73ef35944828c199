package beacon

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

func (b *Beacon) Endpoint() string {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return b.endpoint
}

func (b *Beacon) Threshold() types.Severity {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return b.threshold
}

// Metadata returns a copy of the configured metadata.
func (b *Beacon) Metadata() types.Metadata {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return b.metadata.Clone()
}

// InstanceID returns the random identifier generated for this client.
func (b *Beacon) InstanceID() string {
	return b.instanceID
}

// SequenceNumber returns the number given to the most recent emission attempt.
func (b *Beacon) SequenceNumber() uint64 {
	return b.sequence.Load()
}

func (b *Beacon) GetComponentMetadata() types.ComponentMetadata {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return b.componentMetadata
}

// Transport returns the transport beacons are currently dispatched through.
func (b *Beacon) Transport() types.Transport {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return b.transport
}
