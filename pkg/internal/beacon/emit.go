package beacon

import (
	"fmt"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/codec"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
	"github.com/oklog/ulid/v2"
)

// emission is the configuration snapshot one Log call works from.
type emission struct {
	threshold types.Severity
	endpoint  string
	beforeLog types.Hook
	afterLog  types.Hook
	metadata  types.Metadata
	transport types.Transport
}

func (b *Beacon) snapshot() emission {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	return emission{
		threshold: b.threshold,
		endpoint:  b.endpoint,
		beforeLog: b.beforeLog,
		afterLog:  b.afterLog,
		metadata:  b.metadata.Clone(),
		transport: b.transport,
	}
}

// Log emits one event. Events below the threshold return nil without effect.
// Precondition failures return one of the types sentinel errors; hook errors are
// returned as the hook produced them.
func (b *Beacon) Log(event, context string, details map[string]any, severity types.Severity) error {
	if !severity.Valid() {
		return fmt.Errorf("%w: %d", types.ErrInvalidSeverity, int(severity))
	}

	cfg := b.snapshot()
	if !severity.Enabled(cfg.threshold) {
		return nil
	}
	if event == "" {
		return types.ErrEmptyEvent
	}

	encodedDetails, err := encodeDetails(cfg.metadata.Details, details)
	if err != nil {
		return err
	}

	if cfg.endpoint == "" {
		return types.ErrNoEndpoint
	}

	now := b.host.Now()
	uniqueID, err := newUniqueID(now)
	if err != nil {
		return err
	}

	sequence := b.sequence.Add(1)
	if sequence > MaxEmissions {
		return types.ErrTooManyLogs
	}

	payload := b.assemble(cfg.metadata, now, uniqueID, event, context, encodedDetails, severity, sequence)

	if cfg.beforeLog != nil {
		if err := cfg.beforeLog(&payload); err != nil {
			return err
		}
	}

	encoded, err := codec.EncodePayload(payload)
	if err != nil {
		return err
	}
	if cfg.transport != nil {
		cfg.transport.Send(cfg.endpoint + "?" + logschema.QueryParam + "=" + encoded)
	}

	if cfg.afterLog != nil {
		if err := cfg.afterLog(&payload); err != nil {
			return err
		}
	}
	return nil
}

func (b *Beacon) Trace(event, context string, details map[string]any) error {
	return b.Log(event, context, details, types.SeverityTrace)
}

func (b *Beacon) Debug(event, context string, details map[string]any) error {
	return b.Log(event, context, details, types.SeverityDebug)
}

func (b *Beacon) Info(event, context string, details map[string]any) error {
	return b.Log(event, context, details, types.SeverityInfo)
}

func (b *Beacon) Warn(event, context string, details map[string]any) error {
	return b.Log(event, context, details, types.SeverityWarn)
}

func (b *Beacon) Error(event, context string, details map[string]any) error {
	return b.Log(event, context, details, types.SeverityError)
}

func (b *Beacon) assemble(m types.Metadata, now time.Time, uniqueID, event, context, details string, severity types.Severity, sequence uint64) types.Payload {
	return types.Payload{
		SchemaVersion:  logschema.SchemaID,
		Timestamp:      now.UnixMilli(),
		EventName:      event,
		Context:        context,
		Details:        details,
		URL:            nonEmpty(b.host.Location()),
		LogLevel:       severity.String(),
		InstanceID:     b.instanceID,
		SequenceNumber: sequence,
		UniqueID:       uniqueID,

		ApplicationName:    m.ApplicationName,
		ApplicationVersion: m.ApplicationVersion,
		Email:              m.Email,
		DisplayName:        m.DisplayName,
		UserID:             m.UserID,
		TenantID:           m.TenantID,
		UserAgentShort:     m.UserAgentShort,
		Timezone:           m.Timezone,
		Platform:           m.Platform,
		Vendor:             m.Vendor,
		UserAgent:          m.UserAgent,
	}
}

// encodeDetails merges call-site details over configured ones and renders compact JSON.
func encodeDetails(configured, call map[string]any) (string, error) {
	merged := make(map[string]any, len(configured)+len(call))
	for k, v := range configured {
		merged[k] = v
	}
	for k, v := range call {
		merged[k] = v
	}

	raw, err := codec.MarshalCompact(merged)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidDetails, err)
	}
	return string(raw), nil
}

// newUniqueID returns a ULID for an event at now. ULIDs only cover millisecond
// timestamps from the Unix epoch up to year 10889.
func newUniqueID(now time.Time) (string, error) {
	ms := now.UnixMilli()
	if ms < 0 {
		return "", fmt.Errorf("%w: %s is before the Unix epoch", types.ErrInvalidTimestamp, now.UTC().Format(time.RFC3339))
	}
	id, err := ulid.New(uint64(ms), ulid.DefaultEntropy())
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidTimestamp, err)
	}
	return id.String(), nil
}
