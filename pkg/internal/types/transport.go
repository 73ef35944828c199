package types

import (
	"net/http"
	"time"
)

// Transport dispatches a fully built beacon URL. Send is best effort: it reports
// nothing and callers never learn whether the request reached the endpoint.
type Transport interface {
	Send(url string)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(url string)

// Send implements Transport.
func (f TransportFunc) Send(url string) { f(url) }

// BeaconTransport is the HTTP transport component.
type BeaconTransport interface {
	Transport
	ConnectLogger(...Logger)
	SetTimeout(timeout time.Duration)
	SetHTTPClient(client *http.Client)
	SetTlsPinnedCertificate(certPath string)
	// Wait blocks until every beacon sent so far has finished.
	Wait()
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
