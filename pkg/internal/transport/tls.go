package transport

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// SetTlsPinnedCertificate restricts beacons to endpoints presenting the certificate at certPath.
func (t *HTTPBeacon) SetTlsPinnedCertificate(certPath string) {
	cert, err := loadCertificate(certPath)
	if err != nil {
		t.NotifyLoggers(
			types.ErrorLevel,
			"beacon transport tls pinning failed",
			"component", t.GetComponentMetadata(),
			"event", "TLSPinning",
			"cert_path", certPath,
			"error", err,
		)
		return
	}

	t.configLock.Lock()
	t.pinnedCert = cert
	t.pinEnabled = true
	if t.httpClient != nil {
		t.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{VerifyPeerCertificate: t.verifyServerCertificate},
		}
	}
	t.configLock.Unlock()
}

func (t *HTTPBeacon) verifyServerCertificate(_ [][]byte, verifiedChains [][]*x509.Certificate) error {
	t.configLock.Lock()
	enabled := t.pinEnabled
	pinned := append([]byte(nil), t.pinnedCert...)
	t.configLock.Unlock()

	if !enabled {
		return nil
	}

	for _, chain := range verifiedChains {
		for _, cert := range chain {
			if bytes.Equal(cert.Raw, pinned) {
				return nil
			}
		}
	}

	return errors.New("TLS certificate pinning check failed")
}

func loadCertificate(certPath string) ([]byte, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file: %w", err)
	}

	block, _ := pem.Decode(certData)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing the certificate")
	}
	return block.Bytes, nil
}
