// Package transport monta o *http.Client usado para falar com o Banco do Brasil.
//
// O cliente PIX não conhece certificados: quando a conta exige mTLS, é aqui
// que o certificado .p12 é carregado e acoplado ao http.Transport.
package transport

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/pkcs12"
)

// DefaultTimeout é usado quando nenhum timeout é informado
const DefaultTimeout = 30 * time.Second

// Options configura o cliente HTTP
type Options struct {
	Timeout             time.Duration
	CertificatePath     string // .p12 opcional para mTLS
	CertificatePassword string
}

// NewHTTPClient cria um cliente HTTP, com mTLS quando houver certificado
func NewHTTPClient(opts Options) (*http.Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if opts.CertificatePath != "" {
		cert, err := loadCertificate(opts.CertificatePath, opts.CertificatePassword)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar certificado: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

// loadCertificate carrega um certificado .p12 para mTLS
func loadCertificate(certPath, password string) (tls.Certificate, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao ler certificado: %w", err)
	}

	privateKey, certificate, err := pkcs12.Decode(certData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao decodificar certificado PKCS12: %w", err)
	}

	return tls.Certificate{
		Certificate: [][]byte{certificate.Raw},
		PrivateKey:  privateKey,
		Leaf:        certificate,
	}, nil
}
