package http

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

func getTLSConfig(key string, cert string, cacert string, serverName string, insecure bool) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if key != "" {
		certificate, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, fmt.Errorf("fail to load certificates: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{certificate}
	}
	if cacert != "" {
		caCert, err := os.ReadFile(cacert)
		if err != nil {
			return nil, fmt.Errorf("fail to read the ca certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("fail to add the ca certificate %s to the pool", cacert)
		}
		tlsConfig.RootCAs = pool
		tlsConfig.ClientCAs = pool
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}
	if serverName != "" {
		tlsConfig.ServerName = serverName
	}
	if insecure {
		tlsConfig.InsecureSkipVerify = true
	}
	return tlsConfig, nil
}
