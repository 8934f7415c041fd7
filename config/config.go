package config

import (
	"github.com/sloguard/server/internal/http"
	"github.com/sloguard/server/internal/tracing"
)

type Configuration struct {
	HTTP    http.Configuration
	Tracing tracing.Configuration
}
