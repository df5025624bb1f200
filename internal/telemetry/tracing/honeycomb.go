package tracing

import (
	"fmt"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// HoneycombSetup uses the honeycomb otel config distro to set up the
// OpenTelemetry SDK. When tracing is disabled, spans are still created
// by the instrumented code, they just never get exported anywhere.
func HoneycombSetup(tracingEnabled bool, serviceName string) (shutdown func(), err error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled, otel setup skipped")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("honeycomb otel setup done")
	return otelShutdown, nil
}
