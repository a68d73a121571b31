// Package telemetry wires OpenTelemetry tracing for the input and paint cycles
package telemetry
