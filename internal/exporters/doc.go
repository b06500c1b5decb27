// Package exporters provides implementations of the Exporter interface
// for each target document format, one package per format family.
//
// Exporters are registered with the ExporterRegistry at startup. The
// root package carries the shared result-shaping scaffolding; the
// escaping and inline-markup rules live in internal/markup.
package exporters
