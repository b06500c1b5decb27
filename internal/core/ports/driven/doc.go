// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Exporter: Renders a book into one target format
//   - ExporterRegistry: Resolves a format identifier to its exporter
//
// # Optional Interfaces
//
//   - ConfigStore: Named option presets. Without it, exports run with
//     whatever options the caller supplies.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or exporter package
package driven
