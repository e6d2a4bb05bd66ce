// Package orchestrator wires the definition loader, the page builder and the
// renderer registry behind a single Generate call.
package orchestrator
