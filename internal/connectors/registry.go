package connectors

import (
	"go.uber.org/zap"
)

// Source display names as they appear in the CLI, diagnostics, and report.
const (
	SourceMyCareersFuture = "MyCareersFuture"
	SourceFoundit         = "Foundit"
	SourceFastJobs        = "FastJobs"
	SourceGrabJobs        = "GrabJobs"
)

// Registry maps source display names to connector instances. It is built
// once at startup and passed by reference into the pipeline, so tests can
// substitute fake connectors. Read-only after construction.
type Registry struct {
	names    []string
	bySource map[string]Connector
}

// NewRegistry builds a registry over the given connectors, preserving
// registration order for deterministic iteration.
func NewRegistry(conns ...Connector) *Registry {
	r := &Registry{bySource: make(map[string]Connector, len(conns))}
	for _, c := range conns {
		if _, dup := r.bySource[c.Name()]; dup {
			continue
		}
		r.names = append(r.names, c.Name())
		r.bySource[c.Name()] = c
	}
	return r
}

// Lookup returns the connector registered under name, if any.
func (r *Registry) Lookup(name string) (Connector, bool) {
	c, ok := r.bySource[name]
	return c, ok
}

// Names returns the registered source names in registration order.
func (r *Registry) Names() []string {
	return r.names
}

// DefaultRegistry wires up the production connectors. All connectors share
// the recorder and logger; useBrowser enables headless rendering for
// JavaScript-only sources.
func DefaultRegistry(rec *Recorder, log *zap.Logger, useBrowser bool) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return NewRegistry(
		NewMyCareersFuture(rec, log, useBrowser),
		NewFoundit(rec, log),
		NewFastJobs(rec, log),
		NewGrabJobs(rec, log),
	)
}
