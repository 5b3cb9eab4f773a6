// Package remote bridges metadata records to a remote-object runtime. It
// models only the adapter surface: exports delegate every getter to their
// record, and the Registrar that actually exposes an export over the wire
// is an external collaborator. Exports are cached per record; see
// Adapters.ExportFor.
package remote
