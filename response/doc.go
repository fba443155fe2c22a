// Package response holds the instrument response catalog of the seismic
// network: per-station pole-zero-gain-sensitivity models plus the standard
// Wood-Anderson response used as the simulation target for local-magnitude
// computation.
//
// The catalog is defined once at package initialization and is never mutated.
// Lookups return value copies, so models obtained from the catalog may be
// shared freely across goroutines.
package response
