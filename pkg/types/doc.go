// Package types defines the content-store interfaces, entity types, mapping
// configuration, and standard errors for the schemald structured-data
// pipeline.
//
// The pipeline core (internal/resolve, internal/schema, internal/render)
// depends only on the interfaces in this package; internal/sqlite provides
// the concrete store.
package types
