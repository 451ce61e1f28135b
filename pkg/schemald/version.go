// Package schemald exposes module-level metadata.
package schemald

// Version is the current release version of schemald.
const Version = "0.3.0"
