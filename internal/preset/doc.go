// Package preset loads named example groups (used by the CLI and as
// test fixtures) from an embedded YAML file.
package preset
