// Package domain contains the core domain model for tempdial.
//
// The domain is UI- and source-agnostic: it does not depend on the terminal,
// YAML parsing, or the clock. Infra/adapters map into/from these types.
package domain
