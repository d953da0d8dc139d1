// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses these interfaces to avoid hard-coding a specific UID
// strategy. Depending on the use case you can generate:
//   - String IDs (hagelkorn, UUIDv7, ULID, KSUID, NanoID, CUID2).
//   - Numeric IDs (Snowflake).
//
// Time-ordered strategies also implement TimeParser so the embedded
// timestamp can be read back.
package pkguid
