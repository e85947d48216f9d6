// Package content holds the typed records, the load-once immutable store,
// and the read-only repository behind every page of the site. Collections
// are plain JSON files validated at load; lookup misses are absence values,
// never errors.
package content
