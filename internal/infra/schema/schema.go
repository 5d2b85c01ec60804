// Package schema ships the DDL as an embedded string. Migrations proper are
// an operational concern outside this service; the integration test harness
// applies this directly.
package schema

import _ "embed"

//go:embed schema.sql
var DDL string
