package db

import _ "embed"

// Schema is the bootstrap DDL, applied by deployments and the integration
// test harness.
//
//go:embed schema.sql
var Schema string
