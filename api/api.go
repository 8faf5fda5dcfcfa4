// Package api holds the OpenAPI 3 contract of the HTTP interface.
package api

import (
	_ "embed"
)

// OpenAPI is the JSON document describing every /api/v1 endpoint.
//
//go:embed openapi.json
var OpenAPI []byte
