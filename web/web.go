// Package web holds the browser client and the embeddable widget served by the API binary.
package web

import "embed"

//go:embed static/*
var Static embed.FS
