//go:build tools

// Package tools pins the versions of build-time-only tooling in go.mod
// via blank imports, so `go mod tidy` can't drop them even though
// nothing in the regular build tree imports them.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/securego/gosec/v2/cmd/gosec"
	_ "golang.org/x/tools/cmd/goimports"
	_ "golang.org/x/vuln/cmd/govulncheck"
	_ "honnef.co/go/tools/cmd/staticcheck"
	_ "mvdan.cc/gofumpt"
)
