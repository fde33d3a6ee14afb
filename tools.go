//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (mocks in *_mock_test.go files)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration status; the
//   server and biztrackctl apply migrations through the goose library)
