//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose applies the SQL migrations under migrations/.
// moq regenerates the hand-maintained *_mock_test.go files.
