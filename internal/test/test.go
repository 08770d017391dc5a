// Package test contains helpers shared by package tests.
package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	err "github.com/ava12/adoc/errors"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	Expect(t, expected == got, fmt.Sprintf("%q", expected), fmt.Sprintf("%q", got))
}

// ExpectErrorCode fails the test unless e carries expected error code.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if e != nil && err.Code(e) == expected {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

// ExpectText fails the test with unified diff if got differs from expected.
func ExpectText(t *testing.T, name, expected, got string) {
	t.Helper()
	if expected == got {
		return
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(got),
		FromFile: name,
		ToFile:   "got",
		Context:  3,
	})
	fatalf(t, "%s differs:\n%s", name, diff)
}
