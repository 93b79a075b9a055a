// Package testutil holds shared test assertions
package testutil

import (
	"strings"
	"testing"
)

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertErrorContains checks that an error message mentions a substring
func AssertErrorContains(t *testing.T, err error, substr, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error mentioning %q, got nil", context, substr)
		return
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("%s: expected error mentioning %q, got: %v", context, substr, err)
	}
}

// AssertStringsEqual checks two string slices element by element
func AssertStringsEqual(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %v, got %v", context, expected, actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: expected %v, got %v", context, expected, actual)
			return
		}
	}
}
