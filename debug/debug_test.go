package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	t.Setenv("DON_TEST_BOOL", "true")
	if !boolEnv("DON_TEST_BOOL") {
		t.Error("expected true")
	}
	t.Setenv("DON_TEST_BOOL", "nope")
	if boolEnv("DON_TEST_BOOL") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("DON_TEST_UNSET_BOOL") {
		t.Error("expected false when unset")
	}
}
