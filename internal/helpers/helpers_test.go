package helpers

import "testing"

func TestGenerateRandomStringLength(t *testing.T) {
	for _, length := range []int{1, 14, 32} {
		s := GenerateRandomString(length)
		if len(s) != length {
			t.Errorf("GenerateRandomString(%d): got length %d", length, len(s))
		}
	}
}

func TestGenerateRandomStringIsRandom(t *testing.T) {
	if GenerateRandomString(14) == GenerateRandomString(14) {
		t.Errorf("two generated slugs collided")
	}
}

func TestGetEnvVariableOrDefault(t *testing.T) {
	t.Setenv("HELPERS_TEST_KEY", "set")
	if got := GetEnvVariableOrDefault("HELPERS_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("got %q, want set", got)
	}
	if got := GetEnvVariableOrDefault("HELPERS_TEST_KEY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}
