package util

import (
	"net/http/httptest"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "Ada Lovelace", "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	staffID, name, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if staffID != 42 {
		t.Errorf("staff id: got %d want 42", staffID)
	}
	if name != "Ada Lovelace" {
		t.Errorf("name: got %q", name)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "Ada Lovelace", "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatal("expected an error for a token signed with another secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if got := ExtractBearerToken(r); got != "" {
		t.Errorf("missing header: got %q", got)
	}

	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	if got := ExtractBearerToken(r); got != "abc.def.ghi" {
		t.Errorf("bearer token: got %q", got)
	}

	r.Header.Set("Authorization", "Basic abc")
	if got := ExtractBearerToken(r); got != "" {
		t.Errorf("non-bearer scheme: got %q", got)
	}
}
