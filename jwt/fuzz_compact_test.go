package jwt

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzCompact feeds arbitrary secrets and claim strings through Compact.
// Goal: no panics; output always has three url-safe segments and the claims
// segment round-trips to the input value.
func FuzzCompact(f *testing.F) {
	f.Add("barfoo", "foo")
	f.Add("", "")
	f.Add("s", "é世<>&\"\\")
	f.Add("secret", strings.Repeat("x", 300))

	f.Fuzz(func(t *testing.T, secret, uid string) {
		token, err := Compact([]byte(secret), map[string]string{"uid": uid})
		if err != nil {
			t.Fatalf("compact failed: %v", err)
		}
		parts := strings.Split(token, Separator)
		if len(parts) != 3 {
			t.Fatalf("expected 3 segments, got %d", len(parts))
		}
		for _, p := range parts {
			if strings.ContainsAny(p, "=+/") {
				t.Fatalf("segment %q is not unpadded base64url", p)
			}
		}
		raw, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			t.Fatalf("decode claims: %v", err)
		}
		var got map[string]string
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal claims: %v", err)
		}
		// encoding/json replaces invalid UTF-8 with U+FFFD; only compare valid input.
		if utf8.ValidString(uid) && got["uid"] != uid {
			t.Fatalf("uid round-trip mismatch: got %q want %q", got["uid"], uid)
		}
	})
}
