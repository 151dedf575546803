package logging

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRedactReplacesSensitiveKeys(t *testing.T) {
	input := map[string]any{
		"email":    "ada@example.com",
		"password": "hunter2",
		"Api-Key":  "abc123",
		"profile": map[string]any{
			"accessToken": "tok-456",
			"name":        "Ada",
		},
		"history": []any{
			map[string]any{"authorization": "Bearer xyz"},
			"plain",
		},
	}

	got := Redact(input).(map[string]any)

	if got["password"] != redactedPlaceholder {
		t.Fatalf("password not redacted: %v", got["password"])
	}
	if got["Api-Key"] != redactedPlaceholder {
		t.Fatalf("Api-Key not redacted: %v", got["Api-Key"])
	}
	profile := got["profile"].(map[string]any)
	if profile["accessToken"] != redactedPlaceholder {
		t.Fatalf("nested accessToken not redacted: %v", profile["accessToken"])
	}
	if profile["name"] != "Ada" {
		t.Fatalf("non-sensitive key altered: %v", profile["name"])
	}
	entry := got["history"].([]any)[0].(map[string]any)
	if entry["authorization"] != redactedPlaceholder {
		t.Fatalf("authorization inside array not redacted: %v", entry["authorization"])
	}

	serialized, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, secret := range []string{"hunter2", "abc123", "tok-456", "Bearer xyz"} {
		if strings.Contains(string(serialized), secret) {
			t.Fatalf("serialized output leaks %q", secret)
		}
	}
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"password": "hunter2"}
	Redact(input)
	if input["password"] != "hunter2" {
		t.Fatalf("input mutated: %v", input["password"])
	}
}

func TestRedactPassesScalarsThrough(t *testing.T) {
	if got := Redact("hello"); got != "hello" {
		t.Fatalf("scalar altered: %v", got)
	}
	if got := Redact(nil); got != nil {
		t.Fatalf("nil altered: %v", got)
	}
}
