package contact

import (
	"strings"
	"testing"
)

func TestCreateRequestReportsAllViolations(t *testing.T) {
	req := CreateRequest{Name: "", Email: "not-an-email", Phone: "123"}

	violations := req.Validate()
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(violations), violations)
	}

	paths := map[string]bool{}
	for _, violation := range violations {
		paths[violation.Path] = true
	}
	for _, want := range []string{"body.name", "body.email", "body.phone"} {
		if !paths[want] {
			t.Fatalf("missing violation for %s: %v", want, violations)
		}
	}
}

func TestCreateRequestValid(t *testing.T) {
	req := CreateRequest{Name: "Grace Hopper", Email: "grace@example.com", Phone: "+1 (555) 010-0000"}
	if violations := req.Validate(); len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestPhoneCharset(t *testing.T) {
	base := CreateRequest{Name: "Grace", Email: "grace@example.com"}

	base.Phone = "555-010-0000 ext 4"
	if violations := base.Validate(); len(violations) == 0 {
		t.Fatalf("letters in phone accepted")
	}

	base.Phone = "+1 (555) 010-0000"
	if violations := base.Validate(); len(violations) != 0 {
		t.Fatalf("formatting characters rejected: %v", violations)
	}

	base.Phone = "123456789" // 9 chars, below minimum
	if violations := base.Validate(); len(violations) == 0 {
		t.Fatalf("too-short phone accepted")
	}
}

func TestLengthLimitsCountCharactersNotBytes(t *testing.T) {
	// 100 two-byte runes: within the 120-character limit even though the
	// byte length is 200.
	req := CreateRequest{
		Name:  strings.Repeat("é", 100),
		Email: "grace@example.com",
		Phone: "+1 (555) 010-0000",
	}
	if violations := req.Validate(); len(violations) != 0 {
		t.Fatalf("100-character name rejected: %v", violations)
	}

	req.Name = strings.Repeat("é", 121)
	if violations := req.Validate(); len(violations) != 1 || violations[0].Path != "body.name" {
		t.Fatalf("121-character name not rejected: %v", violations)
	}

	if _, violations := ParseListQuery("", "", strings.Repeat("ü", 200), "", ""); len(violations) != 0 {
		t.Fatalf("200-character search rejected: %v", violations)
	}
}

func TestNameAndEmailLengthLimits(t *testing.T) {
	req := CreateRequest{
		Name:  strings.Repeat("x", 121),
		Email: strings.Repeat("x", 195) + "@x.com",
		Phone: "+1 (555) 010-0000",
	}
	violations := req.Validate()
	if len(violations) != 2 {
		t.Fatalf("expected name+email length violations, got %v", violations)
	}
}

func TestUpdateRequestRequiresAtLeastOneField(t *testing.T) {
	violations := UpdateRequest{}.Validate()
	if len(violations) != 1 || violations[0].Path != "body" {
		t.Fatalf("expected single body violation, got %v", violations)
	}

	name := "Grace"
	if violations := (UpdateRequest{Name: &name}).Validate(); len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestUpdateRequestValidatesPresentFields(t *testing.T) {
	bad := "nope"
	violations := UpdateRequest{Email: &bad}.Validate()
	if len(violations) != 1 || violations[0].Path != "body.email" {
		t.Fatalf("expected email violation, got %v", violations)
	}
}

func TestParseListQueryDefaults(t *testing.T) {
	query, violations := ParseListQuery("", "", "", "", "")
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if query.Page != 1 || query.Limit != 10 || query.SortBy != "createdAt" || query.SortOrder != "desc" {
		t.Fatalf("wrong defaults: %+v", query)
	}
}

func TestParseListQueryCoercion(t *testing.T) {
	query, violations := ParseListQuery("3", "25", "grace", "name", "asc")
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if query.Page != 3 || query.Limit != 25 || query.Search != "grace" || query.SortBy != "name" || query.SortOrder != "asc" {
		t.Fatalf("coercion wrong: %+v", query)
	}
}

func TestParseListQueryRejectsBadValues(t *testing.T) {
	_, violations := ParseListQuery("0", "101", strings.Repeat("s", 201), "phone", "sideways")
	if len(violations) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(violations), violations)
	}
}
