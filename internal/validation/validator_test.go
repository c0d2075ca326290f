// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package validation

import (
	"strings"
	"sync"
	"testing"
)

type listQuery struct {
	Limit    int    `query:"limit" validate:"min=0,max=50"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=relevance upload_date view_count rating"`
	Category string `query:"category" validate:"max=8"`
}

type idRequest struct {
	VideoID string `json:"videoId" validate:"required,identifier"`
}

type nested struct {
	Server struct {
		Port int `koanf:"port" validate:"min=1,max=65535"`
	} `koanf:"server"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	got := make([]interface{}, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(got); i++ {
		if got[i] != got[0] {
			t.Fatal("GetValidator returned different instances")
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&listQuery{Limit: 10, SortBy: "rating", Category: "Music"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateStruct(&idRequest{VideoID: "abc_DEF-123"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
		field string
		want  string
	}{
		{"max int", &listQuery{Limit: 51}, "limit", "limit must be at most 50"},
		{"min int", &listQuery{Limit: -1}, "limit", "limit must be at least 0"},
		{"oneof", &listQuery{SortBy: "random"}, "sort_by", "sort_by must be one of: relevance upload_date view_count rating"},
		{"max string", &listQuery{Category: "Documentary"}, "category", "category must be at most 8 characters"},
		{"required", &idRequest{}, "videoId", "videoId is required"},
		{"identifier", &idRequest{VideoID: "../etc"}, "videoId", "videoId must contain only letters, digits, '-' or '_' (max 128)"},
		{"nested path", &nested{}, "server.port", "server.port must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			fe := verr.Errors()[0]
			if fe.Field != tt.field {
				t.Errorf("Field = %q, want %q", fe.Field, tt.field)
			}
			if fe.Message != tt.want {
				t.Errorf("Message = %q, want %q", fe.Message, tt.want)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&listQuery{Limit: 100}).ToAPIError()
	if single.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", single.Code, ErrorCode)
	}
	if single.Details["field"] != "limit" {
		t.Errorf("Details[field] = %v, want limit", single.Details["field"])
	}

	multi := ValidateStruct(&listQuery{Limit: 100, SortBy: "nope"}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v, want 2 entries", multi.Details["fields"])
	}
	if !strings.Contains(multi.Message, "; ") {
		t.Errorf("multi-field message should be joined: %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty message = %q", empty.Message)
	}
}

func TestNewFieldError(t *testing.T) {
	verr := NewFieldError("limit", "integer", "limit must be an integer")

	if verr.Error() != "limit must be an integer" {
		t.Errorf("Error() = %q", verr.Error())
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Details["field"] != "limit" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"viewer-42", true},
		{"U_1", true},
		{"", false},
		{"alice:x", false},
		{"a/b", false},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
