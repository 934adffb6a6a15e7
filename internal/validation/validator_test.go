// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type lineItem struct {
	Ref      string `json:"ref" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

type basket struct {
	Label  string     `json:"label" validate:"omitempty,max=8"`
	Seats  int        `json:"seats" validate:"gte=1,lte=50"`
	Status string     `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
	Items  []lineItem `json:"items" validate:"max=3,dive"`
	Secret string     `json:"-" validate:"omitempty,min=2"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input basket
	}{
		{"minimal", basket{Seats: 1}},
		{"with items", basket{Seats: 4, Items: []lineItem{{Ref: "a", Quantity: 2}}}},
		{"all fields", basket{Label: "patio", Seats: 50, Status: "open", Items: []lineItem{{Ref: "b", Quantity: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     basket
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"seats zero", basket{Seats: 0}, "seats", "gte", "seats must be greater than or equal to 1"},
		{"seats too many", basket{Seats: 51}, "seats", "lte", "seats must be less than or equal to 50"},
		{"label too long", basket{Seats: 1, Label: "verylonglabel"}, "label", "max", "label must be at most 8 characters"},
		{"bad status", basket{Seats: 1, Status: "lost"}, "status", "oneof", "status must be one of: open closed"},
		{"too many items", basket{Seats: 1, Items: make([]lineItem, 4)}, "items", "max", "items must be at most 3 items"},
		{"nested quantity", basket{Seats: 1, Items: []lineItem{{Ref: "a", Quantity: 1}, {Ref: "b", Quantity: 0}}}, "items[1].quantity", "gte", "items[1].quantity must be greater than or equal to 1"},
		{"nested required", basket{Seats: 1, Items: []lineItem{{Quantity: 1}}}, "items[0].ref", "required", "items[0].ref is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) == 0 {
				t.Fatal("expected at least one field error")
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := ValidateStruct(&basket{Seats: 0})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Details["field"] != "seats" {
			t.Errorf("Details[field] = %v, want seats", apiErr.Details["field"])
		}
		if apiErr.Details["value"] != 0 {
			t.Errorf("Details[value] = %v, want 0", apiErr.Details["value"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := ValidateStruct(&basket{Seats: 0, Status: "lost"})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
		}
		if !strings.Contains(apiErr.Message, "seats") || !strings.Contains(apiErr.Message, "status") {
			t.Errorf("Message = %q, want both fields mentioned", apiErr.Message)
		}
		if !strings.Contains(err.Error(), "; ") {
			t.Errorf("Error() = %q, want joined messages", err.Error())
		}
	})

	t.Run("empty", func(t *testing.T) {
		empty := &RequestValidationError{}
		if empty.Error() != "validation failed" {
			t.Errorf("Error() = %q", empty.Error())
		}
		if empty.ToAPIError().Message != "Validation failed" {
			t.Errorf("Message = %q", empty.ToAPIError().Message)
		}
	})
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	if err.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", err.Errors()[0].Field())
	}
}
