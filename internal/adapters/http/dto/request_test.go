package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

type validator interface {
	Validate() error
}

func TestRequests_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       validator
		wantField string
	}{
		{name: "project with name", req: &dto.CreateProjectRequest{Name: "Garden"}},
		{name: "project without name", req: &dto.CreateProjectRequest{Name: "  "}, wantField: "name"},
		{name: "members list", req: &dto.MembersRequest{Members: []string{"M1", "M2"}}},
		{name: "empty members list", req: &dto.MembersRequest{}},
		{name: "blank member", req: &dto.MembersRequest{Members: []string{"M1", " "}}, wantField: "members"},
		{name: "channel", req: &dto.ChannelRequest{Channel: "C1"}},
		{name: "blank channel", req: &dto.ChannelRequest{}, wantField: "channel"},
		{name: "category", req: &dto.CategoryRequest{Category: "K1"}},
		{name: "blank category", req: &dto.CategoryRequest{}, wantField: "category"},
		{name: "positive delta", req: &dto.AdjustValueRequest{Delta: 5}},
		{name: "negative delta", req: &dto.AdjustValueRequest{Delta: -5}},
		{name: "zero delta", req: &dto.AdjustValueRequest{}, wantField: "delta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		wantField string
	}{
		{name: "absolute due", req: dto.CreateTaskRequest{Name: "Weed", Value: 10, Due: timePtr(due)}},
		{name: "relative due", req: dto.CreateTaskRequest{Name: "Weed", Value: 10, DueIn: "1w2d"}},
		{name: "zero value allowed", req: dto.CreateTaskRequest{Name: "Weed", DueIn: "1h"}},
		{name: "missing name", req: dto.CreateTaskRequest{Value: 10, DueIn: "1h"}, wantField: "name"},
		{name: "negative value", req: dto.CreateTaskRequest{Name: "Weed", Value: -1, DueIn: "1h"}, wantField: "value"},
		{name: "no due", req: dto.CreateTaskRequest{Name: "Weed"}, wantField: "due"},
		{name: "both dues", req: dto.CreateTaskRequest{Name: "Weed", Due: timePtr(due), DueIn: "1h"}, wantField: "due"},
		{name: "malformed due_in", req: dto.CreateTaskRequest{Name: "Weed", DueIn: "soon"}, wantField: "due_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateTaskRequest_DueTime(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 12, 15, 0, 0, 0, time.UTC)
	due := now.Add(72 * time.Hour)

	abs := dto.CreateTaskRequest{Due: &due}
	if got := abs.DueTime(now); !got.Equal(due) {
		t.Errorf("DueTime(absolute) = %v, want %v", got, due)
	}

	rel := dto.CreateTaskRequest{DueIn: "1d2h"}
	if got, want := rel.DueTime(now), now.Add(26*time.Hour); !got.Equal(want) {
		t.Errorf("DueTime(relative) = %v, want %v", got, want)
	}
}

func TestCreateReminderRequest(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 12, 15, 0, 0, 0, time.UTC)

	req := dto.CreateReminderRequest{Message: "water the plants", In: "30m"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if got, want := req.FireAt(now), now.Add(30*time.Minute); !got.Equal(want) {
		t.Errorf("FireAt() = %v, want %v", got, want)
	}

	requireValidationField(t, (&dto.CreateReminderRequest{In: "1h"}).Validate(), "message")
	requireValidationField(t, (&dto.CreateReminderRequest{Message: "x"}).Validate(), "at")
	requireValidationField(t, (&dto.CreateReminderRequest{Message: "x", In: "later"}).Validate(), "in")
}

func TestCreateTaskRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := (&dto.CreateTaskRequest{Value: -3}).Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}

	expectedFields := []string{"name", "value", "due"}
	for _, field := range expectedFields {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
		}
	}
	if len(verr.Fields) != len(expectedFields) {
		t.Errorf("ValidationError.Fields has %d entries, want %d", len(verr.Fields), len(expectedFields))
	}
}
