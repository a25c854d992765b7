package service

import (
	"context"
	"testing"
	"time"

	"skillbridge/internal/models"
	"skillbridge/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validListingInput() InternshipInput {
	deadline := time.Now().AddDate(0, 2, 0)
	return InternshipInput{
		Title:               strPtr("Backend Developer Intern"),
		Company:             strPtr("Acme Corp"),
		Description:         strPtr("Build and ship APIs"),
		Skills:              []string{"Go"},
		Country:             strPtr("India"),
		Duration:            strPtr("6 months"),
		ApplicationDeadline: &deadline,
	}
}

func TestInternshipService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewInternshipService(&internshipRepoStub{
		createFn: func(context.Context, *models.Internship) error { return nil },
	})

	t.Run("Valid input stamps creator and defaults", func(t *testing.T) {
		internship, err := svc.CreateInternship(ctx, 42, validListingInput())
		require.NoError(t, err)
		assert.EqualValues(t, 42, internship.CreatedByID)
		assert.Equal(t, models.StipendUnpaid, internship.Stipend)
		assert.True(t, internship.IsActive)
	})

	tests := []struct {
		name    string
		mutate  func(*InternshipInput)
		message string
	}{
		{"Missing title", func(in *InternshipInput) { in.Title = nil }, "Title is required"},
		{"Missing company", func(in *InternshipInput) { in.Company = strPtr("") }, "Company is required"},
		{"Missing description", func(in *InternshipInput) { in.Description = nil }, "Description is required"},
		{"Empty skills", func(in *InternshipInput) { in.Skills = []string{} }, "At least one skill is required"},
		{"Missing country", func(in *InternshipInput) { in.Country = nil }, "Country is required"},
		{"Missing duration", func(in *InternshipInput) { in.Duration = nil }, "Duration is required"},
		{"Missing deadline", func(in *InternshipInput) { in.ApplicationDeadline = nil }, "Valid application deadline is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validListingInput()
			tt.mutate(&in)
			_, err := svc.CreateInternship(ctx, 42, in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestInternshipService_ListPagination(t *testing.T) {
	ctx := context.Background()
	var gotFilter repository.ListFilter

	svc := NewInternshipService(&internshipRepoStub{
		listFn: func(_ context.Context, filter repository.ListFilter) ([]models.Internship, int64, error) {
			gotFilter = filter
			return make([]models.Internship, filter.Limit), 23, nil
		},
	})

	t.Run("Pages round up", func(t *testing.T) {
		result, err := svc.ListInternships(ctx, ListInternshipsInput{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 23, result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 3, result.Pages)
		assert.Equal(t, 10, gotFilter.Offset)
	})

	t.Run("Defaults applied to out-of-range values", func(t *testing.T) {
		result, err := svc.ListInternships(ctx, ListInternshipsInput{Page: -1, Limit: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, gotFilter.Limit)
		assert.Equal(t, 0, gotFilter.Offset)
	})
}

func TestInternshipService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	stored := &models.Internship{
		ID:                  1,
		Title:               "Backend Developer Intern",
		Company:             "Acme Corp",
		Description:         "Build and ship APIs",
		Skills:              []string{"Go"},
		Country:             "India",
		Duration:            "6 months",
		Stipend:             "$1000/month",
		ApplicationDeadline: time.Now().AddDate(0, 2, 0),
		IsActive:            true,
	}
	svc := NewInternshipService(&internshipRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Internship, error) { return stored, nil },
		updateFn:  func(context.Context, *models.Internship) error { return nil },
	})

	inactive := false
	internship, err := svc.UpdateInternship(ctx, 1, InternshipInput{
		Title:    strPtr("Senior Backend Intern"),
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Intern", internship.Title)
	assert.False(t, internship.IsActive)
	// Untouched fields survive.
	assert.Equal(t, "Acme Corp", internship.Company)
	assert.Equal(t, "$1000/month", internship.Stipend)
}
