package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"49.99", 49.99},
		{" 150 ", 150},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCost(tt.raw))
		})
	}
}

func TestBuildCreateTaskInput_TrimsAndValidates(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:        "  Çatı onarımı  ",
		SiteName:     " Kartepe Sitesi ",
		AssignedToID: " emp-1 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Çatı onarımı", input.Title)
	assert.Equal(t, "Kartepe Sitesi", input.SiteName)
	assert.Equal(t, "emp-1", input.AssignedToID)
}

func TestBuildCreateTaskInput_RejectsBlankFields(t *testing.T) {
	for _, req := range []dto.CreateTaskRequest{
		{SiteName: "Kartepe Sitesi", AssignedToID: "emp-1"},
		{Title: "Çatı onarımı", AssignedToID: "emp-1"},
		{Title: "Çatı onarımı", SiteName: "Kartepe Sitesi"},
		{Title: "   ", SiteName: "Kartepe Sitesi", AssignedToID: "emp-1"},
	} {
		_, err := BuildCreateTaskInput(req)
		require.ErrorIs(t, err, ErrInvalidTaskPayload)
	}
}

func TestBuildCompleteTaskInput_CoercesCost(t *testing.T) {
	desc := "Malzeme ve işçilik"

	input := BuildCompleteTaskInput(dto.CompleteTaskRequest{Cost: "49.99", CostDescription: &desc})
	assert.Equal(t, 49.99, input.Cost)
	require.NotNil(t, input.CostDescription)
	assert.Equal(t, desc, *input.CostDescription)

	input = BuildCompleteTaskInput(dto.CompleteTaskRequest{Cost: "bozuk"})
	assert.Zero(t, input.Cost)
	assert.Nil(t, input.CostDescription)
}
