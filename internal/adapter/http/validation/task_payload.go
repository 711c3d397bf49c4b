package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	siteName := strings.TrimSpace(req.SiteName)
	assignedToID := strings.TrimSpace(req.AssignedToID)
	if title == "" || siteName == "" || assignedToID == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:        title,
		Description:  req.Description,
		SiteName:     siteName,
		AssignedToID: assignedToID,
		IsPermanent:  req.IsPermanent,
	}, nil
}

func BuildCompleteTaskInput(req dto.CompleteTaskRequest) domain.CompleteTaskInput {
	return domain.CompleteTaskInput{
		Cost:            ParseCost(req.Cost),
		CostDescription: req.CostDescription,
	}
}

// ParseCost coerces the raw form value into a non-negative amount. Missing,
// malformed or negative input becomes zero; bad cost never fails completion.
func ParseCost(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
