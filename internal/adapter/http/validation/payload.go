package validation

import (
	"errors"
	"strings"

	"github.com/mooosty/bckndmstr/internal/adapter/http/dto"
	"github.com/mooosty/bckndmstr/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

// BuildSubmitTaskInput maps a submission payload onto the service
// input. The service re-validates; this only rejects values that can
// never be valid so handlers can answer before touching storage.
func BuildSubmitTaskInput(req dto.SubmitTaskRequest) (domain.SubmitTaskInput, error) {
	group := domain.TaskGroup(strings.ToLower(strings.TrimSpace(req.Type)))
	if !group.Valid() {
		return domain.SubmitTaskInput{}, ErrInvalidPayload
	}

	return domain.SubmitTaskInput{
		TaskID:     strings.TrimSpace(req.TaskID),
		Type:       group,
		Submission: req.Submission,
	}, nil
}

func BuildDecisionInput(req dto.DecisionRequest) (domain.DecisionInput, error) {
	action := domain.DecisionAction(strings.ToLower(strings.TrimSpace(req.Action)))
	if action != domain.DecisionApprove && action != domain.DecisionReject {
		return domain.DecisionInput{}, ErrInvalidPayload
	}

	return domain.DecisionInput{
		ProjectID: strings.TrimSpace(req.ProjectID),
		UserID:    strings.TrimSpace(req.UserID),
		TaskID:    strings.TrimSpace(req.TaskID),
		Action:    action,
	}, nil
}

func ParseApplicationStatus(value string) (domain.ApplicationStatus, error) {
	status := domain.ApplicationStatus(strings.ToUpper(strings.TrimSpace(value)))
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return "", ErrInvalidPayload
	}
	return status, nil
}
