package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingEvaluationService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingEvaluationService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingEvaluationService.Error(), "evaluation service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
