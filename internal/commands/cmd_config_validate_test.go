package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lobby/internal/core/config"
)

func TestCollectIssues(t *testing.T) {
	assert.Nil(t, collectIssues(nil))

	plain := collectIssues(errors.New("toast.anchor is bad"))
	require.Len(t, plain, 1)
	assert.Equal(t, "config", plain[0].Field)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = "ftp://example.com"
	cfg.API.Timeout = 0

	issues := collectIssues(cfg.ValidateDeep(""))
	fields := make([]string, 0, len(issues))
	for _, i := range issues {
		fields = append(fields, i.Field)
	}
	assert.ElementsMatch(t, []string{"api.base_url", "api.timeout"}, fields)
}
