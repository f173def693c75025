package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("COMPANY_NAME", "Khaleej Logistics LLC")
	t.Setenv("WPS_EMPLOYER_CODE", "EMPL0001234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Khaleej Logistics LLC", cfg.Company.Name)
	assert.Equal(t, "EMPL0001234", cfg.Company.EmployerCode)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "output", cfg.App.OutputDir)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("COMPANY_NAME", "")
	t.Setenv("WPS_EMPLOYER_CODE", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMPANY_NAME")
}
