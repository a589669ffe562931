package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/email"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Defaults()
}

func TestLoadRunConfig(t *testing.T) {
	resetViper(t)
	viper.Set("analyze.input", "export.xlsx")
	viper.Set("analyze.output", "Output/analyse.xlsx")
	viper.Set("store.dir", "/var/lib/backorder/store")
	viper.Set("history.path", "/var/lib/backorder/runs.db")
	viper.Set("categories.default", 3)
	viper.Set("filters.location", "DSV")

	cfg, err := LoadRunConfig()
	require.NoError(t, err)

	assert.Equal(t, "export.xlsx", cfg.InputPath)
	assert.Equal(t, "Output/analyse.xlsx", cfg.OutputPath)
	assert.Equal(t, "Output/analyse_Emails.xlsx", cfg.EmailReportPath)
	// The run owns its store, history, and classification settings;
	// nothing downstream re-reads viper.
	assert.Equal(t, "/var/lib/backorder/store", cfg.StoreDir)
	assert.Equal(t, "/var/lib/backorder/runs.db", cfg.HistoryPath)
	assert.Equal(t, 3, cfg.DefaultCategory)
	assert.Equal(t, "DSV", cfg.Location)
	assert.Equal(t, []string{"VP", "VO"}, cfg.ExemptPrefixes)
}

func TestLoadRunConfig_MissingInput(t *testing.T) {
	resetViper(t)

	_, err := LoadRunConfig()
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoadRunConfig_TemplateOverride(t *testing.T) {
	resetViper(t)
	viper.Set("analyze.input", "export.xlsx")
	viper.Set("email.templates.1.subject", "Niet leverbaar: {{.ItemNo}}")
	viper.Set("email.templates.1.default_link", "https://parts.example.com")

	cfg, err := LoadRunConfig()
	require.NoError(t, err)

	tpl := cfg.Templates[1]
	assert.Equal(t, "Niet leverbaar: {{.ItemNo}}", tpl.Subject)
	assert.Equal(t, "https://parts.example.com", tpl.DefaultLink)
	// Untouched attributes keep the built-in values.
	assert.Equal(t, email.DefaultTemplates()[1].Body, tpl.Body)
	assert.Equal(t, email.DefaultTemplates()[3], cfg.Templates[3])
}

func TestLoadRunConfig_InvalidTemplateKey(t *testing.T) {
	resetViper(t)
	viper.Set("analyze.input", "export.xlsx")
	viper.Set("email.templates.abc.subject", "x")

	_, err := LoadRunConfig()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
