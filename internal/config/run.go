package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/email"
)

// RunConfig is the immutable configuration for one analysis
// invocation. It is built once from Viper and passed down through the
// pipeline; nothing mutates it afterwards.
type RunConfig struct {
	Templates       map[int]email.Template
	InputPath       string
	OutputPath      string
	EmailReportPath string
	StoreDir        string
	HistoryPath     string
	Location        string
	Reserved        string
	Status          string
	ExemptPrefixes  []string
	DefaultCategory int
}

// Defaults registers the configuration defaults on the global Viper
// instance. Called once from command setup.
func Defaults() {
	viper.SetDefault("analyze.output", "Output/Backorder_Analyse.xlsx")
	viper.SetDefault("filters.location", "")
	viper.SetDefault("filters.reserved", "")
	viper.SetDefault("filters.status", "")
	viper.SetDefault("grouping.exempt_prefixes", []string{"VP", "VO"})
	viper.SetDefault("categories.default", 2)
	viper.SetDefault("store.dir", "~/.config/backorder/store")
	viper.SetDefault("history.path", "~/.local/share/backorder/runs.db")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// LoadRunConfig materializes a RunConfig from the global Viper
// instance.
func LoadRunConfig() (*RunConfig, error) {
	input := ExpandPath(viper.GetString("analyze.input"))
	if input == "" {
		return nil, fmt.Errorf("%w: no input file given", common.ErrMissingConfig)
	}

	output := ExpandPath(viper.GetString("analyze.output"))
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	cfg := &RunConfig{
		InputPath:       input,
		OutputPath:      output,
		EmailReportPath: emailReportPath(output),
		StoreDir:        ExpandPath(viper.GetString("store.dir")),
		HistoryPath:     ExpandPath(viper.GetString("history.path")),
		Location:        viper.GetString("filters.location"),
		Reserved:        viper.GetString("filters.reserved"),
		Status:          viper.GetString("filters.status"),
		ExemptPrefixes:  viper.GetStringSlice("grouping.exempt_prefixes"),
		DefaultCategory: viper.GetInt("categories.default"),
		Templates:       templates,
	}
	return cfg, nil
}

// loadTemplates starts from the built-in templates and applies any
// per-category overrides found under email.templates.<id>.
func loadTemplates() (map[int]email.Template, error) {
	templates := email.DefaultTemplates()

	overrides := viper.GetStringMap("email.templates")
	for key := range overrides {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: email.templates key %q is not a category ID", common.ErrInvalidConfig, key)
		}

		tpl := templates[id]
		prefix := "email.templates." + key + "."
		if v := viper.GetString(prefix + "subject"); v != "" {
			tpl.Subject = v
		}
		if v := viper.GetString(prefix + "body"); v != "" {
			tpl.Body = v
		}
		if v := viper.GetString(prefix + "link_type"); v != "" {
			tpl.LinkType = v
		}
		if v := viper.GetString(prefix + "default_link"); v != "" {
			tpl.DefaultLink = v
		}
		templates[id] = tpl
	}
	return templates, nil
}

// emailReportPath derives the email workbook path from the analysis
// workbook path, matching the <name>_Emails.xlsx convention.
func emailReportPath(output string) string {
	if strings.HasSuffix(output, ".xlsx") {
		return strings.TrimSuffix(output, ".xlsx") + "_Emails.xlsx"
	}
	return output + "_Emails.xlsx"
}
