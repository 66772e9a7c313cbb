package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus structured errors
// the UI can render next to the offending field.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	Normalize(&out)
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.Search.RefreshMinutes < 0 {
		res.addErr("search.refresh_minutes must be >= 0")
	}
	if out.Search.RefreshMinutes > 0 && strings.TrimSpace(out.Search.DefaultQuery) == "" {
		res.addWarn("search.refresh_minutes is set but default_query is empty; background refresh will not run")
	}

	enabled := 0
	for _, s := range []Source{
		out.Sources.JSearch, out.Sources.Adzuna.Source, out.Sources.Reed,
		out.Sources.Remotive, out.Sources.WebSearch,
		out.Sources.Greenhouse.Source, out.Sources.Alerts.Source,
	} {
		if s.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		res.addErr("no sources enabled: enable at least one provider")
	}

	if out.Sources.Greenhouse.Enabled && len(out.Sources.Greenhouse.Boards) == 0 {
		res.addWarn("sources.greenhouse is enabled but has no boards; only sample data will be returned")
	}

	if out.Sources.Alerts.Enabled {
		if strings.TrimSpace(out.Sources.Alerts.IMAPHost) == "" {
			res.addErr("sources.alerts.imap_host is required when alerts are enabled")
		}
		if strings.TrimSpace(out.Sources.Alerts.Username) == "" {
			res.addErr("sources.alerts.username is required when alerts are enabled")
		}
	}

	return out, res
}

// SaveAtomic validates then writes via tmp+rename, keeping one .bak.
func SaveAtomic(path string, cfg Config) error {
	if _, vr := NormalizeAndValidate(cfg); !vr.OK() {
		return errors.New("config validation failed:\n- " + strings.Join(vr.Errors, "\n- "))
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
