package provider

import (
	"fmt"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/provider/adzuna"
	"jobscout-engine/internal/provider/alerts"
	"jobscout-engine/internal/provider/greenhouse"
	"jobscout-engine/internal/provider/jsearch"
	"jobscout-engine/internal/provider/reed"
	"jobscout-engine/internal/provider/remotive"
	"jobscout-engine/internal/provider/util"
	"jobscout-engine/internal/provider/websearch"
)

// Credentials carries the resolved upstream secrets so this package
// never reads the environment itself.
type Credentials struct {
	JSearchAPIKey string
	AdzunaAppID   string
	AdzunaAppKey  string
	ReedAPIKey    string
	IMAPPassword  string
}

// Build assembles the enabled providers in fixed registration order with
// their configured priorities. The returned slice order is the order
// SourceResults appear in every aggregated response.
func Build(cfg config.Config, creds Credentials, limiter *util.HostLimiter) []Registered {
	var out []Registered

	if cfg.Sources.JSearch.Enabled {
		out = append(out, Registered{
			Provider: jsearch.New(jsearch.Config{APIKey: creds.JSearchAPIKey}, limiter),
			Priority: cfg.Sources.JSearch.Priority,
		})
	}
	if cfg.Sources.Adzuna.Enabled {
		out = append(out, Registered{
			Provider: adzuna.New(adzuna.Config{
				AppID:   creds.AdzunaAppID,
				AppKey:  creds.AdzunaAppKey,
				Country: cfg.Sources.Adzuna.Country,
			}, limiter),
			Priority: cfg.Sources.Adzuna.Priority,
		})
	}
	if cfg.Sources.Reed.Enabled {
		out = append(out, Registered{
			Provider: reed.New(reed.Config{APIKey: creds.ReedAPIKey}, limiter),
			Priority: cfg.Sources.Reed.Priority,
		})
	}
	if cfg.Sources.Remotive.Enabled {
		out = append(out, Registered{
			Provider: remotive.New(remotive.Config{}, limiter),
			Priority: cfg.Sources.Remotive.Priority,
		})
	}
	if cfg.Sources.WebSearch.Enabled {
		out = append(out, Registered{
			Provider: websearch.New(websearch.Config{}, limiter),
			Priority: cfg.Sources.WebSearch.Priority,
		})
	}
	if cfg.Sources.Greenhouse.Enabled {
		out = append(out, Registered{
			Provider: greenhouse.New(greenhouse.Config{
				Boards: cfg.Sources.Greenhouse.Boards,
			}, limiter),
			Priority: cfg.Sources.Greenhouse.Priority,
		})
	}
	if cfg.Sources.Alerts.Enabled {
		out = append(out, Registered{
			Provider: alerts.New(alerts.Config{
				IMAPAddr: fmt.Sprintf("%s:%d", cfg.Sources.Alerts.IMAPHost, cfg.Sources.Alerts.IMAPPort),
				Username: cfg.Sources.Alerts.Username,
				Password: creds.IMAPPassword,
				Senders:  cfg.Sources.Alerts.Senders,
			}),
			Priority: cfg.Sources.Alerts.Priority,
		})
	}

	return out
}
