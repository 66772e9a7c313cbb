package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Source holds the per-provider knobs every adapter shares. Priority
// drives dedup conflict resolution: lower number wins. Zero means
// "assign by registration order" (see Normalize).
type Source struct {
	Enabled  bool `yaml:"enabled" json:"enabled"`
	Priority int  `yaml:"priority" json:"priority"`
}

type AdzunaSource struct {
	Source  `yaml:",inline"`
	Country string `yaml:"country" json:"country"`
}

type GreenhouseSource struct {
	Source `yaml:",inline"`
	// board slugs as in boards.greenhouse.io/<slug>
	Boards []string `yaml:"boards" json:"boards"`
}

type AlertsSource struct {
	Source   `yaml:",inline"`
	IMAPHost string   `yaml:"imap_host" json:"imap_host"`
	IMAPPort int      `yaml:"imap_port" json:"imap_port"`
	Username string   `yaml:"username" json:"username"`
	Senders  []string `yaml:"senders" json:"senders"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Search struct {
		// Default criteria for the background refresh; refresh is off
		// when the query is empty or refresh_minutes is 0.
		DefaultQuery   string `yaml:"default_query" json:"default_query"`
		DefaultCity    string `yaml:"default_city" json:"default_city"`
		RefreshMinutes int    `yaml:"refresh_minutes" json:"refresh_minutes"`
	} `yaml:"search" json:"search"`

	Sources struct {
		JSearch    Source           `yaml:"jsearch" json:"jsearch"`
		Adzuna     AdzunaSource     `yaml:"adzuna" json:"adzuna"`
		Reed       Source           `yaml:"reed" json:"reed"`
		Remotive   Source           `yaml:"remotive" json:"remotive"`
		WebSearch  Source           `yaml:"websearch" json:"websearch"`
		Greenhouse GreenhouseSource `yaml:"greenhouse" json:"greenhouse"`
		Alerts     AlertsSource     `yaml:"alerts" json:"alerts"`
	} `yaml:"sources" json:"sources"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	Normalize(&cfg)
	return cfg, nil
}

// Normalize fills defaults: port, adzuna country, imap port, and dedup
// priorities 1..N in declaration order for any source left at zero.
func Normalize(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 38572
	}
	if cfg.Sources.Alerts.IMAPPort == 0 {
		cfg.Sources.Alerts.IMAPPort = 993
	}
	if cfg.Sources.Adzuna.Country == "" {
		cfg.Sources.Adzuna.Country = "us"
	}

	prios := []*int{
		&cfg.Sources.JSearch.Priority,
		&cfg.Sources.Adzuna.Priority,
		&cfg.Sources.Reed.Priority,
		&cfg.Sources.Remotive.Priority,
		&cfg.Sources.WebSearch.Priority,
		&cfg.Sources.Greenhouse.Priority,
		&cfg.Sources.Alerts.Priority,
	}
	next := 1
	for _, p := range prios {
		if *p == 0 {
			*p = next
		}
		next = *p + 1
	}
}
