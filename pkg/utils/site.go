package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the YAML site configuration (site.yaml). It describes where
// content comes from, not how it is rendered.
type SiteConfig struct {
	Title      string `yaml:"title"`
	BaseURL    string `yaml:"base_url"`
	ContentDir string `yaml:"content_dir"`
	FeedURL    string `yaml:"feed_url"` // optional remote feed source
	HTTPAddr   string `yaml:"http_addr"`
	TCPAddr    string `yaml:"tcp_addr"` // live-reload TCP listener
	UDPAddr    string `yaml:"udp_addr"` // notify listener
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:      "bloghub",
		ContentDir: "content",
		HTTPAddr:   ":8080",
		TCPAddr:    ":7070",
		UDPAddr:    ":7071",
	}
}

// LoadSiteConfig reads site.yaml from the given path. A missing file is not an
// error: defaults are returned so a bare checkout still runs.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := DefaultSiteConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.TCPAddr == "" {
		cfg.TCPAddr = ":7070"
	}
	if cfg.UDPAddr == "" {
		cfg.UDPAddr = ":7071"
	}
	return cfg, nil
}
