package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const FileName = "symptrack.yaml"

type Config struct {
	DataDir    string `yaml:"-"`
	StorePath  string `yaml:"store_path" env:"SYMPTRACK_STORE"`
	ReportsDir string `yaml:"reports_dir" env:"SYMPTRACK_REPORTS_DIR"`
	DBPath     string `yaml:"db_path" env:"SYMPTRACK_DB"`
	LogLevel   string `yaml:"log_level" env:"SYMPTRACK_LOG_LEVEL"`
	DrugA      string `yaml:"drug_a" env:"SYMPTRACK_DRUG_A"`
	DrugB      string `yaml:"drug_b" env:"SYMPTRACK_DRUG_B"`
	Markdown   bool   `yaml:"markdown" env:"SYMPTRACK_MARKDOWN"`
}

func Defaults(dataDir string) Config {
	return Config{
		DataDir:    dataDir,
		StorePath:  "symptoms.csv",
		ReportsDir: "reports",
		DBPath:     filepath.Join(".symptrack", "symptrack.db"),
		LogLevel:   "warn",
		DrugA:      "Drug A",
		DrugB:      "Drug B",
	}
}

// Load layers defaults, the optional symptrack.yaml in dataDir and
// SYMPTRACK_* environment variables, in that order.
func Load(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	cfg := Defaults(dataDir)

	raw, err := os.ReadFile(filepath.Join(dataDir, FileName))
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(raw))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode %s: %w", FileName, err)
		}
		cfg.DataDir = dataDir
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.DrugA) == "" {
		cfg.DrugA = "Drug A"
	}
	if strings.TrimSpace(cfg.DrugB) == "" {
		cfg.DrugB = "Drug B"
	}
	cfg.resolve()
	return cfg, nil
}

func (c *Config) resolve() {
	c.StorePath = c.abs(c.StorePath)
	c.ReportsDir = c.abs(c.ReportsDir)
	c.DBPath = c.abs(c.DBPath)
}

func (c Config) abs(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}
