package aoc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the config file looked up in the working directory
// when no --config flag is given.
const ConfigFileName = ".aoc.yaml"

// ErrConfigNotFound is returned by LoadConfig when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config controls where puzzle inputs come from.
type Config struct {
	// InputDir caches downloaded inputs as <year>/<day>.input.
	InputDir string `yaml:"input_dir"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	BaseURL     string `yaml:"base_url"`

	// Session is taken from AOC_SESSION (environment or .env) and wins
	// over SessionFile.
	Session string `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		BaseURL:     "https://adventofcode.com",
	}
}

// LoadConfig reads the YAML config at path on top of DefaultConfig. It
// returns ErrConfigNotFound if path does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// loadConfig resolves the effective config. A missing default config
// file is fine; a missing explicit one is not.
func loadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) || explicit {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = DefaultConfig()
	}
	cfg.Session = os.Getenv("AOC_SESSION")
	return cfg, nil
}

func (c *Config) session() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// fileOrFetch returns the contents of filename under InputDir, downloading
// it from url first if it is not there yet.
func (c *Config) fileOrFetch(filename, url string) ([]byte, error) {
	filename = filepath.Join(c.InputDir, filename)
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	body, err := c.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Config) fetch(url string) ([]byte, error) {
	session, err := c.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
