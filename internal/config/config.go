package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName        = "contactup"
	configFileName    = "config.yaml"
	logFileName       = "contactup.log"
	defaultServerURL  = "http://localhost:3000"
	envServerURL      = "CONTACTUP_SERVER_URL"
	envDataDir        = "CONTACTUP_DATA_DIR"
	envLogFile        = "CONTACTUP_LOG_FILE"
	envDebug          = "CONTACTUP_DEBUG"
	maxCountryCodeLen = 5
)

// DefaultCountryCodes is the selector set when none is configured.
var DefaultCountryCodes = []string{"+1", "+44", "+34", "+351", "+33", "+49", "+39", "+55", "+52", "+91"}

var ErrInvalidServerURL = errors.New("server_url must be an absolute http(s) URL")

// Config captures startup settings for the client.
type Config struct {
	ServerURL    string   `yaml:"server_url"`
	DataDir      string   `yaml:"data_dir"`
	LogFile      string   `yaml:"log_file"`
	Debug        bool     `yaml:"debug"`
	CountryCodes []string `yaml:"country_codes"`
}

func defaults() Config {
	return Config{
		ServerURL:    defaultServerURL,
		DataDir:      DefaultDataDir(),
		CountryCodes: append([]string(nil), DefaultCountryCodes...),
	}
}

// DefaultDataDir is <user config dir>/contactup, falling back to ~/.config/contactup.
func DefaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "."+appDirName)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, appDirName)
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), configFileName)
}

// Load reads the configuration and validates it.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read applies defaults, then the YAML file at path (missing file is fine), then
// CONTACTUP_* environment variables. The result is not validated so callers can
// layer flag overrides first.
func Read(path string) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := applyFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, logFileName)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fileCfg.ServerURL != "" {
		cfg.ServerURL = fileCfg.ServerURL
	}
	if fileCfg.DataDir != "" {
		cfg.DataDir = fileCfg.DataDir
	}
	if fileCfg.LogFile != "" {
		cfg.LogFile = fileCfg.LogFile
	}
	if fileCfg.Debug {
		cfg.Debug = true
	}
	if len(fileCfg.CountryCodes) > 0 {
		cfg.CountryCodes = fileCfg.CountryCodes
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.ServerURL, err = readRequiredOrDefault(envServerURL, cfg.ServerURL); err != nil {
		return err
	}
	if cfg.DataDir, err = readRequiredOrDefault(envDataDir, cfg.DataDir); err != nil {
		return err
	}
	if cfg.LogFile, err = readRequiredOrDefault(envLogFile, cfg.LogFile); err != nil {
		return err
	}
	if cfg.Debug, err = readBool(envDebug, cfg.Debug); err != nil {
		return err
	}
	return nil
}

// Validate checks the server URL and the country code set.
func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServerURL, c.ServerURL)
	}
	if len(c.CountryCodes) == 0 {
		return errors.New("country_codes must not be empty")
	}
	for _, cc := range c.CountryCodes {
		if !strings.HasPrefix(cc, "+") || len(cc) < 2 || len(cc) > maxCountryCodeLen {
			return fmt.Errorf("invalid country code %q", cc)
		}
		if _, err := strconv.Atoi(cc[1:]); err != nil {
			return fmt.Errorf("invalid country code %q", cc)
		}
	}
	return nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	return raw, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
