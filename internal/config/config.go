package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml next
// to the executable.
type AppConfig struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	CORS      CORSConfig      `toml:"cors"`
	Marketing MarketingConfig `toml:"marketing"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds storage settings. MaxAnalyses caps the in-memory result
// store; the oldest analyses are evicted past it.
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	MaxAnalyses int    `toml:"max_analyses"`
}

// CORSConfig lists the allowed browser origins.
type CORSConfig struct {
	Origins []string `toml:"origins"`
}

// MarketingConfig holds the marketing-summary multipliers.
type MarketingConfig struct {
	RevenueUplift  float64 `toml:"revenue_uplift"`
	ConversionRate float64 `toml:"conversion_rate"`
	ROIEstimate    float64 `toml:"roi_estimate"`
}

// LoadConfigInfo carries metadata about what the config file specified.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8000,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     "data",
			MaxAnalyses: 100,
		},
		CORS: CORSConfig{
			Origins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		Marketing: MarketingConfig{
			RevenueUplift:  1.15,
			ConversionRate: 0.12,
			ROIEstimate:    2.5,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	serverAny, ok := raw["server"]
	if !ok {
		return false
	}
	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml and reports load metadata. A missing
// file yields the defaults without error.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(cfg)
	return cfg, info, nil
}

// LoadConfig loads config.toml from the executable directory.
func LoadConfig() (*AppConfig, error) {
	cfg, _, err := LoadConfigWithInfo()
	return cfg, err
}

// applyEnvOverrides lets the environment override deploy-specific settings.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORS.Origins = origins
		}
	}
}

// EnsureDataDir creates the data directory next to the executable and
// returns its path.
func EnsureDataDir(cfg *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dataDir := cfg.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
