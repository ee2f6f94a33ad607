package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Report ReportConfig `toml:"report"`
}

// ServerConfig report API configuration
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig source and output locations
type DataConfig struct {
	Folders   []string `toml:"folders"`
	OutputDir string   `toml:"output_dir"`
	DBPath    string   `toml:"db_path"`
}

// ReportConfig output workbook settings
type ReportConfig struct {
	ReferenceCode string `toml:"reference_code"`
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8081,
			DevMode: false,
		},
		Data: DataConfig{
			Folders:   []string{},
			OutputDir: ".",
			DBPath:    filepath.Join("data", "caseinventory.db"),
		},
		Report: ReportConfig{
			ReferenceCode: "SAP 4021445",
		},
	}
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory; a missing
// file yields the defaults
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// environment overrides for local runs
	if v := os.Getenv("CASEINVENTORY_OUTPUT_DIR"); v != "" {
		cfg.Data.OutputDir = v
	}
	if v := os.Getenv("CASEINVENTORY_DB_PATH"); v != "" {
		cfg.Data.DBPath = v
	}

	return cfg, nil
}

// SaveConfig writes the configuration back to config.toml
func SaveConfig(cfg *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}
