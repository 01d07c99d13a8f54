package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ConfigPathEnv overrides the directory searched for .restyle.yaml.
const ConfigPathEnv = "RESTYLE_CONFIG_PATH"

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads .restyle.yaml from $RESTYLE_CONFIG_PATH or the working
// directory. Every key can also come from RESTYLE_<KEY>.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.restyle.db")
	v.SetConfigName(".restyle") // .yaml is implicit
	v.SetEnvPrefix("RESTYLE")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

// DirConfig is a Config rooted at a fixed directory.
type DirConfig string

func (d DirConfig) BasePath() string {
	return string(d)
}
