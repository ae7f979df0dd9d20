// Package config loads the qmin YAML configuration file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pborges/qmin/internal/minimize"
)

const DefaultFile = ".qmin.yaml"

type Config struct {
	Mode      string   `yaml:"mode"`
	Reduced   bool     `yaml:"reduced"`
	Workers   int      `yaml:"workers"`
	VarNames  []string `yaml:"var_names,omitempty"`
}

func Default() Config {
	return Config{
		Mode:    minimize.SinglePass.String(),
		Workers: 4,
	}
}

// Load reads path over the defaults. A missing file yields the defaults
// unless it was asked for explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if _, err := ParseMode(cfg.Mode); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Write stores cfg at path.
func Write(path string, cfg Config) error {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

func ParseMode(s string) (minimize.Mode, error) {
	switch s {
	case "", minimize.SinglePass.String():
		return minimize.SinglePass, nil
	case minimize.Exhaustive.String():
		return minimize.Exhaustive, nil
	}
	return 0, errors.Errorf("unknown mode %q (want single or exhaustive)", s)
}

// Options converts cfg for the minimizer.
func (c Config) Options() (minimize.Options, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return minimize.Options{}, err
	}
	return minimize.Options{
		Mode:     mode,
		VarNames: c.VarNames,
		Reduced:  c.Reduced,
	}, nil
}
