package main

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/sandwi/gs-collections-sub005/parallel"
)

// settings is the merged view of the config file, GSC_* environment
// variables and command-line flags.
type settings struct {
	BatchSize   int    `yaml:"batchSize" mapstructure:"batchSize"`
	MinForkSize int    `yaml:"minForkSize" mapstructure:"minForkSize"`
	TaskCount   int    `yaml:"taskCount" mapstructure:"taskCount"`
	Parallelism int    `yaml:"workers" mapstructure:"workers"`
	Output      string `yaml:"output" mapstructure:"output"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
}

const (
	outputText = "text"
	outputYAML = "yaml"
)

func loadSettings(vip *viper.Viper) (settings, error) {
	var s settings
	if err := vip.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "could not decode settings")
	}
	if s.Output == "" {
		s.Output = outputText
	}
	if s.Output != outputText && s.Output != outputYAML {
		return s, fmt.Errorf("unknown output format %q (want %s or %s)", s.Output, outputText, outputYAML)
	}
	return s, nil
}

// options converts the settings to parallel options. Zero fields keep the
// package defaults.
func (s settings) options() ([]parallel.Option, error) {
	var o parallel.Options
	if err := copier.Copy(&o, &s); err != nil {
		return nil, errors.Wrap(err, "could not copy settings")
	}
	return []parallel.Option{parallel.WithOptions(o)}, nil
}
