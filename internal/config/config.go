// Copyright 2026 The Copybook Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the layered run configuration: built-in defaults,
// overlaid by an optional YAML file, overlaid in turn by CLI flags. The
// merge itself happens by construction in cmd/copybookconv: a Config
// loaded here becomes the default value of each flag, so an unset flag
// keeps the YAML (or built-in) value and a passed flag always wins.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Input describes where and how to read source records.
type Input struct {
	File     string `yaml:"file"`
	Encoding string `yaml:"encoding"`
}

// Copybook names the schema document.
type Copybook struct {
	File string `yaml:"file"`
}

// Output describes the decoded-record destination.
type Output struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// Validation controls the optional dual-pass validator.
type Validation struct {
	Enabled          bool    `yaml:"enabled"`
	Tolerance        float64 `yaml:"tolerance"`
	ReportFile       string  `yaml:"report_file"`
	ErrorThreshold   float64 `yaml:"error_threshold"`
	CategorizeErrors bool    `yaml:"categorize_errors"`
}

// Performance controls worker concurrency and I/O buffering.
type Performance struct {
	Workers    int `yaml:"workers"`
	BufferSize int `yaml:"buffer_size"`
}

// Config is the full set of run options.
type Config struct {
	Input       Input       `yaml:"input"`
	Copybook    Copybook    `yaml:"copybook"`
	Output      Output      `yaml:"output"`
	Validation  Validation  `yaml:"validation"`
	Performance Performance `yaml:"performance"`
	SkipOnError bool        `yaml:"skip_on_error"`
	Summary     string      `yaml:"summary_file"`
}

// Default returns the built-in defaults, the bottom layer of the merge.
func Default() Config {
	return Config{
		Input:       Input{Encoding: "cp037"},
		Output:      Output{Format: "plain"},
		Validation:  Validation{Tolerance: 0.0001, ErrorThreshold: 1.0},
		Performance: Performance{Workers: 1, BufferSize: 64 * 1024},
	}
}

// Load reads a YAML config file and overlays it onto Default(). A missing
// path is not an error — Load simply returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
