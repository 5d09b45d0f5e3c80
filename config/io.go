// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Formats are the supported settings file formats.
type Formats int32

const (
	// TOML is the default settings file format.
	TOML Formats = iota

	// YAML is used for files ending in .yaml or .yml.
	YAML
)

// FormatForFile returns the format for the given filename,
// based on its extension.
func FormatForFile(filename string) (Formats, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return TOML, errors.Errorf("config: unsupported settings file extension %q", ext)
	}
}

// Read decodes settings in the given format from b on top of the
// current values, so that missing keys keep their values.
func (s *Settings) Read(b []byte, format Formats) error {
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(b, s)
	default:
		err = toml.Unmarshal(b, s)
	}
	if err != nil {
		return errors.Wrap(err, "config: decoding settings")
	}
	return s.Validate()
}

// Write encodes the settings in the given format.
func (s *Settings) Write(format Formats) ([]byte, error) {
	var b []byte
	var err error
	switch format {
	case YAML:
		b, err = yaml.Marshal(s)
	default:
		b, err = toml.Marshal(s)
	}
	return b, errors.Wrap(err, "config: encoding settings")
}

// Open reads settings from the given file, starting from the defaults.
// The format is determined by the file extension.
func Open(filename string) (*Settings, error) {
	format, err := FormatForFile(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "config.Open")
	}
	s := NewSettings()
	if err := s.Read(b, format); err != nil {
		return nil, errors.Wrapf(err, "config.Open %s", filename)
	}
	return s, nil
}

// Save writes the settings to the given file.
// The format is determined by the file extension.
func (s *Settings) Save(filename string) error {
	format, err := FormatForFile(filename)
	if err != nil {
		return err
	}
	b, err := s.Write(format)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(filename, b, 0666), "config.Save")
}
