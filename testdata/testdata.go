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

// Package testdata embeds the end-to-end fixture corpus: one YAML file
// per scenario, each naming a copybook, a hex record, a code page, and
// the expected dotted-path leaf values.
package testdata

import (
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var fixtures embed.FS

// Case is one fixture: a copybook, one encoded record, and the leaf
// values it must decode to.
type Case struct {
	Name string `yaml:"-"`

	Copybook string            `yaml:"copybook"`
	Hex      string            `yaml:"hex"`
	CodePage string            `yaml:"codepage"`
	Expect   map[string]string `yaml:"expect"`

	Record []byte `yaml:"-"`
}

// LoadAll reads every embedded fixture, decoding its hex record into
// bytes, and fails the test immediately on any malformed fixture.
func LoadAll(t testing.TB) []*Case {
	t.Helper()

	var cases []*Case
	err := fs.WalkDir(fixtures, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := fs.ReadFile(fixtures, path)
		require.NoError(t, err, "reading fixture %q", path)

		c := new(Case)
		require.NoError(t, yaml.Unmarshal(data, c), "parsing fixture %q", path)
		c.Name = strings.TrimSuffix(path, ".yaml")

		record, err := hex.DecodeString(strings.ReplaceAll(c.Hex, " ", ""))
		require.NoError(t, err, "decoding hex in fixture %q", path)
		c.Record = record

		cases = append(cases, c)
		return nil
	})
	require.NoError(t, err)
	return cases
}
