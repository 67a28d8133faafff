// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cybrota/avlviz/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "tree:\n  insert_policy: ordered\ndisplay:\n  level_height: 4\n")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, avl.PolicyOrdered, config.Policy())
	assert.Equal(t, 4, config.Display.LevelHeight)
	// untouched keys keep their defaults
	assert.Equal(t, 10, config.Display.CacheMinutes)
	assert.Equal(t, 200, config.Journal.MaxEntries)
}

func TestLoadConfigFromRejectsBadValues(t *testing.T) {
	testCases := map[string]string{
		"unknown policy": "tree:\n  insert_policy: sideways\n",
		"flat levels":    "display:\n  level_height: 1\n",
		"empty journal":  "journal:\n  max_entries: 0\n",
		"not yaml":       "tree: [unterminated\n",
	}
	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfigFrom(writeTempConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, avl.PolicyLiteral, config.Policy())
	assert.Equal(t, 3, config.Display.LevelHeight)
}

func TestLoadConfigReportsInvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	body := "tree:\n  insert_policy: ordered\ndisplay:\n  level_height: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(body), 0644))

	config, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "level_height")
}

func TestLoadConfigReadsValidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	body := "tree:\n  insert_policy: ordered\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(body), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, avl.PolicyOrdered, config.Policy())
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defer func() { policyFlag = "" }()

	policyFlag = "ordered"
	_, policy, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, avl.PolicyOrdered, policy)

	policyFlag = "sideways"
	_, _, err = loadSettings()
	assert.Error(t, err)

	// a broken file stops the command rather than falling back to literal
	policyFlag = ""
	body := "tree:\n  insert_policy: ordered\ndisplay:\n  level_height: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(body), 0644))
	config, _, err := loadSettings()
	require.Error(t, err)
	assert.Nil(t, config)
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, writeDefaultConfig(path))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLogPath(t *testing.T) {
	config := defaults()
	config.Log.File = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", config.LogPath())

	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".avlviz.log"), defaults().LogPath())
}
