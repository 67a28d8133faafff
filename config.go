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
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybrota/avlviz/avl"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlviz.yaml"

type TreeConfig struct {
	InsertPolicy string `yaml:"insert_policy"`
}

type DisplayConfig struct {
	LevelHeight  int  `yaml:"level_height"`
	ShowBalance  bool `yaml:"show_balance"`
	CacheMinutes int  `yaml:"cache_minutes"`
}

type JournalConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

type LogConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Display DisplayConfig `yaml:"display"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		InsertPolicy: avl.PolicyLiteral.String(),
	},
	Display: DisplayConfig{
		LevelHeight:  3,
		ShowBalance:  false,
		CacheMinutes: 10,
	},
	Journal: JournalConfig{
		MaxEntries: 200,
	},
}

// LoadConfig reads ~/.avlviz.yaml. A missing or unreadable file yields the
// defaults so the tool always starts; a file that fails to parse or validate
// is an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}
	return parseConfig(data, configPath)
}

// LoadConfigFrom parses the file at path on top of the defaults and
// validates it.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func (c *Config) validate() error {
	if _, err := avl.ParseInsertPolicy(c.Tree.InsertPolicy); err != nil {
		return err
	}
	if c.Display.LevelHeight < 2 {
		return fmt.Errorf("display.level_height must be at least 2, got %d", c.Display.LevelHeight)
	}
	if c.Display.CacheMinutes < 0 {
		return fmt.Errorf("display.cache_minutes must not be negative")
	}
	if c.Journal.MaxEntries < 1 {
		return fmt.Errorf("journal.max_entries must be positive")
	}
	return nil
}

// Policy returns the configured insertion policy. validate has already
// rejected unknown names for loaded files.
func (c *Config) Policy() avl.InsertPolicy {
	p, err := avl.ParseInsertPolicy(c.Tree.InsertPolicy)
	if err != nil {
		return avl.PolicyLiteral
	}
	return p
}

// LogPath is where diagnostics go while a full-screen UI owns the terminal.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "avlviz.log")
	}
	return filepath.Join(homeDir, ".avlviz.log")
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avlviz Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	policyDesc := "greater keys are discarded, equal keys descend right"
	if config.Policy() == avl.PolicyOrdered {
		policyDesc = "equal keys are discarded, greater keys descend right"
	}
	fmt.Printf("  • %sinsert_policy%s: %s\n", Green, Reset, config.Policy())
	fmt.Printf("    %s\n\n", policyDesc)

	fmt.Printf("🖼  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %slevel_height%s: %d\n", Green, Reset, config.Display.LevelHeight)
	fmt.Printf("  • %sshow_balance%s: %t\n", Green, Reset, config.Display.ShowBalance)
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.Display.CacheMinutes)

	fmt.Printf("📜 %sJournal:%s\n", Green, Reset)
	fmt.Printf("  • %smax_entries%s: %d\n\n", Green, Reset, config.Journal.MaxEntries)

	fmt.Printf("🪵 Log file: %s\n\n", config.LogPath())

	if config.Policy() == avl.PolicyLiteral {
		fmt.Printf("💡 To store every distinct key instead, edit %s:\n", configPath)
		fmt.Printf("   tree:\n     insert_policy: ordered\n")
	} else {
		fmt.Printf("💡 To reproduce the literal insertion rule, edit %s:\n", configPath)
		fmt.Printf("   tree:\n     insert_policy: literal\n")
	}
}
