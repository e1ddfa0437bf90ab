package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/relaycore/agentcore/pkg/types"
)

// Load loads configuration from multiple sources (priority order):
// 1. Global config (~/.agentcore/, then ~/.config/agentcore/)
// 2. Project config (.agentcore/)
// 3. AGENTCORE_CONFIG file, then AGENTCORE_CONFIG_CONTENT inline JSON
// 4. Environment variables
func Load(directory string) (*types.Config, error) {
	config := &types.Config{
		Provider: make(map[string]types.ProviderConfig),
		Agent:    make(map[string]types.AgentConfig),
	}

	// 1. Global config
	if home := os.Getenv("HOME"); home != "" {
		for _, name := range configFileNames {
			loadConfigFile(filepath.Join(home, ".agentcore", name), config)
		}
	}
	globalPath := GetPaths().Config
	for _, name := range configFileNames {
		loadConfigFile(filepath.Join(globalPath, name), config)
	}

	// 2. Project config
	if directory != "" {
		for _, name := range configFileNames {
			loadConfigFile(filepath.Join(directory, ".agentcore", name), config)
		}
	}

	// 3. Explicit config file and inline config
	if path := os.Getenv("AGENTCORE_CONFIG"); path != "" {
		loadConfigFile(path, config)
	}
	if content := os.Getenv("AGENTCORE_CONFIG_CONTENT"); content != "" {
		var inline types.Config
		if err := json.Unmarshal(jsonc.ToJSON([]byte(content)), &inline); err == nil {
			mergeConfig(config, &inline)
		}
	}

	// 4. Environment variables
	applyEnvOverrides(config)

	return config, nil
}

// configFileNames lists the config file names tried, in order, at each
// search location. JSON/JSONC is the primary format; YAML is accepted as an
// alternate for users who prefer it.
var configFileNames = []string{
	"agentcore.json",
	"agentcore.jsonc",
	"agentcore.yaml",
	"agentcore.yml",
}

// loadConfigFile loads a single config file, dispatching on extension.
func loadConfigFile(path string, config *types.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err // File doesn't exist, skip
	}

	var fileConfig types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		jsonData, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(jsonData, &fileConfig); err != nil {
			return err
		}
	default:
		// .json/.jsonc: jsonc.ToJSON strips // and /* */ comments and
		// trailing commas while respecting string literals, so a "//" inside
		// a quoted value (a URL, say) is left untouched.
		if err := json.Unmarshal(jsonc.ToJSON(data), &fileConfig); err != nil {
			return err
		}
	}

	mergeConfig(config, &fileConfig)
	return nil
}

// mergeConfig merges source config into target.
func mergeConfig(target, source *types.Config) {
	if source.Model != "" {
		target.Model = source.Model
	}
	if source.SmallModel != "" {
		target.SmallModel = source.SmallModel
	}

	// Merge providers
	if source.Provider != nil {
		if target.Provider == nil {
			target.Provider = make(map[string]types.ProviderConfig)
		}
		for k, v := range source.Provider {
			target.Provider[k] = v
		}
	}

	// Merge agents
	if source.Agent != nil {
		if target.Agent == nil {
			target.Agent = make(map[string]types.AgentConfig)
		}
		for k, v := range source.Agent {
			target.Agent[k] = v
		}
	}

	// Merge LSP config
	if source.LSP != nil {
		target.LSP = source.LSP
	}

	// Merge watcher config
	if source.Watcher != nil {
		target.Watcher = source.Watcher
	}

	// Merge experimental config
	if source.Experimental != nil {
		target.Experimental = source.Experimental
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(config *types.Config) {
	// Provider API keys
	providerEnvMap := map[string]string{
		"anthropic": "ANTHROPIC_API_KEY",
		"openai":    "OPENAI_API_KEY",
		"google":    "GOOGLE_API_KEY",
		"bedrock":   "AWS_ACCESS_KEY_ID",
	}

	for provider, envVar := range providerEnvMap {
		if apiKey := os.Getenv(envVar); apiKey != "" {
			if config.Provider == nil {
				config.Provider = make(map[string]types.ProviderConfig)
			}
			p := config.Provider[provider]
			if p.APIKey == "" {
				p.APIKey = apiKey
				config.Provider[provider] = p
			}
		}
	}

	// Model override
	if model := os.Getenv("AGENTCORE_MODEL"); model != "" {
		config.Model = model
	}

	// Small model override
	if smallModel := os.Getenv("AGENTCORE_SMALL_MODEL"); smallModel != "" {
		config.SmallModel = smallModel
	}
}

// Save saves the configuration to a file.
func Save(config *types.Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
