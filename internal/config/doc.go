// Package config provides configuration loading, merging, and path management for Agent Core.
//
// This package handles the complex configuration system that supports multiple sources
// and formats, with a hierarchical loading strategy that ensures proper precedence
// and compatibility with both TypeScript and Go implementations.
//
// # Configuration Loading
//
// The Load function implements a sophisticated configuration loading strategy that
// searches for and merges configuration from multiple sources in priority order:
//
//  1. Global config (~/.agentcore/ - TypeScript compatible)
//  2. Global config (~/.config/agentcore/ - XDG compatible)
//  3. Project config in the given directory's .agentcore/ folder
//  4. AGENTCORE_CONFIG file
//  5. AGENTCORE_CONFIG_CONTENT inline JSON
//  6. Environment variables
//
// Configuration files are loaded in a specific order to ensure that more specific
// configurations override more general ones, while environment variables have the
// highest precedence.
//
// # Supported Formats
//
// At each location the following file names are tried, in this order:
//   - agentcore.json - Standard JSON configuration
//   - agentcore.jsonc - JSON with comments, processed using tidwall/jsonc
//   - agentcore.yaml / agentcore.yml - YAML, converted to JSON before decoding
//
// # Variable Interpolation
//
// Values are used as written: placeholders such as {env:VAR_NAME} or
// {file:path} are not expanded by the loader.
//
// # Configuration Merging
//
// When multiple configuration sources are found, each later source is merged into
// the result as follows:
//   - Model and SmallModel are overwritten when the later value is non-empty
//   - Provider and Agent maps are merged by key; an entry present in the later
//     source replaces the earlier entry for that key as a whole
//   - LSP, Watcher and Experimental are replaced as a whole when present
//   - Other fields are not merged
//
// # Path Management
//
// The package provides XDG Base Directory Specification compliant path management
// through the Paths type:
//   - Data: ~/.local/share/agentcore (XDG_DATA_HOME)
//   - Config: ~/.config/agentcore (XDG_CONFIG_HOME)
//   - Cache: ~/.cache/agentcore (XDG_CACHE_HOME)
//   - State: ~/.local/state/agentcore (XDG_STATE_HOME)
//
// On Windows, these paths are adapted to use APPDATA as appropriate.
//
// # Environment Variable Overrides
//
// Several environment variables provide direct configuration overrides:
//   - AGENTCORE_MODEL - Override the default model
//   - AGENTCORE_SMALL_MODEL - Override the small model
//   - AGENTCORE_CONFIG - Path to a specific config file
//   - AGENTCORE_CONFIG_CONTENT - Inline JSON configuration
//   - ANTHROPIC_API_KEY, OPENAI_API_KEY, GOOGLE_API_KEY, AWS_ACCESS_KEY_ID -
//     provider API keys, used only where the config sets none
//
// # TypeScript Compatibility
//
// The configuration system maintains compatibility with the TypeScript implementation
// by supporting the ~/.agentcore directory structure and TypeScript-style provider
// configuration with Options objects.
//
// # Usage Example
//
//	// Load configuration from the current directory
//	config, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get standard paths
//	paths := config.GetPaths()
//	err = paths.EnsurePaths() // Create directories if they don't exist
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Save configuration
//	err = config.Save(config, config.GlobalConfigPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Project Config Location
//
// Only the .agentcore/ folder of the directory passed to Load is searched for a
// project config; parent directories are not searched.
package config