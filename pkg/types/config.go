// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures and configuration for the
// file-converter CLI.
package types

// WorkspaceConfig holds the directory convention shared by every conversion:
// files are read from InputDir and written to OutputDir.
type WorkspaceConfig struct {
	// InputDir is the directory scanned for source files (default "input").
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input-dir"`

	// OutputDir is the directory converted files are written to
	// (default "output"). Existing files are overwritten.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output-dir"`
}

// AIConfig holds shared settings for components that call the OpenAI API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// VisionConfig holds settings for the Vision PDF-to-Markdown converter.
type VisionConfig struct {
	AIConfig `yaml:",inline"`

	// DPI is the resolution pages are rasterized at before being sent to
	// the Vision model (default 150).
	DPI int `json:"dpi" yaml:"dpi"`
}

// AgentConfig holds settings for the conversational agent.
type AgentConfig struct {
	AIConfig `yaml:",inline"`

	// SessionDB is the path of the SQLite database that stores
	// conversation history (default "output/sessions.db").
	SessionDB string `json:"session_db" yaml:"session_db"`

	// SessionID names the conversation; history is keyed by it.
	SessionID string `json:"session_id" yaml:"session_id"`

	// MaxTurns bounds the number of model round-trips per user message,
	// including tool-call turns (default 10).
	MaxTurns int `json:"max_turns" yaml:"max_turns"`
}

// OCRConfig holds settings for Tesseract-based converters.
type OCRConfig struct {
	// Lang is the Tesseract language code (default "eng").
	Lang string `json:"lang" yaml:"lang"`

	// PSM is the Tesseract page segmentation mode (default "6",
	// uniform block of text).
	PSM string `json:"psm" yaml:"psm"`
}
