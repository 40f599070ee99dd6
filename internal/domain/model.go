// Package domain defines core entities and value objects for appgen.
//
// This file contains model and provider definitions. The domain layer is independent
// of infrastructure concerns: it carries no SDK or HTTP types.
package domain

import "strings"

// ProviderKind selects the completion backend for a model.
type ProviderKind string

const (
	ProviderGemini ProviderKind = "gemini"
	ProviderHTTP   ProviderKind = "http"
)

// ModelDefinition describes a text-generation endpoint declared in the config file.
type ModelDefinition struct {
	Name       string       `yaml:"name"`
	Provider   ProviderKind `yaml:"provider,omitempty"`
	Endpoint   string       `yaml:"endpoint,omitempty"`
	AuthEnvVar string       `yaml:"auth_env_var"`
	ModelID    string       `yaml:"model_id"`
	MaxTokens  int          `yaml:"max_tokens,omitempty"`
	APIFormat  APIFormat    `yaml:"api_format,omitempty"`
}

// Kind returns the configured provider, inferring it from the endpoint when unset.
// Models without an endpoint talk to Gemini through the SDK.
func (m ModelDefinition) Kind() ProviderKind {
	switch ProviderKind(strings.ToLower(string(m.Provider))) {
	case ProviderGemini:
		return ProviderGemini
	case ProviderHTTP:
		return ProviderHTTP
	}
	if m.Endpoint == "" || strings.Contains(m.Endpoint, "generativelanguage.googleapis.com") {
		return ProviderGemini
	}
	return ProviderHTTP
}

// APIFormat defines how to construct requests and parse responses for chat-style HTTP APIs.
// All fields are optional with OpenAI-compatible defaults.
type APIFormat struct {
	// AuthHeaderName specifies the HTTP header name for authentication.
	// Default: "Authorization"
	AuthHeaderName string `yaml:"auth_header_name,omitempty"`

	// AuthHeaderPrefix is prepended to the API key value.
	// Default: "Bearer " unless AuthHeaderName is customized.
	AuthHeaderPrefix string `yaml:"auth_header_prefix,omitempty"`

	// SystemMessageMode is "inline" (default) or "separate" (Anthropic top-level "system").
	SystemMessageMode string `yaml:"system_message_mode,omitempty"`

	// ContentWrapper is "standard" (default) or "anthropic" ([{"type":"text","text":...}]).
	ContentWrapper string `yaml:"content_wrapper,omitempty"`

	// ResponseJSONPath locates the generated text, e.g. "content[0].text".
	ResponseJSONPath string `yaml:"response_json_path,omitempty"`

	ExtraHeaders map[string]string `yaml:"extra_headers,omitempty"`
}

// PromptMessage follows the role/content pair required by chat APIs.
type PromptMessage struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

const (
	DefaultAuthHeaderName   = "Authorization"
	DefaultAuthHeaderPrefix = "Bearer "

	SystemMessageModeInline   = "inline"
	SystemMessageModeSeparate = "separate"

	ContentWrapperStandard  = "standard"
	ContentWrapperAnthropic = "anthropic"

	DefaultResponsePath   = "choices[0].message.content"
	AnthropicResponsePath = "content[0].text"
)

// GetAuthHeaderName returns the authentication header name with default fallback.
func (f APIFormat) GetAuthHeaderName() string {
	if f.AuthHeaderName == "" {
		return DefaultAuthHeaderName
	}
	return f.AuthHeaderName
}

// GetAuthHeaderPrefix returns the authentication header prefix.
// A customized header name with no prefix means "no prefix" (Anthropic's x-api-key).
func (f APIFormat) GetAuthHeaderPrefix() string {
	if f.AuthHeaderName != "" && f.AuthHeaderPrefix == "" {
		return ""
	}
	if f.AuthHeaderPrefix == "" {
		return DefaultAuthHeaderPrefix
	}
	return f.AuthHeaderPrefix
}

// GetResponseJSONPath returns the JSON path for extracting response content.
func (f APIFormat) GetResponseJSONPath() string {
	if f.ResponseJSONPath == "" {
		return DefaultResponsePath
	}
	return f.ResponseJSONPath
}

// IsSystemMessageSeparate returns true if system messages go in a separate field.
func (f APIFormat) IsSystemMessageSeparate() bool {
	return strings.EqualFold(f.SystemMessageMode, SystemMessageModeSeparate)
}

// IsContentWrapped returns true if content is wrapped in Anthropic's array format.
func (f APIFormat) IsContentWrapped() bool {
	return strings.EqualFold(f.ContentWrapper, ContentWrapperAnthropic)
}
