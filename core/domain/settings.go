// ABOUTME: User settings persisted in the store as individual scalar keys
// ABOUTME: Controls cleanup, LLM refinement, multi-tab capture and API access

package domain

// Default values applied when a setting has never been written.
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
)

// Settings holds the user-facing configuration scalars.
type Settings struct {
	EnableCleanup  bool   `json:"enableCleanup"`
	EnableLLM      bool   `json:"enableLLM"`
	EnableMultitab bool   `json:"enableMultitab"`
	APIKey         string `json:"apiKey"`
	Model          string `json:"model"`
	BaseURL        string `json:"baseUrl"`
}

// RefinementAvailable reports whether the refine path can run at all:
// the feature must be on and a credential configured.
func (s Settings) RefinementAvailable() bool {
	return s.EnableLLM && s.APIKey != ""
}

// Credentials describe how to reach the refinement endpoint.
type Credentials struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Credentials returns the refinement credentials with defaults applied
// for the model and endpoint.
func (s Settings) Credentials() Credentials {
	creds := Credentials{
		APIKey:  s.APIKey,
		Model:   s.Model,
		BaseURL: s.BaseURL,
	}
	if creds.Model == "" {
		creds.Model = DefaultModel
	}
	if creds.BaseURL == "" {
		creds.BaseURL = DefaultBaseURL
	}
	return creds
}
