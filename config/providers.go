package config

// ProvidersConfig holds external service credentials. Empty keys mean the
// provider is unconfigured and the corresponding fallback path is used; the
// service stays fully functional without any of them.
type ProvidersConfig struct {
	// MapsAPIKey enables Google Maps geocoding and directions.
	MapsAPIKey string `json:"maps_api_key"`
	// OpenAIKey enables the agent-kind recommendation service.
	OpenAIKey string `json:"openai_key"`
	// OpenAIModel overrides the default chat model.
	OpenAIModel string `json:"openai_model"`
}
