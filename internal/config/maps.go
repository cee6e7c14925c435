package config

type MapsConfig struct {
	GoogleAPIKey string
	Enabled      bool
}

func loadMapsConfig() *MapsConfig {
	key := getEnv("GOOGLE_MAPS_API_KEY", "")
	return &MapsConfig{
		GoogleAPIKey: key,
		Enabled:      getEnvAsBool("GEOCODING_ENABLED", key != ""),
	}
}
