package config

type Configuration struct {
	EntitiesFile     string `json:"entitiesFile" validate:"required"`
	WordsFile        string `json:"wordsFile" validate:"required"`
	TwilioConfigFile string `json:"twilioConfigFile,omitempty"`
	DefaultTenant    string `json:"defaultTenant,omitempty" validate:"required"`
	Language         string `json:"language,omitempty"`
	TTSServerURL     string `json:"ttsServerURL,omitempty" validate:"omitempty,url"`
	PlayerCommand    string `json:"playerCommand,omitempty"`
	GetVolumeCommand string `json:"getVolumeCommand,omitempty"`
	SetVolumeCommand string `json:"setVolumeCommand,omitempty"`
	ListenAddress    string `json:"listenAddress,omitempty"`
}

// Default returns the configuration the flags are applied on top of.
func Default() Configuration {
	return Configuration{
		EntitiesFile:  "/home/pi/entities.yml",
		WordsFile:     "/home/pi/words.txt",
		DefaultTenant: "Bryan",
		Language:      "en-US",
		ListenAddress: ":8080",
	}
}
