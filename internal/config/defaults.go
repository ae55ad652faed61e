package config

const (
	defaultConfigPath       = "~/.config/corhoh/config.toml"
	projectConfigName       = "corhoh.toml"
	defaultMetadataPath     = "Cor_META_updated.csv"
	defaultTextsDir         = "500_numbered"
	defaultOutputPath       = "CORHOH.xml"
	defaultProgressInterval = 50
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Metadata: defaultMetadataPath,
			TextsDir: defaultTextsDir,
			Output:   defaultOutputPath,
		},
		Corpus: Corpus{
			ProgressInterval: defaultProgressInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
