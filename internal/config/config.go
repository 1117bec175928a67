package config

// Config is the root configuration of the apidoc tool.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Build BuildConfig `yaml:"build"`
	Doc   DocConfig   `yaml:"doc"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" env-description:"debug, info, warn or error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`
}

// BuildConfig describes the deployment the catalog is rendered for.
// Version and build time come from ldflags, not from here.
type BuildConfig struct {
	Environment string   `yaml:"environment" env:"BUILD_ENVIRONMENT" env-default:"development" env-description:"deployment environment reported in system info"`
	Features    []string `yaml:"features"    env:"BUILD_FEATURES"    env-default:"dictionary,search,learning,ai,speech,ocr" env-separator:"," env-description:"comma-separated feature flags reported in system info"`
}

// DocConfig controls catalog rendering.
type DocConfig struct {
	Title   string `yaml:"title"   env:"DOC_TITLE"   env-default:"Unidict API" env-description:"catalog title"`
	Format  string `yaml:"format"  env:"DOC_FORMAT"  env-default:"json" env-description:"json or yaml"`
	Compact bool   `yaml:"compact" env:"DOC_COMPACT" env-default:"false" env-description:"render without indentation"`
}

// Supported values for DocConfig.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
