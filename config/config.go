// Package config holds the vcftool settings.
//
// Settings come, in increasing priority, from built-in defaults, an
// optional vcftool config file (any format viper reads, e.g.
// vcftool.yaml), a .env file in the working directory and VCFTOOL_
// prefixed environment variables, with dots in key names replaced by
// underscores (VCFTOOL_OUTPUT_INDENT).
package config

import (
	"path/filepath"
	"strings"

	"github.com/dlstool/vcf/schema"
	"github.com/dlstool/vcf/writer"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Name is the config file base name and the environment prefix.
const Name = "vcftool"

// Settings is the decoded configuration.
type Settings struct {
	LogLevel string         `mapstructure:"logLevel" json:"logLevel" yaml:"logLevel"`
	Output   OutputSettings `mapstructure:"output" json:"output" yaml:"output"`
	Convert  struct {
		AcceptLoss bool `mapstructure:"acceptLoss" json:"acceptLoss" yaml:"acceptLoss"`
	} `mapstructure:"convert" json:"convert" yaml:"convert"`
	Catalog struct {
		CacheSize int `mapstructure:"cacheSize" json:"cacheSize" yaml:"cacheSize"`
		Workers   int `mapstructure:"workers" json:"workers" yaml:"workers"`
	} `mapstructure:"catalog" json:"catalog" yaml:"catalog"`
}

type OutputSettings struct {
	// Indent is the number of spaces per level; 0 writes single line
	// documents.
	Indent   int    `mapstructure:"indent" json:"indent" yaml:"indent"`
	V1Suffix string `mapstructure:"v1Suffix" json:"v1Suffix" yaml:"v1Suffix"`
	V2Suffix string `mapstructure:"v2Suffix" json:"v2Suffix" yaml:"v2Suffix"`
}

// WriterOptions returns the writer options for the output settings.
func (o OutputSettings) WriterOptions() []writer.Option {
	return []writer.Option{writer.WithIndent(strings.Repeat(" ", o.Indent))}
}

// PathFor returns the default output path for src converted to version
// v: the suffix for v inserted before the extension, e.g. police_v2.xml.
func (o OutputSettings) PathFor(src string, v schema.Version) string {
	suffix := o.V1Suffix
	if v == schema.V2 {
		suffix = o.V2Suffix
	}
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + suffix + ext
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("output.indent", 2)
	viper.SetDefault("output.v1Suffix", "_v1")
	viper.SetDefault("output.v2Suffix", "_v2")

	viper.SetDefault("convert.acceptLoss", false)

	viper.SetDefault("catalog.cacheSize", 1024)
	viper.SetDefault("catalog.workers", 0)
}

// Load sets the defaults and reads the environment and the config file
// from the first of dirs that has one. A missing config file is not an
// error.
func Load(dirs ...string) error {
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(Name)
	for _, dir := range dirs {
		viper.AddConfigPath(dir)
	}
	if len(dirs) == 0 {
		return nil
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "error reading config file")
	}
	return nil
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) error {
	if err := Load(); err != nil {
		return err
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "error reading config file")
	}
	return nil
}

// Current decodes the loaded configuration.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "decoding config")
	}
	return s, nil
}
