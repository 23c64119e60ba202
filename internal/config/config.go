package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"simdmath/math"
)

// EnvPrefix prefixes every environment variable read by Load, as in
// ROTCONV_OUTPUT or ROTCONV_AXIS_SOURCE.
const EnvPrefix = "ROTCONV"

var (
	ErrInvalidOutput     = errors.New("invalid output format")
	ErrInvalidAxisSource = errors.New("invalid axis source")
	ErrInvalidPrecision  = errors.New("invalid precision")
)

// Config holds the converter's output and fallback-axis settings.
type Config struct {
	Output     string `mapstructure:"output"` // text, json or yaml
	Precision  int    `mapstructure:"precision"`
	Degrees    bool   `mapstructure:"degrees"`
	AxisSource string `mapstructure:"axis_source"` // ortho or random
	Seed       uint64 `mapstructure:"seed"`
}

func Default() Config {
	return Config{
		Output:     "text",
		Precision:  6,
		AxisSource: "ortho",
		Seed:       1,
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"output":      "output",
	"precision":   "precision",
	"degrees":     "degrees",
	"axis-source": "axis_source",
	"seed":        "seed",
	"config":      "config",
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP("output", "o", d.Output, "output format: text, json or yaml")
	fs.Int("precision", d.Precision, "digits after the decimal point in text output")
	fs.Bool("degrees", d.Degrees, "read and print angles in degrees")
	fs.String("axis-source", d.AxisSource, "axis for colinear from/to vectors: ortho or random")
	fs.Uint64("seed", d.Seed, "seed for --axis-source=random")
	fs.String("config", "", "config file (YAML or JSON)")
}

// Load resolves the configuration from, in order of precedence, the flags
// set on fs, ROTCONV_* environment variables, the config file named by
// --config and the defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("output", d.Output)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("degrees", d.Degrees)
	v.SetDefault("axis_source", d.AxisSource)
	v.SetDefault("seed", d.Seed)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("config: %w %q", ErrInvalidOutput, c.Output)
	}
	switch c.AxisSource {
	case "ortho", "random":
	default:
		return fmt.Errorf("config: %w %q", ErrInvalidAxisSource, c.AxisSource)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("config: %w %d", ErrInvalidPrecision, c.Precision)
	}
	return nil
}

// Converter builds the RotationConverter selected by AxisSource.
func (c Config) Converter() *math.RotationConverter {
	if c.AxisSource == "random" {
		return math.NewRotationConverter(math.NewRandomAxis(c.Seed))
	}
	return math.NewRotationConverter(math.OrthoAxis{})
}
