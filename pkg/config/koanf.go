package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "PKGDEPS_"

// envKeys maps environment suffixes to configuration keys. Variables outside
// this table, such as PKGDEPS_CONFIG_DIR, are not configuration keys.
var envKeys = map[string]string{
	"REPOSITORIES_PATHS": "repositories.paths",
	"DEPENDS_LINK_TYPES": "depends.link_types",
	"OUTPUT_COLOR":       "output.color",
	"OUTPUT_STYLES":      "output.styles",
}

// listKeys are split on commas when read from the environment
var listKeys = map[string]bool{
	"repositories.paths": true,
	"depends.link_types": true,
}

// LoadOptions tells Load where to look for each layer
type LoadOptions struct {
	// UserConfigPath is the user level config file, skipped when missing
	UserConfigPath string

	// ProjectConfigPaths are candidate project files; the first one that
	// exists is loaded
	ProjectConfigPaths []string

	// EnvFile is a dotenv file whose PKGDEPS_* entries are read below the
	// real environment, skipped when missing
	EnvFile string

	// Overrides are flat dotted keys set from the command line
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.UserConfigPath != "" && fileExists(opts.UserConfigPath) {
		if err := k.Load(file.Provider(opts.UserConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", opts.UserConfigPath).
				WithDetail("path", opts.UserConfigPath)
		}
		log.Debug().Str("path", opts.UserConfigPath).Msg("Loaded user config")
	}

	for _, path := range opts.ProjectConfigPaths {
		if !fileExists(path) {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded project config")
		break
	}

	if opts.EnvFile != "" && fileExists(opts.EnvFile) {
		values, err := godotenv.Read(opts.EnvFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read %s", opts.EnvFile).
				WithDetail("path", opts.EnvFile)
		}
		dotenv := make(map[string]interface{})
		for name, value := range values {
			if key, v := envToKey(name, value); key != "" {
				dotenv[key] = v
			}
		}
		if err := k.Load(confmap.Provider(dotenv, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply .env values")
		}
		log.Debug().Str("path", opts.EnvFile).Int("keys", len(dotenv)).Msg("Loaded dotenv file")
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envToKey maps PKGDEPS_OUTPUT_COLOR=never to ("output.color", "never").
// Unknown variables map to an empty key, which koanf skips.
func envToKey(name, value string) (string, interface{}) {
	key, ok := envKeys[strings.TrimPrefix(name, EnvPrefix)]
	if !ok || !strings.HasPrefix(name, EnvPrefix) {
		return "", nil
	}
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
