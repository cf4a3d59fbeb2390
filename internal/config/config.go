package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/matcher"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/scanner"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	PublicDir         string   `json:"public_dir"         yaml:"public_dir"         validate:"required"`
	ConfigFiles       []string `json:"config_files"       yaml:"config_files"       validate:"required,min=1,dive,required"`
	Strategy          string   `json:"strategy"           yaml:"strategy"           validate:"oneof=loose strict syntax"`
	TagScan           string   `json:"tag_scan"           yaml:"tag_scan"           validate:"oneof=naive balanced"`
	Attributes        []string `json:"attributes"         yaml:"attributes"         validate:"required,min=1,dive,required"`
	StrictTags        []string `json:"strict_tags"        yaml:"strict_tags"        validate:"dive,required"`
	Languages         []string `json:"languages"          yaml:"languages"          validate:"required,min=1,dive,required"`
	TriggerCharacters []string `json:"trigger_characters" yaml:"trigger_characters" validate:"required,min=1,dive,len=1"`
}

// Default returns a fresh copy of the default configuration.
func Default() Config {
	return Config{
		PublicDir: "public",
		ConfigFiles: []string{
			"next.config.js",
			"next.config.mjs",
			"next.config.ts",
			"next.config.mts",
			"next.config.cjs",
		},
		Strategy:          matcher.StrategyLoose.String(),
		TagScan:           scanner.ModeNaive.String(),
		Attributes:        append([]string(nil), matcher.DefaultAttributes...),
		StrictTags:        append([]string(nil), matcher.DefaultStrictTags...),
		Languages:         []string{"javascriptreact", "typescriptreact"},
		TriggerCharacters: []string{"/"},
	}
}

// Load decodes LSP initialization options. Only fields present in v
// overwrite the defaults.
func Load(v any) (Config, error) {
	cfg := Default()
	if v == nil {
		return cfg, cfg.Validate()
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode json config: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadFromYAML reads YAML from r into a Config. An empty document yields the
// defaults.
func LoadFromYAML(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode yaml config: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Settings converts c into the immutable pipeline settings for assetRoot.
func (c Config) Settings(assetRoot string) (completion.Settings, error) {
	strategy, err := matcher.ParseStrategy(c.Strategy)
	if err != nil {
		return completion.Settings{}, err
	}
	mode, err := scanner.ParseMode(c.TagScan)
	if err != nil {
		return completion.Settings{}, err
	}

	return completion.Settings{
		AssetRoot:  assetRoot,
		Strategy:   strategy,
		ScanMode:   mode,
		Attributes: append([]string(nil), c.Attributes...),
		StrictTags: append([]string(nil), c.StrictTags...),
	}, nil
}
