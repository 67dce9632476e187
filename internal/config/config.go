// Package config loads runtime configuration from an optional YAML file and
// SCRAPSCRAMBLE_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
)

// EnvPrefix prefixes every environment override, e.g. SCRAPSCRAMBLE_GAME_STARTING_LIVES.
const EnvPrefix = "SCRAPSCRAMBLE"

// Config is the full runtime configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Cards   CardsConfig   `mapstructure:"cards"`
}

// GameConfig mirrors game.Settings.
type GameConfig struct {
	StartingLives int                `mapstructure:"starting_lives" validate:"gte=1"`
	StartingMana  int                `mapstructure:"starting_mana" validate:"gte=0,ltefield=MaximumMana"`
	MaximumMana   int                `mapstructure:"maximum_mana" validate:"gte=0"`
	ShopQuantity  ShopQuantityConfig `mapstructure:"shop_quantity"`
}

// ShopQuantityConfig is how many upgrades of each rarity a shop offers.
type ShopQuantityConfig struct {
	Common    int `mapstructure:"common" validate:"gte=0"`
	Rare      int `mapstructure:"rare" validate:"gte=0"`
	Epic      int `mapstructure:"epic" validate:"gte=0"`
	Legendary int `mapstructure:"legendary" validate:"gte=0"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// CardsConfig selects the card pool.
type CardsConfig struct {
	// PoolFile is a YAML pool file; empty means every set.
	PoolFile string `mapstructure:"pool_file"`
	// Seed fixes the random source; 0 draws a fresh seed.
	Seed int64 `mapstructure:"seed"`
}

// Load reads the file at path, if any, over the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	d := game.DefaultSettings()
	return &Config{
		Game: GameConfig{
			StartingLives: d.StartingLives,
			StartingMana:  d.StartingMana,
			MaximumMana:   d.MaximumMana,
			ShopQuantity: ShopQuantityConfig{
				Common:    d.Quantity(game.RarityCommon),
				Rare:      d.Quantity(game.RarityRare),
				Epic:      d.Quantity(game.RarityEpic),
				Legendary: d.Quantity(game.RarityLegendary),
			},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("game.starting_lives", d.Game.StartingLives)
	v.SetDefault("game.starting_mana", d.Game.StartingMana)
	v.SetDefault("game.maximum_mana", d.Game.MaximumMana)
	v.SetDefault("game.shop_quantity.common", d.Game.ShopQuantity.Common)
	v.SetDefault("game.shop_quantity.rare", d.Game.ShopQuantity.Rare)
	v.SetDefault("game.shop_quantity.epic", d.Game.ShopQuantity.Epic)
	v.SetDefault("game.shop_quantity.legendary", d.Game.ShopQuantity.Legendary)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("cards.pool_file", d.Cards.PoolFile)
	v.SetDefault("cards.seed", d.Cards.Seed)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Settings converts the game section into engine settings.
func (g GameConfig) Settings() game.Settings {
	s := game.Settings{
		StartingLives: g.StartingLives,
		StartingMana:  g.StartingMana,
		MaximumMana:   g.MaximumMana,
	}
	s.SetQuantity(game.RarityCommon, g.ShopQuantity.Common)
	s.SetQuantity(game.RarityRare, g.ShopQuantity.Rare)
	s.SetQuantity(game.RarityEpic, g.ShopQuantity.Epic)
	s.SetQuantity(game.RarityLegendary, g.ShopQuantity.Legendary)
	return s
}
