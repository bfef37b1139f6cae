package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"AmISober/internal/catalog"
	"AmISober/internal/input"
	"AmISober/internal/logging"
	"AmISober/internal/model"
)

// DefaultPath is used when neither -config nor CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// CronParser accepts six-field expressions with a leading seconds field.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Profile holds the form values used when a flag is not given.
// WeightKg and Glasses are nil until set, so an explicit 0 survives Load
// and is clamped by input.Normalize like any other form value.
type Profile struct {
	WeightKg     *float64 `yaml:"weight_kg"`
	Sex          string   `yaml:"sex"`
	Beverage     string   `yaml:"beverage"`
	Glasses      *float64 `yaml:"glasses"`
	AbvPercent   float64  `yaml:"abv_percent"` // 0 = beverage default
	ElapsedHours float64  `yaml:"elapsed_hours"`
}

// Config holds all application configuration.
type Config struct {
	Profile Profile `yaml:"profile"`
	Watch   struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
	Log   struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AMISOBER_WEIGHT_KG"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AMISOBER_WEIGHT_KG: %w", err)
		}
		cfg.Profile.WeightKg = &w
	}
	if v := os.Getenv("AMISOBER_SEX"); v != "" {
		cfg.Profile.Sex = v
	}
	if v := os.Getenv("AMISOBER_BEVERAGE"); v != "" {
		cfg.Profile.Beverage = v
	}

	// Defaults
	if cfg.Profile.WeightKg == nil {
		cfg.Profile.WeightKg = float(80)
	}
	if cfg.Profile.Sex == "" {
		cfg.Profile.Sex = string(model.SexMale)
	}
	if cfg.Profile.Beverage == "" {
		cfg.Profile.Beverage = string(catalog.DefaultKey)
	}
	if cfg.Profile.Glasses == nil {
		cfg.Profile.Glasses = float(10)
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 */30 * * * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if _, err := catalog.Lookup(c.Profile.Beverage); err != nil {
		return fmt.Errorf("profile.beverage: %w", err)
	}
	if _, err := model.ParseSex(c.Profile.Sex); err != nil {
		return fmt.Errorf("profile.sex: %w", err)
	}
	if negative(c.Profile.WeightKg) || negative(c.Profile.Glasses) || c.Profile.AbvPercent < 0 || c.Profile.ElapsedHours < 0 {
		return fmt.Errorf("profile values must not be negative")
	}
	if _, err := CronParser.Parse(c.Watch.Cron); err != nil {
		return fmt.Errorf("watch.cron: %w", err)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// TelegramEnabled reports whether watch updates should be sent to a chat.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// RawInput converts the profile into unclamped form input.
func (p Profile) RawInput() input.RawInput {
	raw := input.RawInput{
		Sex:          p.Sex,
		Beverage:     p.Beverage,
		ElapsedHours: p.ElapsedHours,
	}
	if p.WeightKg != nil {
		raw.WeightKg = *p.WeightKg
	}
	if p.Glasses != nil {
		raw.GlassCount = *p.Glasses
	}
	if p.AbvPercent > 0 {
		abv := p.AbvPercent
		raw.AbvPercent = &abv
	}
	return raw
}

func float(v float64) *float64 { return &v }

func negative(v *float64) bool { return v != nil && *v < 0 }
