package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay     = "play"
	ModeWatch    = "watch"
	ModeShowdown = "showdown"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode              string   `yaml:"mode" env:"MODE" env-default:"play" validate:"oneof=play watch showdown"`
	Seed              uint64   `yaml:"seed" env:"SEED" env-default:"0"`
	Think             Think    `yaml:"think"`
	Showdown          Showdown `yaml:"showdown"`
	Redis             Redis    `yaml:"redis"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
}

type Think struct {
	BotTime       time.Duration `yaml:"bot-time" env:"THINK_BOT_TIME" env-default:"100ms" validate:"gt=0"`
	ShowdownStart time.Duration `yaml:"showdown-start" env:"THINK_SHOWDOWN_START" env-default:"0s" validate:"gte=0"`
	ShowdownStep  time.Duration `yaml:"showdown-step" env:"THINK_SHOWDOWN_STEP" env-default:"1ms" validate:"gt=0"`
}

type Showdown struct {
	BatchSize   int    `yaml:"batch-size" env:"SHOWDOWN_BATCH_SIZE" env-default:"1000" validate:"gt=0"`
	MaxBatches  int    `yaml:"max-batches" env:"SHOWDOWN_MAX_BATCHES" env-default:"0" validate:"gte=0"`
	ResultsPath string `yaml:"results-path" env:"SHOWDOWN_RESULTS_PATH" env-default:"results.csv" validate:"required"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required_if=Enabled true"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(err)
	}

	return config
}

// Validate - checks field constraints, call it again after overriding fields.
func (that *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
