package internal

import (
	"emotion-lab/domain"
	"emotion-lab/errors"
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	AnalysisMode       string        `env:"ANALYSIS_MODE,default=local"`
	RemoteTimeout      time.Duration `env:"REMOTE_TIMEOUT,default=2s"`
	HuggingFaceAPIKey  string        `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceModel   string        `env:"HUGGINGFACE_MODEL"`
	HuggingFaceBaseURL string        `env:"HUGGINGFACE_BASE_URL"`

	NumberOfWorkers   int           `env:"NUMBER_OF_WORKERS,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,required=true"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitAnalyses     *int          `env:"LIMIT_ANALYSES"`
	SearchPageSize    int           `env:"SEARCH_PAGE_SIZE,default=50"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=5s"`
	FlushInterval     time.Duration `env:"FLUSH_INTERVAL,default=2s"`
	LatencyThreshold  time.Duration `env:"LATENCY_THRESHOLD,default=500ms"`
	MoodWindow        int           `env:"MOOD_WINDOW,default=50"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,required=true"`
	DebugPort      int    `env:"DEBUG_PORT"`
	NodeName       string `env:"NODE_NAME,default=analyzerd"`
	AuthSecret     string `env:"AUTH_SECRET"`
}

// Load reads an optional .env file then the process environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.NumberOfWorkers <= 0 {
		return Config{}, fmt.Errorf("config error: NUMBER_OF_WORKERS must be positive, got %d", config.NumberOfWorkers)
	}
	if config.BufferSize <= 0 {
		return Config{}, fmt.Errorf("config error: BUFFER_SIZE must be positive, got %d", config.BufferSize)
	}
	return config, nil
}

// Mode resolves ANALYSIS_MODE.
func (c Config) Mode() (domain.Mode, error) {
	return ParseMode(c.AnalysisMode)
}

// ParseMode accepts the two modes and the legacy names still found in deployed
// env files: "disabled" is local, "ai" and "advanced" are local+remote.
func ParseMode(s string) (domain.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local", "disabled":
		return domain.ModeLocalOnly, nil
	case "local+remote", "ai", "advanced":
		return domain.ModeLocalPlusRemote, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidMode, s)
	}
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
