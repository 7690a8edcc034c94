package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RiskWeights are the additive scoring terms. The stock values come
// from the original retention heuristic; treat them as tuning knobs,
// not ground truth.
type RiskWeights struct {
	MonthlyContract      float64
	IncompleteOnboarding float64
	EngagementFactor     float64
}

// ChartTuning holds the display constants for the dashboard widgets.
type ChartTuning struct {
	ChurnTarget    float64 // target churn rate shown against the gauge
	GaugeWarn      float64 // upper edge of the green band
	GaugeAlert     float64 // upper edge of the yellow band, threshold line
	GaugeMax       float64
	DeltaReference float64 // reference for the revenue delta indicator
}

type Config struct {
	Port        string
	LogMode     string
	DatasetPath string

	OpenAIKey     string
	OpenAIBaseURL string
	Model         string
	MaxTokens     int

	RiskTopN int
	Weights  RiskWeights
	Charts   ChartTuning

	ChatRate  float64 // chat requests per second per client
	ChatBurst int
}

// Load reads configuration from the environment. A missing API key or
// dataset path is a startup failure; everything else has a default.
func Load() (*Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set; export it before starting (e.g. export OPENAI_API_KEY=sk-...)")
	}

	cfg := &Config{
		Port:          envStr("PORT", "8080"),
		LogMode:       envStr("LOG_MODE", "dev"),
		DatasetPath:   envStr("DATASET_PATH", "data/customers.csv"),
		OpenAIKey:     apiKey,
		OpenAIBaseURL: strings.TrimRight(envStr("OPENAI_BASE_URL", "https://api.openai.com"), "/"),
		Model:         envStr("OPENAI_MODEL", "gpt-3.5-turbo"),
		MaxTokens:     envInt("OPENAI_MAX_TOKENS", 350),
		RiskTopN:      envInt("RISK_TOP_N", 10),
		Weights: RiskWeights{
			MonthlyContract:      envFloat("RISK_WEIGHT_MONTHLY", 30),
			IncompleteOnboarding: envFloat("RISK_WEIGHT_ONBOARDING", 40),
			EngagementFactor:     envFloat("RISK_WEIGHT_ENGAGEMENT", 0.3),
		},
		Charts: ChartTuning{
			ChurnTarget:    envFloat("CHURN_TARGET", 7),
			GaugeWarn:      envFloat("GAUGE_WARN", 7),
			GaugeAlert:     envFloat("GAUGE_ALERT", 10),
			GaugeMax:       envFloat("GAUGE_MAX", 20),
			DeltaReference: envFloat("REVENUE_DELTA_REFERENCE", 15),
		},
		ChatRate:  envFloat("CHAT_RATE", 1),
		ChatBurst: envInt("CHAT_BURST", 5),
	}
	return cfg, nil
}

func envStr(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envFloat(name string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
