package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GradingConfig carries the tunables of the grading engine. The engine
// itself reads nothing from the environment; Load is for the consuming
// wiring that constructs the service.
type GradingConfig struct {
	// Edit-distance tolerances, as a fraction of the shorter answer length.
	ShortTolerance float64
	LongTolerance  float64

	// Keep the rune-reversed heuristic variation. On by default for parity
	// with historically graded submissions.
	IncludeReversedVariation bool

	// Minimum scaled score for certificate eligibility.
	CertificatePassScore float64
}

func Default() GradingConfig {
	return GradingConfig{
		ShortTolerance:           0.30,
		LongTolerance:            0.20,
		IncludeReversedVariation: true,
		CertificatePassScore:     50,
	}
}

// Load reads the grading configuration from the environment, falling back
// to defaults. A missing .env file is not an error.
func Load() (GradingConfig, error) {
	_ = godotenv.Load()

	cfg := Default()

	var err error
	if cfg.ShortTolerance, err = getFloat("GRADING_SHORT_TOLERANCE", cfg.ShortTolerance); err != nil {
		return cfg, err
	}
	if cfg.LongTolerance, err = getFloat("GRADING_LONG_TOLERANCE", cfg.LongTolerance); err != nil {
		return cfg, err
	}
	if cfg.IncludeReversedVariation, err = getBool("GRADING_REVERSED_VARIATION", cfg.IncludeReversedVariation); err != nil {
		return cfg, err
	}
	if cfg.CertificatePassScore, err = getFloat("CERTIFICATE_PASS_SCORE", cfg.CertificatePassScore); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(value, 64)
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}
