package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		InputDir:  "in",
		OutputDir: "out",
		Files:     config.FilesConfig{Sales: "sales.csv", Products: "products.csv", Waste: "waste_logs.csv"},
		Forecast:  config.ForecastConfig{LeadTimeDays: 2, SafetyFactor: 1.5},
		Recommend: config.RecommendConfig{BasketKey: "order_id", MinPairCount: 1},
		Workers:   4,
	}
}

func TestNewServiceOptions(t *testing.T) {
	t.Run("wires the runner", func(t *testing.T) {
		opts, err := NewServiceOptions(testConfig())
		require.NoError(t, err)
		assert.NotNil(t, opts.Runner)
	})

	t.Run("rejects unknown basket key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Recommend.BasketKey = "session"

		_, err := NewServiceOptions(cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidBasketKey)
	})
}
