package crowd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		capacity   int
		wantStatus string
		wantRisk   string
	}{
		{"empty zone", 0, 100, StatusSafe, RiskLow},
		{"exactly 40 percent", 40, 100, StatusSafe, RiskLow},
		{"just above 40 percent", 41, 100, StatusModerate, RiskMedium},
		{"mid moderate", 50, 100, StatusModerate, RiskMedium},
		{"exactly 60 percent", 60, 100, StatusModerate, RiskMedium},
		{"just above 60 percent", 61, 100, StatusCrowded, RiskHigh},
		{"exactly 80 percent", 80, 100, StatusCrowded, RiskHigh},
		{"just above 80 percent", 81, 100, StatusCritical, RiskCritical},
		{"at capacity", 100, 100, StatusCritical, RiskCritical},
		{"over capacity", 150, 100, StatusCritical, RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.count, tt.capacity)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.wantRisk, got.RiskLevel)
			require.NotEmpty(t, got.Prediction)
			require.NotEmpty(t, got.Recommendation)
		})
	}
}

func TestClassifyDensityIsClampedForDisplay(t *testing.T) {
	t.Parallel()

	over := Classify(150, 100)
	require.Equal(t, StatusCritical, over.Status)
	require.Equal(t, float64(100), over.DensityPercent)

	negative := Classify(-5, 100)
	require.Equal(t, StatusSafe, negative.Status)
	require.Equal(t, float64(0), negative.DensityPercent)
}

func TestClassifyZeroCapacity(t *testing.T) {
	t.Parallel()

	got := Classify(10, 0)
	require.Equal(t, StatusSafe, got.Status)
	require.Equal(t, float64(0), got.DensityPercent)
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Classify(73, 100)
	b := Classify(73, 100)
	require.Equal(t, a, b)
}

func TestLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "low", Level(Classify(10, 100)))
	require.Equal(t, "medium", Level(Classify(50, 100)))
	require.Equal(t, "high", Level(Classify(70, 100)))
	require.Equal(t, "high", Level(Classify(95, 100)))
}
