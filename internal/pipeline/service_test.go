package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/randytsao24/citydistance/internal/cache"
	"github.com/randytsao24/citydistance/internal/location"
)

func newTestService(t *testing.T, style Style, format Format) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	svc, err := NewService(location.DefaultDirectory(), Options{
		Style:    style,
		Format:   format,
		CacheTTL: time.Minute,
		Logger:   zap.New(core),
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc, logs
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleComposed, s)

	s, err = ParseStyle("staged")
	require.NoError(t, err)
	assert.Equal(t, StyleStaged, s)

	_, err = ParseStyle("parallel")
	assert.Error(t, err)
}

func TestService_StylesProduceIdenticalOutput(t *testing.T) {
	pairs := [][2]string{
		{"Houston, TX", "San Mateo, CA"},
		{"Houston, TX", "Atlantis"},
	}

	for _, format := range Formats {
		composed, _ := newTestService(t, StyleComposed, format)
		staged, _ := newTestService(t, StyleStaged, format)

		for _, p := range pairs {
			a, err := composed.Distance(p[0], p[1])
			require.NoError(t, err)
			b, err := staged.Distance(p[0], p[1])
			require.NoError(t, err)
			assert.Equal(t, a, b, "format=%s %s -> %s", format, p[0], p[1])
		}
	}
}

func TestService_TextOutput(t *testing.T) {
	svc, _ := newTestService(t, StyleComposed, FormatText)

	out, err := svc.Distance("Houston, TX", "San Mateo, CA")
	require.NoError(t, err)
	assert.Contains(t, out, "start: Houston, TX (29.760427, -95.369803)\n")
	assert.Contains(t, out, "dest: San Mateo, CA (37.5599, -122.3131)\n")
	assert.Contains(t, out, "distance_feet: ")

	out, err = svc.Distance("Houston, TX", "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "start: Houston, TX (29.760427, -95.369803)\ndest: Atlantis\n", out)
}

func TestService_Errors(t *testing.T) {
	for _, style := range []Style{StyleComposed, StyleStaged} {
		svc, logs := newTestService(t, style, FormatText)

		_, err := svc.Distance("Nowhere, XX", "Houston, TX")
		assert.ErrorIs(t, err, location.ErrNotFound)

		_, err = svc.Distance("", "Houston, TX")
		assert.ErrorIs(t, err, location.ErrValidation)
		assert.Contains(t, err.Error(), "start city")

		_, err = svc.Distance("Houston, TX", "")
		assert.ErrorIs(t, err, location.ErrValidation)
		assert.Contains(t, err.Error(), "destination city")

		assert.Equal(t, 3, logs.FilterMessage("distance request failed").Len())
		assert.Equal(t, 0, svc.memo.Len(), "errors are not memoized")
	}
}

func TestService_Memoizes(t *testing.T) {
	svc, logs := newTestService(t, StyleStaged, FormatJSON)

	first, err := svc.Distance("Austin, TX", "Dallas, TX")
	require.NoError(t, err)
	second, err := svc.Distance("Austin, TX", "Dallas, TX")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, cache.Stats{Hits: 1, Misses: 1}, svc.CacheStats())

	served := logs.FilterMessage("distance request served").All()
	require.Len(t, served, 2)
	assert.Equal(t, false, served[0].ContextMap()["cache_hit"])
	assert.Equal(t, true, served[1].ContextMap()["cache_hit"])
	assert.NotEqual(t, served[0].ContextMap()["run_id"], served[1].ContextMap()["run_id"])
}

func TestService_Nearest(t *testing.T) {
	svc, _ := newTestService(t, StyleComposed, FormatText)

	out, err := svc.Nearest("Houston, TX", 2)
	require.NoError(t, err)
	assert.Contains(t, out, "origin: Houston, TX")
	assert.Contains(t, out, "1. Austin, TX")
	assert.Contains(t, out, "2. San Antonio, TX")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = svc.Nearest("Camelot", 2)
	require.NoError(t, err)
	assert.Equal(t, "origin: Camelot\n", out)

	_, err = svc.Nearest("Nowhere, XX", 2)
	assert.ErrorIs(t, err, location.ErrNotFound)
}

func TestNewService_InvalidOptions(t *testing.T) {
	_, err := NewService(location.DefaultDirectory(), Options{Style: "bogus"})
	assert.Error(t, err)

	_, err = NewService(location.DefaultDirectory(), Options{Format: "xml"})
	assert.Error(t, err)
}

func TestService_DistanceRendersPlainDecimals(t *testing.T) {
	svc, _ := newTestService(t, StyleComposed, FormatYAML)

	out, err := svc.Distance("Houston, TX", "San Mateo, CA")
	require.NoError(t, err)
	assert.Contains(t, out, "distance_feet: 8625770.402520822\n")
	assert.NotContains(t, out, "e+")
}
