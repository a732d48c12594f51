package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Len(t, w, 11)
	assert.Equal(t, 6.0, w["G"])
	assert.Equal(t, 0.25, w["SOG"])
	assert.Equal(t, 0.5, w["SV"])
	require.NoError(t, w.Validate())

	w["G"] = 100
	assert.Equal(t, 6.0, DefaultWeights()["G"], "each call returns a fresh map")
}

func TestDefinitionsCoverScoringStats(t *testing.T) {
	for _, typ := range []PlayerType{Skater, Goalie} {
		for _, stat := range typ.ScoringStats() {
			d, ok := Definition(stat)
			require.True(t, ok, stat)
			assert.Equal(t, typ, d.Type, stat)
			assert.LessOrEqual(t, d.Min, d.Default)
			assert.GreaterOrEqual(t, d.Max, d.Default)
		}
	}
	_, ok := Definition("PTS")
	assert.False(t, ok)
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, Weights{}.Validate())
	assert.NoError(t, Weights{"PIM": -5}.Validate())

	err := Weights{"FOW": 1}.Validate()
	assert.ErrorIs(t, err, ErrUnknownStat)

	err = Weights{"SOG": 5.5}.Validate()
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	err = Weights{"PIM": -5.1}.Validate()
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	for _, raw := range []string{"G=NaN", "G=inf", "PIM=-Inf"} {
		w, err := ParseWeights(raw)
		require.NoError(t, err, raw)
		assert.ErrorIs(t, w.Validate(), ErrWeightOutOfRange, raw)
	}
}

func TestWeightsKey(t *testing.T) {
	a := Weights{"G": 6, "A": 4, "SOG": 0.25}
	b := Weights{"SOG": 0.25, "G": 6, "A": 4}
	assert.Equal(t, "A=4|G=6|SOG=0.25", a.Key())
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), Weights{"G": 6}.Key())
	assert.Equal(t, "", Weights{}.Key())
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("G=6, a=4,SOG=0.25,")
	require.NoError(t, err)
	assert.Equal(t, Weights{"G": 6, "A": 4, "SOG": 0.25}, w)

	w, err = ParseWeights("")
	require.NoError(t, err)
	assert.Empty(t, w)

	_, err = ParseWeights("G")
	assert.Error(t, err)

	_, err = ParseWeights("G=six")
	assert.Error(t, err)
}

func TestWeightsScale(t *testing.T) {
	w := Weights{"G": 2, "SV": 0.5}
	s := w.Scale(3)
	assert.Equal(t, Weights{"G": 6, "SV": 1.5}, s)
	assert.Equal(t, 2.0, w["G"])
}
