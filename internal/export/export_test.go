package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-hockey/internal/scoring"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

func ranked() scoring.RankedCollection {
	skaters := scoring.ComputeFantasyPoints([]snapshot.PlayerRecord{
		{Player: "Sidney Crosby", Team: "PIT", Pos: "C", Stats: map[string]float64{"G": 42, "A": 52, "PTS": 94}},
	}, scoring.DefaultWeights(), scoring.Skater)
	goalies := scoring.ComputeFantasyPoints([]snapshot.PlayerRecord{
		{Player: "Juuse Saros", Team: "NSH", Stats: map[string]float64{"W": 35, "SV": 1600, "SO": 3, "SV%": 0.906, "GAA": 2.86}},
	}, scoring.DefaultWeights(), scoring.Goalie)
	return scoring.MergeAndRank(skaters, goalies)
}

func TestColumns(t *testing.T) {
	cols := Columns()
	assert.Equal(t, "Rank", cols[0])
	assert.Equal(t, "Fantasy Points", cols[1])
	assert.Equal(t, "GAA", cols[len(cols)-1])
	assert.Len(t, cols, 6+len(scoring.SkaterFields)+len(scoring.GoalieFields))
}

func TestWriteCSV(t *testing.T) {
	c := ranked()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, c))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns(), records[0])

	// Saros: 35*2 + 1600*0.5 + 3*2 = 876
	goalie := records[1]
	assert.Equal(t, "1", goalie[0])
	assert.Equal(t, "876.0", goalie[1])
	assert.Equal(t, "Juuse Saros", goalie[2])
	assert.Equal(t, "G", goalie[4])
	assert.Equal(t, "Goalie", goalie[5])
	assert.Equal(t, "0", goalie[6], "skater G column")
	assert.Equal(t, "0.906", goalie[len(goalie)-2])
	assert.Equal(t, "2.86", goalie[len(goalie)-1])

	// Crosby: 42*6 + 52*4 = 460
	sk := records[2]
	assert.Equal(t, "2", sk[0])
	assert.Equal(t, "460.0", sk[1])
	assert.Equal(t, "94", sk[8], "PTS column")
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "nhl_fantasy_rankings_2_players.csv", FileName(ranked()))
	assert.Equal(t, "nhl_fantasy_rankings_0_players.csv", FileName(nil))
}
