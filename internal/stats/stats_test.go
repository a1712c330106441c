package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func rec(lang string, g GameType, moves, secs int) GameStats {
	return GameStats{Language: lang, GameType: g, Moves: moves, Time: secs, Date: day}
}

func TestMergeMemoryKeepsLowest(t *testing.T) {
	d := Merge(New(), rec("hindi", Memory, 10, 30))
	d = Merge(d, rec("hindi", Memory, 6, 45))

	ts := d.Languages["hindi"].Memory
	require.NotNil(t, ts)
	assert.Equal(t, 6, ts.BestMoves)
	assert.Equal(t, 30, ts.BestTime)
	assert.Equal(t, 2, ts.TotalGames)
	assert.Equal(t, 2, d.TotalGames)
	assert.Len(t, d.RecentGames, 2)
}

func TestMergeWordBuilderKeepsHighestScore(t *testing.T) {
	d := Merge(New(), rec("tamil", WordBuilder, 2, 20))
	d = Merge(d, rec("tamil", WordBuilder, 5, 15))

	ts := d.Languages["tamil"].WordBuilder
	require.NotNil(t, ts)
	assert.Equal(t, 5, ts.BestMoves)
	assert.Equal(t, 15, ts.BestTime)
}

func TestMergeDrawing(t *testing.T) {
	d := Merge(New(), rec("bengali", Drawing, 12, 40))
	d = Merge(d, rec("bengali", Drawing, 9, 50))

	ts := d.Languages["bengali"].Drawing
	require.NotNil(t, ts)
	assert.Equal(t, 12, ts.BestMoves)
	assert.Equal(t, 40, ts.BestTime)
	assert.InDelta(t, 10.5, ts.AverageMoves(), 0.001)
	assert.InDelta(t, 45.0, ts.AverageTime(), 0.001)
}

func TestMergeFirstRecordSetsBest(t *testing.T) {
	// A first word-builder session scoring 0 must not be replaced by a
	// sentinel best.
	d := Merge(New(), rec("hindi", WordBuilder, 0, 90))
	ts := d.Languages["hindi"].WordBuilder
	assert.Equal(t, 0, ts.BestMoves)
	assert.Equal(t, 90, ts.BestTime)
}

func TestMergeIsPure(t *testing.T) {
	prior := Merge(New(), rec("hindi", Memory, 10, 30))
	before, err := json.Marshal(prior)
	require.NoError(t, err)

	_ = Merge(prior, rec("hindi", Memory, 4, 10))
	_ = Merge(prior, rec("telugu", Drawing, 50, 10))

	after, err := json.Marshal(prior)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))

	a := Merge(prior, rec("hindi", Memory, 4, 10))
	b := Merge(prior, rec("hindi", Memory, 4, 10))
	assert.Equal(t, a, b)
}

func TestMergeSeparatesTypesAndLanguages(t *testing.T) {
	d := New()
	d = Merge(d, rec("hindi", Memory, 10, 30))
	d = Merge(d, rec("hindi", WordBuilder, 3, 60))
	d = Merge(d, rec("kannada", Memory, 8, 20))

	assert.Equal(t, 3, d.TotalGames)
	assert.Equal(t, 2, d.Languages["hindi"].TotalGames)
	assert.Nil(t, d.Languages["hindi"].Drawing)
	assert.Equal(t, 10, d.Languages["hindi"].Memory.BestMoves)
	assert.Equal(t, 8, d.Languages["kannada"].Memory.BestMoves)
	assert.Equal(t, 2, d.TypeTotal(Memory))
	assert.Equal(t, []string{"hindi", "kannada"}, d.LanguageIDs())
}

func TestTotalGamesMatchesHistory(t *testing.T) {
	d := New()
	for i := range 25 {
		d = Merge(d, rec("hindi", GameTypes[i%3], i, i))
	}
	assert.Equal(t, len(d.RecentGames), d.TotalGames)
}

func TestTrim(t *testing.T) {
	d := New()
	for i := range 5 {
		d = Merge(d, rec("hindi", Memory, i+1, 10))
	}
	trimmed := d.Trim(2)
	require.Len(t, trimmed.RecentGames, 2)
	assert.Equal(t, 4, trimmed.RecentGames[0].Moves)
	assert.Equal(t, 5, trimmed.RecentGames[1].Moves)
	assert.Equal(t, 5, trimmed.TotalGames)
	assert.Len(t, d.RecentGames, 5, "Trim must not modify the receiver")
	assert.Len(t, d.Trim(0).RecentGames, 5)
}

func TestRecentNewestFirst(t *testing.T) {
	d := New()
	for i := range 3 {
		d = Merge(d, rec("hindi", Memory, i, 10))
	}
	r := d.Recent(2)
	require.Len(t, r, 2)
	assert.Equal(t, 2, r[0].Moves)
	assert.Equal(t, 1, r[1].Moves)
}

func TestGameTypeText(t *testing.T) {
	tests := []struct {
		g    GameType
		text string
	}{
		{Memory, "memory"},
		{WordBuilder, "word-builder"},
		{Drawing, "drawing"},
	}
	for _, tt := range tests {
		b, err := tt.g.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.text, string(b))

		var g GameType
		require.NoError(t, g.UnmarshalText([]byte(tt.text)))
		assert.Equal(t, tt.g, g)
	}

	var g GameType
	assert.Error(t, g.UnmarshalText([]byte("chess")))
	_, err := GameType(0).MarshalText()
	assert.Error(t, err)
}

func TestPersistedShape(t *testing.T) {
	d := Merge(New(), rec("hindi", WordBuilder, 3, 75))
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.EqualValues(t, 1, doc["totalGames"])

	games := doc["recentGames"].([]any)
	first := games[0].(map[string]any)
	assert.Equal(t, "word-builder", first["gameType"])
	assert.Equal(t, "hindi", first["language"])

	hindi := doc["languages"].(map[string]any)["hindi"].(map[string]any)
	assert.Contains(t, hindi, "wordBuilder")
	assert.NotContains(t, hindi, "memory")
}

func TestPolarity(t *testing.T) {
	assert.Equal(t, LowerIsBetter, Memory.Polarity())
	assert.Equal(t, HigherIsBetter, WordBuilder.Polarity())
	assert.Equal(t, HigherIsBetter, Drawing.Polarity())
	assert.True(t, LowerIsBetter.Better(3, 4))
	assert.True(t, HigherIsBetter.Better(4, 3))
	assert.False(t, HigherIsBetter.Better(3, 3))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0:00", FormatTime(0))
	assert.Equal(t, "1:05", FormatTime(65))
	assert.Equal(t, "12:00", FormatTime(720))

	assert.Equal(t, Placeholder, FormatBestMoves(Memory, nil))
	assert.Equal(t, Placeholder, FormatBestTime(&TypeStats{}))
	assert.Equal(t, Placeholder, FormatAverageMoves(nil))

	ts := &TypeStats{TotalGames: 2, BestMoves: 7, BestTime: 42, TotalMoves: 15}
	assert.Equal(t, "7 moves", FormatBestMoves(Memory, ts))
	assert.Equal(t, "7 words", FormatBestMoves(WordBuilder, ts))
	assert.Equal(t, "7%", FormatBestMoves(Drawing, ts))
	assert.Equal(t, "0:42", FormatBestTime(ts))
	assert.Equal(t, "7.5", FormatAverageMoves(ts))
}
