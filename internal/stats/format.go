package stats

import "fmt"

// Placeholder is shown in place of a best value when no game was played.
const Placeholder = "—"

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatBestMoves renders the best moves of ts with the unit of g.
func FormatBestMoves(g GameType, ts *TypeStats) string {
	if ts == nil || ts.TotalGames == 0 {
		return Placeholder
	}
	if g == Drawing {
		return fmt.Sprintf("%d%%", ts.BestMoves)
	}
	return fmt.Sprintf("%d %s", ts.BestMoves, MovesLabel(g))
}

// FormatBestTime renders the best time of ts.
func FormatBestTime(ts *TypeStats) string {
	if ts == nil || ts.TotalGames == 0 {
		return Placeholder
	}
	return FormatTime(ts.BestTime)
}

// FormatAverageMoves renders the average moves of ts, one decimal.
func FormatAverageMoves(ts *TypeStats) string {
	if ts == nil || ts.TotalGames == 0 {
		return Placeholder
	}
	return fmt.Sprintf("%.1f", ts.AverageMoves())
}

// MovesLabel names what the moves field counts for g.
func MovesLabel(g GameType) string {
	switch g {
	case Memory:
		return "moves"
	case WordBuilder:
		return "words"
	case Drawing:
		return "% learned"
	}
	return "moves"
}

// Title is the dashboard heading for g.
func Title(g GameType) string {
	switch g {
	case Memory:
		return "Memory Match"
	case WordBuilder:
		return "Word Builder"
	case Drawing:
		return "Letter Drawing"
	}
	return g.String()
}
