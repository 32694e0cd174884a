package voting

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderChart writes a PNG bar chart of the leaderboard to w. Empty row sets
// render a placeholder stating no data is available.
func RenderChart(rows []Row, w io.Writer) error {
	if len(rows) == 0 {
		placeholder := chart.BarChart{
			Title:  "No data available",
			Width:  640,
			Height: 480,
			Background: chart.Style{
				Padding: chart.Box{Top: 48},
			},
			XAxis: chart.Style{Hidden: true},
			YAxis: chart.YAxis{
				Style: chart.Style{Hidden: true},
				Range: &chart.ContinuousRange{Min: 0, Max: 1},
			},
			Bars: []chart.Value{{Value: 0, Label: ""}},
		}
		return placeholder.Render(chart.PNG, w)
	}

	bars := make([]chart.Value, 0, len(rows))
	maxVotes := 1
	for _, row := range rows {
		bars = append(bars, chart.Value{Value: float64(row.Votes), Label: row.Name})
		if row.Votes > maxVotes {
			maxVotes = row.Votes
		}
	}

	graph := chart.BarChart{
		Title:    "Leaderboard Votes",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		// Rotated labels so long team names stay readable.
		XAxis: chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			// Pinned range: all-zero vote counts would otherwise collapse it.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxVotes)},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}
