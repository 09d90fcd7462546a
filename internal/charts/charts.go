// Package charts turns precomputed aggregates into Plotly figure documents.
// A Figure marshals directly to the JSON Plotly.newPlot consumes in the
// browser; nothing here renders pixels.
package charts

import "fmt"

type Trace map[string]any

type Figure struct {
	Data   []Trace        `json:"data"`
	Layout map[string]any `json:"layout"`
}

// Palette shared across charts.
var palette = []string{"#7eb0d5", "#fd7f6f", "#b2e061", "#bd7ebe", "#ffb55a", "#beb9db"}

func baseLayout(title string) map[string]any {
	return map[string]any{
		"title":         map[string]any{"text": title},
		"paper_bgcolor": "#ffffff",
		"plot_bgcolor":  "#ffffff",
		"margin":        map[string]any{"t": 60, "r": 30, "b": 60, "l": 60},
	}
}

func Line(title, xTitle, yTitle string, xs []string, ys []float64) Figure {
	layout := baseLayout(title)
	layout["xaxis"] = map[string]any{"title": map[string]any{"text": xTitle}}
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": yTitle}}
	layout["hovermode"] = "x unified"
	return Figure{
		Data: []Trace{{
			"type": "scatter",
			"mode": "lines",
			"x":    xs,
			"y":    ys,
			"line": map[string]any{"color": palette[0], "width": 3},
		}},
		Layout: layout,
	}
}

func LineWithMarkers(title, xTitle, yTitle string, xs []string, ys []float64) Figure {
	fig := Line(title, xTitle, yTitle, xs, ys)
	fig.Data[0]["mode"] = "lines+markers"
	fig.Data[0]["line"] = map[string]any{"color": palette[3], "width": 3}
	fig.Data[0]["marker"] = map[string]any{"size": 10}
	return fig
}

func Bar(title, xTitle, yTitle string, xs []string, ys []float64) Figure {
	layout := baseLayout(title)
	layout["xaxis"] = map[string]any{"title": map[string]any{"text": xTitle}}
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": yTitle}}
	layout["showlegend"] = false
	return Figure{
		Data: []Trace{{
			"type":   "bar",
			"x":      xs,
			"y":      ys,
			"marker": map[string]any{"color": palette[4]},
		}},
		Layout: layout,
	}
}

// HBar is a horizontal bar chart, longest bar on top.
func HBar(title, xTitle string, labels []string, values []float64) Figure {
	// Plotly draws horizontal categories bottom-up; reverse so rank 1 leads.
	n := len(labels)
	revLabels := make([]string, n)
	revValues := make([]float64, n)
	for i := 0; i < n; i++ {
		revLabels[i] = labels[n-1-i]
		revValues[i] = values[n-1-i]
	}

	layout := baseLayout(title)
	layout["xaxis"] = map[string]any{"title": map[string]any{"text": xTitle}}
	layout["showlegend"] = false
	return Figure{
		Data: []Trace{{
			"type":        "bar",
			"orientation": "h",
			"x":           revValues,
			"y":           revLabels,
			"marker":      map[string]any{"color": palette[0]},
		}},
		Layout: layout,
	}
}

func Pie(title string, labels []string, values []float64, hole float64) Figure {
	layout := baseLayout(title)
	return Figure{
		Data: []Trace{{
			"type":   "pie",
			"labels": labels,
			"values": values,
			"hole":   hole,
			"marker": map[string]any{"colors": palette},
		}},
		Layout: layout,
	}
}

func Heatmap(title, xTitle, yTitle string, xs, ys []int, z [][]int) Figure {
	layout := baseLayout(title)
	layout["xaxis"] = map[string]any{"title": map[string]any{"text": xTitle}}
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": yTitle}}
	return Figure{
		Data: []Trace{{
			"type":         "heatmap",
			"x":            xs,
			"y":            ys,
			"z":            z,
			"colorscale":   "RdYlBu",
			"reversescale": true,
		}},
		Layout: layout,
	}
}

// DualAxis pairs a bar series with a line series on a secondary y-axis.
func DualAxis(title string, xs []string, barName string, bars []float64, lineName string, line []float64) Figure {
	layout := baseLayout(title)
	layout["hovermode"] = "x unified"
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": barName}}
	layout["yaxis2"] = map[string]any{
		"title":      map[string]any{"text": lineName},
		"overlaying": "y",
		"side":       "right",
	}
	return Figure{
		Data: []Trace{
			{
				"type":    "bar",
				"name":    barName,
				"x":       xs,
				"y":       bars,
				"marker":  map[string]any{"color": palette[2]},
				"opacity": 0.6,
			},
			{
				"type":  "scatter",
				"mode":  "lines+markers",
				"name":  lineName,
				"x":     xs,
				"y":     line,
				"yaxis": "y2",
				"line":  map[string]any{"color": palette[0], "width": 4},
			},
		},
		Layout: layout,
	}
}

// Box draws one box trace per named series from its raw samples.
func Box(title, yTitle string, names []string, series [][]float64) Figure {
	layout := baseLayout(title)
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": yTitle}}
	layout["showlegend"] = false
	data := make([]Trace, len(names))
	for i := range names {
		data[i] = Trace{
			"type":   "box",
			"name":   names[i],
			"y":      series[i],
			"marker": map[string]any{"color": palette[i%len(palette)]},
		}
	}
	return Figure{Data: data, Layout: layout}
}

// Scatter plots paired points with the correlation coefficient annotated;
// an undefined coefficient renders as N/A rather than a number.
func Scatter(title, xTitle, yTitle string, xs, ys []float64, labels []string, r float64, rDefined bool) Figure {
	rText := "r = N/A"
	if rDefined {
		rText = fmt.Sprintf("r = %.2f", r)
	}

	layout := baseLayout(title)
	layout["xaxis"] = map[string]any{"title": map[string]any{"text": xTitle}}
	layout["yaxis"] = map[string]any{"title": map[string]any{"text": yTitle}}
	layout["annotations"] = []map[string]any{{
		"xref": "paper", "yref": "paper",
		"x": 0.02, "y": 0.98,
		"text":      rText,
		"showarrow": false,
	}}
	return Figure{
		Data: []Trace{{
			"type":   "scatter",
			"mode":   "markers",
			"x":      xs,
			"y":      ys,
			"text":   labels,
			"marker": map[string]any{"color": palette[1], "size": 8, "opacity": 0.7},
		}},
		Layout: layout,
	}
}
