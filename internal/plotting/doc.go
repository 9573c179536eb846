// Package plotting turns chart descriptions into PNG files.
//
// A Capability wraps one Backend (gonum/plot or go-chart) and is loaded once
// at startup. When the backend cannot be loaded the capability reports itself
// unavailable and hands out no canvases; callers treat that as "graphs
// disabled" rather than as an error.
//
// Drawing goes through a Canvas, an explicit surface owned by the caller:
//
//	cv := capability.NewCanvas(plotting.DefaultLayout())
//	defer cv.Close()
//	row := cv.Row()
//	row.Title = "Cpu"
//	row.Add(plotting.Curve{Name: "user", Dates: dates, Values: values, Color: green})
//	err := cv.Save("/tmp/glances_cpu.png")
//
// Multi-row charts call AddRow once per row; the first row carries the
// title and legend and the last row the x-axis label.
package plotting
