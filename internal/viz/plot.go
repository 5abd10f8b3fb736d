package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/loopgen/internal/analysis"
	"github.com/san-kum/loopgen/internal/loop"
)

var (
	plotTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	plotCaptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderAnglePlot draws the sampled angle over one period as a terminal
// graph, with the wrapped tracking error below it.
func RenderAnglePlot(res loop.Result, width, height int) string {
	angles := make([]float64, len(res.Samples))
	for i, f := range res.Samples {
		angles[i] = f.Angle
	}

	var sb strings.Builder

	sb.WriteString(plotTitleStyle.Render("angle over one period (rad)"))
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(angles,
		asciigraph.Width(width),
		asciigraph.Height(height),
	))
	sb.WriteString("\n\n")

	errs := analysis.SampleErrors(res)
	sb.WriteString(plotTitleStyle.Render("wrapped tracking error (rad)"))
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(errs,
		asciigraph.Width(width),
		asciigraph.Height(height/2),
	))
	sb.WriteString("\n")

	caption := fmt.Sprintf("frames=%d period=%.3fs mean|err|=%.5f rad",
		len(res.Samples), res.Period, analysis.MeanSampleError(res))
	sb.WriteString(plotCaptionStyle.Render(caption))
	sb.WriteString("\n")

	return sb.String()
}

// RenderSpectrumPlot draws the power spectrum of the sample error. The
// dominant bin tells which harmonic of the loop frequency carries the
// residual wobble.
func RenderSpectrumPlot(res loop.Result, width, height int) string {
	ps := analysis.PowerSpectrum(analysis.SampleErrors(res))
	if len(ps) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(plotTitleStyle.Render("error power spectrum"))
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(ps,
		asciigraph.Width(width),
		asciigraph.Height(height),
	))
	sb.WriteString("\n")
	sb.WriteString(plotCaptionStyle.Render(
		fmt.Sprintf("dominant bin=%d of %d", analysis.DominantBin(ps), len(ps))))
	sb.WriteString("\n")

	return sb.String()
}
