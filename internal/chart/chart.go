// Package chart renders the spending charts: a proportion (pie) panel and a
// magnitude (bar) panel side by side on one landscape PDF page.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"

	"github.com/spendlog-dev/spendlog/internal/report"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no spending data to chart")

// Page geometry in millimetres (A4 landscape).
const (
	pageW = 297.0

	pieCX     = 77.0
	pieCY     = 112.0
	pieR      = 52.0
	arcStepDg = 2.0

	barLeft   = 168.0
	barRight  = 285.0
	barTop    = 45.0
	barBottom = 165.0
)

// Set3 qualitative palette.
var palette = [][3]int{
	{141, 211, 199}, {255, 255, 179}, {190, 186, 218}, {251, 128, 114},
	{128, 177, 211}, {253, 180, 98}, {179, 222, 105}, {252, 205, 229},
	{217, 217, 217}, {188, 128, 189}, {204, 235, 197}, {255, 237, 111},
}

// Slice is the angular extent of one pie wedge, in degrees counter-clockwise
// from the positive x axis.
type Slice struct {
	Label   string
	Start   float64
	End     float64
	Percent float64
}

// Slices lays out pie wedges starting at 12 o'clock and going
// counter-clockwise.
func Slices(pie report.Series) []Slice {
	total := pie.Total()
	if total.IsZero() {
		return nil
	}
	out := make([]Slice, len(pie))
	angle := 90.0
	for i, p := range pie {
		pct := summary.Percentage(p.Value, total).InexactFloat64()
		sweep := pct * 3.6
		out[i] = Slice{Label: p.Label, Start: angle, End: angle + sweep, Percent: pct}
		angle += sweep
	}
	return out
}

// Render writes the two-panel chart as a PDF to w.
func Render(w io.Writer, pie, bar report.Series) error {
	if len(pie) == 0 || len(bar) == 0 || pie.Total().IsZero() {
		return ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Spending by Category", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawPie(pdf, tr, pie)
	drawBars(pdf, tr, bar)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// WriteFile renders the chart to path, creating parent directories.
func WriteFile(path string, pie, bar report.Series) error {
	if len(pie) == 0 || len(bar) == 0 {
		return ErrNoData
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := Render(f, pie, bar); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func setFill(pdf *gofpdf.Fpdf, i int) {
	c := palette[i%len(palette)]
	pdf.SetFillColor(c[0], c[1], c[2])
}

func title(pdf *gofpdf.Fpdf, x, w float64, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(x, 18)
	pdf.CellFormat(w, 10, text, "", 0, "C", false, 0, "")
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

func drawPie(pdf *gofpdf.Fpdf, tr func(string) string, pie report.Series) {
	title(pdf, 10, pageW/2-10, "Spending Distribution by Category")

	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.4)
	for i, s := range Slices(pie) {
		pts := []gofpdf.PointType{{X: pieCX, Y: pieCY}}
		for a := s.Start; a < s.End; a += arcStepDg {
			x, y := polar(pieCX, pieCY, pieR, a)
			pts = append(pts, gofpdf.PointType{X: x, Y: y})
		}
		x, y := polar(pieCX, pieCY, pieR, s.End)
		pts = append(pts, gofpdf.PointType{X: x, Y: y})

		setFill(pdf, i)
		pdf.Polygon(pts, "FD")

		mid := (s.Start + s.End) / 2
		pdf.SetFont("Helvetica", "", 9)
		pct := fmt.Sprintf("%.1f%%", s.Percent)
		px, py := polar(pieCX, pieCY, pieR*0.6, mid)
		pdf.Text(px-pdf.GetStringWidth(pct)/2, py+1.5, pct)

		label := tr(s.Label)
		lx, ly := polar(pieCX, pieCY, pieR*1.12, mid)
		if math.Cos(mid*math.Pi/180) < 0 {
			lx -= pdf.GetStringWidth(label)
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(lx, ly+1.5, label)
	}
}

func drawBars(pdf *gofpdf.Fpdf, tr func(string) string, bar report.Series) {
	title(pdf, pageW/2, pageW/2-10, "Spending by Category")

	maxV := 0.0
	for _, p := range bar {
		maxV = math.Max(maxV, p.Value.InexactFloat64())
	}
	height := barBottom - barTop

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(barLeft, barTop-5, barLeft, barBottom)
	pdf.Line(barLeft, barBottom, barRight, barBottom)

	slot := (barRight - barLeft) / float64(len(bar))
	bw := slot * 0.7
	for i, p := range bar {
		v := p.Value.InexactFloat64()
		h := 0.0
		if maxV > 0 {
			h = v / maxV * height
		}
		x := barLeft + float64(i)*slot + (slot-bw)/2

		setFill(pdf, i)
		pdf.Rect(x, barBottom-h, bw, h, "FD")

		pdf.SetFont("Helvetica", "", 8)
		val := "$" + p.Value.StringFixed(2)
		pdf.Text(x+bw/2-pdf.GetStringWidth(val)/2, barBottom-h-1.5, val)

		pdf.SetFont("Helvetica", "", 9)
		lx, ly := x+bw/2, barBottom+4
		pdf.TransformBegin()
		pdf.TransformRotate(45, lx, ly)
		label := tr(p.Label)
		pdf.Text(lx-pdf.GetStringWidth(label), ly, label)
		pdf.TransformEnd()
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(barLeft, barBottom+22)
	pdf.CellFormat(barRight-barLeft, 8, "Category", "", 0, "C", false, 0, "")

	pdf.TransformBegin()
	pdf.TransformRotate(90, barLeft-12, (barTop+barBottom)/2)
	pdf.Text(barLeft-12-pdf.GetStringWidth("Amount ($)")/2, (barTop+barBottom)/2, "Amount ($)")
	pdf.TransformEnd()
}
