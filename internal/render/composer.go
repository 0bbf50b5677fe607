// Package render draws a design state onto a raster surface.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"addesigner/internal/domain"
	"addesigner/internal/layout"
)

// Proportions of the surface width used by the layout.
const (
	marginRatio          = 0.08
	titleSizeRatio       = 0.08
	titleAdvanceRatio    = 0.10
	subtitleSizeRatio    = 0.035
	subtitleAdvanceRatio = 0.055
	ctaSizeRatio         = 0.03
	ctaPadXRatio         = 0.02
	ctaHeightRatio       = 0.06
	ctaGapRatio          = 0.03

	imageOpacity = 0.9
)

var (
	overlayTop    = color.NRGBA{A: 51}  // 20% black
	overlayBottom = color.NRGBA{A: 128} // 50% black
	ctaTextColor  = color.White
)

// Rect is a floating point rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Layout records where things ended up on a rendered surface.
type Layout struct {
	Margin        float64
	TitleSize     float64
	SubtitleSize  float64
	CTASize       float64
	TitleLines    []string
	SubtitleLines []string
	// Cursor is the y position below the subtitle block.
	Cursor float64
	// Image is empty when no background image was drawn.
	Image  image.Rectangle
	Button Rect
	// ButtonRadius is the corner radius actually used for the pill.
	ButtonRadius float64
}

// Surface is a fully rendered ad.
type Surface struct {
	Image  *image.RGBA
	Layout Layout
}

func (s *Surface) Width() int  { return s.Image.Bounds().Dx() }
func (s *Surface) Height() int { return s.Image.Bounds().Dy() }

// Composer renders design states. It holds only the font registry, so Render
// is a pure function of its input.
type Composer struct {
	fonts *FontRegistry
}

func NewComposer(fonts *FontRegistry) *Composer {
	if fonts == nil {
		fonts = NewFontRegistry(FontOptions{})
	}
	return &Composer{fonts: fonts}
}

// Render draws the background, the optional image with its contrast overlay,
// the title, the subtitle and the call-to-action pill, in that order, onto a
// new surface of exactly state.Size.
func (c *Composer) Render(state domain.DesignState) *Surface {
	w, h := state.Size.Width, state.Size.Height
	fw := float64(w)
	dc := gg.NewContext(w, h)

	dc.SetColor(state.Background.Color())
	dc.Clear()

	var lay Layout
	if state.HasImage() {
		dc, lay.Image = drawBackgroundImage(dc, state.BackgroundImage)
	}

	lay.Margin = px(fw, marginRatio)
	maxWidth := fw - 2*lay.Margin
	y := lay.Margin

	lay.TitleSize = px(fw, titleSizeRatio)
	face := c.fonts.Face(state.Font, domain.WeightBold, lay.TitleSize)
	dc.SetFontFace(face)
	dc.SetColor(state.Text.Color())
	lay.TitleLines = layout.Wrap(state.Title, maxWidth, dc, layout.TitleMaxLines)
	y = drawLines(dc, face, lay.TitleLines, lay.Margin, y, px(fw, titleAdvanceRatio))

	lay.SubtitleSize = px(fw, subtitleSizeRatio)
	face = c.fonts.Face(state.Font, domain.WeightMedium, lay.SubtitleSize)
	dc.SetFontFace(face)
	lay.SubtitleLines = layout.Wrap(state.Subtitle, maxWidth, dc, layout.SubtitleMaxLines)
	y = drawLines(dc, face, lay.SubtitleLines, lay.Margin, y, px(fw, subtitleAdvanceRatio))
	lay.Cursor = y

	lay.CTASize = px(fw, ctaSizeRatio)
	face = c.fonts.Face(state.Font, domain.WeightBold, lay.CTASize)
	dc.SetFontFace(face)
	textWidth, _ := dc.MeasureString(state.CTALabel)
	lay.Button = Rect{
		X: lay.Margin,
		Y: y + px(fw, ctaGapRatio),
		W: textWidth + 2*px(fw, ctaPadXRatio),
		H: px(fw, ctaHeightRatio),
	}
	lay.ButtonRadius = math.Min(lay.Button.H, lay.Button.W) / 2
	dc.SetColor(state.Accent.Color())
	dc.DrawRoundedRectangle(lay.Button.X, lay.Button.Y, lay.Button.W, lay.Button.H, lay.ButtonRadius)
	dc.Fill()

	dc.SetColor(ctaTextColor)
	cx := lay.Button.X + lay.Button.W/2
	cy := lay.Button.Y + lay.Button.H/2
	dc.DrawString(state.CTALabel, cx-textWidth/2, middleBaseline(face, cy))

	return &Surface{Image: toRGBA(dc.Image()), Layout: lay}
}

// drawBackgroundImage composites img fit-to-contain at reduced opacity and
// darkens the whole surface with a vertical gradient. gg has no global alpha,
// so the composite goes through imaging and a new context is returned.
func drawBackgroundImage(dc *gg.Context, img image.Image) (*gg.Context, image.Rectangle) {
	w, h := dc.Width(), dc.Height()
	b := img.Bounds()
	r := FitContain(b.Dx(), b.Dy(), w, h)
	scaled := imaging.Resize(img, r.Dx(), r.Dy(), imaging.Lanczos)
	composed := imaging.Overlay(dc.Image(), scaled, r.Min, imageOpacity)

	out := gg.NewContextForImage(composed)
	grad := gg.NewLinearGradient(0, 0, 0, float64(h))
	grad.AddColorStop(0, overlayTop)
	grad.AddColorStop(1, overlayBottom)
	out.SetFillStyle(grad)
	out.DrawRectangle(0, 0, float64(w), float64(h))
	out.Fill()
	return out, r
}

// drawLines draws top-anchored, left-aligned lines and returns the cursor
// below the block.
func drawLines(dc *gg.Context, face font.Face, lines []string, x, y, advance float64) float64 {
	ascent := float64(face.Metrics().Ascent) / 64
	for _, line := range lines {
		dc.DrawString(line, x, y+ascent)
		y += advance
	}
	return y
}

// middleBaseline returns the baseline that vertically centers the em box on cy.
func middleBaseline(face font.Face, cy float64) float64 {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return cy + (ascent-descent)/2
}

func px(width, ratio float64) float64 {
	return math.Round(width * ratio)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
