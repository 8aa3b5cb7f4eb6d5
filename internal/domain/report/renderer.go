package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

var (
	// ErrAssetMissing: no se encuentra (o no se puede parsear) el font.ttf
	// requerido. El caller debe verificar con CheckAsset antes de renderizar.
	ErrAssetMissing = errors.New("font asset missing")
)

// Tamaños en puntos de cada estilo, como en el reporte original.
var stylePoints = map[Style]float64{
	StyleTitle:   48,
	StyleHeader:  32,
	StyleBody:    24,
	StyleCaption: 16,
}

type rgb struct{ r, g, b int }

var (
	backgroundColor = rgb{255, 255, 248}
	textColor       = rgb{40, 40, 40}
	titleColor      = rgb{0, 0, 0}
	accentColor     = rgb{70, 130, 180}
)

var styleColors = map[Style]rgb{
	StyleTitle:   titleColor,
	StyleHeader:  accentColor,
	StyleBody:    textColor,
	StyleCaption: textColor,
}

// Renderer rasteriza un Data a PNG de 800×800 usando la fuente TrueType
// configurada. Es stateless: cada Render relee el asset.
type Renderer struct {
	fontPath string
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// FontPath devuelve la ruta del asset configurado.
func (r *Renderer) FontPath() string { return r.fontPath }

// CheckAsset verifica la presencia del font sin cargarlo. Pensado para
// que el caller corte antes de intentar generar la imagen.
func (r *Renderer) CheckAsset() error {
	if _, err := os.Stat(r.fontPath); err != nil {
		return fmt.Errorf("%w: %s", ErrAssetMissing, r.fontPath)
	}
	return nil
}

// Render produce los bytes PNG del reporte.
func (r *Renderer) Render(d Data) ([]byte, error) {
	raw, err := os.ReadFile(r.fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, r.fontPath)
	}
	ft, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrAssetMissing, r.fontPath, err)
	}

	faces := make(map[Style]font.Face, len(stylePoints))
	for style, pts := range stylePoints {
		faces[style] = truetype.NewFace(ft, &truetype.Options{Size: pts})
	}

	dc := gg.NewContext(PageWidth, PageHeight)
	dc.SetRGB255(backgroundColor.r, backgroundColor.g, backgroundColor.b)
	dc.Clear()

	for _, pl := range Page(d) {
		face := faces[pl.Style]
		dc.SetFontFace(face)

		c := styleColors[pl.Style]
		dc.SetRGB255(c.r, c.g, c.b)

		switch pl.Anchor {
		case AnchorBaselineCenter:
			w, _ := dc.MeasureString(pl.Text)
			dc.DrawString(pl.Text, pl.X-w/2, pl.Y)
		case AnchorBaselineRight:
			w, _ := dc.MeasureString(pl.Text)
			dc.DrawString(pl.Text, pl.X-w, pl.Y)
		default:
			// Coordenada = esquina superior izquierda; la baseline queda
			// un ascent más abajo.
			ascent := float64(face.Metrics().Ascent.Ceil())
			dc.DrawString(pl.Text, pl.X, pl.Y+ascent)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
