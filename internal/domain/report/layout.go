package report

import (
	"fmt"
	"time"
)

// Dimensiones y offsets fijos del reporte. El contrato de layout es
// vertical: un cursor que baja sección por sección, sin reservar espacio
// para secciones ausentes.
const (
	PageWidth  = 800
	PageHeight = 800

	contentTop = 120.0
	sectionGap = 80.0
	headerX    = 50.0
	fieldX     = 80.0
	fieldX2    = 400.0

	titleX = PageWidth / 2.0
	titleY = 50.0

	footerY      = PageHeight - 40.0
	footerLeftX  = 50.0
	footerRightX = PageWidth - 50.0
)

const footerCaption = "Kuro家貓咪熱量計算機 (僅供參考)"

// Style identifica la tipografía/color de un texto del reporte.
type Style int

const (
	StyleTitle Style = iota
	StyleHeader
	StyleBody
	StyleCaption
)

// Anchor indica cómo se interpreta la coordenada de un Placement.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorBaselineCenter
	AnchorBaselineRight
)

// Span es un texto dentro de una línea, con su offset horizontal propio
// (las líneas de datos básicos tienen dos columnas, x=80 y x=400).
type Span struct {
	X     float64
	Text  string
	Style Style
}

// Line avanza el cursor vertical y dibuja sus spans a esa altura.
type Line struct {
	Advance float64
	Spans   []Span
}

// Section es un encabezado más sus líneas. Solo se emiten secciones con
// datos presentes.
type Section struct {
	Title string
	Lines []Line
}

// Placement es un texto ya posicionado en la página.
type Placement struct {
	X, Y   float64
	Text   string
	Style  Style
	Anchor Anchor
}

// IntakeSummary y PlanSummary son las vistas mínimas que el reporte
// necesita de los resultados opcionales.
type IntakeSummary struct {
	TotalKcal         float64
	CalorieDifference float64
}

type PlanSummary struct {
	WetPercentage    int
	RequiredDryGrams float64
	RequiredWetGrams float64
}

// Data es todo lo que el reporte dibuja. Intake y Plan en nil omiten su
// sección completa.
type Data struct {
	WeightKg  float64
	AgeYears  int
	AgeMonths int // meses restantes tras los años completos
	BCS       int
	Neutered  bool

	DER           float64
	WaterIntakeML float64

	Intake *IntakeSummary
	Plan   *PlanSummary

	GeneratedAt time.Time
}

// BuildSections arma las secciones visibles en el orden del reporte.
func BuildSections(d Data) []Section {
	neutered := "否"
	if d.Neutered {
		neutered = "是"
	}

	sections := []Section{
		{
			Title: "🐾 貓咪基本資料",
			Lines: []Line{
				{Advance: 50, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("體重: %.2f 公斤", d.WeightKg), Style: StyleBody},
					{X: fieldX2, Text: fmt.Sprintf("年齡: %d 歲 %d 個月", d.AgeYears, d.AgeMonths), Style: StyleBody},
				}},
				{Advance: 40, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("BCS: %d / 9", d.BCS), Style: StyleBody},
					{X: fieldX2, Text: fmt.Sprintf("絕育狀態: %s", neutered), Style: StyleBody},
				}},
			},
		},
		{
			Title: "📈 每日建議攝取",
			Lines: []Line{
				{Advance: 50, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("建議熱量 (DER): %.2f 大卡/天", d.DER), Style: StyleBody},
				}},
				{Advance: 40, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("建議飲水: %.0f 毫升/天", d.WaterIntakeML), Style: StyleBody},
				}},
			},
		},
	}

	if d.Intake != nil {
		sections = append(sections, Section{
			Title: "📊 目前飲食分析",
			Lines: []Line{
				{Advance: 50, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("每日總攝取熱量: %.2f 大卡", d.Intake.TotalKcal), Style: StyleBody},
				}},
				{Advance: 40, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("與建議量差異: %+.2f 大卡", d.Intake.CalorieDifference), Style: StyleBody},
				}},
			},
		})
	}

	if d.Plan != nil {
		sections = append(sections, Section{
			Title: "🥗 建議餵食計畫",
			Lines: []Line{
				{Advance: 40, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("(%d%% 乾食 / %d%% 濕食 熱量佔比)", 100-d.Plan.WetPercentage, d.Plan.WetPercentage), Style: StyleCaption},
				}},
				{Advance: 30, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("乾食: %.1f 公克/天", d.Plan.RequiredDryGrams), Style: StyleBody},
				}},
				{Advance: 40, Spans: []Span{
					{X: fieldX, Text: fmt.Sprintf("濕食: %.1f 公克/天", d.Plan.RequiredWetGrams), Style: StyleBody},
				}},
			},
		})
	}

	return sections
}

// Layout pliega las secciones con el cursor vertical: la primera arranca
// en contentTop y cada sección siguiente suma sectionGap desde la última
// línea dibujada.
func Layout(sections []Section) []Placement {
	out := make([]Placement, 0)
	cursor := contentTop

	for i, sec := range sections {
		if i > 0 {
			cursor += sectionGap
		}
		out = append(out, Placement{X: headerX, Y: cursor, Text: sec.Title, Style: StyleHeader, Anchor: AnchorTopLeft})

		for _, line := range sec.Lines {
			cursor += line.Advance
			for _, sp := range line.Spans {
				out = append(out, Placement{X: sp.X, Y: cursor, Text: sp.Text, Style: sp.Style, Anchor: AnchorTopLeft})
			}
		}
	}

	return out
}

// Page arma la página completa: título centrado, secciones y pie fijo.
func Page(d Data) []Placement {
	out := []Placement{
		{X: titleX, Y: titleY, Text: "貓咪飲食報告", Style: StyleTitle, Anchor: AnchorBaselineCenter},
	}
	out = append(out, Layout(BuildSections(d))...)
	out = append(out,
		Placement{
			X: footerLeftX, Y: footerY,
			Text:   "報告生成時間: " + d.GeneratedAt.Format("2006-01-02 15:04:05"),
			Style:  StyleCaption,
			Anchor: AnchorTopLeft,
		},
		Placement{
			X: footerRightX, Y: footerY,
			Text:   footerCaption,
			Style:  StyleCaption,
			Anchor: AnchorBaselineRight,
		},
	)
	return out
}
