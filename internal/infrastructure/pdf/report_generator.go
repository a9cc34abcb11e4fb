package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/isokohq/isoko-api/internal/application/analytics"
	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// ReportGenerator renders the analytics overview as a PDF for download.
type ReportGenerator struct{}

var _ analytics.ReportGenerator = (*ReportGenerator)(nil)

// NewReportGenerator builds the generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Overview renders the dashboard payload into a one-page report.
func (g *ReportGenerator) Overview(b *entity.Business, ov *dto.AnalyticsOverviewResponse) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			text.NewCol(12, fmt.Sprintf("Analytics Report — %s", b.Name), props.Text{
				Size:  16,
				Style: fontstyle.Bold,
			}),
		),
		row.New(6).Add(
			text.NewCol(12, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2 January 2006 15:04 UTC")), props.Text{
				Size:  9,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			}),
		),
		row.New(4).Add(col.New(12).Add(line.New())),
	)

	g.periodSection(m, "Last 7 days", ov.Weekly)
	g.periodSection(m, "Last 30 days", ov.Monthly)

	m.AddRows(
		sectionHeader("Growth"),
		statRow("Weekly views", ov.Growth.WeeklyViews.String()+"%"),
		statRow("Weekly contacts", ov.Growth.WeeklyContacts.String()+"%"),
		statRow("Monthly views", ov.Growth.MonthlyViews.String()+"%"),
		statRow("Monthly contacts", ov.Growth.MonthlyContacts.String()+"%"),
		statRow("Conversion rate (30d)", ov.ConversionRate.String()+"%"),
	)

	if len(ov.Daily) > 0 {
		m.AddRows(sectionHeader("Daily activity (30 days)"))
		m.AddRows(row.New(6).Add(
			text.NewCol(4, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(4, "Views", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(4, "Contacts", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		))
		for _, d := range ov.Daily {
			m.AddRows(row.New(5).Add(
				text.NewCol(4, d.Date, props.Text{Size: 9}),
				text.NewCol(4, fmt.Sprintf("%d", d.Views), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(4, fmt.Sprintf("%d", d.Contacts), props.Text{Size: 9, Align: align.Right}),
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReportGenerator) periodSection(m core.Maroto, title string, p dto.PeriodStatsResponse) {
	m.AddRows(
		sectionHeader(title),
		statRow("Page views", fmt.Sprintf("%d", p.PageViews)),
		statRow("Unique visitors", fmt.Sprintf("%d", p.UniqueVisitors)),
		statRow("Contacts", fmt.Sprintf("%d", p.TotalContacts)),
		statRow("Website clicks", fmt.Sprintf("%d", p.WebsiteClicks)),
		statRow("Direction requests", fmt.Sprintf("%d", p.DirectionRequests)),
		statRow("Search appearances", fmt.Sprintf("%d", p.SearchAppearances)),
		statRow("Avg daily views", p.AvgDailyViews.String()),
	)
}

func sectionHeader(title string) core.Row {
	return row.New(9).Add(
		text.NewCol(12, title, props.Text{Size: 12, Style: fontstyle.Bold, Top: 3}),
	)
}

func statRow(label, value string) core.Row {
	return row.New(5).Add(
		text.NewCol(6, label, props.Text{Size: 9}),
		text.NewCol(6, value, props.Text{Size: 9, Align: align.Right}),
	)
}
