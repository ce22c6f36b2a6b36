package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"secscan/internal/domain"
)

// ReportService renders a batch into a standalone HTML artifact. Rendering
// is a pure function of the batch: no cache or history state is consulted.
type ReportService interface {
	Render(batch *domain.BatchResult, generatedAt time.Time) (string, error)
}

type reportServiceHandler struct {
	tmpl *template.Template
}

func NewReportService() (ReportService, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return reportServiceHandler{tmpl: tmpl}, nil
}

type analystNote struct {
	Ticker   string
	Label    string
	Score    int
	Takeaway string
}

type reportView struct {
	GeneratedAt     string
	Total           int
	GenuineAdopters int
	StrongWashing   int
	MixedSignals    int
	TopScore        int
	TopCompany      string
	Results         []domain.RankedResult
	Notes           []analystNote
	Dimensions      []string
}

func (h reportServiceHandler) Render(batch *domain.BatchResult, generatedAt time.Time) (string, error) {
	view := reportView{
		GeneratedAt:     generatedAt.Format("Jan 2006"),
		Total:           batch.Analyzed,
		GenuineAdopters: batch.GenuineAdopters,
		StrongWashing:   batch.StrongWashing,
		MixedSignals:    batch.MixedSignals,
		Results:         batch.Results,
		Dimensions:      domain.ScoringDimensions,
	}
	if len(batch.Results) > 0 {
		top := batch.Results[0].Result
		view.TopScore = top.TotalScore
		view.TopCompany = fmt.Sprintf("%s — %s", top.Ticker, top.Company)
		view.Notes = buildNotes(batch.Results)
	}

	var b strings.Builder
	if err := h.tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

// buildNotes surfaces the top scorer and, when washing was caught, the
// lowest scorer. Results arrive sorted by score descending.
func buildNotes(results []domain.RankedResult) []analystNote {
	notes := []analystNote{}
	best := results[0].Result
	if best.Verdict == domain.VerdictGenuineAdopter {
		notes = append(notes, analystNote{
			Ticker:   best.Ticker,
			Label:    "Top Scorer",
			Score:    best.TotalScore,
			Takeaway: best.Takeaway,
		})
	}
	worst := results[len(results)-1].Result
	if worst.Verdict == domain.VerdictStrongWashing {
		notes = append(notes, analystNote{
			Ticker:   worst.Ticker,
			Label:    "Lowest Score",
			Score:    worst.TotalScore,
			Takeaway: worst.Takeaway,
		})
	}
	return notes
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Adoption Scanner — 10-K Filing Analysis</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; background: #0d1117; color: #c9d1d9; }
  .wrap { max-width: 960px; margin: 0 auto; padding: 32px 16px; }
  h1 { color: #e6edf3; font-size: 22px; }
  .meta { color: #8b949e; font-size: 13px; margin-bottom: 24px; }
  .stats { display: flex; gap: 24px; flex-wrap: wrap; margin-bottom: 32px; }
  .stat { background: #161b22; border: 1px solid #30363d; border-radius: 8px; padding: 12px 20px; }
  .stat-label { display: block; color: #8b949e; font-size: 12px; text-transform: uppercase; }
  .stat-value { font-size: 26px; font-weight: 600; }
  .blue { color: #58a6ff; } .green { color: #3fb950; } .red { color: #f85149; } .yellow { color: #d29922; }
  .stat-sub { display: block; color: #8b949e; font-size: 12px; }
  .card { background: #161b22; border: 1px solid #30363d; border-radius: 8px; padding: 20px; margin-bottom: 16px; }
  .card h2 { margin: 0 0 4px; font-size: 17px; color: #e6edf3; }
  .verdict { font-size: 13px; font-weight: 600; }
  .tags { color: #8b949e; font-size: 12px; margin-bottom: 12px; }
  table.scores { border-collapse: collapse; margin: 8px 0 12px; font-size: 13px; }
  table.scores td { border: 1px solid #30363d; padding: 4px 10px; }
  ul { margin: 4px 0 12px; padding-left: 20px; font-size: 14px; }
  .takeaway { font-size: 14px; border-left: 3px solid #58a6ff; padding-left: 12px; color: #e6edf3; }
  .note { background: #161b22; border: 1px solid #30363d; border-radius: 8px; padding: 16px 20px; margin-bottom: 16px; font-size: 14px; }
</style>
</head>
<body>
<div class="wrap">
  <h1>AI Adoption Scanner</h1>
  <div class="meta">// 10-K Filing Analysis — {{.Total}} Companies — {{.GeneratedAt}}</div>

  <div class="stats">
    <div class="stat"><span class="stat-label">Companies Scanned</span><span class="stat-value blue">{{.Total}}</span></div>
    <div class="stat"><span class="stat-label">Genuine Adopters</span><span class="stat-value green">{{.GenuineAdopters}}</span></div>
    <div class="stat"><span class="stat-label">AI Washing Caught</span><span class="stat-value red">{{.StrongWashing}}</span></div>
    <div class="stat"><span class="stat-label">Top Score</span><span class="stat-value yellow">{{.TopScore}}</span><span class="stat-sub">{{.TopCompany}}</span></div>
  </div>

  {{range .Notes}}
  <div class="note"><strong>{{.Ticker}} — {{.Label}} ({{.Score}}/100).</strong> {{.Takeaway}}</div>
  {{end}}

  {{range $r := .Results}}
  <div class="card">
    <h2>{{$r.Result.Ticker}} — {{$r.Result.Company}} <span class="verdict">{{$r.Result.TotalScore}}/100 · {{$r.Result.Verdict}}</span></h2>
    <div class="tags">filed {{$r.Result.FilingDate}} · disclosure: {{$r.Result.DisclosureStyle}}{{if ne $r.Trend "new"}} · trend: {{$r.Trend}}{{end}}</div>
    <table class="scores">
      <tr>{{range $.Dimensions}}<td>{{.}}: {{index $r.Result.DimensionScores .}}</td>{{end}}</tr>
    </table>
    <strong>Findings</strong>
    <ul>{{range $r.Result.Findings}}<li>{{.}}</li>{{end}}</ul>
    <strong>Red flags</strong>
    <ul>{{range $r.Result.Flags}}<li>{{.}}</li>{{end}}</ul>
    <p class="takeaway">{{$r.Result.Takeaway}}</p>
  </div>
  {{end}}
</div>
</body>
</html>
`
