// Package html renders search reports as standalone HTML documents.
package html

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/2mnml/limitlesstcg-search/crawl"
)

// DefaultMinWinRate is the win-rate cutoff below which matched decks are
// omitted from the report.
const DefaultMinWinRate = 0.40

// Ensure ReportRenderer implements limitless.ReportRenderer at compile time.
var _ limitless.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer renders a report as a self-contained HTML page with decks
// grouped by archetype.
type ReportRenderer struct {
	// MinWinRate filters out decks below the cutoff. Zero means
	// DefaultMinWinRate; use a negative value to include everything.
	MinWinRate float64
}

type reportData struct {
	Card        string
	Total       int
	Tournaments int
	Decks       int
	Elapsed     string
	Groups      []archetypeGroup
}

type archetypeGroup struct {
	Archetype string
	Rows      []deckRow
}

type deckRow struct {
	WinPct  string
	Record  string
	Dropped bool
	Player  string
	URL     string
}

// Render writes the report as HTML. Decks are grouped by archetype,
// archetypes are listed alphabetically, and decks within a group are
// ordered by win rate, then points, then games played, best first.
func (r *ReportRenderer) Render(w io.Writer, report *limitless.Report) error {
	cutoff := r.MinWinRate
	if cutoff == 0 {
		cutoff = DefaultMinWinRate
	}

	grouped := make(map[string][]*limitless.Deck)
	for _, deck := range report.Matches {
		if deck.WinRate() < cutoff {
			continue
		}
		grouped[deck.Archetype] = append(grouped[deck.Archetype], deck)
	}

	archetypes := make([]string, 0, len(grouped))
	total := 0
	for archetype, decks := range grouped {
		archetypes = append(archetypes, archetype)
		total += len(decks)
		sort.SliceStable(decks, func(i, j int) bool {
			a, b := decks[i], decks[j]
			if a.WinRate() != b.WinRate() {
				return a.WinRate() > b.WinRate()
			}
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			return a.Played() > b.Played()
		})
	}
	sort.Strings(archetypes)

	data := reportData{
		Card:        report.Card,
		Total:       total,
		Tournaments: report.Tournaments,
		Decks:       report.Decks,
		Elapsed:     crawl.FormatElapsed(report.Elapsed),
	}
	for _, archetype := range archetypes {
		group := archetypeGroup{Archetype: archetype}
		for _, deck := range grouped[archetype] {
			player := deck.Player
			if player == "" {
				player = "—"
			}
			group.Rows = append(group.Rows, deckRow{
				WinPct:  fmt.Sprintf("%.2f%%", deck.WinRate()*100),
				Record:  fmt.Sprintf("%d-%d-%d", deck.Wins, deck.Losses, deck.Ties),
				Dropped: deck.Dropped,
				Player:  player,
				URL:     deck.URL,
			})
		}
		data.Groups = append(data.Groups, group)
	}

	return reportTemplate.Execute(w, data)
}

var reportTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Decks with “{{.Card}}”</title>
<meta name="viewport" content="width=device-width,initial-scale=1">
<style>
:root {
  --bg:#0b0f14; --fg:#e6edf3; --muted:#9fb1c1; --card:#121821; --accent:#7cc4ff; --chip:#1e2630;
}
* { box-sizing: border-box; }
body { margin:0; font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial; background:var(--bg); color:var(--fg); }
.header { padding:20px 24px; border-bottom:1px solid #1f2a36; position:sticky; top:0; backdrop-filter:saturate(1.2) blur(6px); background:rgba(11,15,20,.9); }
.h1 { font-size:20px; margin:0 0 6px; }
.meta { color:var(--muted); font-size:14px; display:flex; gap:12px; flex-wrap:wrap; }
.container { max-width:1100px; margin:20px auto; padding:0 16px 40px; }
.group { margin:22px 0; background:var(--card); border:1px solid #1f2a36; border-radius:14px; overflow:hidden; }
.group-hd { display:flex; align-items:center; justify-content:space-between; padding:12px 16px; background:linear-gradient(180deg, #121821 0%, #0f141b 100%); border-bottom:1px solid #1f2a36; }
.group-title { font-weight:600; font-size:16px; }
.badge { background:var(--chip); padding:4px 8px; border-radius:999px; color:var(--muted); font-size:12px; }
.table { width:100%; border-collapse:collapse; table-layout:fixed; }
.table th, .table td { padding:10px 12px; text-align:left; border-bottom:1px solid #1f2a36; font-size:14px; }
.table th { color:var(--muted); font-weight:500; }
.table a { color:var(--accent); text-decoration:none; }
.table a:hover { text-decoration:underline; }
.col-pct   { width: 10ch; }
.col-rec   { width: 16ch; }
.col-player{ width: auto; }
.col-link  { width: 14ch; }
.pct { font-variant-numeric: tabular-nums; white-space: nowrap; }
.rec { font-variant-numeric: tabular-nums; white-space: nowrap; }
.drop { color:#ff9c9c; font-weight:600; margin-left:6px; }
.controls { margin-top:10px; display:flex; gap:8px; flex-wrap:wrap; }
input[type="search"] { background:#0f141b; color:var(--fg); border:1px solid #1f2a36; border-radius:10px; padding:8px 10px; outline:none; }
.hide { display:none; }
.footer { color:var(--muted); text-align:center; padding:20px 0 40px; }
</style>
</head>
<body>
<div class="header">
  <div class="h1">Decks containing “{{.Card}}”</div>
  <div class="meta">
    <div><strong>{{.Total}}</strong> matches · grouped by archetype</div>
    <div>{{.Tournaments}} tournaments · {{.Decks}} deck pages scanned</div>
    <div>Elapsed: {{.Elapsed}}</div>
  </div>
  <div class="controls">
    <input id="filter" type="search" placeholder="Filter by archetype or player…">
  </div>
</div>
<div class="container">
{{range .Groups}}<div class="group">
<div class="group-hd"><div class="group-title">{{.Archetype}}</div><div class="badge">{{len .Rows}}</div></div>
<table class="table">
<colgroup><col class="col-pct"><col class="col-rec"><col class="col-player"><col class="col-link"></colgroup>
<thead><tr><th>Win %</th><th>Record</th><th>Player</th><th>Link</th></tr></thead><tbody>
{{$arch := .Archetype}}{{range .Rows}}<tr data-arch="{{$arch}}" data-player="{{.Player}}">
<td class="pct">{{.WinPct}}</td>
<td class="rec">{{.Record}}{{if .Dropped}} <span class="drop">Drop</span>{{end}}</td>
<td>{{.Player}}</td>
<td><a href="{{.URL}}" target="_blank">Open deck</a></td>
</tr>
{{end}}</tbody></table></div>
{{end}}</div>
<div class="footer">Generated locally · Use your browser’s “Print → Save as PDF” to export</div>
<script>
const q = document.getElementById('filter');
q.addEventListener('input', () => {
  const needle = q.value.trim().toLowerCase();
  const rows = document.querySelectorAll('tbody tr');
  rows.forEach(tr => {
    if (!needle) { tr.classList.remove('hide'); return; }
    const arch = (tr.getAttribute('data-arch') || '').toLowerCase();
    const player = (tr.getAttribute('data-player') || '').toLowerCase();
    tr.classList.toggle('hide', !(arch.includes(needle) || player.includes(needle)));
  });
});
</script>
</body>
</html>
`))
