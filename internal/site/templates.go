package site

// layoutTemplate is the document shell shared by every page, plus the small
// partials the pages reuse.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Layout.Meta.Title}}</title>
  <meta name="description" content="{{.Layout.Meta.Description}}">
  <meta property="og:title" content="{{.Layout.Site.Title}} {{.Layout.Site.Year}}">
  <meta property="og:site_name" content="{{.Layout.Site.Organization}}">
  <meta property="og:type" content="website">
  <link rel="stylesheet" href="/static/style.css">
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4/dist/chart.umd.min.js" defer></script>
  <script src="/static/app.js" defer></script>
</head>
<body{{if .LiveReload}} data-live-reload="/ws/reload"{{end}}>
  <header class="site-header no-print">
    <nav class="nav container">
      <a href="/" class="brand">{{.Layout.Site.Title}}</a>
      <div class="nav-links">
        {{- range .Layout.Nav}}
        <a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
        {{- end}}
      </div>
    </nav>
  </header>
  <main>
{{template "content" .}}
  </main>
  <footer class="site-footer no-print">
    <div class="container footer-grid">
      {{- range .Layout.Footer}}
      <div>
        <h3>{{.Title}}</h3>
        <ul>{{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>
      </div>
      {{- end}}
    </div>
    <div class="container footer-bottom">
      <p>&copy; {{.Layout.Site.Year}} {{.Layout.Site.Organization}}. All rights reserved.</p>
      <div>{{range .Layout.FooterLinks}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</div>
    </div>
  </footer>
</body>
</html>
{{end}}

{{define "counter"}}<span class="counter" data-countup data-end="{{.End}}" data-prefix="{{.Prefix}}" data-suffix="{{.Suffix}}" data-decimals="{{.Decimals}}">{{.Text}}</span>{{end}}

{{define "display"}}<span class="counter" data-countup data-end="{{.End}}" data-prefix="{{.Prefix}}" data-suffix="{{.Suffix}}" data-decimals="{{.Decimals}}">{{.String}}</span>{{end}}

{{define "entity-card"}}<a class="card entity-card reveal" href="/entity/{{.Slug}}">
  <span class="swatch" style="background-color: {{.Color}}"></span>
  <div>
    <div class="card-head"><h3>{{.Name}}</h3><span class="muted">{{.Category}}</span></div>
    <p class="muted">{{.Tagline}}</p>
    <div class="card-foot"><strong style="color: {{.Color}}">{{.RevenueY1}}</strong><span class="muted small">Y1 V6 Floor</span></div>
  </div>
</a>{{end}}`

var pageTemplates = map[string]string{
	"home":       homeTemplate,
	"entity":     entityTemplate,
	"financials": financialsTemplate,
	"compare":    compareTemplate,
	"flywheel":   flywheelTemplate,
	"goals":      goalsTemplate,
	"investors":  investorsTemplate,
	"team":       teamTemplate,
	"print":      printTemplate,
	"notfound":   notFoundTemplate,
	"redirect":   redirectTemplate,
}

const homeTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <h1><span class="shimmer">{{.EntityCount}} Entities.</span> 1 Flywheel.<br>Building Rural America's Future.</h1>
    <p class="lead">{{.CapitalRaise}} Capital Raise &nbsp;|&nbsp; {{.RevenueRange}} Year 1 Revenue</p>
    <div class="actions">
      <a class="btn primary" href="/entity/growwise">Explore Entities</a>
      <a class="btn ghost" href="/financials">View Financials</a>
    </div>
  </div>
</section>
<section class="band">
  <div class="container grid six">
    {{- range .Metrics}}
    <div class="metric reveal">
      <div class="metric-value">{{template "counter" .}}</div>
      <div class="metric-label">{{.Label}}</div>
      <div class="muted small">{{.Sublabel}}</div>
    </div>
    {{- end}}
  </div>
</section>
<section>
  <div class="container">
    <h2 class="center">The <span class="shimmer">Ecosystem</span></h2>
    <p class="center muted">{{.EntityCount}} entities working together through a perpetual flywheel, each one strengthening the others.</p>
    <div class="grid three">{{range .Entities}}{{template "entity-card" .}}{{end}}</div>
  </div>
</section>
<section class="dark">
  <div class="container center">
    <h2>The <span class="shimmer">{{.FlywheelPct}} Perpetual Flywheel</span></h2>
    <p class="muted">{{.FlywheelText}}</p>
    <div class="grid four">
      {{- range .Flywheel}}
      <div class="card dark-card"><div class="big" style="color: {{.Color}}">{{.Value}}</div><div>{{.Label}}</div></div>
      {{- end}}
    </div>
    <a class="btn primary" href="/flywheel">See Full Flywheel &rarr;</a>
  </div>
</section>
{{- if .Competitor}}
<section>
  <div class="container">
    <h2 class="center">BHC vs. <span class="shimmer">Traditional Economic Development</span></h2>
    <div class="grid two">
      <div class="card dark-card">
        <h3>Black Hills Consortium</h3>
        {{range .BHCRows}}<div class="row"><span>{{.Label}}</span><strong>{{.Value}}</strong></div>{{end}}
      </div>
      <div class="card">
        <h3 class="muted">{{.Competitor}}</h3>
        {{range .CompetitorRow}}<div class="row"><span>{{.Label}}</span><strong>{{.Value}}</strong></div>{{end}}
      </div>
    </div>
    <p class="center"><a href="/compare">See Full Comparison &rarr;</a></p>
  </div>
</section>
{{- end}}
<section class="dark">
  <div class="container center">
    <h2>Ready to invest in Rural America's future?</h2>
    <div class="actions">
      <a class="btn primary" href="/investors">Investor Information</a>
      {{if .ContactEmail}}<a class="btn ghost" href="mailto:{{.ContactEmail}}">Contact Us</a>{{end}}
    </div>
  </div>
</section>
{{end}}{{end}}`

const entityTemplate = `{{define "content"}}{{with .Page}}{{$color := .Entity.Color}}
<section class="hero dark">
  <div class="container">
    <span class="status status-{{.StatusClass}}">{{.StatusLabel}}</span>
    <div class="accent" style="border-color: {{$color}}">
      <span class="type-badge" style="background-color: {{$color}}">{{.Entity.Type}}</span>
      <h1>{{.Entity.Name}}</h1>
      <p class="muted small">{{.Entity.LegalName}}</p>
      <p class="lead shimmer">{{.Entity.Tagline}}</p>
      <div class="grid two">
        <div><div class="big">{{template "display" .Y1}}</div><p class="muted small">Y1 Revenue (Floor)</p></div>
        <div><div class="big">{{template "display" .Y5}}</div><p class="muted small">Y5 Revenue (Floor)</p></div>
      </div>
      {{with .Entity.Website}}<p><a href="{{.}}" rel="noopener">{{.}}</a></p>{{end}}
    </div>
  </div>
</section>
<section>
  <div class="container">
    <h2>About <span class="pill" style="color: {{$color}}">{{.Entity.Category}}</span></h2>
    <div class="prose">{{markdown .Entity.Description}}</div>
    {{with .Entity.AIProduct}}
    <div class="card"><h3>{{.Name}}</h3><p>{{.Description}}</p><p class="muted">{{.Pricing}}</p></div>
    {{end}}
  </div>
</section>
{{- if .Streams}}
<section class="band">
  <div class="container">
    <h2>Revenue Streams</h2>
    {{- range .Streams}}
    <div class="card stream reveal">
      <div class="row"><span>{{.Name}} <span class="pill stream-{{.Status}}">{{.Status}}</span></span><strong>{{.Amount}}</strong></div>
      <div class="bar"><div class="bar-fill" style="width: {{.Width}}%; background-color: {{$color}}"></div></div>
    </div>
    {{- end}}
  </div>
</section>
{{- end}}
{{- if .Metrics}}
<section>
  <div class="container">
    <h2>Key Metrics</h2>
    <div class="grid three">{{range .Metrics}}<div class="card metric" style="border-color: {{$color}}"><div class="big">{{template "counter" .}}</div><p class="muted">{{.Label}}</p></div>{{end}}</div>
  </div>
</section>
{{- end}}
<section class="dark">
  <div class="container">
    <h2>Flywheel Connection</h2>
    <div class="grid two">
      <div class="card dark-card" style="border-color: {{$color}}"><h3 class="eyebrow">Role</h3><p>{{.Entity.FlywheelRole}}</p></div>
      <div class="card dark-card" style="border-color: {{$color}}"><h3 class="eyebrow">How It Connects</h3><p>{{.Entity.FlywheelConnection}}</p></div>
    </div>
  </div>
</section>
<section>
  <div class="container">
    <h2>Team</h2>
    <div class="team-row">
      <div class="big"><span class="counter" data-countup data-end="{{.Entity.TeamSize}}">{{.Entity.TeamSize}}</span></div>
      <div class="chips">{{range .Entity.KeyRoles}}<span class="chip">{{.}}</span>{{end}}</div>
    </div>
  </div>
</section>
<section class="band">
  <div class="container">
    <h2>Revenue Projection</h2>
    <p class="muted">Year 1 &rarr; Year 5, V6 Floor to V4 Ceiling range</p>
    <canvas class="chart" data-chart="projection" data-color="{{$color}}" data-series="{{json .Projection}}"></canvas>
    <table class="table">
      <thead><tr><th>Year</th><th>Floor</th><th>Ceiling</th></tr></thead>
      <tbody>{{range .Projection}}<tr><td>{{.Year}}</td><td>{{currency .Floor}}</td><td>{{currency .Ceiling}}</td></tr>{{end}}</tbody>
    </table>
  </div>
</section>
{{- if .Related}}
<section>
  <div class="container">
    <h2>Related Entities</h2>
    <div class="grid three">{{range .Related}}{{template "entity-card" .}}{{end}}</div>
  </div>
</section>
{{- end}}
{{end}}{{end}}`

const financialsTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">Financial Overview</p>
    <h1>The <span class="shimmer">Numbers</span> Behind the Ecosystem</h1>
  </div>
</section>
<section class="band">
  <div class="container grid five">
    {{- range .Cards}}
    <div class="card metric reveal"><div class="big">{{template "counter" .}}</div><div>{{.Label}}</div><div class="muted small">{{.Sublabel}}</div></div>
    {{- end}}
  </div>
  <div class="container grid two">
    <div class="card"><h3>Y1 Valuation</h3><p class="big">{{.ValuationY1}}</p></div>
    <div class="card"><h3>Y5 Valuation</h3><p class="big">{{.ValuationY5}}</p></div>
  </div>
</section>
<section>
  <div class="container">
    <h2>Revenue by Entity</h2>
    <canvas class="chart" data-chart="bar" data-series="{{json .Bars}}"></canvas>
    <table class="table">
      <thead><tr><th>Entity</th><th>Y1 Floor</th><th>Y1 Ceiling</th></tr></thead>
      <tbody>{{range .Bars}}<tr><td><span class="dot" style="background-color: {{.Color}}"></span>{{.FullName}}</td><td>{{currency .Floor}}</td><td>{{currency .Ceiling}}</td></tr>{{end}}</tbody>
    </table>
  </div>
</section>
<section class="band">
  <div class="container">
    <h2>Share of Y1 Floor</h2>
    <canvas class="chart" data-chart="pie" data-series="{{json .Pie}}"></canvas>
    <ul class="legend">{{range .Pie}}<li><span class="dot" style="background-color: {{.Color}}"></span>{{.Name}} {{.Value}}%</li>{{end}}</ul>
  </div>
</section>
<section class="dark">
  <div class="container">
    <h2>The {{.FlywheelPct}}% Flywheel</h2>
    <div class="grid three">{{range .Recipients}}<div class="card dark-card"><div class="big">{{.Percent}}%</div><h3>{{.Name}}</h3><p class="muted">{{.Description}}</p></div>{{end}}</div>
  </div>
</section>
<section>
  <div class="container">
    <h2>FlowBot Pricing</h2>
    <div class="grid five">{{range .Pricing}}<div class="card center"><h3>{{.Name}}</h3><div class="big">{{.Price}}</div><p class="muted small">{{.Description}}</p></div>{{end}}</div>
  </div>
</section>
{{end}}{{end}}`

const compareTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">{{.Data.CompetitorType}}</p>
    <h1>{{.Title}}</h1>
    {{range .Others}}<p><a href="{{.Href}}">{{.Label}} &rarr;</a></p>{{end}}
  </div>
</section>
<section>
  <div class="container">
    <table class="table compare">
      <thead><tr><th>Metric</th><th>BHC</th><th>{{.ShortName}}</th></tr></thead>
      <tbody>
      {{- range .Data.DataPoints}}
        <tr class="winner-{{.Winner}}"><td>{{.Metric}}{{with .Note}}<div class="muted small">{{.}}</div>{{end}}</td><td>{{.BHCValue}}</td><td>{{.CompetitorValue}}</td></tr>
      {{- end}}
      </tbody>
    </table>
  </div>
</section>
{{- if .Multipliers}}
<section class="dark">
  <div class="container grid three">
    {{- range .Multipliers}}
    <div class="card dark-card center"><div class="big counter" data-countup data-end="{{.Value}}" data-suffix="x" data-decimals="{{.Decimals}}">{{.Text}}</div><p>{{.Metric}}</p></div>
    {{- end}}
  </div>
</section>
{{- end}}
{{- if .Bars}}
<section class="band">
  <div class="container">
    <h2>Head to Head</h2>
    {{- range .Bars}}
    <div class="compare-bar">
      <div class="muted small">{{.Metric}}</div>
      <div class="bar"><div class="bar-fill bhc" style="width: {{.BHCPercent}}%"></div></div>
      <div class="bar"><div class="bar-fill competitor" style="width: {{.CompetitorPercent}}%"></div></div>
    </div>
    {{- end}}
  </div>
</section>
{{- end}}
<section>
  <div class="container">
    <p class="lead"><strong>{{.SummaryLead}}</strong></p>
    {{if .SummaryRest}}<div class="prose">{{markdown .SummaryRest}}</div>{{end}}
  </div>
</section>
{{end}}{{end}}`

const flywheelTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">Ecosystem Engine</p>
    <h1>The {{.Percentage}} Perpetual <span class="shimmer">Flywheel</span></h1>
    <p class="muted">How {{.Percentage}} equity distribution creates compounding value across {{.EntityCnt}} entities</p>
  </div>
</section>
<section>
  <div class="container">
    <div class="flywheel desktop-only">
      <svg viewBox="0 0 600 600" class="flywheel-svg">
        <defs><marker id="arrowhead" markerWidth="8" markerHeight="6" refX="7" refY="3" orient="auto"><polygon points="0 0, 8 3, 0 6" fill="#059669"></polygon></marker></defs>
        {{- range .Diagram.Edges}}
        <path d="{{.Path}}" fill="none" stroke="#059669" stroke-width="{{.Width}}" stroke-dasharray="{{.Dash}}" marker-end="url(#arrowhead)" opacity="{{.Opacity}}"></path>
        {{- end}}
      </svg>
      {{- range .Diagram.Nodes}}
      <a class="flywheel-node{{if .Focused}} focused{{end}}" href="?focus={{.ID}}" style="left: {{.Left}}%; top: {{.Top}}%; opacity: {{.Opacity}}">
        <span class="node-card" style="border-left-color: {{.Color}}"><strong>{{.Label}}</strong><span style="color: {{.Color}}">{{.Value}}</span></span>
      </a>
      {{- end}}
    </div>
    {{if .Diagram.Focus}}<p class="center"><a href="/flywheel">Clear highlight</a></p>{{end}}
    <ol class="steps mobile-only">
      {{- range .Steps}}
      <li><span class="step-num">{{.Number}}</span><span style="color: {{.From.Color}}">{{.From.Label}}</span> &rarr; <span style="color: {{.To.Color}}">{{.To.Label}}</span><div class="muted small">{{.Label}}</div></li>
      {{- end}}
    </ol>
  </div>
</section>
<section class="band">
  <div class="container">
    <h2 class="center">How It Works</h2>
    <div class="grid two">
      {{- range .Steps}}
      <div class="card reveal">
        <span class="step-num">{{.Number}}</span>
        <p><strong><span style="color: {{.From.Color}}">{{.From.Label}}</span> &rarr; <span style="color: {{.To.Color}}">{{.To.Label}}</span></strong></p>
        <span class="badge {{.BadgeClass}}">{{.Type}}</span>
        <p class="muted">{{.Label}}</p>
      </div>
      {{- end}}
    </div>
  </div>
</section>
<section>
  <div class="container">
    <h2 class="center">Entity Flywheel Roles</h2>
    <div class="grid three">{{range .Roles}}<div class="card accent" style="border-color: {{.Color}}"><h3><a href="/entity/{{.Slug}}">{{.ShortName}}</a></h3><p class="muted">{{.Role}}</p></div>{{end}}</div>
  </div>
</section>
<section class="dark">
  <div class="container grid four">
    {{- range .KeyNumbers}}
    <div class="card dark-card center"><div class="big">{{template "counter" .}}</div><p class="muted">{{.Label}}</p></div>
    {{- end}}
  </div>
  <p class="center"><a class="btn primary" href="/investors">Investor Information</a> <a class="btn ghost" href="/">Back to Overview</a></p>
</section>
{{end}}{{end}}`

const goalsTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">Five-Year Plan</p>
    <h1>Goals &amp; <span class="shimmer">Milestones</span></h1>
    <div class="grid three">
      <div><div class="big">{{.Total}}</div><p class="muted">Total Goals</p></div>
      <div><div class="big">{{.WithProgress}}</div><p class="muted">In Progress</p></div>
      <div><div class="big">{{.AverageCompletion}}%</div><p class="muted">Average Completion</p></div>
    </div>
  </div>
</section>
<section>
  <div class="container grid three">
    {{- range .Goals}}
    <div class="card goal goal-{{.Category}} reveal">
      <div class="row"><h3>{{.Label}}</h3><span class="pill">{{.Category}}</span></div>
      <div class="row"><span>{{.CurrentText}}</span><span class="muted">of {{.TargetText}}</span></div>
      <div class="bar"><div class="bar-fill" style="width: {{.Percent}}%"></div></div>
      <p class="small">{{.Percent}}%</p>
    </div>
    {{- end}}
  </div>
</section>
<section class="band">
  <div class="container grid three">
    {{- range .Categories}}
    <div class="card goal-{{.Key}}">
      <h3>{{.Label}}</h3>
      <p class="muted small">{{.Count}} goals</p>
      <div class="big">{{.Combined}}%</div>
      <ul>{{range .Goals}}<li>{{.Label}}: {{.Percent}}%</li>{{end}}</ul>
    </div>
    {{- end}}
  </div>
</section>
{{end}}{{end}}`

const investorsTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">Investment Opportunity</p>
    <h1>{{.CapitalRaise}} Capital Raise</h1>
    <div class="grid three">
      <div><div class="big">{{.ValuationY1}}</div><p class="muted">Y1 Valuation</p></div>
      <div><div class="big">{{.ValuationY5}}</div><p class="muted">Y5 Valuation</p></div>
      <div><div class="big">{{.RevenueMultiple}}</div><p class="muted">Revenue Multiple</p></div>
    </div>
  </div>
</section>
<section>
  <div class="container">
    <h2>Investment Thesis</h2>
    <div class="grid two">
      {{- range .Thesis}}
      <div class="card reveal{{if .Wide}} span-2{{end}}"><span class="step-num">{{.Number}}</span><div class="prose">{{markdown .Text}}</div></div>
      {{- end}}
    </div>
  </div>
</section>
<section class="band">
  <div class="container">
    <h2>Use of Funds</h2>
    <canvas class="chart" data-chart="donut" data-series="{{json .Funds}}"></canvas>
    {{- range .Funds}}
    <div class="row"><span><span class="dot" style="background-color: {{.Color}}"></span>{{.Category}}</span><span>{{.Percentage}}%</span><strong>{{.AmountText}}</strong></div>
    {{- end}}
  </div>
</section>
<section>
  <div class="container">
    <h2>Investment Tiers</h2>
    <div class="grid three">
      {{- range .Tiers}}
      <div class="card accent" style="border-color: {{.Color}}"><h3>{{.Name}}</h3><p class="big">{{.Range}}</p><ul>{{range .Benefits}}<li>{{.}}</li>{{end}}</ul></div>
      {{- end}}
    </div>
    {{if .InvestorEmail}}<p class="center"><a class="btn primary" href="mailto:{{.InvestorEmail}}">Schedule a Conversation</a></p>{{end}}
  </div>
</section>
{{end}}{{end}}`

const teamTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <p class="eyebrow">Our Team</p>
    <h1>{{.Staff}} People. <span class="shimmer">{{.AIEquivalent}} Output.</span></h1>
    <p class="muted">Every person works with AI at {{.AIMultiplier}} leverage across {{.EntityCount}} entities.</p>
  </div>
</section>
<section>
  <div class="container">
    <h2>Departments</h2>
    <canvas class="chart" data-chart="hbar" data-series="{{json .Departments}}"></canvas>
    {{- $max := .MaxHeadcount}}
    {{- range .Departments}}
    <div class="row"><span>{{.Name}}</span><strong>{{.Headcount}}</strong></div>
    <div class="bar"><div class="bar-fill" style="width: {{percentOf .Headcount $max}}%; background-color: {{.Color}}"></div></div>
    {{- end}}
  </div>
</section>
<section class="band">
  <div class="container">
    <h2>By Entity</h2>
    <div class="grid three">
      {{- range .Entities}}
      <div class="card accent" style="border-color: {{.Color}}"><div class="row"><h3><a href="/entity/{{.Slug}}">{{.ShortName}}</a></h3><strong>{{.TeamSize}}</strong></div><div class="chips">{{range .Roles}}<span class="chip">{{.}}</span>{{end}}</div></div>
      {{- end}}
    </div>
  </div>
</section>
<section>
  <div class="container grid four">
    {{- range .Benefits}}
    <div class="card center"><div class="big">{{.Value}}</div><h3>{{.Label}}</h3><p class="muted small">{{.Description}}</p></div>
    {{- end}}
  </div>
</section>
<section class="dark">
  <div class="container grid three">
    {{- range .Costs}}
    <div class="card dark-card center"><div class="big">{{template "counter" .}}</div><p>{{.Label}}</p><p class="muted small">{{.Sublabel}}</p></div>
    {{- end}}
  </div>
</section>
{{end}}{{end}}`

const printTemplate = `{{define "content"}}{{with .Page}}
<div class="print container narrow">
  <div class="no-print actions">
    <button type="button" class="btn primary" data-print>Print Report</button>
    <a class="btn ghost" href="/">Back to Home</a>
  </div>
  <section class="cover">
    <h1>{{upper .Heading}}</h1>
    <h2>Annual Report {{.Year}}</h2>
    <p>{{.Cover}}</p>
  </section>
  <section>
    <h2>Executive Overview</h2>
    <table class="table">{{range .Overview}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>{{end}}</table>
  </section>
  <section>
    <h2>Entity Portfolio</h2>
    <table class="table">
      <thead><tr><th>Entity</th><th>Type</th><th>Status</th><th>Y1 Floor</th><th>Y5 Floor</th><th>Team</th></tr></thead>
      <tbody>{{range .Entities}}<tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Status.Label}}</td><td>{{.Y1}}</td><td>{{.Y5}}</td><td>{{.TeamSize}}</td></tr>{{end}}</tbody>
      <tfoot><tr><th>Total</th><td></td><td></td><th>{{.TotalY1}}</th><th>{{.TotalY5}}</th><th>{{.TotalTeam}}</th></tr></tfoot>
    </table>
  </section>
  <section>
    <h2>Financials</h2>
    <table class="table">{{range .Aggregate}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>{{end}}</table>
    <h3>Top Entities by Y1 Floor</h3>
    <table class="table">{{range .Top}}<tr><td>{{.Name}}</td><td>{{.Y1}}</td><td>{{.Y5}}</td></tr>{{end}}</table>
  </section>
  <section>
    <h2>Team</h2>
    <p>{{.Team.Staff}} staff with the output of {{.Team.AIEquivalent}}.</p>
    <table class="table">{{range .Team.Departments}}<tr><td>{{.Name}}</td><td>{{.Headcount}}</td></tr>{{end}}</table>
    <ul>{{range .Team.Benefits}}<li><strong>{{.Label}}</strong> ({{.Value}}): {{.Description}}</li>{{end}}</ul>
    <table class="table">{{range .Costs}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>{{end}}</table>
  </section>
  <section>
    <h2>Investment Opportunity</h2>
    <p>{{.RaiseText}} Capital Raise</p>
    <ol>{{range .Investors.Thesis}}<li>{{markdown .}}</li>{{end}}</ol>
    <table class="table">{{range .Funds}}<tr><td>{{.Category}}</td><td>{{.Percentage}}%</td><td>{{.AmountText}}</td></tr>{{end}}</table>
    <table class="table">{{range .Investors.Tiers}}<tr><td>{{.Name}}</td><td>{{.Range}}</td><td>{{join .Benefits ", "}}</td></tr>{{end}}</table>
    <p>Y1 Valuation: {{.ValuationY1}}<br>Y5 Valuation: {{.ValuationY5}}<br>Revenue Multiple: {{.Investors.ReturnProjections.RevenueMultiple}}</p>
  </section>
  <section>
    <h2>Goals</h2>
    <table class="table">
      <thead><tr><th>Goal</th><th>Current</th><th>Target</th><th>Progress</th></tr></thead>
      <tbody>{{range .Goals}}<tr><td>{{.Label}}</td><td>{{.Current}}</td><td>{{.Target}}</td><td>{{.Progress}}%</td></tr>{{end}}</tbody>
    </table>
  </section>
  <section>
    <h2>The {{.FlywheelPct}} Perpetual Flywheel</h2>
    <h3>Flywheel Connections</h3>
    <ol>{{range .Connections}}<li>{{.From}} &rarr; {{.To}}: {{.Label}}</li>{{end}}</ol>
    <h3>Entity Flywheel Roles</h3>
    <div class="grid two">{{range .Entities}}<p><strong>{{.ShortName}}:</strong> {{.FlywheelRole}}</p>{{end}}</div>
  </section>
</div>
{{end}}{{end}}`

const notFoundTemplate = `{{define "content"}}{{with .Page}}
<section class="hero dark">
  <div class="container center">
    <h1>{{.Name}} Not Found</h1>
    <p class="muted">The page you requested does not exist.</p>
    <a class="btn primary" href="/">Back to Home</a>
  </div>
</section>
{{end}}{{end}}`

const redirectTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url={{.Page}}">
  <link rel="canonical" href="{{.Page}}">
  <title>Redirecting</title>
</head>
<body><a href="{{.Page}}">Moved here</a></body>
</html>
{{end}}{{define "content"}}{{end}}`
