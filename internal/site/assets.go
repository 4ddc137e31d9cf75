package site

const cssContent = `:root {
  --bg: #ffffff;
  --fg: #111827;
  --muted: #6b7280;
  --dark: #0b1120;
  --band: #f3f4f6;
  --accent: #059669;
  --border: #e5e7eb;
  --radius: 12px;
}

* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: var(--fg); background: var(--bg); line-height: 1.6; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.container.narrow { max-width: 860px; }
.center { text-align: center; }
.muted { color: var(--muted); }
.small { font-size: 0.85rem; }
.eyebrow { text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.8rem; color: var(--accent); }
section { padding: 4rem 0; }
section.dark, .hero.dark { background: var(--dark); color: #f9fafb; }
section.band { background: var(--band); }

.site-header { position: sticky; top: 0; z-index: 10; background: rgba(11, 17, 32, 0.95); }
.nav { display: flex; align-items: center; justify-content: space-between; height: 64px; }
.brand { color: #fff; font-weight: 700; }
.nav-links a { color: #d1d5db; margin-left: 1.25rem; font-size: 0.9rem; }
.nav-links a.active { color: #fff; border-bottom: 2px solid var(--accent); }

.site-footer { background: var(--dark); color: #9ca3af; padding: 3rem 0 1.5rem; }
.site-footer a { color: #d1d5db; }
.site-footer ul { list-style: none; padding: 0; }
.footer-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; }
.footer-bottom { display: flex; justify-content: space-between; border-top: 1px solid #1f2937; padding-top: 1rem; }
.footer-bottom a { margin-left: 1rem; }

.shimmer { background: linear-gradient(90deg, #34d399, #60a5fa, #34d399); background-size: 200% auto; -webkit-background-clip: text; background-clip: text; color: transparent; animation: shimmer 4s linear infinite; }
@keyframes shimmer { to { background-position: 200% center; } }

.lead { font-size: 1.25rem; }
.big { font-size: 2rem; font-weight: 700; }
.actions { display: flex; gap: 1rem; justify-content: center; margin: 1.5rem 0; }
.btn { display: inline-block; padding: 0.75rem 1.5rem; border-radius: 999px; font-weight: 600; border: 0; cursor: pointer; }
.btn.primary { background: var(--accent); color: #fff; }
.btn.ghost { border: 1px solid currentColor; color: inherit; }

.grid { display: grid; gap: 1.5rem; }
.grid.two { grid-template-columns: repeat(2, 1fr); }
.grid.three { grid-template-columns: repeat(3, 1fr); }
.grid.four { grid-template-columns: repeat(4, 1fr); }
.grid.five { grid-template-columns: repeat(5, 1fr); }
.grid.six { grid-template-columns: repeat(6, 1fr); }
.span-2 { grid-column: span 2; }

.card { background: #fff; border: 1px solid var(--border); border-radius: var(--radius); padding: 1.5rem; color: var(--fg); }
.card.dark-card { background: #111827; border-color: #1f2937; color: #f9fafb; }
.card.accent, .accent { border-left: 4px solid; padding-left: 1.25rem; }
.entity-card { display: flex; gap: 1rem; }
.swatch { width: 8px; border-radius: 4px; flex-shrink: 0; }
.card-head, .card-foot, .row { display: flex; justify-content: space-between; align-items: baseline; gap: 1rem; }
.metric-value { font-size: 1.75rem; font-weight: 700; }

.bar { height: 10px; background: var(--border); border-radius: 999px; overflow: hidden; margin: 0.4rem 0; }
.bar-fill { height: 100%; background: var(--accent); transition: width 1s ease; }
.bar-fill.bhc { background: var(--accent); }
.bar-fill.competitor { background: #9ca3af; }
.pill, .chip, .badge, .status, .type-badge { display: inline-block; padding: 0.15rem 0.6rem; border-radius: 999px; font-size: 0.75rem; background: var(--band); }
.type-badge { color: #fff; }
.chips { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.status-operational { background: #d1fae5; color: #065f46; }
.status-pre-launch { background: #fef3c7; color: #92400e; }
.status-planning { background: #e5e7eb; color: #374151; }
.badge-emerald { background: #d1fae5; color: #065f46; }
.badge-blue { background: #dbeafe; color: #1e40af; }
.badge-cyan { background: #cffafe; color: #155e75; }
.badge-orange { background: #ffedd5; color: #9a3412; }
.badge-purple { background: #ede9fe; color: #5b21b6; }
.badge-gray { background: #e5e7eb; color: #374151; }
.dot { display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 0.5rem; }
.legend { list-style: none; padding: 0; columns: 2; }

.table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
.table th, .table td { text-align: left; padding: 0.6rem; border-bottom: 1px solid var(--border); }
.compare .winner-bhc td:nth-child(2) { color: var(--accent); font-weight: 700; }
.compare .winner-competitor td:nth-child(3) { font-weight: 700; }

.chart { width: 100%; max-height: 420px; margin: 1.5rem 0; }

.flywheel { position: relative; width: 100%; max-width: 600px; aspect-ratio: 1; margin: 0 auto; }
.flywheel-svg { position: absolute; inset: 0; width: 100%; height: 100%; }
.flywheel-node { position: absolute; transform: translate(-50%, -50%); transition: opacity 0.3s; }
.flywheel-node.focused .node-card { box-shadow: 0 0 0 3px var(--accent); }
.node-card { display: flex; flex-direction: column; background: #fff; border: 1px solid var(--border); border-left: 4px solid; border-radius: 8px; padding: 0.5rem 0.75rem; color: var(--fg); font-size: 0.85rem; white-space: nowrap; }
.step-num { display: inline-flex; align-items: center; justify-content: center; width: 28px; height: 28px; border-radius: 50%; background: var(--accent); color: #fff; font-weight: 700; margin-right: 0.5rem; }
.steps { list-style: none; padding: 0; }
.mobile-only { display: none; }

.goal-revenue .bar-fill { background: #22c55e; }
.goal-infrastructure .bar-fill { background: #3b82f6; }
.goal-reach .bar-fill { background: #a855f7; }

.reveal { opacity: 0; transform: translateY(16px); transition: opacity 0.6s ease, transform 0.6s ease; }
.reveal.visible { opacity: 1; transform: none; }

.prose p { margin: 0 0 1rem; }

@media (max-width: 900px) {
  .grid.three, .grid.four, .grid.five, .grid.six { grid-template-columns: repeat(2, 1fr); }
  .footer-grid { grid-template-columns: repeat(2, 1fr); }
  .desktop-only { display: none; }
  .mobile-only { display: block; }
  .nav-links { display: none; }
}

@media (max-width: 600px) {
  .grid.two, .grid.three, .grid.four, .grid.five, .grid.six { grid-template-columns: 1fr; }
  .span-2 { grid-column: auto; }
}

@media print {
  .no-print { display: none !important; }
  body { color: #000; }
  section { padding: 1rem 0; page-break-inside: avoid; }
  .cover { page-break-after: always; text-align: center; padding-top: 30vh; }
  .reveal { opacity: 1; transform: none; }
}
`

const jsContent = `(function () {
  "use strict";

  function formatCount(value, decimals) {
    return value.toLocaleString("en-US", {
      minimumFractionDigits: decimals,
      maximumFractionDigits: decimals
    });
  }

  function countUp(el) {
    var end = parseFloat(el.dataset.end);
    if (isNaN(end)) return;
    var decimals = parseInt(el.dataset.decimals || "0", 10);
    var prefix = el.dataset.prefix || "";
    var suffix = el.dataset.suffix || "";
    var duration = 2000;
    var start = null;
    function step(ts) {
      if (start === null) start = ts;
      var t = Math.min((ts - start) / duration, 1);
      var eased = 1 - Math.pow(1 - t, 3);
      el.textContent = prefix + formatCount(end * eased, decimals) + suffix;
      if (t < 1) requestAnimationFrame(step);
    }
    requestAnimationFrame(step);
  }

  function observe() {
    var targets = document.querySelectorAll("[data-countup], .reveal");
    if (!("IntersectionObserver" in window)) {
      targets.forEach(function (el) { el.classList.add("visible"); });
      return;
    }
    var io = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (!entry.isIntersecting) return;
        var el = entry.target;
        if (el.hasAttribute("data-countup")) countUp(el);
        el.classList.add("visible");
        io.unobserve(el);
      });
    }, { threshold: 0.2 });
    targets.forEach(function (el) { io.observe(el); });
  }

  function money(v) {
    if (v >= 1e9) return "$" + (v / 1e9).toFixed(1) + "B";
    if (v >= 1e6) return "$" + (v / 1e6).toFixed(1) + "M";
    if (v >= 1e3) return "$" + (v / 1e3).toFixed(0) + "K";
    return "$" + v;
  }

  function chartConfig(kind, series, el) {
    switch (kind) {
    case "bar":
      return {
        type: "bar",
        data: {
          labels: series.map(function (d) { return d.name; }),
          datasets: [
            { label: "Y1 Floor", data: series.map(function (d) { return d.floor; }), backgroundColor: series.map(function (d) { return d.color; }) },
            { label: "Y1 Ceiling", data: series.map(function (d) { return d.ceiling; }), backgroundColor: "rgba(156,163,175,0.5)" }
          ]
        },
        options: { scales: { y: { ticks: { callback: money } } } }
      };
    case "pie":
      return {
        type: "pie",
        data: {
          labels: series.map(function (d) { return d.name; }),
          datasets: [{ data: series.map(function (d) { return d.value; }), backgroundColor: series.map(function (d) { return d.color; }) }]
        }
      };
    case "donut":
      return {
        type: "doughnut",
        data: {
          labels: series.map(function (d) { return d.category; }),
          datasets: [{ data: series.map(function (d) { return d.percentage; }), backgroundColor: series.map(function (d) { return d.color; }) }]
        }
      };
    case "hbar":
      return {
        type: "bar",
        data: {
          labels: series.map(function (d) { return d.name; }),
          datasets: [{ label: "Headcount", data: series.map(function (d) { return d.headcount; }), backgroundColor: series.map(function (d) { return d.color; }) }]
        },
        options: { indexAxis: "y" }
      };
    case "projection":
      var color = el.dataset.color || "#059669";
      return {
        type: "line",
        data: {
          labels: series.map(function (d) { return d.year; }),
          datasets: [
            { label: "Floor", data: series.map(function (d) { return d.floor; }), borderColor: color, fill: false },
            { label: "Ceiling", data: series.map(function (d) { return d.ceiling; }), borderColor: color, borderDash: [6, 4], fill: "-1", backgroundColor: color + "22" }
          ]
        },
        options: { scales: { y: { ticks: { callback: money } } } }
      };
    }
    return null;
  }

  function charts() {
    if (typeof Chart === "undefined") return;
    document.querySelectorAll("canvas[data-chart]").forEach(function (el) {
      var series;
      try {
        series = JSON.parse(el.dataset.series || "[]");
      } catch (e) {
        return;
      }
      var cfg = chartConfig(el.dataset.chart, series, el);
      if (cfg) new Chart(el, cfg);
    });
  }

  function liveReload() {
    var path = document.body.dataset.liveReload;
    if (!path) return;
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + path);
    ws.onmessage = function (ev) {
      if (ev.data === "reload") location.reload();
    };
    ws.onclose = function () {
      setTimeout(liveReload, 2000);
    };
  }

  function printButtons() {
    document.querySelectorAll("[data-print]").forEach(function (btn) {
      btn.addEventListener("click", function () { window.print(); });
    });
  }

  document.addEventListener("DOMContentLoaded", function () {
    observe();
    charts();
    printButtons();
    liveReload();
  });
})();
`

// Asset returns the content and type of a file served under /static/.
func Asset(name string) (content, contentType string, ok bool) {
	switch name {
	case "style.css":
		return cssContent, "text/css; charset=utf-8", true
	case "app.js":
		return jsContent, "application/javascript; charset=utf-8", true
	}
	return "", "", false
}
