package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"project_sentinel/internal/infrastructure"
)

var dashboardTpl = template.Must(template.New("dashboard").Parse(`
<!doctype html><html><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>Project Sentinel</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Inter,Arial;background:#f0f2f6;color:#111;margin:0;padding:20px}
h1,h2,h3{color:#004a99}
.row{display:flex;gap:12px;flex-wrap:wrap}
.card{background:#ffffff;border:1px solid #ddd;border-radius:8px;padding:16px;margin:12px 0;flex:1;min-width:280px}
.card.insight{background:linear-gradient(135deg,#ffffff 0%,#e6f3ff 100%);border-left:4px solid #004a99}
.muted{color:#555;font-size:12px}
.delta{color:#800000}
#chat-log{max-height:420px;overflow-y:auto}
.msg{border:1px solid #ddd;border-radius:8px;padding:10px;margin:8px 0;background:#ffffff;white-space:pre-wrap}
.msg.user{background:#e6f3ff}
.msg table{border-collapse:collapse;width:100%;margin-top:8px;font-size:13px}
.msg th,.msg td{border-bottom:1px solid #ddd;padding:4px 8px;text-align:left}
button{background:#004a99;color:#fff;font-weight:bold;border:none;border-radius:4px;padding:8px 14px;cursor:pointer}
button:hover{background:#0057b7}
input[type=text]{flex:1;padding:8px;border:1px solid #ddd;border-radius:4px}
</style>
</head><body>
<h1>Project Sentinel: Stuart AI Engine</h1>
<p class="muted">Total Customers: {{.Metrics.Total}} &middot; Churn Rate: {{printf "%.1f" .Metrics.ChurnRate}}% <span class="delta">({{.TargetDelta}})</span></p>

<div class="row">
  <div class="card"><div id="gauge"></div></div>
  <div class="card"><div id="bars"></div></div>
  <div class="card"><div id="revenue"></div></div>
</div>

<h3>Key Insights</h3>
<div class="row">
{{range .Insights}}
  <div class="card insight">
    <h4>{{.Title}}</h4>
    <p>{{.Headline}}</p>
    <p class="muted">{{.Detail}}</p>
  </div>
{{end}}
</div>

<h3>Need Deeper Insights? Ask Stuart</h3>
<div class="card">
  <div id="chat-log"></div>
  <div class="row" style="margin-top:8px">
    <input type="text" id="chat-input" placeholder="Ask Stuart about churn insights...">
    <button onclick="sendChat()">Send</button>
  </div>
</div>

<script>
const charts = {{.ChartsJSON}};

Plotly.newPlot('gauge', [{
  type: 'indicator', mode: charts.churn_gauge.mode, value: charts.churn_gauge.value,
  title: {text: charts.churn_gauge.title, font: {size: 16, color: '#004a99'}},
  gauge: {
    axis: {range: charts.churn_gauge.axis_range},
    bar: {color: charts.churn_gauge.bar_color},
    steps: charts.churn_gauge.steps.map(s => ({range: s.range, color: s.color})),
    threshold: {line: {color: '#800000', width: 4}, thickness: 0.75, value: charts.churn_gauge.threshold}
  }
}], {height: 250, margin: {l: 20, r: 20, t: 40, b: 20}});

Plotly.newPlot('bars', charts.contract_bars.series.map(s => ({
  type: 'bar', name: s.name, x: ['Churn Rate'], y: [s.value], marker: {color: s.color}
})), {title: {text: charts.contract_bars.title, font: {color: '#004a99'}},
  yaxis: {title: charts.contract_bars.yaxis_title}, height: 250, margin: {l: 40, r: 20, t: 40, b: 20}});

Plotly.newPlot('revenue', [{
  type: 'indicator', mode: charts.revenue_delta.mode, value: charts.revenue_delta.value,
  number: {prefix: charts.revenue_delta.prefix, suffix: charts.revenue_delta.suffix, font: {color: '#004a99', size: 40}},
  title: {text: charts.revenue_delta.title, font: {size: 16, color: '#004a99'}},
  delta: {reference: charts.revenue_delta.delta_reference, relative: charts.revenue_delta.delta_relative}
}], {height: 250, margin: {l: 20, r: 20, t: 40, b: 20}});

let sessionID = '';

function renderMessage(role, content, table) {
  const log = document.getElementById('chat-log');
  const div = document.createElement('div');
  div.className = 'msg ' + role;
  div.textContent = content;
  if (table && table.length) {
    const t = document.createElement('table');
    const head = document.createElement('tr');
    for (const name of ['customer_id', 'risk_score', 'contract', 'monthly_revenue', 'engagement']) {
      const th = document.createElement('th');
      th.textContent = name;
      head.appendChild(th);
    }
    t.appendChild(head);
    for (const e of table) {
      const row = document.createElement('tr');
      const cells = [e.customer_id, e.risk_score.toFixed(1), e.contract_type || '',
        e.monthly_revenue.toFixed(2), e.engagement_score.toFixed(1)];
      for (const v of cells) {
        const td = document.createElement('td');
        td.textContent = v;
        row.appendChild(td);
      }
      t.appendChild(row);
    }
    div.appendChild(t);
  }
  log.appendChild(div);
  log.scrollTop = log.scrollHeight;
}

async function sendChat() {
  const input = document.getElementById('chat-input');
  const message = input.value.trim();
  if (!message) return;
  input.value = '';
  renderMessage('user', message);
  const resp = await fetch('/api/chat', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({session_id: sessionID, message: message})
  });
  const data = await resp.json();
  sessionID = data.session_id || sessionID;
  renderMessage('assistant', data.reply || data.error || 'No reply', data.table);
}

document.getElementById('chat-input').addEventListener('keydown', e => {
  if (e.key === 'Enter') sendChat();
});
renderMessage('assistant', {{.Welcome}});
</script>
</body></html>
`))

// DashboardPage renders the single analytics page: three chart
// widgets, the insight cards and the chat box.
func (h *Handler) DashboardPage(c *gin.Context) {
	m, err := h.dashboard.Metrics()
	if err != nil {
		c.String(http.StatusInternalServerError, "dashboard unavailable: %v", err)
		return
	}
	charts, err := h.dashboard.Charts()
	if err != nil {
		c.String(http.StatusInternalServerError, "dashboard unavailable: %v", err)
		return
	}
	insights, err := h.dashboard.Insights()
	if err != nil {
		c.String(http.StatusInternalServerError, "dashboard unavailable: %v", err)
		return
	}

	chartsJSON, err := json.Marshal(charts)
	if err != nil {
		c.String(http.StatusInternalServerError, "dashboard unavailable: %v", err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = dashboardTpl.Execute(c.Writer, gin.H{
		"Metrics":     m,
		"TargetDelta": h.dashboard.TargetDelta(m),
		"Insights":    insights,
		"ChartsJSON":  template.JS(chartsJSON),
		"Welcome":     infrastructure.WelcomeMessage,
	})
}
