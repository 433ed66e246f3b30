package web

const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>ftlcalc</title>
  {{if .ShareDescription}}
  <meta name="description" content="{{.ShareDescription}}">
  <meta property="og:description" content="{{.ShareDescription}}">
  {{end}}
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; max-width: 960px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .ok { color: #1b5e20; font-weight: 600; }
    .bad { color: #b00020; font-weight: 600; }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin: 16px 0; background: #fafafa; }
    .mono { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace; }
    table { border-collapse: collapse; width: 100%; margin-top: 10px; }
    td, th { padding: 8px 10px; border-top: 1px solid #eee; vertical-align: top; text-align: left; }
    .k { width: 320px; color: #444; }
    .hint { color: #666; font-size: 0.9em; margin-top: 4px; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }

    .form-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 0 32px; }
    @media (max-width: 640px) { .form-grid { grid-template-columns: 1fr; } }
    .form-section-title { font-size: 0.85em; font-weight: 600; text-transform: uppercase; letter-spacing: 0.04em; color: #555; margin-bottom: 12px; padding-bottom: 6px; border-bottom: 1px solid #e0e0e0; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-weight: 500; color: #333; margin-bottom: 4px; font-size: 0.95em; }
    .field input, .field select { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; width: 100%; max-width: 200px; }
    .form-actions { padding-top: 16px; border-top: 1px solid #e0e0e0; }
    button[type="submit"] { padding: 10px 20px; font-size: 1em; font-weight: 500; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button[type="submit"]:hover { background: #1565c0; }
    details { margin-top: 24px; }
  </style>
</head>
<body>
  <form method="POST" action="/calc">
    <div class="form-grid">
      <div>
        <div class="form-section-title">Duty</div>
        <div class="field">
          <label for="report">Report time (local)</label>
          <input id="report" name="report" type="text" value="{{.ReportTime}}" placeholder="08:00" pattern="[0-9]{2}:[0-9]{2}" required autocomplete="off">
        </div>
        <div class="field">
          <label for="arrival">Proposed arrival (optional)</label>
          <input id="arrival" name="arrival" type="text" value="{{.Arrival}}" placeholder="HH:MM" pattern="[0-9]{2}:[0-9]{2}" autocomplete="off">
          <div class="hint">An arrival earlier than report is taken as the next day</div>
        </div>
      </div>
      <div>
        <div class="form-section-title">Crew</div>
        <div class="field">
          <label for="sectors">Sectors</label>
          <input id="sectors" name="sectors" type="number" min="{{.MinSectors}}" max="{{.MaxSectors}}" step="1" value="{{.Sectors}}" required>
        </div>
        <div class="field">
          <label for="acclimatisation">Acclimatisation</label>
          <select id="acclimatisation" name="acclimatisation">
            <option value="acclimatised"{{if eq .Acclimatisation "acclimatised"}} selected{{end}}>Acclimatised</option>
            <option value="not_acclimatised"{{if eq .Acclimatisation "not_acclimatised"}} selected{{end}}>Not acclimatised</option>
          </select>
        </div>
      </div>
    </div>

    <div class="form-actions">
      <button type="submit">Calculate</button>
    </div>
  </form>

  {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

  {{with .Result}}
    <div class="card">
      <div><b>Duty</b>: report <span class="mono">{{.ReportTime}}</span>, {{.Sectors}} sector(s), {{.Acclimatisation}}</div>
      <table>
        <tr><td class="k">Base FDP</td><td class="mono">{{.BaseFDP}}</td></tr>
        <tr><td class="k">Sector reduction</td><td class="mono">{{.SectorReduction}}</td></tr>
        <tr><td class="k">FDP after sectors</td><td class="mono">{{.FDPAfterSectors}}</td></tr>
        <tr><td class="k">WOCL (02:00-05:59) infringed</td><td>{{if .WOCLInfringed}}<span class="bad">yes</span>, capped at 11:00{{else}}no{{end}}</td></tr>
        <tr><td class="k">Final FDP</td><td class="mono"><b>{{.FinalFDP}}</b></td></tr>
        <tr><td class="k">Latest on-block</td><td class="mono">{{.LatestPermissibleTime}}</td></tr>
        <tr><td class="k">Extension</td><td>{{if .ExtensionEligible}}eligible, up to <span class="mono">{{.ExtendedFDP}}</span>{{else}}not eligible{{end}}</td></tr>
        <tr><td class="k">Minimum rest</td><td class="mono">{{.MinimumRest}}</td></tr>
      </table>
    </div>
    {{with .Feasibility}}
    <div class="card">
      <div><b>Proposed arrival</b> <span class="mono">{{.ProposedArrivalTime}}</span></div>
      <table>
        <tr><td class="k">Planned FDP</td><td class="mono">{{.PlannedFDP}}</td></tr>
        <tr><td class="k">Verdict</td><td>{{if .IsFeasible}}<span class="ok">feasible</span>, margin{{else}}<span class="bad">not feasible</span>, over by{{end}} <span class="mono">{{.Difference}}</span></td></tr>
      </table>
    </div>
    {{end}}
  {{end}}

  <details>
    <summary>Limit tables</summary>
    {{range .Tables}}
    <div class="card">
      <div><b>{{.Acclimatisation}}</b></div>
      <table>
        <tr><th>Report</th><th>Base FDP</th></tr>
        {{range .Entries}}<tr><td class="mono">{{.From}}-{{.To}}</td><td class="mono">{{.FDP}}</td></tr>{{end}}
      </table>
    </div>
    {{end}}
  </details>

  <footer>ftlcalc v{{.Version}}</footer>
</body>
</html>`
