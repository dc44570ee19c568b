package render

const portfolioTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.View.Owner.FullName}} - Portfolio</title>
<style>
:root {
  --primary: {{.View.Portfolio.ThemePrimaryColor}};
  --secondary: {{.View.Portfolio.ThemeSecondaryColor}};
}
body {
  font-family: '{{.View.Portfolio.ThemeFontFamily}}', sans-serif;
  color: var(--secondary);
  margin: 0 auto;
  max-width: 860px;
  padding: 2rem 1rem;
}
h1, h2 { color: var(--primary); }
.section { margin-top: 2rem; }
.entry { margin-bottom: 1.2rem; }
.meta { color: #666; font-size: .9rem; }
.tag {
  display: inline-block;
  background: var(--primary);
  color: #fff;
  border-radius: 4px;
  padding: 0 .5rem;
  margin-right: .3rem;
  font-size: .85rem;
}
</style>
</head>
<body class="layout-{{.View.Portfolio.ThemeLayout}}">
<header>
  <h1>{{.View.Owner.FullName}}</h1>
  {{if .View.Portfolio.Location}}<p class="meta">{{.View.Portfolio.Location}}</p>{{end}}
  <div class="bio">{{.BioHTML}}</div>
  <p class="meta">
    {{if .View.Portfolio.Website}}<a href="{{.View.Portfolio.Website}}">Website</a> {{end}}
    {{if .View.Portfolio.Linkedin}}<a href="{{.View.Portfolio.Linkedin}}">LinkedIn</a> {{end}}
    {{if .View.Portfolio.Github}}<a href="{{.View.Portfolio.Github}}">GitHub</a>{{end}}
  </p>
  {{if .View.Portfolio.CVFilename}}<p><a href="/p/{{.View.Portfolio.PublicURL}}/cv">Download CV</a></p>{{end}}
</header>

{{if .View.Projects}}
<div class="section">
  <h2>Projects</h2>
  {{range .View.Projects}}
  <div class="entry">
    <h3>{{.Title}}{{if .Featured}} ★{{end}}</h3>
    <p>{{.Description}}</p>
    <p>{{range .TechnologiesList}}<span class="tag">{{.}}</span>{{end}}</p>
    <p class="meta">
      {{if .GithubURL}}<a href="{{.GithubURL}}">Code</a> {{end}}
      {{if .DemoURL}}<a href="{{.DemoURL}}">Demo</a>{{end}}
    </p>
  </div>
  {{end}}
</div>
{{end}}

{{if .View.Experiences}}
<div class="section">
  <h2>Experience</h2>
  {{range .View.Experiences}}
  <div class="entry">
    <h3>{{.Title}} - {{.Company}}</h3>
    <p class="meta">{{.StartDate.Format "Jan 2006"}} - {{if .Current}}present{{else if .EndDate}}{{.EndDate.Format "Jan 2006"}}{{end}}{{if .Location}} · {{.Location}}{{end}}</p>
    <p>{{.Description}}</p>
  </div>
  {{end}}
</div>
{{end}}

{{if .View.Education}}
<div class="section">
  <h2>Education</h2>
  {{range .View.Education}}
  <div class="entry">
    <h3>{{.Degree}} - {{.Institution}}</h3>
    <p class="meta">{{.StartDate.Format "Jan 2006"}} - {{if .Current}}present{{else if .EndDate}}{{.EndDate.Format "Jan 2006"}}{{end}}{{if .Location}} · {{.Location}}{{end}}</p>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{if .View.SkillGroups}}
<div class="section">
  <h2>Skills</h2>
  {{range .View.SkillGroups}}
  <div class="entry">
    <h3>{{.Category}}</h3>
    <p>{{range .Skills}}<span class="tag">{{.Name}} ({{.Level}})</span>{{end}}</p>
  </div>
  {{end}}
</div>
{{end}}
</body>
</html>
`

const embedTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.View.Owner.FullName}}</title>
<style>
body {
  font-family: '{{.View.Portfolio.ThemeFontFamily}}', sans-serif;
  color: {{.View.Portfolio.ThemeSecondaryColor}};
  margin: 0;
  padding: 1rem;
  font-size: .9rem;
}
h1 { color: {{.View.Portfolio.ThemePrimaryColor}}; font-size: 1.2rem; }
</style>
</head>
<body>
<h1>{{.View.Owner.FullName}}</h1>
<div>{{.BioHTML}}</div>
{{if .View.Projects}}
<ul>
  {{range .View.Projects}}<li>{{.Title}}</li>{{end}}
</ul>
{{end}}
</body>
</html>
`
