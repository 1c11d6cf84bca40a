package pdf

import (
	"bytes"
	"fmt"
	"html/template"
)

// markupTemplate renders the document as self-contained HTML. Output is
// deterministic for a given document so exports can be diffed and cached.
var markupTemplate = template.Must(template.New("itinerary").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { margin-bottom: 2px; }
.subtitle { color: #666; margin-top: 0; }
.meta { margin: 12px 0; }
.day { border: 1px solid #ddd; border-radius: 6px; padding: 10px 14px; margin: 10px 0; }
.day h3 { margin: 0 0 4px 0; }
.route { font-weight: bold; }
.section h2 { border-bottom: 1px solid #ccc; padding-bottom: 4px; }
.agency { margin-top: 24px; border-top: 2px solid #444; padding-top: 8px; font-size: 90%; }
ul { margin: 4px 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
{{if .Overview}}<p>{{.Overview}}</p>{{end}}
<div class="meta">
{{if .Customer.Name}}<div>Guest: {{.Customer.Name}} ({{.Customer.Contact}})</div>{{end}}
{{if .DateRange}}<div>Travel dates: {{.DateRange}}</div>{{end}}
{{if .Party}}<div>Travellers: {{.Party}}</div>{{end}}
{{if .Customer.Nights}}<div>Nights: {{.Customer.Nights}}</div>{{end}}
</div>
{{range .Days}}<div class="day">
<h3>{{.Heading}}{{if .Route}}: <span class="route">{{.Route}}</span>{{end}}</h3>
{{if .TravelTime}}<div>Travel time: {{.TravelTime}}</div>{{end}}
{{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{range .Description}}<p>{{.}}</p>{{end}}
{{if .OvernightStay}}<div>Overnight stay: {{.OvernightStay}}</div>{{end}}
</div>
{{end}}{{if .Inclusions}}<div class="section"><h2>Inclusions</h2><ul>{{range .Inclusions}}<li>{{.}}</li>{{end}}</ul></div>
{{end}}{{if .Exclusions}}<div class="section"><h2>Exclusions</h2><ul>{{range .Exclusions}}<li>{{.}}</li>{{end}}</ul></div>
{{end}}{{if .Terms}}<div class="section"><h2>Terms &amp; Conditions</h2><ul>{{range .Terms}}<li>{{.}}</li>{{end}}</ul></div>
{{end}}{{if .Agency.Name}}<div class="agency">
<strong>{{.Agency.Name}}</strong>{{if .Agency.Owner}} &middot; {{.Agency.Owner}}{{end}}<br>
{{if .Agency.Address}}{{.Agency.Address}}<br>{{end}}
Phone: {{.Agency.Phone}}{{if .Agency.Whatsapp}} &middot; WhatsApp: {{.Agency.Whatsapp}}{{end}}<br>
{{.Agency.Email}}{{if .Agency.Website}} &middot; {{.Agency.Website}}{{end}}
</div>{{end}}
</body>
</html>
`))

// BuildMarkup renders the document model to HTML. The same document always
// produces identical bytes.
func BuildMarkup(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := markupTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render markup: %w", err)
	}
	return buf.Bytes(), nil
}
