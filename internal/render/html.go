package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// HTML renders a standalone page of cards.
type HTML struct {
	Title     string
	Theme     string
	Favorites bool
}

type htmlPage struct {
	Title     string
	Light     bool
	Favorites bool
	Cards     []Card
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en"{{if .Light}} class="light"{{end}}>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main id="cards">
{{- range .Cards}}
<article class="card">
  {{- if .Image}}
  <div class="thumb" style="background-image:url('{{.Image}}')"></div>
  {{- end}}
  <div class="card-body">
    <div class="row">
      <div class="card-title">
        {{- if .Favicon}}
        <img class="favicon" src="{{.Favicon}}" alt="" width="16" height="16">
        {{- end}}
        <h3><a href="{{.Link}}" rel="{{.Rel}}" target="{{.Target}}">{{.Title}}</a></h3>
      </div>
      {{- if $.Favorites}}
      <button class="fav{{if .Favorite}} active{{end}}" data-href="{{.Link}}" title="Add to favorites">♡</button>
      {{- end}}
    </div>
    {{- if .Summary}}
    <p class="summary">{{.Summary}}</p>
    {{- end}}
    <div class="meta">
      <span class="time">🕒 {{.Recency}}</span>
      {{- if .Source}}
      <span class="dot">•</span><span class="src">{{.Source}}</span>
      {{- end}}
      {{- if .Price}}
      <span class="badge price">{{.Price}}</span>
      {{- end}}
      <a class="cta" href="{{.CTALink}}" rel="{{.Rel}}" target="{{.Target}}">{{.CTALabel}}</a>
    </div>
  </div>
</article>
{{- end}}
</main>
</body>
</html>
`))

func (h HTML) Render(cards []Card) (string, error) {
	title := h.Title
	if title == "" {
		title = "promotronik"
	}
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, htmlPage{
		Title:     title,
		Light:     h.Theme == "light",
		Favorites: h.Favorites,
		Cards:     cards,
	})
	if err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}
