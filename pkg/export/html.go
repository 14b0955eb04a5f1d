package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
	"github.com/nuwandm/mahagedara/pkg/stats"
)

// personVM is the template-facing shape of one rendered tree node.
type personVM struct {
	Name       string
	Span       string
	Tags       []string
	Dimmed     bool // visible but not a direct match
	SpouseName string
	SpouseSpan string
	Children   []personVM
}

type eventVM struct {
	Title       string
	Date        string
	Location    string
	Description string
	Photos      []string
	People      []string
}

type pageVM struct {
	FamilyName string
	Motto      string
	Filtered   bool
	Husband    personVM
	Wife       personVM
	Children   []personVM
	Events     []eventVM
	Stats      stats.Summary
}

// WriteHTML renders the full static page: tree, events gallery, stats.
func WriteHTML(w io.Writer, fd *model.FamilyData, f query.Filters) error {
	vm := pageVM{
		FamilyName: fd.FamilyName,
		Motto:      fd.Motto,
		Filtered:   !f.IsNeutral(),
		Husband:    rootVM(&fd.Tree.Husband, f),
		Wife:       rootVM(&fd.Tree.Wife, f),
		Stats:      stats.Compute(fd),
	}
	for _, p := range query.VisibleRootChildren(&fd.Tree, f) {
		vm.Children = append(vm.Children, personToVM(p, 1, f))
	}
	for i := range fd.Events {
		vm.Events = append(vm.Events, eventToVM(fd, &fd.Events[i]))
	}

	if err := pageTemplate.Execute(w, vm); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

// rootVM builds a root-couple member's view; the root couple always
// renders, dimmed only when filters are active and the member doesn't
// match.
func rootVM(p *model.Person, f query.Filters) personVM {
	vm := baseVM(p)
	vm.Dimmed = !query.Matches(p, 0, f)
	return vm
}

func personToVM(p *model.Person, gen int, f query.Filters) personVM {
	vm := baseVM(p)
	vm.Dimmed = !query.Matches(p, gen, f)
	for _, c := range query.VisibleChildren(p, gen, f) {
		vm.Children = append(vm.Children, personToVM(c, gen+1, f))
	}
	return vm
}

func baseVM(p *model.Person) personVM {
	vm := personVM{
		Name: p.Name,
		Span: p.DisplaySpan(),
		Tags: p.Tags,
	}
	if p.Spouse != nil {
		vm.SpouseName = p.Spouse.Name
		vm.SpouseSpan = p.Spouse.DisplaySpan()
	}
	return vm
}

func eventToVM(fd *model.FamilyData, ev *model.Event) eventVM {
	vm := eventVM{
		Title:       ev.Title,
		Date:        ev.Date,
		Location:    ev.Location,
		Description: ev.Description,
		Photos:      ev.PhotoURLs,
	}
	for _, id := range ev.PersonIDs {
		if p, _, ok := query.FindByID(fd, id); ok {
			vm.People = append(vm.People, p.Name)
		}
	}
	return vm
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.FamilyName}} — Family Tree</title>
<style>
  :root { --bg:#282A36; --panel:#363949; --border:#BD93F9; --muted:#6272A4;
          --text:#F8F8F2; --subtext:#BFBFBF; }
  body { background:var(--bg); color:var(--text); font-family:system-ui,sans-serif;
         margin:0; padding:2rem; }
  header { text-align:center; margin-bottom:2rem; }
  header .motto { color:var(--subtext); font-style:italic; }
  .filtered-note { color:var(--muted); text-align:center; margin-bottom:1rem; }
  .tree ul { list-style:none; display:flex; justify-content:center;
             padding:1.5rem 0 0; position:relative; }
  .tree li { padding:0 .75rem; }
  .card { background:var(--panel); border:1px solid var(--border); border-radius:8px;
          padding:.5rem .9rem; text-align:center; display:inline-block; }
  .card .span { color:var(--subtext); font-size:.8rem; }
  .card .tags { color:var(--muted); font-size:.7rem; }
  .dimmed > .card { opacity:.35; }
  .spouse { border-color:var(--muted); margin-left:.4rem; }
  .couple { display:flex; gap:1rem; justify-content:center; }
  section { margin-top:3rem; }
  h2 { border-bottom:1px solid var(--muted); padding-bottom:.3rem; }
  .gallery { display:grid; grid-template-columns:repeat(auto-fill,minmax(260px,1fr));
             gap:1rem; }
  .event { background:var(--panel); border-radius:8px; padding:1rem; }
  .event .meta { color:var(--subtext); font-size:.85rem; }
  .event img { max-width:100%; border-radius:6px; margin-top:.5rem; }
  table { border-collapse:collapse; }
  td { padding:.2rem .8rem .2rem 0; color:var(--subtext); }
  td:first-child { color:var(--text); }
</style>
</head>
<body>
<header>
  <h1>{{.FamilyName}}</h1>
  {{if .Motto}}<p class="motto">{{.Motto}}</p>{{end}}
</header>
{{if .Filtered}}<p class="filtered-note">Filtered view — dimmed entries are ancestors kept for context.</p>{{end}}

<div class="tree">
  <div class="couple">
    <div{{if .Husband.Dimmed}} class="dimmed"{{end}}>{{template "card" .Husband}}</div>
    <div{{if .Wife.Dimmed}} class="dimmed"{{end}}>{{template "card" .Wife}}</div>
  </div>
  {{if .Children}}{{template "branch" .Children}}{{end}}
</div>

{{if .Events}}
<section>
  <h2>Events</h2>
  <div class="gallery">
    {{range .Events}}
    <div class="event">
      <strong>{{.Title}}</strong>
      <div class="meta">{{.Date}}{{if .Location}} · {{.Location}}{{end}}</div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{if .People}}<div class="meta">With: {{range $i, $n := .People}}{{if $i}}, {{end}}{{$n}}{{end}}</div>{{end}}
      {{range .Photos}}<img src="{{.}}" alt="">{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

<section>
  <h2>At a glance</h2>
  <table>
    <tr><td>People</td><td>{{.Stats.TotalPeople}} (+{{.Stats.TotalSpouses}} spouses)</td></tr>
    <tr><td>Generations</td><td>{{.Stats.Generations}}</td></tr>
    <tr><td>Living</td><td>{{.Stats.Living}}</td></tr>
    <tr><td>Deceased</td><td>{{.Stats.Deceased}}</td></tr>
    {{if .Stats.LifespanKnown}}<tr><td>Mean lifespan</td><td>{{printf "%.1f" .Stats.LifespanMean}} years</td></tr>{{end}}
    <tr><td>Events</td><td>{{.Stats.TotalEvents}}</td></tr>
  </table>
</section>
</body>
</html>

{{define "card"}}<div class="card"><div>{{.Name}}</div>{{if .Span}}<div class="span">{{.Span}}</div>{{end}}{{if .Tags}}<div class="tags">{{range $i, $t := .Tags}}{{if $i}} · {{end}}{{$t}}{{end}}</div>{{end}}</div>{{if .SpouseName}}<div class="card spouse"><div>{{.SpouseName}}</div>{{if .SpouseSpan}}<div class="span">{{.SpouseSpan}}</div>{{end}}</div>{{end}}{{end}}

{{define "branch"}}<ul>{{range .}}<li{{if .Dimmed}} class="dimmed"{{end}}>{{template "card" .}}{{if .Children}}{{template "branch" .Children}}{{end}}</li>{{end}}</ul>{{end}}
`))
