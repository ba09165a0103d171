// Command gen writes the stress test's component and system types.
//
//	go run ./gen -components 24 -systems 12 -out generated.go
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"slices"
	"text/template"

	"github.com/plus3/ecsreg/ecs"
	"golang.org/x/tools/imports"
)

type systemSpec struct {
	Index    int
	Requires []int
}

type templateData struct {
	Components []int
	Systems    []systemSpec
}

const generatedTemplate = `// Code generated by gen; DO NOT EDIT.

package main

import "github.com/plus3/ecsreg/ecs"

const (
	componentCount = {{len .Components}}
	systemCount    = {{len .Systems}}
)
{{range .Components}}
type StressComponent{{printf "%02d" .}} struct {
	Value float64
	Ticks int
}
{{end}}
{{- range .Systems}}
type StressSystem{{printf "%02d" .Index}} struct {
	ecs.BaseSystem
}

func NewStressSystem{{printf "%02d" .Index}}() *StressSystem{{printf "%02d" .Index}} {
	s := &StressSystem{{printf "%02d" .Index}}{}
{{- range .Requires}}
	ecs.RequireComponent[StressComponent{{printf "%02d" .}}](&s.BaseSystem)
{{- end}}
	return s
}

func (s *StressSystem{{printf "%02d" .Index}}) Execute(frame *ecs.UpdateFrame) {
	for _, e := range s.Entities() {
{{- range $i, $c := .Requires}}
		c{{$i}} := ecs.MustGetComponent[StressComponent{{printf "%02d" $c}}](e)
{{- end}}
		c0.Value += ({{range $i, $c := .Requires}}{{if gt $i 1}} + {{end}}{{if gt $i 0}}c{{$i}}.Value{{end}}{{end}}) * frame.DeltaTime
		c0.Ticks++
	}
}
{{end}}
// RegisterAllGeneratedComponents assigns component ids in declaration order.
func RegisterAllGeneratedComponents(r *ecs.ComponentRegistry) {
{{- range .Components}}
	ecs.RegisterComponent[StressComponent{{printf "%02d" .}}](r)
{{- end}}
}

// RegisterAllGeneratedSystems registers every generated system with the scheduler.
func RegisterAllGeneratedSystems(s *ecs.Scheduler) {
{{- range .Systems}}
	s.Register(NewStressSystem{{printf "%02d" .Index}}())
{{- end}}
}

// componentAdders attach a fresh instance of each generated component.
var componentAdders = [componentCount]func(ecs.Entity){
{{- range .Components}}
	func(e ecs.Entity) { ecs.AddComponent(e, StressComponent{{printf "%02d" .}}{Value: 1}) },
{{- end}}
}
`

// requirements picks a deterministic pair of components for each system and a
// third one for every third system, so the system signatures overlap.
func requirements(system, components int) []int {
	first := (system * 2) % components
	req := []int{first, (first + 1) % components}
	if system%3 == 0 {
		req = append(req, (first+4)%components)
	}
	slices.Sort(req[1:])
	return slices.Compact(req)
}

func main() {
	components := flag.Int("components", 24, "Number of component types to generate.")
	systems := flag.Int("systems", 12, "Number of systems to generate.")
	out := flag.String("out", "generated.go", "Output file.")
	flag.Parse()

	if *components < 2 || *components > ecs.MaxComponents {
		log.Fatalf("components must be between 2 and %d, got %d", ecs.MaxComponents, *components)
	}

	data := templateData{}
	for i := 0; i < *components; i++ {
		data.Components = append(data.Components, i)
	}
	for i := 0; i < *systems; i++ {
		data.Systems = append(data.Systems, systemSpec{
			Index:    i,
			Requires: requirements(i, *components),
		})
	}

	tmpl := template.Must(template.New("generated").Parse(generatedTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("Failed to execute template: %v", err)
	}

	src, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("Failed to format generated code: %v\n%s", err, buf.Bytes())
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s: %d components, %d systems", *out, *components, *systems)
}
