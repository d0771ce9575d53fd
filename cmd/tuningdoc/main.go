package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/tuning"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	out := flag.String("out", filepath.Join("docs", "reference"), "output directory")
	layoutPath := flag.String("layout", filepath.Join("assets", "layout.yaml"), "layout file to document, skipped when missing")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{generateTuningDoc(tuning.Default())}
	if l, err := assets.LoadLayout(*layoutPath); err == nil {
		files = append(files, generateIslandsDoc(l))
	} else if !errors.Is(err, os.ErrNotExist) {
		fatal(err)
	}

	for _, f := range files {
		path := filepath.Join(*out, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func generateTuningDoc(def tuning.Values) docFile {
	var b strings.Builder
	b.WriteString("# Tuning\n\n")
	b.WriteString("Generated from `internal/tuning` using `go run ./cmd/tuningdoc`.\n")
	b.WriteString(fmt.Sprintf("Values live in `<assets>/%s` and are edited from the debug panel.\n\n", tuning.FileName))

	b.WriteString("| Key | Panel label | Min | Max | Default | Meaning |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, s := range tuning.Scalars() {
		fmt.Fprintf(&b, "| `%s` | %s | %g | %g | %g | %s |\n",
			s.Key, escape(s.Label), s.Min, s.Max, *s.Field(&def), escape(s.Help))
	}

	b.WriteString("\n## Colors\n\n")
	b.WriteString("RGB triples, each channel in [0, 1].\n\n")
	b.WriteString("| Key | Panel label | Default | Meaning |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, c := range tuning.Colors() {
		v := *c.Field(&def)
		fmt.Fprintf(&b, "| `%s` | %s | %g, %g, %g | %s |\n",
			c.Key, escape(c.Label), v[0], v[1], v[2], escape(c.Help))
	}
	return docFile{Name: "tuning.md", Title: "Tuning", Content: b.String()}
}

func generateIslandsDoc(l *assets.Layout) docFile {
	var b strings.Builder
	b.WriteString("# Islands\n\n")
	b.WriteString(fmt.Sprintf("Total islands: **%d**.\n\n", len(l.Islands)))
	b.WriteString("| Island | Position | Dock offset | Cards |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, isl := range l.Islands {
		cards := make([]string, 0, len(isl.Cards))
		for _, c := range isl.Cards {
			cards = append(cards, c.PersonName+": "+c.Task)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escape(isl.Name), formatVec(isl.Position), formatVec(isl.Dock.Offset), escape(strings.Join(cards, "; ")))
	}
	return docFile{Name: "islands.md", Title: "Islands", Content: b.String()}
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("%g, %g, %g", v[0], v[1], v[2])
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
