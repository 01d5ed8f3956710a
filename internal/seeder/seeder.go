package seeder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rana718/fakegraph/internal/schema"
	"github.com/fatih/color"
)

type SeedConfig struct {
	Count int            // Default records per type
	Types map[string]int // Per-type counts
}

// CountFor returns the number of root records requested for a type. Keys
// loaded through viper arrive lowercased, so lookups fall back to a
// case-insensitive match.
func (c SeedConfig) CountFor(typeName string) int {
	if n, ok := c.Types[typeName]; ok {
		return n
	}
	for name, n := range c.Types {
		if strings.EqualFold(name, typeName) {
			return n
		}
	}
	return c.Count
}

// Seeder drives a Generator over every type of its model and hands each root
// record to a Sink, reporting progress on its log writer.
type Seeder struct {
	generator *Generator
	sink      Sink
	log       io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
}

func NewSeeder(model *schema.Model, opts Options, sink Sink) *Seeder {
	return &Seeder{
		generator: NewGenerator(model, opts),
		sink:      sink,
		log:       os.Stderr,
		info:      color.New(color.FgCyan),
		success:   color.New(color.FgGreen),
		warn:      color.New(color.FgYellow),
	}
}

// SetLog redirects progress output. A nil writer silences it.
func (s *Seeder) SetLog(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.log = w
}

func (s *Seeder) Generator() *Generator {
	return s.generator
}

// Seed writes seedConfig.CountFor(t) root records for every type, in
// declaration order. The first error stops the run; records already handed to
// the sink must be treated as incomplete output.
func (s *Seeder) Seed(seedConfig SeedConfig) error {
	model := s.generator.Model()
	s.info.Fprintln(s.log, "🌱 Starting fixture generation...")

	if len(model.Types) == 0 {
		s.warn.Fprintln(s.log, "⚠️  No types found in datamodel")
	}

	if err := s.sink.Begin(); err != nil {
		return fmt.Errorf("failed to start output: %w", err)
	}

	total := 0
	for _, t := range model.Types {
		count := seedConfig.CountFor(t.Name)
		if count <= 0 {
			continue
		}

		s.info.Fprintf(s.log, "  📝 Generating %s (%d records)...\n", t.Name, count)
		for s.generator.RootCount(t.Name) < count {
			rec, err := s.generator.GenerateType(t)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", t.Name, err)
			}
			if err := s.sink.WriteRecord(t.Name, s.generator.RootCount(t.Name), rec); err != nil {
				return fmt.Errorf("failed to write %s%d: %w", t.Name, s.generator.RootCount(t.Name), err)
			}
			total++
		}
	}

	if err := s.sink.End(); err != nil {
		return fmt.Errorf("failed to finish output: %w", err)
	}

	s.success.Fprintf(s.log, "✅ Generated %d records across %d types\n", total, len(model.Types))
	return nil
}
