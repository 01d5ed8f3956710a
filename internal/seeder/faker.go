package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Scalar kinds understood by DataGenerator.
const (
	KindString   = "String"
	KindInt      = "Int"
	KindFloat    = "Float"
	KindDateTime = "DateTime"
	KindBoolean  = "Boolean"
	KindJSON     = "Json"

	// KindJSONUpper is the spelling used outside Prisma datamodels.
	KindJSONUpper = "JSON"
)

// numbers are drawn from [0, valueRange)
const valueRange = 1000

type DataGenerator struct {
	rand    *rand.Rand
	now     func() time.Time
	counter int
}

func NewDataGenerator(rng *rand.Rand, now func() time.Time) *DataGenerator {
	if now == nil {
		now = time.Now
	}
	return &DataGenerator{rand: rng, now: now}
}

// GenerateForField picks a value for a scalar field, using the field name to
// produce friendlier text where it hints at the content.
func (g *DataGenerator) GenerateForField(fieldName, kind string) (any, error) {
	if kind != KindString {
		return g.Generate(kind)
	}

	nameLower := strings.ToLower(fieldName)

	if strings.Contains(nameLower, "email") {
		return g.generateEmail(), nil
	}
	if strings.Contains(nameLower, "name") && !strings.Contains(nameLower, "file") && !strings.Contains(nameLower, "user") {
		return g.generateName(), nil
	}
	if strings.Contains(nameLower, "title") {
		return g.generateTitle(), nil
	}
	if strings.Contains(nameLower, "url") || strings.Contains(nameLower, "link") {
		return g.generateURL(), nil
	}
	if strings.Contains(nameLower, "phone") {
		return g.generatePhone(), nil
	}
	if strings.Contains(nameLower, "address") {
		return g.generateAddress(), nil
	}

	return g.Generate(kind)
}

// Generate synthesizes a value of the given scalar kind.
func (g *DataGenerator) Generate(kind string) (any, error) {
	switch kind {
	case KindString:
		return g.generateText(), nil
	case KindInt:
		return g.rand.Intn(valueRange), nil
	case KindFloat:
		return g.rand.Float64() * valueRange, nil
	case KindDateTime:
		return g.generateTimestamp().Format(time.RFC3339), nil
	case KindBoolean:
		return g.rand.Intn(2) == 1, nil
	case KindJSON, KindJSONUpper:
		return g.generateJSON(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedScalar, kind)
	}
}

// Flip is a fair coin.
func (g *DataGenerator) Flip() bool {
	return g.rand.Intn(2) == 0
}

var (
	words = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}

	sentences = []string{
		"This is a sample text generated for testing purposes.",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"The quick brown fox jumps over the lazy dog.",
		"Software development requires careful planning and execution.",
		"Database design is crucial for application performance.",
	}
)

// generateText returns either a sentence or a short run of words.
func (g *DataGenerator) generateText() string {
	if g.rand.Intn(2) == 0 {
		return sentences[g.rand.Intn(len(sentences))]
	}
	n := g.rand.Intn(3) + 1
	picked := make([]string, n)
	for i := range picked {
		picked[i] = words[g.rand.Intn(len(words))]
	}
	return strings.Join(picked, " ")
}

func (g *DataGenerator) generateName() string {
	firstNames := []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	return firstNames[g.rand.Intn(len(firstNames))] + " " + lastNames[g.rand.Intn(len(lastNames))]
}

func (g *DataGenerator) generateEmail() string {
	g.counter++
	domains := []string{"example.com", "test.com", "demo.com", "mail.com"}
	return fmt.Sprintf("user%d_%d@%s", g.counter, g.rand.Intn(100000), domains[g.rand.Intn(len(domains))])
}

func (g *DataGenerator) generateTitle() string {
	titles := []string{
		"Getting Started with Go",
		"Understanding Databases",
		"Web Development Best Practices",
		"Introduction to APIs",
		"Modern Software Architecture",
		"Cloud Computing Basics",
		"Data Structures and Algorithms",
		"Machine Learning Fundamentals",
	}
	return titles[g.rand.Intn(len(titles))]
}

func (g *DataGenerator) generateURL() string {
	return fmt.Sprintf("https://example.com/page/%d", g.rand.Intn(1000))
}

func (g *DataGenerator) generatePhone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.rand.Intn(1000), g.rand.Intn(1000), g.rand.Intn(10000))
}

func (g *DataGenerator) generateAddress() string {
	return fmt.Sprintf("%d Main Street, City, State %05d", g.rand.Intn(9999)+1, g.rand.Intn(100000))
}

// generateTimestamp returns a moment within the past year.
func (g *DataGenerator) generateTimestamp() time.Time {
	days := g.rand.Intn(365)
	secs := g.rand.Intn(24 * 60 * 60)
	return g.now().UTC().AddDate(0, 0, -days).Add(-time.Duration(secs) * time.Second).Truncate(time.Second)
}

func (g *DataGenerator) generateJSON() string {
	return fmt.Sprintf(`{"%s":"%s"}`, words[g.rand.Intn(len(words))], words[g.rand.Intn(len(words))])
}
