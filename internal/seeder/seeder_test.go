package seeder

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type written struct {
	typeName string
	index    int
	rec      Record
}

type memorySink struct {
	began, ended bool
	records      []written
	failAt       int
}

func (s *memorySink) Begin() error {
	s.began = true
	return nil
}

func (s *memorySink) WriteRecord(typeName string, index int, rec Record) error {
	if s.failAt > 0 && len(s.records)+1 == s.failAt {
		return errors.New("disk full")
	}
	s.records = append(s.records, written{typeName, index, rec})
	return nil
}

func (s *memorySink) End() error {
	s.ended = true
	return nil
}

const postAuthor = `
type Post { id: ID title: String! author: Author! }
type Author { id: ID name: String! }
`

func TestSeed(t *testing.T) {
	m := mustModel(t, postAuthor)
	sink := &memorySink{}
	s := NewSeeder(m, Options{Seed: 11}, sink)
	var log bytes.Buffer
	s.SetLog(&log)

	require.NoError(t, s.Seed(SeedConfig{Count: 2}))

	assert.True(t, sink.began)
	assert.True(t, sink.ended)

	var labels []string
	for _, w := range sink.records {
		labels = append(labels, fmt.Sprintf("%s%d", w.typeName, w.index))
	}
	assert.Equal(t, []string{"Post1", "Post2", "Author1", "Author2"}, labels)

	g := s.Generator()
	assert.Equal(t, 2, g.RootCount("Post"))
	assert.Equal(t, 2, g.RootCount("Author"))
	assert.Equal(t, 4, g.RecordCount("Author"))
	assert.Contains(t, log.String(), "Generating Post")
}

func TestSeedPerTypeCounts(t *testing.T) {
	m := mustModel(t, postAuthor)
	sink := &memorySink{}
	s := NewSeeder(m, Options{Seed: 11}, sink)
	s.SetLog(nil)

	require.NoError(t, s.Seed(SeedConfig{Count: 1, Types: map[string]int{"Author": 3}}))

	counts := map[string]int{}
	for _, w := range sink.records {
		counts[w.typeName]++
	}
	assert.Equal(t, map[string]int{"Post": 1, "Author": 3}, counts)
}

func TestSeedZeroRecords(t *testing.T) {
	m := mustModel(t, postAuthor)
	sink := &memorySink{}
	s := NewSeeder(m, Options{Seed: 11}, sink)
	s.SetLog(nil)

	require.NoError(t, s.Seed(SeedConfig{Count: 0}))
	assert.Empty(t, sink.records)
	assert.True(t, sink.began)
	assert.True(t, sink.ended)
}

func TestSeedStopsOnError(t *testing.T) {
	m := mustModel(t, `type A { amount: Money! }`)
	sink := &memorySink{}
	s := NewSeeder(m, Options{Seed: 11}, sink)
	s.SetLog(nil)

	err := s.Seed(SeedConfig{Count: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedScalar)
	assert.False(t, sink.ended)
	assert.Empty(t, sink.records)
}

func TestSeedStopsOnSinkError(t *testing.T) {
	m := mustModel(t, postAuthor)
	sink := &memorySink{failAt: 2}
	s := NewSeeder(m, Options{Seed: 11}, sink)
	s.SetLog(nil)

	err := s.Seed(SeedConfig{Count: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Post2")
	assert.Len(t, sink.records, 1)
	assert.False(t, sink.ended)
}

func TestSeedConfigCountFor(t *testing.T) {
	c := SeedConfig{Count: 4, Types: map[string]int{"Post": 0}}
	assert.Equal(t, 0, c.CountFor("Post"))
	assert.Equal(t, 4, c.CountFor("User"))
}

func TestSeedConfigCountForIgnoresCase(t *testing.T) {
	c := SeedConfig{Count: 1, Types: map[string]int{"blogpost": 7}}
	assert.Equal(t, 7, c.CountFor("BlogPost"))
}
