package writer

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/fakegraph/internal/seeder"
)

func samplePost() seeder.Record {
	return seeder.Record{
		Type: "Post",
		Fields: []seeder.FieldValue{
			{Name: "title", Value: `It's "quoted"`},
			{Name: "status", Value: seeder.EnumValue("DRAFT")},
			{Name: "tags", Value: seeder.ScalarList{"a", "b"}},
			{Name: "views", Value: 3},
			{Name: "score", Value: 1.5},
			{Name: "published", Value: true},
			{Name: "author", Value: seeder.NestedCreate{
				Type:    "Author",
				Records: []seeder.Record{{Type: "Author", Fields: []seeder.FieldValue{{Name: "name", Value: "Ann"}}}},
			}},
			{Name: "comments", Value: seeder.NestedCreate{
				Type:    "Comment",
				List:    true,
				Records: []seeder.Record{{Type: "Comment", Fields: []seeder.FieldValue{{Name: "body", Value: "x"}}}},
			}},
		},
	}
}

func writeAll(t *testing.T, sink seeder.Sink, recs ...seeder.Record) {
	t.Helper()
	require.NoError(t, sink.Begin())
	counts := map[string]int{}
	for _, rec := range recs {
		counts[rec.Type]++
		require.NoError(t, sink.WriteRecord(rec.Type, counts[rec.Type], rec))
	}
	require.NoError(t, sink.End())
}

func TestGraphQLWriter(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewGraphQLWriter(&buf), samplePost(), seeder.Record{Type: "Tag"})

	want := "mutation {\n" +
		`  Post1: createPost(data: { title: "It's \"quoted\"", status: DRAFT, tags: { set: ["a", "b"] }, views: 3, score: 1.5, published: true, author: { create: { name: "Ann" } }, comments: { create: [{ body: "x" }] } }) { id }` + "\n" +
		"  Tag1: createTag(data: {}) { id }\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestGraphQLWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewGraphQLWriter(&buf))
	assert.Equal(t, "mutation {\n}\n", buf.String())
}

func TestGraphQLWriterRejectsUnknownValue(t *testing.T) {
	var buf bytes.Buffer
	w := NewGraphQLWriter(&buf)
	require.NoError(t, w.Begin())
	err := w.WriteRecord("A", 1, seeder.Record{Type: "A", Fields: []seeder.FieldValue{{Name: "x", Value: struct{}{}}}})
	assert.ErrorContains(t, err, "A.x")
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestSQLWriterPostgres(t *testing.T) {
	var buf bytes.Buffer
	rec := samplePost()
	rec.Fields = rec.Fields[:1]
	rec.Fields = append(rec.Fields,
		seeder.FieldValue{Name: "status", Value: seeder.EnumValue("DRAFT")},
		seeder.FieldValue{Name: "isPublished", Value: true},
		samplePost().Fields[6],
		samplePost().Fields[7],
	)
	writeAll(t, NewSQLWriter(&buf, DialectPostgres, sequentialIDs()), rec)

	want := strings.Join([]string{
		"BEGIN;",
		"",
		"-- Post1",
		`INSERT INTO "authors" ("id","name") VALUES ('id-2','Ann');`,
		`INSERT INTO "posts" ("id","title","status","is_published","author_id") VALUES ('id-1','It''s "quoted"','DRAFT',TRUE,'id-2');`,
		`INSERT INTO "comments" ("id","post_id","body") VALUES ('id-3','id-1','x');`,
		"",
		"COMMIT;",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestSQLWriterMySQL(t *testing.T) {
	var buf bytes.Buffer
	rec := seeder.Record{Type: "BlogPost", Fields: []seeder.FieldValue{
		{Name: "path", Value: `C:\tmp`},
		{Name: "draft", Value: false},
		{Name: "tags", Value: seeder.ScalarList{"a"}},
	}}
	writeAll(t, NewSQLWriter(&buf, DialectMySQL, sequentialIDs()), rec)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "START TRANSACTION;\n"))
	assert.Contains(t, out, "INSERT INTO `blog_posts` (`id`,`path`,`draft`,`tags`) VALUES ('id-1','C:\\\\tmp',0,'[\"a\"]');")
}

func TestNamingHelpers(t *testing.T) {
	assert.Equal(t, "posts", TableName("Post"))
	assert.Equal(t, "blog_posts", TableName("BlogPost"))
	assert.Equal(t, "categories", TableName("Category"))
	assert.Equal(t, "created_at", ColumnName("createdAt"))
	assert.Equal(t, "Post12", Label("Post", 12))
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	second := samplePost()
	second.Fields = second.Fields[:1]
	writeAll(t, NewYAMLWriter(&buf), samplePost(), second)

	out := buf.String()
	assert.Less(t, strings.Index(out, "Post1:"), strings.Index(out, "Post2:"))

	var decoded map[string]struct {
		Type string         `yaml:"type"`
		Data map[string]any `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	post := decoded["Post1"]
	assert.Equal(t, "Post", post.Type)
	assert.Equal(t, `It's "quoted"`, post.Data["title"])
	assert.Equal(t, "DRAFT", post.Data["status"])
	assert.Equal(t, []any{"a", "b"}, post.Data["tags"])
	assert.Equal(t, 3, post.Data["views"])
	assert.Equal(t, 1.5, post.Data["score"])
	assert.Equal(t, true, post.Data["published"])
	assert.Equal(t, map[string]any{"create": map[string]any{"name": "Ann"}}, post.Data["author"])
	assert.Equal(t, map[string]any{"create": []any{map[string]any{"body": "x"}}}, post.Data["comments"])
}

func TestYAMLWriterQuotesAmbiguousStrings(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewYAMLWriter(&buf), seeder.Record{Type: "A", Fields: []seeder.FieldValue{{Name: "flag", Value: "true"}}})

	var decoded map[string]struct {
		Data map[string]any `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "true", decoded["A1"].Data["flag"])
}

func TestGoWriter(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewGoWriter(&buf, "seeds"), samplePost())

	src := buf.String()
	_, err := parser.ParseFile(token.NewFileSet(), "fixtures.go", src, 0)
	require.NoError(t, err, src)

	assert.Contains(t, src, "// Code generated by fakegraph. DO NOT EDIT.")
	assert.Contains(t, src, "package seeds")
	assert.Contains(t, src, `Label: "Post1"`)
	assert.Contains(t, src, `"create": map[string]any{"name": "Ann"}`)
	assert.Contains(t, src, `"status": "DRAFT"`)
}

func TestGoWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewGoWriter(&buf, "fixtures"))
	_, err := parser.ParseFile(token.NewFileSet(), "fixtures.go", buf.String(), 0)
	require.NoError(t, err, buf.String())
	assert.Contains(t, buf.String(), "var Fixtures = []Fixture{}")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range append(Formats, "") {
		sink, err := New(format, &buf, Options{})
		require.NoError(t, err, format)
		assert.NotNil(t, sink)
	}

	_, err := New("csv", &buf, Options{})
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = New(FormatSQL, &buf, Options{Dialect: "oracle"})
	assert.ErrorContains(t, err, "unsupported SQL dialect")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatGraphQL, FormatFromPath("seed.graphql"))
	assert.Equal(t, FormatGraphQL, FormatFromPath("seed.GQL"))
	assert.Equal(t, FormatSQL, FormatFromPath("db/seed.sql"))
	assert.Equal(t, FormatYAML, FormatFromPath("seed.yml"))
	assert.Equal(t, FormatGo, FormatFromPath("fixtures/fixtures.go"))
	assert.Equal(t, "", FormatFromPath("seed.txt"))
}

func TestOutputCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seed.graphql")
	out, err := Create(path)
	require.NoError(t, err)

	_, err = out.Write([]byte("mutation {\n}\n"))
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing appears before commit")

	require.NoError(t, out.Commit())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mutation {\n}\n", string(data))
	assert.NoError(t, out.Discard(), "discard after commit is a no-op")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOutputDiscard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	out, err := Create(path)
	require.NoError(t, err)
	_, err = out.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, out.Discard())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data), "a discarded run leaves the old file untouched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
