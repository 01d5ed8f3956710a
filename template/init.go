package template

import (
	"fmt"

	"github.com/Rana718/fakegraph/internal/writer"
)

type ProjectTemplate struct {
	Format string
}

type formatConfig struct {
	output  string
	extra   string
	comment string
}

var formatConfigs = map[string]formatConfig{
	writer.FormatGraphQL: {output: "seed.graphql", comment: "# Paste into your GraphQL playground or send with any client."},
	writer.FormatSQL:     {output: "db/seed.sql", extra: ",\n  \"sql\": {\n    \"dialect\": \"postgres\"\n  }", comment: "-- Run with psql -f db/seed.sql"},
	writer.FormatYAML:    {output: "fixtures/seed.yaml", comment: "# Load with any YAML fixture loader."},
	writer.FormatGo:      {output: "fixtures/fixtures.go", extra: ",\n  \"go\": {\n    \"package\": \"fixtures\"\n  }", comment: "// import the generated Fixtures slice in tests"},
}

func NewProjectTemplate(format string) *ProjectTemplate {
	return &ProjectTemplate{Format: ValidateFormat(format)}
}

func (pt *ProjectTemplate) OutputPath() string {
	return formatConfigs[pt.Format].output
}

func (pt *ProjectTemplate) Hint() string {
	return formatConfigs[pt.Format].comment
}

func (pt *ProjectTemplate) GetConfig() string {
	cfg := formatConfigs[pt.Format]
	return fmt.Sprintf(`{
  "version": "1",
  "schema_path": "datamodel.graphql",
  "output_path": "%s",
  "format": "%s",
  "records": 5,
  "types": {
    "Comment": 10
  },
  "seed": 1,
  "enforce_unique": true%s
}
`, cfg.output, pt.Format, cfg.extra)
}

func (pt *ProjectTemplate) GetDatamodel() string {
	return `enum Role {
  ADMIN
  EDITOR
  READER
}

type User {
  id: ID! @unique
  email: String! @unique
  name: String!
  role: Role! @default(value: "READER")
  posts: [Post!]!
  createdAt: DateTime!
}

type Post {
  id: ID! @unique
  title: String!
  body: String
  published: Boolean! @default(value: "false")
  tags: [String!]!
  author: User! @relation(name: "PostAuthor")
  comments: [Comment!]!
}

type Comment {
  id: ID! @unique
  text: String!
  post: Post!
  author: User
}
`
}

func ValidateFormat(format string) string {
	if _, ok := formatConfigs[format]; ok {
		return format
	}
	return writer.FormatGraphQL
}
