package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aslandrive/aslandrive/schema"
)

// Output is one generated file, path relative to the output directory.
type Output struct {
	Path string
	Data []byte
}

// Generate runs every emitter over the schema and returns all artifacts
// in memory, in write order: per-table value holder and mapping, then
// the combined module, then the migration script.
func Generate(s *schema.Schema) []Output {
	var outs []Output
	for _, t := range s.Tables {
		outs = append(outs,
			Output{Path: filepath.Join("models", t.Name+".go"), Data: []byte(EmitValueHolder(t))},
			Output{Path: filepath.Join("mappings", t.Name+".go"), Data: []byte(RenderMapping(t))},
		)
	}
	outs = append(outs,
		Output{Path: filepath.Join("db", "models.go"), Data: []byte(EmitCombined(s))},
		Output{Path: "migration.sql", Data: []byte(EmitMigration(s))},
	)
	return outs
}

// WriteOutputs writes the artifacts under dir and returns the written
// paths. Writes are not transactional: a failure aborts the remaining
// writes but leaves earlier files in place.
func WriteOutputs(dir string, outs []Output) ([]string, error) {
	written := make([]string, 0, len(outs))
	for _, out := range outs {
		path := filepath.Join(dir, out.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("creating output directory %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, out.Data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
