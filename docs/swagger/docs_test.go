package swagger

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routeAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

type document struct {
	BasePath string                                `json:"basePath"`
	Paths    map[string]map[string]json.RawMessage `json:"paths"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

// annotatedRoutes collects "<method> <path>" from every @Router comment under root.
func annotatedRoutes(t *testing.T, root string) map[string]bool {
	t.Helper()
	routes := map[string]bool{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range routeAnnotation.FindAllStringSubmatch(string(src), -1) {
			routes[strings.ToLower(m[2])+" "+m[1]] = true
		}
		return nil
	})
	require.NoError(t, err)
	return routes
}

func TestDocMatchesRouteAnnotations(t *testing.T) {
	doc := readDocument(t)
	assert.Equal(t, "/api", doc.BasePath)

	documented := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			documented[method+" "+path] = true
		}
	}

	annotated := annotatedRoutes(t, filepath.Join("..", "..", "internal"))
	require.NotEmpty(t, annotated)
	assert.Equal(t, annotated, documented)
}
