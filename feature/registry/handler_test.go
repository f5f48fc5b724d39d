package registry_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"registry-server/core/source"
	"registry-server/feature/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	indexJSON     = `{"name":"ui"}`
	buttonJSON    = `{"type":"component"}`
	publicIndex   = `{"name":"ui","items":[{"name":"interactive-table"}]}`
	tableJSON     = `{"name":"interactive-table","type":"registry:ui","files":[]}`
	homeHTML      = `<h1>registry</h1>`
	privateJSON   = `{"secret":true}`
	outsideSecret = `{"outside":true}`
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

// newRegistryDir lays out both the shadcn and the public tree in one root.
func newRegistryDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "site")

	writeFile(t, root, "registry.json", indexJSON)
	writeFile(t, root, "public/r/button.json", buttonJSON)
	writeFile(t, root, "public/registry/index.json", publicIndex)
	writeFile(t, root, "public/registry/ui/interactive-table.json", tableJSON)
	writeFile(t, root, "public/index.html", homeHTML)
	writeFile(t, root, "private.json", privateJSON)
	writeFile(t, base, "secret.json", outsideSecret)
	return root
}

func setupTestApp(t *testing.T, src source.Source, staticRoot string, l *zap.Logger, layouts ...string) *fiber.App {
	t.Helper()
	f, err := registry.NewFeature(registry.Config{Layouts: layouts}, src, staticRoot, l)
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func setupDirApp(t *testing.T, layouts ...string) *fiber.App {
	root := newRegistryDir(t)
	return setupTestApp(t, source.NewFS(root), root, zap.NewNop(), layouts...)
}

func do(t *testing.T, app *fiber.App, method, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func assertCORS(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestHandleRequest_Shadcn(t *testing.T) {
	app := setupDirApp(t, "shadcn")

	t.Run("Index", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/registry.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, indexJSON, body)
		assertCORS(t, resp)
	})

	t.Run("Component", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/r/button.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, buttonJSON, body)
		assertCORS(t, resp)
	})

	t.Run("MissingComponent", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/r/missing.json")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Contains(t, body, "/r/missing.json")
		assertCORS(t, resp)
	})

	t.Run("UnknownPath", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/nope")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "File not found: /nope", body)
	})

	t.Run("PublicRoutesNotServed", func(t *testing.T) {
		resp, _ := do(t, app, "GET", "/registry/index.json")
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Preflight", func(t *testing.T) {
		for _, target := range []string{"/registry.json", "/r/button.json", "/anything"} {
			resp, body := do(t, app, "OPTIONS", target)
			assert.Equal(t, 200, resp.StatusCode, target)
			assert.Empty(t, body, target)
			assertCORS(t, resp)
		}
	})

	t.Run("Head", func(t *testing.T) {
		resp, body := do(t, app, "HEAD", "/registry.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Empty(t, body)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		resp, _ := do(t, app, "POST", "/registry.json")
		assert.Equal(t, 405, resp.StatusCode)
		assert.Equal(t, "GET, HEAD, OPTIONS", resp.Header.Get("Allow"))
		assertCORS(t, resp)
	})

	t.Run("Idempotent", func(t *testing.T) {
		_, first := do(t, app, "GET", "/r/button.json")
		_, second := do(t, app, "GET", "/r/button.json")
		assert.Equal(t, first, second)
	})
}

func TestHandleRequest_Traversal(t *testing.T) {
	for _, layouts := range [][]string{{"shadcn"}, {"public"}, {"shadcn", "public"}} {
		app := setupDirApp(t, layouts...)

		for _, target := range []string{
			"/r/../private.json",
			"/r/../../private.json",
			"/r/../../../secret.json",
			"/r/%2e%2e/%2e%2e/private.json",
			"/r/..%2f..%2fprivate.json",
			"/registry/ui/../../../private.json",
			"/registry/ui/%2e%2e/%2e%2e/%2e%2e/secret.json",
		} {
			resp, body := do(t, app, "GET", target)
			assert.Equal(t, 404, resp.StatusCode, "%v %s", layouts, target)
			assert.NotContains(t, body, privateJSON, "%v %s", layouts, target)
			assert.NotContains(t, body, outsideSecret, "%v %s", layouts, target)
		}
	}
}

func TestHandleRequest_Public(t *testing.T) {
	app := setupDirApp(t, "public")

	t.Run("Index", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/registry/index.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, publicIndex, body)
	})

	t.Run("Component", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/registry/ui/interactive-table.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, tableJSON, body)
		assertCORS(t, resp)
	})

	t.Run("MissingComponent", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/registry/ui/missing.json")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Contains(t, body, "/registry/ui/missing.json")
	})

	t.Run("StaticFallback", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/index.html")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Equal(t, homeHTML, body)
	})

	t.Run("StaticDirectoryIndex", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, homeHTML, body)
	})

	t.Run("StaticComponentFileDirectly", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/r/button.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, buttonJSON, body)
	})

	t.Run("StaticMiss", func(t *testing.T) {
		resp, body := do(t, app, "GET", "/missing.txt")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "File not found: /missing.txt", body)
	})
}

func TestHandleRequest_Combined(t *testing.T) {
	app := setupDirApp(t, "shadcn", "public")

	for target, want := range map[string]string{
		"/registry.json":                      indexJSON,
		"/registry/index.json":                publicIndex,
		"/r/button.json":                      buttonJSON,
		"/registry/ui/interactive-table.json": tableJSON,
		"/index.html":                         homeHTML,
	} {
		resp, body := do(t, app, "GET", target)
		assert.Equal(t, 200, resp.StatusCode, target)
		assert.Equal(t, want, body, target)
	}
}

type stubSource struct {
	files map[string]string
	err   error
}

func (s stubSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if data, ok := s.files[name]; ok {
		return []byte(data), nil
	}
	return nil, source.ErrNotFound
}

func TestHandleRequest_ReadErrors(t *testing.T) {
	t.Run("UnexpectedErrorIsLoggedAndHidden", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		app := setupTestApp(t, stubSource{err: errors.New("permission denied")}, "", zap.New(core), "shadcn")

		resp, body := do(t, app, "GET", "/registry.json")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "File not found: /registry.json", body)
		assert.NotContains(t, body, "permission")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "registry.json", entries[0].ContextMap()["file"])
	})

	t.Run("NotFoundIsQuiet", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		app := setupTestApp(t, stubSource{}, "", zap.New(core), "shadcn")

		resp, _ := do(t, app, "GET", "/r/button.json")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Zero(t, logs.Len())
	})

	t.Run("NonDiskSourceDisablesStatic", func(t *testing.T) {
		src := stubSource{files: map[string]string{"public/registry/index.json": publicIndex}}
		app := setupTestApp(t, src, "", zap.NewNop(), "public")

		resp, body := do(t, app, "GET", "/registry/index.json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, publicIndex, body)

		resp, body = do(t, app, "GET", "/index.html")
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "File not found: /index.html", body)
	})
}

func TestNewFeature_UnknownLayout(t *testing.T) {
	_, err := registry.NewFeature(registry.Config{Layouts: []string{"npm"}}, stubSource{}, "", zap.NewNop())
	assert.Error(t, err)
}
