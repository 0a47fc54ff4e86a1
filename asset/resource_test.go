package asset

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := Open(thisFile, nil)
	require.NoError(t, err)
	defer res.Close()

	assert.False(t, res.IsRemote())
	assert.Equal(t, thisFile, res.Path())
}

func TestRelativeLocalResource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte("meshes: []"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "a.vert"), []byte("void main() {}"), 0o644))

	scene, err := Open(filepath.Join(dir, "scene.yaml"), nil)
	require.NoError(t, err)
	defer scene.Close()

	shader, err := Open("shaders/a.vert", scene)
	require.NoError(t, err)
	data, err := shader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(data))
}

func TestHttpResource(t *testing.T) {
	serverHits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		switch r.URL.Path {
		case "/scenes/demo.yaml", "/scenes/shaders/default.frag":
			w.Write([]byte("OK"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	scene, err := Open(server.URL+"/scenes/demo.yaml", nil)
	require.NoError(t, err)
	defer scene.Close()
	assert.True(t, scene.IsRemote())

	shader, err := Open("shaders/default.frag", scene)
	require.NoError(t, err)
	data, err := shader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(data))
	assert.Equal(t, 2, serverHits)

	missing := server.URL + "/file-not-found.foo"
	_, err = Open(missing, nil)
	require.EqualError(t, err, "resource: could not fetch '"+missing+"': status 404")
}

func TestUnsupportedResourceScheme(t *testing.T) {
	_, err := Open("gopher://digging.yaml", nil)
	require.EqualError(t, err, "resource: unsupported scheme 'gopher'")
}

func TestResolveAbsolutePathIgnoresParent(t *testing.T) {
	parent := FromStream("/tmp/scenes/demo.yaml", strings.NewReader(""))
	target, err := Resolve("/opt/shaders/a.vert", parent)
	require.NoError(t, err)
	assert.Equal(t, "/opt/shaders/a.vert", target.Path)

	target, err = Resolve("a.vert", parent)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scenes/a.vert", target.Path)
}
