package cmd

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state and captured
// streams, the way a single process invocation would.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	noColorFlag = true
	insecureFlag = false
	proxyFlag = ""
	queryFlag = ""
	prettyFlag = false
	getHeadersFlag = nil
	postHeadersFlag = nil
	postDataFlag = ""
	postFileFlag = ""
	putHeadersFlag = nil
	putDataFlag = ""
	putFileFlag = ""
	deleteHeadersFlag = nil

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGet_NormalizesURLAndPrintsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello from server"))
	}))
	defer server.Close()

	// bare host:port, no scheme
	stdout, stderr, err := execute(t, "get", strings.TrimPrefix(server.URL, "http://"))
	require.NoError(t, err)
	assert.Empty(t, stderr)

	statusIdx := strings.Index(stdout, "200 OK")
	headerIdx := strings.Index(stdout, "Content-Type: text/plain")
	bodyIdx := strings.Index(stdout, "hello from server")
	require.GreaterOrEqual(t, statusIdx, 0)
	assert.Greater(t, headerIdx, statusIdx)
	assert.Greater(t, bodyIdx, headerIdx)
}

func TestGet_SendsCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MyClient", r.Header.Get("User-Agent"))
		assert.Equal(t, "b=c", r.Header.Get("X-Extra"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, _, err := execute(t, "get", server.URL, "-H", "User-Agent=MyClient", "-H", "X-Extra=b=c")
	require.NoError(t, err)
}

func TestGet_MalformedHeaderFailsBeforeIO(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	_, _, err := execute(t, "get", server.URL, "-H", "NoEqualsSign")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoEqualsSign")
	assert.False(t, hit)
}

func TestPost_RawDataIsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"k":1}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, _, err := execute(t, "post", server.URL, "-d", `{"k":1}`, "-H", "content-type=text/plain")
	require.NoError(t, err)
}

func TestPost_FileUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "payload", string(content))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	// file wins over -d
	_, _, err := execute(t, "post", server.URL, "-f", path, "-d", "ignored")
	require.NoError(t, err)
}

func TestPost_MissingFileAbortsBeforeNetwork(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	_, _, err := execute(t, "post", server.URL, "-f", "missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, hit)
	assert.Equal(t, ExitFileError, exitCode(err))
}

func TestPut_RawData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"update":true}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, _, err := execute(t, "put", server.URL, "-d", `{"update":true}`)
	require.NoError(t, err)
}

func TestDelete_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	stdout, _, err := execute(t, "delete", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "204 No Content")
}

func TestTransportError_ReportedNotFatal(t *testing.T) {
	// nothing listens on port 1
	stdout, stderr, err := execute(t, "get", "http://127.0.0.1:1")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "request failed:")
	assert.Contains(t, stderr, "details:")
}

func TestGet_QueryExtractsJSONPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"user":{"name":"ada"}}`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "get", server.URL, "-q", "user.name")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ada")
	assert.NotContains(t, stdout, `{"user"`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reqq version")
}
