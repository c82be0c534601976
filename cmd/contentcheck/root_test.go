package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"catcare-web/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeContentful(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/spaces/space123/environments/master/content_types", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"items":[{"sys":{"id":"catCareHub"},"name":"Cat Care Hub"}]}`))
	})
	mux.HandleFunc("/spaces/space123/environments/master/entries", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":12,"items":[{"sys":{"id":"e1","contentType":{"sys":{"id":"catCareHub"}}},"fields":{}}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_PrintsDiagnostics(t *testing.T) {
	server := newFakeContentful(t)

	out, err := execute(t, "--space", "space123", "--token", "token-abc", "--base-url", server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 content type(s):")
	assert.Contains(t, out, "Name: Cat Care Hub")
	assert.Contains(t, out, "API Identifier (Content Type ID): catCareHub")
	assert.Contains(t, out, "Found 12 total entries")
	assert.Contains(t, out, "First entry content type: catCareHub")
}

func TestRootCmd_ReadsEnvironment(t *testing.T) {
	server := newFakeContentful(t)
	t.Setenv("CONTENTFUL_SPACE_ID", "space123")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "token-abc")
	t.Setenv("CONTENTFUL_BASE_URL", server.URL)

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Found 12 total entries")
}

func TestRootCmd_MissingCredentials(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE_ID", "")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "")

	_, err := execute(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTENTFUL_SPACE_ID")
}

func TestRootCmd_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"sys":{"id":"AccessTokenInvalid"},"message":"The access token you sent could not be found or is invalid."}`))
	}))
	defer server.Close()

	_, err := execute(t, "--space", "space123", "--token", "bad", "--base-url", server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list content types")
}

func TestPrintDiagnostics_NoEntries(t *testing.T) {
	var out bytes.Buffer

	printDiagnostics(&out, &domain.Diagnostics{})

	assert.Contains(t, out.String(), "Found 0 content type(s):")
	assert.Contains(t, out.String(), "Found 0 total entries")
	assert.NotContains(t, out.String(), "First entry content type")
}
