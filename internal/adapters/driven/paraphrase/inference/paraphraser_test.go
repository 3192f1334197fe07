package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRephrase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var req struct {
			Inputs string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "पाणी हे जीवन आहे", req.Inputs)

		json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": "जीवनासाठी पाणी आवश्यक आहे"},
		})
	}))
	defer srv.Close()

	p := New(srv.URL, "token-123", 0)
	got, err := p.Rephrase(context.Background(), "पाणी हे जीवन आहे")
	require.NoError(t, err)
	assert.Equal(t, "जीवनासाठी पाणी आवश्यक आहे", got)
}

func TestRephrase_BlankInputPassedThrough(t *testing.T) {
	p := New("http://unused.invalid", "", 0)
	got, err := p.Rephrase(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "   ", got)
}

func TestRephrase_EndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", 0).Rephrase(context.Background(), "मजकूर")
	assert.Error(t, err)
}

func TestRephrase_EmptyGeneration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", 0).Rephrase(context.Background(), "मजकूर")
	assert.Error(t, err)
}
