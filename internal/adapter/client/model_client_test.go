package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelClient_Classify(t *testing.T) {
	t.Run("successful classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/classify", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req ClassifyRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "distilbert-emotion", req.Model)
			assert.Equal(t, "I am so happy today!", req.Text)
			assert.Equal(t, "req-123", req.RequestID)

			resp := ClassifyResponse{
				Success: true,
				Scores: []LabelScore{
					{Label: "sadness", Score: 0.02},
					{Label: "joy", Score: 0.9},
					{Label: "anger", Score: 0.08},
				},
				ModelVersion: "mock-v1.0.0",
				RequestID:    "req-123",
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		result, err := mc.Classify(context.Background(), "distilbert-emotion", "I am so happy today!", "req-123")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Len(t, result.Scores, 3)
		assert.Equal(t, "joy", result.Scores[1].Label)
		assert.Equal(t, 0.9, result.Scores[1].Score)
		assert.Equal(t, "mock-v1.0.0", result.ModelVersion)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		_, err := mc.Classify(context.Background(), "distilbert-emotion", "test", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection error", func(t *testing.T) {
		mc := NewModelClient("http://localhost:99999", 1*time.Second)
		_, err := mc.Classify(context.Background(), "distilbert-emotion", "test", "")

		assert.Error(t, err)
	})
}

func TestModelClient_LoadModel(t *testing.T) {
	t.Run("successful load", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/models/load", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			var req LoadModelRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "xlm-roberta-emotion", req.Model)

			resp := LoadModelResponse{
				Success: true,
				Model:   "xlm-roberta-emotion",
				Loaded:  true,
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		result, err := mc.LoadModel(context.Background(), "xlm-roberta-emotion")

		require.NoError(t, err)
		assert.True(t, result.Loaded)
		assert.Equal(t, "xlm-roberta-emotion", result.Model)
	})

	t.Run("load failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, err := w.Write([]byte("weights download failed"))
			require.NoError(t, err)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		_, err := mc.LoadModel(context.Background(), "xlm-roberta-emotion")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestModelClient_Health(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			resp := HealthResponse{
				Status:       "healthy",
				LoadedModels: []string{"distilbert-emotion"},
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		result, err := mc.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "healthy", result.Status)
		assert.Len(t, result.LoadedModels, 1)
	})
}

func TestModelClient_Ready(t *testing.T) {
	t.Run("ready server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ready", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		err := mc.Ready(context.Background())

		assert.NoError(t, err)
	})

	t.Run("not ready server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		mc := NewModelClient(server.URL, 5*time.Second)
		err := mc.Ready(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})
}
