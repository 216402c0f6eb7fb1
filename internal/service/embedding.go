package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmbeddingDimension is the output width of the hosted embedding model.
const EmbeddingDimension = 1024

// EmbeddingModel is the hosted model used for all embeddings.
const EmbeddingModel = "multilingual-e5-large"

// ErrEmptyText is returned when an empty string is submitted for embedding.
var ErrEmptyText = errors.New("text cannot be empty")

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingService calls the Pinecone inference API to embed text.
type EmbeddingService struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewEmbeddingService creates an embedding client. The API key is a startup
// precondition checked by config validation before this is reached.
func NewEmbeddingService(apiKey string) *EmbeddingService {
	return &EmbeddingService{
		apiKey:     apiKey,
		apiURL:     "https://api.pinecone.io/embed",
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewEmbeddingServiceWithURL creates an embedding client against a custom
// endpoint. Used by tests to point at a fake server.
func NewEmbeddingServiceWithURL(apiKey, apiURL string) *EmbeddingService {
	s := NewEmbeddingService(apiKey)
	s.apiURL = apiURL
	return s
}

type embedRequest struct {
	Model      string            `json:"model"`
	Parameters map[string]string `json:"parameters"`
	Inputs     []embedInput      `json:"inputs"`
}

type embedInput struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Data []struct {
		Values []float32 `json:"values"`
	} `json:"data"`
}

// Embed returns the embedding vector for text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	reqBody := embedRequest{
		Model:      EmbeddingModel,
		Parameters: map[string]string{"input_type": "passage", "truncate": "END"},
		Inputs:     []embedInput{{Text: text}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call embedding API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result embedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("embedding API returned no data")
	}

	return result.Data[0].Values, nil
}
