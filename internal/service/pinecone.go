package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// IndexVector is one (id, vector, metadata) entry in the external index.
type IndexVector struct {
	ID       string                 `json:"id"`
	Values   []float32              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// IndexMatch is one similarity match returned by the index, in the index's
// own descending-score order.
type IndexMatch struct {
	ID       string                 `json:"id"`
	Score    float64                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// VectorIndex abstracts the hosted vector index.
type VectorIndex interface {
	Upsert(ctx context.Context, vectors []IndexVector) error
	Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]IndexMatch, error)
	Delete(ctx context.Context, ids []string) error
}

// createPollLimit bounds how many times index creation is polled for a host
// before startup gives up.
const createPollLimit = 30

// PineconeIndex talks to one Pinecone index over its REST data plane.
type PineconeIndex struct {
	apiKey       string
	controlURL   string
	hostURL      string
	pollInterval time.Duration
	httpClient   *http.Client
}

// NewPineconeIndex resolves (creating if necessary) the named index and
// returns a client bound to its data-plane host. A missing API key or an
// unreachable control plane is fatal to startup.
func NewPineconeIndex(apiKey, indexName string) (*PineconeIndex, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("pinecone API key is not set")
	}

	idx := &PineconeIndex{
		apiKey:       apiKey,
		controlURL:   "https://api.pinecone.io",
		pollInterval: 2 * time.Second,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}

	host, err := idx.ensureIndex(context.Background(), indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize index %q: %w", indexName, err)
	}
	idx.hostURL = "https://" + host

	log.Printf("Using Pinecone index %q at %s", indexName, host)
	return idx, nil
}

// NewPineconeIndexWithHost binds a client directly to a data-plane base URL,
// skipping control-plane resolution. Used by tests.
func NewPineconeIndexWithHost(apiKey, hostURL string) *PineconeIndex {
	return &PineconeIndex{
		apiKey:     apiKey,
		hostURL:    hostURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type indexDescription struct {
	Name   string `json:"name"`
	Host   string `json:"host"`
	Status struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

func (p *PineconeIndex) ensureIndex(ctx context.Context, name string) (string, error) {
	desc, status, err := p.describeIndex(ctx, name)
	if err != nil {
		return "", err
	}
	if status == http.StatusOK {
		return desc.Host, nil
	}
	if status != http.StatusNotFound {
		return "", fmt.Errorf("describe index returned status %d", status)
	}

	log.Printf("Creating Pinecone index: %s", name)
	createBody := map[string]interface{}{
		"name":      name,
		"dimension": EmbeddingDimension,
		"metric":    "cosine",
		"spec": map[string]interface{}{
			"serverless": map[string]string{
				"cloud":  "aws",
				"region": "us-east-1",
			},
		},
	}
	var created indexDescription
	if err := p.doJSON(ctx, http.MethodPost, p.controlURL+"/indexes", createBody, &created); err != nil {
		return "", err
	}

	// Creation is asynchronous; poll until the host is assigned, bounded so
	// an index stuck in a hostless state cannot hang startup forever.
	for attempt := 0; created.Host == ""; attempt++ {
		if attempt >= createPollLimit {
			return "", fmt.Errorf("index %q has no host after %d polls", name, attempt)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.pollInterval):
		}
		desc, status, err = p.describeIndex(ctx, name)
		if err != nil {
			return "", err
		}
		if status == http.StatusOK {
			created = *desc
		}
	}

	log.Printf("Pinecone index %s created", name)
	return created.Host, nil
}

func (p *PineconeIndex) describeIndex(ctx context.Context, name string) (*indexDescription, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.controlURL+"/indexes/"+name, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to describe index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var desc indexDescription
	if err := json.NewDecoder(resp.Body).Decode(&desc); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode index description: %w", err)
	}
	return &desc, resp.StatusCode, nil
}

// Upsert writes vectors to the index.
func (p *PineconeIndex) Upsert(ctx context.Context, vectors []IndexVector) error {
	body := map[string]interface{}{"vectors": vectors}
	return p.doJSON(ctx, http.MethodPost, p.hostURL+"/vectors/upsert", body, nil)
}

// Query runs a similarity search and returns matches in the index's order.
func (p *PineconeIndex) Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]IndexMatch, error) {
	body := map[string]interface{}{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	if len(filter) > 0 {
		body["filter"] = filter
	}

	var result struct {
		Matches []IndexMatch `json:"matches"`
	}
	if err := p.doJSON(ctx, http.MethodPost, p.hostURL+"/query", body, &result); err != nil {
		return nil, err
	}
	return result.Matches, nil
}

// Delete removes the given ids from the index.
func (p *PineconeIndex) Delete(ctx context.Context, ids []string) error {
	body := map[string]interface{}{"ids": ids}
	return p.doJSON(ctx, http.MethodPost, p.hostURL+"/vectors/delete", body, nil)
}

func (p *PineconeIndex) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to vector index failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read index response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("vector index returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode index response: %w", err)
		}
	}
	return nil
}
