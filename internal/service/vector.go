package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/fitfusion/backend/internal/models"
)

// maxSearchResults caps how many matches a single query may request from the
// index. Larger limits are silently clamped.
const maxSearchResults = 100

// deleteBatchSize is how many ids go into one index delete call.
const deleteBatchSize = 100

var (
	// ErrEmptyQuery is returned when a search is attempted with no query text.
	ErrEmptyQuery = errors.New("query text cannot be empty")
	// ErrInvalidContent is returned when content lacks the title the
	// composite embedding text is anchored on.
	ErrInvalidContent = errors.New("invalid fitness content: title is required")
	// ErrEmptyEmbeddingID is returned for deletes with no id.
	ErrEmptyEmbeddingID = errors.New("embedding ID cannot be empty")
)

// VectorService bridges catalog content to the external vector index:
// embedding generation, upsert/query/delete bookkeeping, filter construction.
type VectorService struct {
	index    VectorIndex
	embedder Embedder
}

// NewVectorService creates a VectorService around an index and an embedder.
// Both are constructed once at startup and injected.
func NewVectorService(index VectorIndex, embedder Embedder) *VectorService {
	return &VectorService{index: index, embedder: embedder}
}

// UpsertContent embeds the content's composite text and writes it to the
// index along with a metadata mirror of the catalog fields. It returns the
// index key but does NOT persist it on the row; the caller must save the
// returned key separately.
func (s *VectorService) UpsertContent(ctx context.Context, content *models.FitnessContent) (string, error) {
	if content == nil || content.Title == "" {
		return "", ErrInvalidContent
	}

	embeddingID := content.EmbeddingID
	if embeddingID == "" {
		embeddingID = fmt.Sprintf("fitness-%s", uuid.New())
	}

	textToEmbed := fmt.Sprintf("Title: %s\nDescription: %s\nType: %s\n",
		content.Title, content.Description, content.ContentType)
	if content.EquipmentRequired != "" {
		textToEmbed += fmt.Sprintf("Equipment: %s\n", content.EquipmentRequired)
	}
	if content.TargetMuscles != "" {
		textToEmbed += fmt.Sprintf("Target Muscles: %s\n", content.TargetMuscles)
	}

	embedding, err := s.embedder.Embed(ctx, textToEmbed)
	if err != nil {
		return "", fmt.Errorf("failed to embed content: %w", err)
	}

	metadata := map[string]interface{}{
		"title":              content.Title,
		"description":        content.Description,
		"content_type":       content.ContentType,
		"difficulty_level":   content.DifficultyLevel,
		"url":                content.URL,
		"youtube_url":        content.YoutubeURL,
		"equipment_required": content.EquipmentRequired,
		"duration_minutes":   content.DurationMinutes,
		"calories_burned":    content.CaloriesBurned,
		"target_muscles":     content.TargetMuscles,
	}

	if err := s.index.Upsert(ctx, []IndexVector{{ID: embeddingID, Values: embedding, Metadata: metadata}}); err != nil {
		log.Printf("Error upserting to vector index: %v", err)
		return "", err
	}

	log.Printf("Upserted content %q to vector index (ID: %s)", content.Title, embeddingID)
	return embeddingID, nil
}

// Search embeds the query and runs a filtered similarity search. Explicit
// contentType/difficulty parameters overwrite same-named keys in
// extraFilters. The limit is clamped to maxSearchResults; matches come back
// in the index's descending-score order, not re-sorted locally.
func (s *VectorService) Search(ctx context.Context, query, contentType string, difficulty *int, extraFilters map[string]interface{}, limit int) ([]IndexMatch, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	filter := make(map[string]interface{}, len(extraFilters)+2)
	for k, v := range extraFilters {
		filter[k] = v
	}
	if contentType != "" {
		filter["content_type"] = contentType
	}
	if difficulty != nil {
		filter["difficulty_level"] = *difficulty
	}

	if limit <= 0 {
		limit = 5
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	matches, err := s.index.Query(ctx, embedding, limit, filter)
	if err != nil {
		log.Printf("Error searching vector index: %v", err)
		return nil, err
	}

	log.Printf("Search %q returned %d results", query, len(matches))
	return matches, nil
}

// Delete removes one entry from the index.
func (s *VectorService) Delete(ctx context.Context, embeddingID string) error {
	if embeddingID == "" {
		return ErrEmptyEmbeddingID
	}
	if err := s.index.Delete(ctx, []string{embeddingID}); err != nil {
		log.Printf("Error deleting from vector index: %v", err)
		return err
	}
	log.Printf("Deleted embedding from vector index (ID: %s)", embeddingID)
	return nil
}

// DeleteBatch removes ids in chunks of deleteBatchSize, aborting on the
// first failed chunk. Earlier chunks stay deleted; partial deletion is
// possible and not retried.
func (s *VectorService) DeleteBatch(ctx context.Context, embeddingIDs []string) error {
	for i := 0; i < len(embeddingIDs); i += deleteBatchSize {
		end := i + deleteBatchSize
		if end > len(embeddingIDs) {
			end = len(embeddingIDs)
		}
		batch := embeddingIDs[i:end]
		if err := s.index.Delete(ctx, batch); err != nil {
			log.Printf("Error deleting batch from vector index: %v", err)
			return err
		}
		log.Printf("Deleted batch of %d embeddings from vector index", len(batch))
	}
	return nil
}
