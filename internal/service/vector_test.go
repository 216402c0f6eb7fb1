package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/backend/internal/models"
)

// fakeEmbedder records the text it was asked to embed.
type fakeEmbedder struct {
	lastText string
	err      error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return make([]float32, EmbeddingDimension), nil
}

// fakeIndex records every call it receives.
type fakeIndex struct {
	upserted    []IndexVector
	lastTopK    int
	lastFilter  map[string]interface{}
	deleteCalls [][]string
	queryResult []IndexMatch
	failAfter   int // fail the Nth delete call (1-based); 0 disables
	err         error
}

func (f *fakeIndex) Upsert(ctx context.Context, vectors []IndexVector) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, vectors...)
	return nil
}

func (f *fakeIndex) Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]IndexMatch, error) {
	f.lastTopK = topK
	f.lastFilter = filter
	return f.queryResult, f.err
}

func (f *fakeIndex) Delete(ctx context.Context, ids []string) error {
	f.deleteCalls = append(f.deleteCalls, ids)
	if f.failAfter > 0 && len(f.deleteCalls) >= f.failAfter {
		return errors.New("index unavailable")
	}
	return nil
}

func TestUpsertContentCompositeText(t *testing.T) {
	embedder := &fakeEmbedder{}
	index := &fakeIndex{}
	svc := NewVectorService(index, embedder)

	content := &models.FitnessContent{
		Title:       "Morning Run",
		Description: "Easy 5k",
		ContentType: models.ContentTypeWorkout,
	}
	id, err := svc.UpsertContent(context.Background(), content)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "fitness-"))
	assert.Equal(t, "Title: Morning Run\nDescription: Easy 5k\nType: workout\n", embedder.lastText)

	// Equipment and target muscles only appear when set.
	content.EquipmentRequired = "dumbbells"
	content.TargetMuscles = "legs"
	_, err = svc.UpsertContent(context.Background(), content)
	require.NoError(t, err)
	assert.Contains(t, embedder.lastText, "Equipment: dumbbells\n")
	assert.Contains(t, embedder.lastText, "Target Muscles: legs\n")
}

func TestUpsertContentReusesEmbeddingID(t *testing.T) {
	svc := NewVectorService(&fakeIndex{}, &fakeEmbedder{})

	content := &models.FitnessContent{
		Title:       "Morning Run",
		ContentType: models.ContentTypeWorkout,
		EmbeddingID: "fitness-existing",
	}
	id, err := svc.UpsertContent(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "fitness-existing", id)
}

func TestUpsertContentRequiresTitle(t *testing.T) {
	svc := NewVectorService(&fakeIndex{}, &fakeEmbedder{})

	_, err := svc.UpsertContent(context.Background(), &models.FitnessContent{ContentType: "workout"})
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = svc.UpsertContent(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewVectorService(&fakeIndex{}, &fakeEmbedder{})

	_, err := svc.Search(context.Background(), "", "", nil, nil, 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchFilterMerge(t *testing.T) {
	index := &fakeIndex{}
	svc := NewVectorService(index, &fakeEmbedder{})

	difficulty := 3
	extra := map[string]interface{}{
		"content_type": "article", // overwritten by the explicit param
		"duration":     30,
	}
	_, err := svc.Search(context.Background(), "cardio", "workout", &difficulty, extra, 5)
	require.NoError(t, err)

	assert.Equal(t, "workout", index.lastFilter["content_type"])
	assert.Equal(t, 3, index.lastFilter["difficulty_level"])
	assert.Equal(t, 30, index.lastFilter["duration"])
	// The caller's map is not mutated.
	assert.Equal(t, "article", extra["content_type"])
}

func TestSearchLimitClamping(t *testing.T) {
	index := &fakeIndex{}
	svc := NewVectorService(index, &fakeEmbedder{})

	_, err := svc.Search(context.Background(), "cardio", "", nil, nil, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, index.lastTopK)

	_, err = svc.Search(context.Background(), "cardio", "", nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, index.lastTopK)
}

func TestSearchPreservesIndexOrder(t *testing.T) {
	index := &fakeIndex{queryResult: []IndexMatch{
		{ID: "a", Score: 0.9},
		{ID: "b", Score: 0.8},
		{ID: "c", Score: 0.7},
	}}
	svc := NewVectorService(index, &fakeEmbedder{})

	matches, err := svc.Search(context.Background(), "cardio", "", nil, nil, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "c", matches[2].ID)
}

func TestDeleteRequiresID(t *testing.T) {
	svc := NewVectorService(&fakeIndex{}, &fakeEmbedder{})
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrEmptyEmbeddingID)
}

func TestDeleteBatchChunks(t *testing.T) {
	index := &fakeIndex{}
	svc := NewVectorService(index, &fakeEmbedder{})

	ids := make([]string, 250)
	for i := range ids {
		ids[i] = fmt.Sprintf("fitness-%d", i)
	}
	require.NoError(t, svc.DeleteBatch(context.Background(), ids))

	require.Len(t, index.deleteCalls, 3)
	assert.Len(t, index.deleteCalls[0], 100)
	assert.Len(t, index.deleteCalls[1], 100)
	assert.Len(t, index.deleteCalls[2], 50)
}

func TestDeleteBatchAbortsOnFailure(t *testing.T) {
	index := &fakeIndex{failAfter: 2}
	svc := NewVectorService(index, &fakeEmbedder{})

	ids := make([]string, 250)
	for i := range ids {
		ids[i] = fmt.Sprintf("fitness-%d", i)
	}
	err := svc.DeleteBatch(context.Background(), ids)
	require.Error(t, err)
	// The first chunk went through, the second failed, the third never ran.
	assert.Len(t, index.deleteCalls, 2)
}
