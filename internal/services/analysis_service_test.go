package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dermia/internal/models/db_models"
	"dermia/pkg/utils"
)

func TestAnalysisService_ListByUser(t *testing.T) {
	repo := &stubAnalysisRepo{saved: []db_models.SkinAnalysis{
		{
			BaseModel:         db_models.BaseModel{ID: uuid.New()},
			UserID:            "user-1",
			SkinType:          "Piel Grasa",
			IsSensible:        true,
			Concerns:          pq.StringArray{"acne", "poros"},
			PreferredTexture:  "ligera",
			AgeRange:          "20-30",
			RoutineComplexity: "full",
		},
	}}
	svc := NewAnalysisService(repo)

	analyses, err := svc.ListByUser(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "Piel Grasa", analyses[0].SkinType)
	assert.True(t, analyses[0].IsSensible)
	assert.Equal(t, []string{"acne", "poros"}, analyses[0].Concerns)
	assert.Equal(t, repo.saved[0].ID.String(), analyses[0].ID)
}

func TestAnalysisService_ListByUserValidation(t *testing.T) {
	svc := NewAnalysisService(&stubAnalysisRepo{})

	_, err := svc.ListByUser(context.Background(), "", 10)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAnalysisService_RepoFailure(t *testing.T) {
	svc := NewAnalysisService(&stubAnalysisRepo{err: errors.New("db down")})

	_, err := svc.ListByUser(context.Background(), "user-1", 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
