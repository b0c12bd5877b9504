package repositories

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarhub/backend/internal/app/models"
)

func TestEncodeAffiliates_NilCollectionsPersistAsEmptyArrays(t *testing.T) {
	coursesJSON, booksJSON, err := encodeAffiliates(&models.Job{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(coursesJSON))
	assert.Equal(t, "[]", string(booksJSON))
}

func TestEncodeAffiliates_RoundTrip(t *testing.T) {
	job := &models.Job{
		AffiliateCourses: []models.AffiliateCourse{
			{ID: "c1", Platform: "Udemy", Title: "SSC CGL", URL: "https://example.com/cgl"},
		},
		AffiliateBooks: []models.AffiliateBook{
			{ID: "b1", Title: "Quantitative Aptitude", Author: "R.S. Aggarwal", URL: "https://example.com/qa"},
		},
	}

	coursesJSON, booksJSON, err := encodeAffiliates(job)
	require.NoError(t, err)

	courses := decodeCourses(coursesJSON)
	require.Len(t, courses, 1)
	assert.Equal(t, job.AffiliateCourses[0], courses[0])

	books := decodeBooks(booksJSON)
	require.Len(t, books, 1)
	assert.Equal(t, job.AffiliateBooks[0], books[0])
}

func TestDecodeCourses_NeverNil(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty column", raw: nil},
		{name: "json null", raw: []byte("null")},
		{name: "empty array", raw: []byte("[]")},
		{name: "garbage", raw: []byte("{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := decodeCourses(tt.raw)
			assert.NotNil(t, courses)
			assert.Empty(t, courses)

			encoded, err := json.Marshal(courses)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(encoded), "must serialize as [] never null")
		})
	}
}

func TestDecodeBooks_NeverNil(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty column", raw: nil},
		{name: "json null", raw: []byte("null")},
		{name: "garbage", raw: []byte("{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := decodeBooks(tt.raw)
			assert.NotNil(t, books)
			assert.Empty(t, books)
		})
	}
}

func TestJobInsertValues_MatchesInsertColumns(t *testing.T) {
	job := &models.Job{
		ID:     "j1",
		Title:  "Clerk",
		Status: models.JobStatusActive,
	}

	values, err := jobInsertValues(job)
	require.NoError(t, err)
	require.Len(t, values, len(jobInsertColumns))
	assert.Equal(t, "j1", values[0])
	assert.Equal(t, "active", values[10])
}
