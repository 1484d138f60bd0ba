package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geotrip/models"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "kazbegi", normalizeInput("  Kazbegi "))
	assert.Equal(t, "cafe tour", normalizeInput("Café Tour"))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("svaneti", "svaneti"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	// One substitution in a seven letter word.
	assert.InDelta(t, 0.857, calculateSimilarity("svaneti", "svanati"), 0.01)
	assert.Less(t, calculateSimilarity("svaneti", "batumi"), 0.5)
}

func TestSearchPackages(t *testing.T) {
	packages := []models.Package{
		{ID: 1, Title: "Svaneti Trekking"},
		{ID: 2, Title: "Kazbegi Day Trip"},
		{ID: 3, Title: "Batumi Beach Week"},
	}

	t.Run("substring match", func(t *testing.T) {
		matched := searchPackages(packages, "kazbegi")
		assert.Len(t, matched, 1)
		assert.Equal(t, uint(2), matched[0].ID)
	})

	t.Run("typo tolerated", func(t *testing.T) {
		matched := searchPackages(packages, "Svanetti Trekking")
		assert.NotEmpty(t, matched)
		assert.Equal(t, uint(1), matched[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		matched := searchPackages(packages, "xyzxyzxyz")
		assert.Empty(t, matched)
	})

	t.Run("blank query returns everything", func(t *testing.T) {
		assert.Len(t, searchPackages(packages, "  "), 3)
	})
}
