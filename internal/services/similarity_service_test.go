package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSimilarity(t *testing.T) {
	service := NewSimilarityService()

	testCases := []struct {
		name        string
		str1        string
		str2        string
		expectedMin float64
		expectedMax float64
	}{
		{
			name:        "Identical strings",
			str1:        "patrick.qian",
			str2:        "patrick.qian",
			expectedMin: 1.0,
			expectedMax: 1.0,
		},
		{
			name:        "Empty strings",
			str1:        "",
			str2:        "",
			expectedMin: 1.0,
			expectedMax: 1.0,
		},
		{
			name:        "One empty string",
			str1:        "patrick",
			str2:        "",
			expectedMin: 0.0,
			expectedMax: 0.0,
		},
		{
			name:        "Case insensitive",
			str1:        "Patrick Qian",
			str2:        "patrick qian",
			expectedMin: 1.0,
			expectedMax: 1.0,
		},
		{
			name:        "Punctuation ignored",
			str1:        "patrick.qian",
			str2:        "patrick-qian",
			expectedMin: 1.0,
			expectedMax: 1.0,
		},
		{
			name:        "Close variants",
			str1:        "patrickqian",
			str2:        "patrick qian",
			expectedMin: 0.9,
			expectedMax: 1.0,
		},
		{
			name:        "Unrelated strings",
			str1:        "patrick",
			str2:        "svetlana",
			expectedMin: 0.0,
			expectedMax: 0.4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			similarity := service.CalculateSimilarity(tc.str1, tc.str2)

			assert.GreaterOrEqual(t, similarity, tc.expectedMin)
			assert.LessOrEqual(t, similarity, tc.expectedMax)
		})
	}
}

func TestCalculateSimilaritySymmetric(t *testing.T) {
	service := NewSimilarityService()

	pairs := [][2]string{
		{"patrick", "patrik"},
		{"john smith", "jon smith"},
		{"", "someone"},
	}

	for _, pair := range pairs {
		assert.Equal(t,
			service.CalculateSimilarity(pair[0], pair[1]),
			service.CalculateSimilarity(pair[1], pair[0]))
	}
}

func TestLevenshteinDistance(t *testing.T) {
	service := NewSimilarityService()

	testCases := []struct {
		name     string
		str1     string
		str2     string
		expected int
	}{
		{name: "Identical", str1: "abc", str2: "abc", expected: 0},
		{name: "Single substitution", str1: "abc", str2: "abd", expected: 1},
		{name: "Single insertion", str1: "abc", str2: "abcd", expected: 1},
		{name: "Single deletion", str1: "abcd", str2: "abc", expected: 1},
		{name: "Empty to word", str1: "", str2: "abcd", expected: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.levenshteinDistance(tc.str1, tc.str2))
		})
	}
}
