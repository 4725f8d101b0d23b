package services

import (
	"strings"
	"unicode"
)

// SimilarityFunc computes a normalized similarity ratio between two strings,
// in [0, 1]. The matcher and scorer only depend on this contract, not on a
// particular edit-distance implementation.
type SimilarityFunc func(a, b string) float64

type SimilarityService struct{}

func NewSimilarityService() *SimilarityService {
	return &SimilarityService{}
}

// CalculateSimilarity calculates the similarity between two strings
// Returns a value between 0 (completely different) and 1 (identical)
func (s *SimilarityService) CalculateSimilarity(str1, str2 string) float64 {
	if str1 == str2 {
		return 1.0
	}

	// Normalize strings (lowercase, remove special chars)
	normalized1 := s.normalizeString(str1)
	normalized2 := s.normalizeString(str2)

	if normalized1 == normalized2 {
		return 1.0
	}

	if len(normalized1) == 0 || len(normalized2) == 0 {
		return 0.0
	}

	// Calculate Levenshtein distance
	distance := s.levenshteinDistance(normalized1, normalized2)
	maxLen := float64(max(len(normalized1), len(normalized2)))

	// Convert distance to similarity (0 = identical, 1 = completely different)
	return 1.0 - (float64(distance) / maxLen)
}

// normalizeString normalizes a string for comparison
func (s *SimilarityService) normalizeString(str string) string {
	// Convert to lowercase
	str = strings.ToLower(str)

	// Remove special characters and keep only alphanumeric
	var result strings.Builder
	for _, r := range str {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func (s *SimilarityService) levenshteinDistance(str1, str2 string) int {
	len1, len2 := len(str1), len(str2)

	// Create matrix
	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	// Initialize first row and column
	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			if str1[i-1] == str2[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min3(
					matrix[i-1][j]+1,   // deletion
					matrix[i][j-1]+1,   // insertion
					matrix[i-1][j-1]+1, // substitution
				)
			}
		}
	}

	return matrix[len1][len2]
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= a && b <= c {
		return b
	}
	return c
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
