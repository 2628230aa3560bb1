package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketedList(t *testing.T) {

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "list with surrounding prose",
			text:     `The answer is: ["a", "b"] as requested.`,
			expected: []string{`["a", "b"]`},
		},
		{
			name:     "nested brackets kept balanced",
			text:     `x [[1, 2], [3]] y`,
			expected: []string{`[[1, 2], [3]]`},
		},
		{
			name:     "only first span returned",
			text:     `[one] and [two]`,
			expected: []string{`[one]`},
		},
		{
			name:     "no brackets",
			text:     `plain text`,
			expected: []string{},
		},
		{
			name:     "unbalanced open bracket",
			text:     `broken [list`,
			expected: []string{},
		},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, BracketedList(tc.text), tc.name)
	}
}

func TestLatexTitles(t *testing.T) {

	latex := `\title{My Book}
\chapter{Introduction}
\section{Background}
\section{Scope}
`

	titles, err := LatexTitles(latex)

	require.NoError(t, err)

	// matches are grouped by command search order and report the
	// command matched
	assert.Equal(t, []string{"title", "chapter", "section", "section"}, titles)
}

func TestLatexTitlesNoMatches(t *testing.T) {

	titles, err := LatexTitles(`plain text without commands`)

	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestLongestConsecutiveRun(t *testing.T) {

	tests := []struct {
		name          string
		nums          []int
		expectedStart int
		expectedEnd   int
	}{
		{"empty input", nil, -1, -1},
		{"single element", []int{7}, 7, 7},
		{"run in middle", []int{9, 3, 4, 5, 6, 1}, 3, 6},
		{"whole input is a run", []int{2, 3, 4, 5}, 2, 5},
		{"tie keeps earliest run", []int{1, 2, 9, 5, 6}, 1, 2},
		{"no consecutive values", []int{5, 9, 2}, 5, 5},
	}

	for _, tc := range tests {
		start, end := LongestConsecutiveRun(tc.nums)

		assert.Equal(t, tc.expectedStart, start, tc.name)
		assert.Equal(t, tc.expectedEnd, end, tc.name)
	}
}
