// Package extract pulls structured values out of raw model response text
// and document metadata, covering the small parsing chores of a layout
// analysis pipeline.
package extract

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// latexCommands are the sectioning commands searched for by LatexTitles in
// document order of significance
var latexCommands = []string{
	"title",
	"part",
	"chapter",
	"section",
	"subsection",
	"subsubsection",
	"paragraph",
	"subparagraph",
}

// BracketedList returns the first balanced square bracket span found in
// text, including the brackets.  Language model responses wrap list answers
// in brackets surrounded by prose, this isolates the list for parsing.  An
// empty slice is returned when no balanced span exists.
func BracketedList(text string) []string {

	var listString strings.Builder
	stack := 0

	result := make([]string, 0, 1)

	for _, s := range text {
		if s == '[' {
			stack++
		}

		if stack > 0 {
			listString.WriteRune(s)
		}

		if s == ']' {
			stack--

			if stack == 0 {
				result = append(result, listString.String())
				break
			}
		}
	}

	return result
}

// LatexTitles scans a LaTeX document for sectioning commands and returns
// the matched command names in command search order
func LatexTitles(latex string) ([]string, error) {

	titles := make([]string, 0)

	for _, command := range latexCommands {

		pattern := fmt.Sprintf(`\\(%s)\{(.*?)\}`, command)
		re, err := regexp2.Compile(pattern, regexp2.None)

		if err != nil {
			return nil, fmt.Errorf("error compiling pattern for %q: %w", command, err)
		}

		m, err := re.FindStringMatch(latex)

		for m != nil && err == nil {

			if g := m.GroupByNumber(1); g != nil {
				titles = append(titles, g.String())
			}

			m, err = re.FindNextMatch(m)
		}

		if err != nil {
			return nil, fmt.Errorf("error matching pattern for %q: %w", command, err)
		}
	}

	return titles, nil
}

// LongestConsecutiveRun finds the longest run of consecutive increasing
// integers in nums and returns the first and last value of the run.  Ties
// keep the earliest run.  An empty input returns (-1, -1).
func LongestConsecutiveRun(nums []int) (start, end int) {

	if len(nums) == 0 {
		return -1, -1
	}

	maxStart := nums[0]
	maxEnd := nums[0]
	currentStart := nums[0]
	maxLength := 1
	currentLength := 1

	for i := 1; i < len(nums); i++ {

		if nums[i] == nums[i-1]+1 {
			currentLength++

			if currentLength > maxLength {
				maxLength = currentLength
				maxStart = currentStart
				maxEnd = nums[i]
			}
		} else {
			currentStart = nums[i]
			currentLength = 1
		}
	}

	return maxStart, maxEnd
}
