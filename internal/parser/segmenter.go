// Package parser turns raw recipe text into normalized model.Recipe records.
//
// Segmentation prefers explicit "Titel:" header lines; when none exist the
// input is split at runs of blank lines. Each block is then handed to the
// structured parser, which defers to the fallback parser when it cannot
// recognize enough of the canonical header vocabulary.
package parser

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// titleLineRe matches an explicit title header carrying an inline value,
// e.g. "Titel: Chili con Carne".
var titleLineRe = regexp.MustCompile(`(?i)^(?:titel|title)\s*:\s*(.+)$`)

// blankRunThreshold is the number of consecutive blank lines that separate
// two recipes when no title headers are present. Blank lines inside a recipe
// (between sections) are common, so a single one is not a boundary.
const blankRunThreshold = 2

// Segment splits raw input text into per-recipe blocks, preserving source
// order. Empty or whitespace-only input yields an empty slice; trailing blank
// material never produces a block.
func Segment(text string) []model.RecipeBlock {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var titleIdx []int
	for i, line := range lines {
		if titleLineRe.MatchString(strings.TrimSpace(line)) {
			titleIdx = append(titleIdx, i)
		}
	}

	if len(titleIdx) > 0 {
		return segmentByTitles(lines, titleIdx)
	}
	return segmentByBlankRuns(lines)
}

func segmentByTitles(lines []string, titleIdx []int) []model.RecipeBlock {
	blocks := make([]model.RecipeBlock, 0, len(titleIdx))
	for i, start := range titleIdx {
		end := len(lines)
		if i+1 < len(titleIdx) {
			end = titleIdx[i+1]
		}
		if b := makeBlock(lines, start, end); !b.IsEmpty() {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func segmentByBlankRuns(lines []string) []model.RecipeBlock {
	var blocks []model.RecipeBlock

	start := 0
	blanks := 0
	inBlock := false
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if !inBlock {
			start = i
			inBlock = true
		} else if blanks >= blankRunThreshold {
			if b := makeBlock(lines, start, i); !b.IsEmpty() {
				blocks = append(blocks, b)
			}
			start = i
		}
		blanks = 0
	}
	if inBlock {
		if b := makeBlock(lines, start, len(lines)); !b.IsEmpty() {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// makeBlock trims leading and trailing blank lines from lines[start:end]. An
// all-blank span yields an empty block, which callers drop.
func makeBlock(lines []string, start, end int) model.RecipeBlock {
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start >= end {
		return model.RecipeBlock{}
	}

	content := make([]string, end-start)
	for i, line := range lines[start:end] {
		content[i] = strings.TrimRight(line, " \t")
	}
	return model.RecipeBlock{Lines: content, StartLine: start + 1}
}
