package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	readmark "github.com/DanielOaks/readmark"
	"github.com/DanielOaks/readmark/internal/analyze"
	"github.com/DanielOaks/readmark/internal/formula"
)

// scoreRow pairs a file path with its document-level result.
type scoreRow struct {
	Path   string
	Result analyze.Result
}

// writeScores ranks rows hardest first and renders them in the
// requested format. top limits output to the N hardest files when
// positive.
func writeScores(rows []scoreRow, f formula.Formula, format string, top int) int {
	sortHardestFirst(rows, f)

	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}

	switch format {
	case "text":
		if err := writeScoreTable(os.Stdout, rows, f); err != nil {
			fmt.Fprintf(os.Stderr, "readmark: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeScoreJSON(os.Stdout, rows, f); err != nil {
			fmt.Fprintf(os.Stderr, "readmark: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "readmark: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	return 0
}

// sortHardestFirst orders rows by difficulty under the formula's
// direction. NaN scores (too little text to score) sort last.
func sortHardestFirst(rows []scoreRow, f formula.Formula) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i].Result.Score, rows[j].Result.Score
		if math.IsNaN(si) != math.IsNaN(sj) {
			return math.IsNaN(sj)
		}
		if !math.IsNaN(si) && si != sj {
			if f.LowerIsEasier() {
				return si > sj
			}
			return si < sj
		}
		return rows[i].Path < rows[j].Path
	})
}

func writeScoreTable(w io.Writer, rows []scoreRow, f formula.Formula) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "FILE\tSCORE\tWORDS\tSENTENCES\n")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			row.Path, formatScore(row.Result.Score),
			row.Result.Words, row.Result.Sentences)
	}
	fmt.Fprintf(tw, "\nFormula: %s\n", f)
	return tw.Flush()
}

func writeScoreJSON(w io.Writer, rows []scoreRow, f formula.Formula) error {
	type jsonRow struct {
		File      string  `json:"file"`
		Score     float64 `json:"score"`
		Words     int     `json:"words"`
		Sentences int     `json:"sentences"`
	}
	out := struct {
		Formula string    `json:"formula"`
		Files   []jsonRow `json:"files"`
	}{Formula: f.String(), Files: []jsonRow{}}

	for _, row := range rows {
		score := row.Result.Score
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		out.Files = append(out.Files, jsonRow{
			File:      row.Path,
			Score:     score,
			Words:     row.Result.Words,
			Sentences: row.Result.Sentences,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatScore(score float64) string {
	if math.IsNaN(score) {
		return "-"
	}
	return strconv.FormatFloat(score, 'g', -1, 64)
}

func writeFormulasText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tTHRESHOLD\tDIRECTION\tDESCRIPTION\n")
	for _, info := range readmark.Formulas() {
		direction := "lower is easier"
		if !info.LowerIsEasier {
			direction = "higher is easier"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			info.Name, formatScore(info.DefaultThreshold),
			direction, info.Description)
	}
	return tw.Flush()
}

func writeFormulasJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(readmark.Formulas())
}
