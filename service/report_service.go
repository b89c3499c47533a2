package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	model "github.com/alceccentric/anilist-taste/model"
	util "github.com/alceccentric/anilist-taste/util"
)

const banner = `This tool queries an Anilist profile and calculates a global average score.
    - score <= 0.99 indicates contrarian taste.
    - score = 1.0 indicates completely average taste.
    - score >= 1.1 indicates contrarian taste.
`

// ReportService persists scored lists as CSV files and prints the per-list
// summary lines. Summary output is product output and goes to the console
// writer, not the logger.
type ReportService struct {
	outDir  string
	console io.Writer
}

func NewReportService(outDir string) *ReportService {
	return NewReportServiceFor(outDir, os.Stdout)
}

func NewReportServiceFor(outDir string, console io.Writer) *ReportService {
	return &ReportService{
		outDir:  outDir,
		console: console,
	}
}

func (svc *ReportService) CsvPath(username string, kind model.MediaKind, listType string) string {
	return filepath.Join(svc.outDir, fmt.Sprintf(util.CsvFileNameFormat, kind, listType, username))
}

// WriteCsv creates or overwrites the list's report file and returns its path.
func (svc *ReportService) WriteCsv(list model.ScoredList, username string, kind model.MediaKind) (string, error) {
	path := svc.CsvPath(username, kind, list.ListType)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create file at %s (%w)", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(util.CsvHeader); err != nil {
		return "", fmt.Errorf("unable to write header to %s (%w)", path, err)
	}
	for _, row := range list.ReportRows() {
		record := []string{
			row.ListType,
			strconv.FormatInt(row.AnilistID, 10),
			strconv.FormatInt(row.UserScore, 10),
			strconv.FormatInt(row.GlobalAvgScore, 10),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("unable to write row to %s (%w)", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("unable to save file to %s (%w)", path, err)
	}
	return path, nil
}

func (svc *ReportService) PrintBanner() {
	fmt.Fprint(svc.console, banner)
}

// PrintSummary reports one list's taste ratio. An undefined ratio (zero
// global score total) is called out explicitly instead of being printed as a
// bare number.
func (svc *ReportService) PrintSummary(summary model.TasteSummary) {
	if math.IsNaN(summary.Ratio) {
		fmt.Fprintf(svc.console, "Average-ness score for '%s' series: undefined (no global scores)\n\n", summary.ListType)
		return
	}
	fmt.Fprintf(svc.console, "Average-ness score for '%s' series: %v\n\n", summary.ListType, summary.Ratio)
}
