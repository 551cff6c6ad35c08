package pdf

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

var csvHeader = []string{
	"File Name",
	"Original Size (MB)",
	"Compressed Size (MB)",
	"Size Reduction (%)",
	"Time Taken (seconds)",
}

// AppendCSVReport appends one row per compressed (or simulated) result to
// reportFile, writing the header only when the file does not exist yet so
// repeated runs accumulate into a single report.
func AppendCSVReport(reportFile string, results []*CompressResult) error {
	rows := reportRows(results)
	if len(rows) == 0 {
		return nil
	}

	writeHeader := false
	if _, err := os.Stat(reportFile); errors.Is(err, fs.ErrNotExist) {
		writeHeader = true
	}

	f, err := os.OpenFile(reportFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV report: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// reportRows converts compressed and dry-run results into CSV row values.
// Skipped and failed files do not appear in reports.
func reportRows(results []*CompressResult) [][]string {
	var rows [][]string
	for _, r := range results {
		if !r.WasCompressed && !r.DryRun {
			continue
		}
		rows = append(rows, []string{
			filepath.Base(r.Path),
			fmt.Sprintf("%.2f", ToMB(r.OriginalSize)),
			fmt.Sprintf("%.2f", ToMB(r.NewSize)),
			fmt.Sprintf("%.2f", r.SavingsPercent*100),
			fmt.Sprintf("%.2f", r.Duration.Seconds()),
		})
	}
	return rows
}

var htmlReportTemplate = template.Must(template.New("report").Parse(`<html>
<head>
    <title>PDF Compression Report</title>
    <style>
        table { width: 100%; border-collapse: collapse; }
        table, th, td { border: 1px solid black; }
        th, td { padding: 8px; text-align: left; }
    </style>
</head>
<body>
    <h2>PDF Compression Report</h2>
    <table>
        <tr>
            <th>File Name</th>
            <th>File Location</th>
            <th>Original Size (MB)</th>
            <th>Compressed Size (MB)</th>
            <th>Size Reduction (%)</th>
            <th>Time Taken (seconds)</th>
            <th>Compressed PDF</th>
        </tr>
{{- range .}}
        <tr>
            <td>{{.Name}}</td>
            <td>{{.Location}}</td>
            <td>{{.OriginalMB}}</td>
            <td>{{.CompressedMB}}</td>
            <td>{{.ReductionPercent}}</td>
            <td>{{.Seconds}}</td>
            <td><a href="{{.Link}}">Download</a></td>
        </tr>
{{- end}}
    </table>
</body>
</html>
`))

type htmlReportRow struct {
	Name             string
	Location         string
	OriginalMB       string
	CompressedMB     string
	ReductionPercent string
	Seconds          string
	Link             string
}

// WriteHTMLReport writes an HTML table of compressed and dry-run results
func WriteHTMLReport(reportFile string, results []*CompressResult) error {
	var rows []htmlReportRow
	for _, r := range results {
		if !r.WasCompressed && !r.DryRun {
			continue
		}
		absPath, err := filepath.Abs(r.Path)
		if err != nil {
			absPath = r.Path
		}
		rows = append(rows, htmlReportRow{
			Name:             filepath.Base(r.Path),
			Location:         r.Path,
			OriginalMB:       fmt.Sprintf("%.2f", ToMB(r.OriginalSize)),
			CompressedMB:     fmt.Sprintf("%.2f", ToMB(r.NewSize)),
			ReductionPercent: fmt.Sprintf("%.2f", r.SavingsPercent*100),
			Seconds:          fmt.Sprintf("%.2f", r.Duration.Seconds()),
			Link:             "file://" + absPath,
		})
	}

	f, err := os.Create(reportFile)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer func() { _ = f.Close() }()

	return htmlReportTemplate.Execute(f, rows)
}
