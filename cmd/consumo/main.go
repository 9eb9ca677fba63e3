package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarques/consumo/pkg/measure"
)

var pretty bool

type opts struct {
	// csv shape
	delimiter  string
	timeCol    string
	powerCol   string
	voltageCol string
	currentCol string
	percentCol string
	timeFormat string
	powerScale float64

	// outputs
	csvPath  string
	jsonPath string
	htmlPath string
}

// fileReport is the export view of one result (JSON/CSV/HTML outputs).
type fileReport struct {
	File      string  `json:"file"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	DurationH float64 `json:"duration_hours"`
	Samples   int     `json:"samples"`
	Skipped   int     `json:"skipped_rows"`
	EnergyWh  float64 `json:"energy_wh"`
	EnergyKWh float64 `json:"energy_kwh"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "consumo [CSV|DIR]...",
		Short: "Energy consumption estimation from CSV measurement logs",
		Long: `The consumo tool reads timestamped power readings from CSV files and
estimates total energy consumption by trapezoidal integration of power
over time, reporting watt-hours and kilowatt-hours per file and in total.

Power can come from a direct power column, from voltage and current
columns (pass an empty --power-column), or from a percent-of-full-scale
column combined with --power-scale.

Examples:
  consumo readings.csv
  consumo --time-column ts --power-column watts logs/
  consumo --power-column "" --voltage-column v --current-column i day1.csv day2.csv
  consumo --power-column "" --percent-column load --power-scale 750 rack.csv
  consumo --time-format "02/01/2006 15:04:05" --delimiter ";" export.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().BoolVar(&pretty, "pretty", false, "format per-file results as a table instead of summary blocks")
	root.Flags().StringVar(&o.delimiter, "delimiter", ",", "field delimiter used in the input files")
	root.Flags().StringVar(&o.timeCol, "time-column", "timestamp", "name of the column with the instant of each reading")
	root.Flags().StringVar(&o.powerCol, "power-column", "power", "name of the column with power in watts (empty to use voltage/current or percent)")
	root.Flags().StringVar(&o.voltageCol, "voltage-column", "", "name of the column with voltage in volts")
	root.Flags().StringVar(&o.currentCol, "current-column", "", "name of the column with current in amperes")
	root.Flags().StringVar(&o.percentCol, "percent-column", "", "name of the column with load as a percentage of full scale")
	root.Flags().StringVar(&o.timeFormat, "time-format", "", "Go reference layout for timestamps (default: ISO 8601)")
	root.Flags().Float64Var(&o.powerScale, "power-scale", 1.0, "multiplier applied to computed watts (full-scale watts in percent mode)")

	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-file results to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-file results to JSON file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write per-file results and totals to HTML file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	cfg, err := buildConfig(o)
	if err != nil {
		return err
	}
	if _, err := cfg.Resolve(); err != nil {
		return err
	}

	paths, problems := measure.ExpandInputs(args)
	for _, p := range problems {
		slog.Warn("input not usable", "err", p)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files to process")
	}

	var results []measure.Result
	for _, path := range paths {
		data, err := measure.ReadFile(path, cfg)
		if err != nil {
			slog.Warn("skipping file", "file", path, "err", err)
			continue
		}
		for _, skip := range data.Skipped {
			slog.Warn("skipped row", "file", path, "row", skip.Line, "err", skip.Err)
		}
		results = append(results, measure.Summarize(data))
	}
	if len(results) == 0 {
		return fmt.Errorf("none of %d input file(s) could be processed", len(paths))
	}

	if pretty {
		printTable(results)
	} else {
		for _, r := range results {
			printBlock(r)
		}
	}

	total := measure.Consolidate(results)
	if len(results) > 1 {
		printTotal(total, len(results))
	}

	reports := make([]fileReport, 0, len(results))
	for _, r := range results {
		reports = append(reports, toReport(r))
	}
	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, reports); err != nil {
			slog.Error("write csv", "err", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, reports); err != nil {
			slog.Error("write json", "err", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeHTML(o.htmlPath, reports, toReport(total)); err != nil {
			slog.Error("write html", "err", err)
		}
	}

	return nil
}

func buildConfig(o opts) (*measure.Config, error) {
	runes := []rune(o.delimiter)
	if len(runes) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", o.delimiter)
	}
	cfg := measure.DefaultConfig()
	cfg.Delimiter = runes[0]
	cfg.TimeColumn = strings.TrimSpace(o.timeCol)
	cfg.PowerColumn = strings.TrimSpace(o.powerCol)
	cfg.VoltageColumn = strings.TrimSpace(o.voltageCol)
	cfg.CurrentColumn = strings.TrimSpace(o.currentCol)
	cfg.PercentColumn = strings.TrimSpace(o.percentCol)
	cfg.TimeFormat = o.timeFormat
	cfg.PowerScale = o.powerScale
	return cfg, nil
}

func toReport(r measure.Result) fileReport {
	return fileReport{
		File:      r.Path,
		Start:     fmtTime(r.Start),
		End:       fmtTime(r.End),
		DurationH: r.DurationHours(),
		Samples:   r.Samples,
		Skipped:   r.Skipped,
		EnergyWh:  r.Energy.Wh(),
		EnergyKWh: r.Energy.KWh(),
	}
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func printBlock(r measure.Result) {
	fmt.Printf("File: %s\n", r.Path)
	if r.Samples == 0 {
		fmt.Printf("  No valid samples (%d rows skipped)\n\n", r.Skipped)
		return
	}
	fmt.Printf("  Start:    %s\n", r.Start.Format("2006-01-02 15:04:05"))
	fmt.Printf("  End:      %s\n", r.End.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Duration: %.2f h\n", r.DurationHours())
	fmt.Printf("  Samples:  %d", r.Samples)
	if r.Skipped > 0 {
		fmt.Printf(" (%d rows skipped)", r.Skipped)
	}
	fmt.Println()
	fmt.Printf("  Energy:   %.2f Wh (%.4f kWh)\n\n", r.Energy.Wh(), r.Energy.KWh())
}

func printTable(results []measure.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTART\tEND\tDURATION (h)\tSAMPLES\tSKIPPED\tENERGY (Wh)\tENERGY (kWh)")
	fmt.Fprintln(tw, "----\t-----\t---\t------------\t-------\t-------\t-----------\t------------")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\t%d\t%.2f\t%.4f\n",
			r.Path, fmtTime(r.Start), fmtTime(r.End), r.DurationHours(),
			r.Samples, r.Skipped, r.Energy.Wh(), r.Energy.KWh(),
		)
	}
	tw.Flush()
	fmt.Println()
}

func printTotal(total measure.Result, files int) {
	fmt.Printf("Total (%d files):\n", files)
	fmt.Printf("  Span:     %s .. %s\n",
		total.Start.Format("2006-01-02 15:04:05"), total.End.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Samples:  %d", total.Samples)
	if total.Skipped > 0 {
		fmt.Printf(" (%d rows skipped)", total.Skipped)
	}
	fmt.Println()
	fmt.Printf("  Energy:   %.2f Wh (%.4f kWh)\n", total.Energy.Wh(), total.Energy.KWh())
	fmt.Printf("  That is:  %s\n", total.Energy.Humanized())
}

func writeCSV(path string, reports []fileReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"file", "start", "end", "duration_hours", "samples", "skipped_rows", "energy_wh", "energy_kwh",
	}); err != nil {
		return err
	}
	for _, r := range reports {
		if err := w.Write([]string{
			r.File, r.Start, r.End,
			fmtFloat(r.DurationH),
			strconv.Itoa(r.Samples),
			strconv.Itoa(r.Skipped),
			fmtFloat(r.EnergyWh),
			fmtFloat(r.EnergyKWh),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func writeJSON(path string, reports []fileReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeHTML(path string, reports []fileReport, total fileReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		Reports []fileReport
		Total   fileReport
		Many    bool
	}{Reports: reports, Total: total, Many: len(reports) > 1}

	return tpl.Execute(f, data)
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Consumo Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
</style>

<h1>Consumo Report</h1>

<p class="small">
Files: {{len .Reports}} &nbsp;|&nbsp;
Samples: {{.Total.Samples}} &nbsp;|&nbsp;
Energy: {{printf "%.2f" .Total.EnergyWh}} Wh ({{printf "%.4f" .Total.EnergyKWh}} kWh)
</p>

<h2>Per file</h2>
<table>
<thead>
<tr>
<th>file</th><th>start</th><th>end</th><th>duration (h)</th>
<th>samples</th><th>skipped</th><th>Wh</th><th>kWh</th>
</tr>
</thead>
<tbody>
{{range .Reports}}
<tr>
<td>{{.File}}</td>
<td>{{.Start}}</td>
<td>{{.End}}</td>
<td>{{printf "%.2f" .DurationH}}</td>
<td>{{.Samples}}</td>
<td>{{.Skipped}}</td>
<td>{{printf "%.2f" .EnergyWh}}</td>
<td>{{printf "%.4f" .EnergyKWh}}</td>
</tr>
{{end}}
</tbody>
</table>

{{if .Many}}
<h2>Total</h2>
<ul>
<li>Span: {{.Total.Start}} .. {{.Total.End}}</li>
<li>Samples: {{.Total.Samples}} ({{.Total.Skipped}} skipped)</li>
<li>Energy: {{printf "%.2f" .Total.EnergyWh}} Wh ({{printf "%.4f" .Total.EnergyKWh}} kWh)</li>
</ul>
{{end}}
</html>`))
