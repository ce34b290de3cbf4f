package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"ganttview/internal/config"
	"ganttview/internal/gantt"
	"ganttview/internal/model"
	"ganttview/internal/tui"
	"ganttview/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "ganttview",
		Repository: "ganttview",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/ganttview/ganttview/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ganttview [options] MODE path/to/result.gantt\n\n")
		fmt.Fprintf(os.Stderr, "ganttview parses, validates, and renders .gantt schedule files.\n")
		fmt.Fprintf(os.Stderr, "MODE is MTS (ProcessingUnit_Machine_Order identifiers, stacked\n")
		fmt.Fprintf(os.Stderr, "sub-lanes) or SCH (opaque machine names).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ganttview MTS result.gantt           # interactive viewer\n")
		fmt.Fprintf(os.Stderr, "  ganttview -r SCH result.gantt        # text report to stdout\n")
		fmt.Fprintf(os.Stderr, "  ganttview -r -o r.txt MTS result.gantt\n")
		fmt.Fprintf(os.Stderr, "  ganttview -w MTS result.gantt        # SVG chart + legend over HTTP\n")
		fmt.Fprintf(os.Stderr, "\nA report run exits 1 when the schedule has violations.\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the full analysis as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a text report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include source lines and raw fields in the report")
	webFlag := pflag.BoolP("web", "w", false, "Serve the chart over HTTP with live reload")
	configFlag := pflag.StringP("config", "c", "", "Path to a yaml options file")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest released version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("ganttview version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	args := pflag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected MODE and a .gantt file\n\n")
		pflag.Usage()
		os.Exit(2)
	}

	mode, err := model.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	analysis, err := gantt.AnalyzeFile(args[1], mode, cfg.PaletteColors())
	if err != nil {
		var mErr *model.MalformedRecordError
		if errors.As(err, &mErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", mErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *webFlag {
		runWebMode(cfg, mode, args[1], analysis)
		return
	}

	if *reportFlag {
		runReportMode(analysis, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(analysis)
		return
	}

	// Default: TUI
	runTuiMode(analysis)
}

func runReportMode(analysis *model.Analysis, outputFile string, verbose bool) {
	report := gantt.GenerateReport(analysis, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}

	if len(analysis.Violations) > 0 {
		os.Exit(1)
	}
}

func runJsonMode(analysis *model.Analysis) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(analysis)
}

func runWebMode(cfg config.Config, mode model.Mode, path string, analysis *model.Analysis) {
	srv := web.NewServer(cfg, mode, path, analysis)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(analysis *model.Analysis) {
	m := tui.InitialModel(analysis)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
