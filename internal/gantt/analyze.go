package gantt

import (
	"io"
	"os"

	"ganttview/internal/model"
)

// Analyze runs the full pipeline over one input stream: parse, validate,
// consolidate (MTS), assign colors. Structural problems abort with an error;
// semantic conflicts come back inside the Analysis as the violation set, with
// the schedule still fully built so the caller can decide what to do.
func Analyze(r io.Reader, mode model.Mode) (*model.Analysis, error) {
	return AnalyzeWithPalette(r, mode, DefaultPalette)
}

// AnalyzeWithPalette is Analyze with a custom color palette.
func AnalyzeWithPalette(r io.Reader, mode model.Mode, palette []model.Color) (*model.Analysis, error) {
	sched, err := ParseSchedule(r, mode)
	if err != nil {
		return nil, err
	}

	a := &model.Analysis{
		Mode:       mode,
		Schedule:   sched,
		Violations: Validate(sched),
		Makespan:   sched.Makespan(),
		Colors:     AssignPalette(sched.Operations(), palette),
	}
	if mode == model.ModeMTS {
		a.Groups = Consolidate(sched)
		a.OrderColors = AssignPalette(sched.Orders(), palette)
	}
	return a, nil
}

// AnalyzeFile opens path and analyzes it. The Source field of the result is
// set for display.
func AnalyzeFile(path string, mode model.Mode, palette []model.Color) (*model.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := AnalyzeWithPalette(f, mode, palette)
	if err != nil {
		return nil, err
	}
	a.Source = path
	return a, nil
}
