package gantt

import (
	"sort"

	"ganttview/internal/model"
)

// DefaultPalette mirrors the Pastel2 colormap the tool has always used for
// chart boxes. Order matters: labels are assigned by sorted position.
var DefaultPalette = []model.Color{
	"#b3e2cd",
	"#fdcdac",
	"#cbd5e8",
	"#f4cae4",
	"#e6f5c9",
	"#fff2ae",
	"#f1e2cc",
	"#cccccc",
}

// AssignColors maps each distinct label to a palette color. The mapping is a
// pure function of the label set: labels are deduplicated and sorted, then
// colors are taken from the palette in order, cycling when there are more
// labels than palette entries. Two labels sharing a color is accepted.
func AssignColors(labels []string) map[string]model.Color {
	return AssignPalette(labels, DefaultPalette)
}

// AssignPalette is AssignColors with a caller-supplied palette, for palettes
// overridden in the options file.
func AssignPalette(labels []string, palette []model.Color) map[string]model.Color {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	uniq := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			uniq = append(uniq, l)
		}
	}
	sort.Strings(uniq)

	out := make(map[string]model.Color, len(uniq))
	for i, l := range uniq {
		out[l] = palette[i%len(palette)]
	}
	return out
}
