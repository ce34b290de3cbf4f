// Package gantt turns .gantt schedule files into a validated, consolidated
// model ready for rendering: parse, resolve keys, group into timelines,
// detect conflicts, stack MTS siblings, and assign colors.
package gantt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ganttview/internal/model"
)

// ParseSchedule reads a .gantt stream and groups the parsed records into
// per-machine timelines. Blank lines, comment/border decoration, and the
// header row are skipped; anything else must be a valid five-field data row
// or the whole run fails with a MalformedRecordError.
func ParseSchedule(r io.Reader, mode model.Mode) (*model.Schedule, error) {
	if mode != model.ModeSCH && mode != model.ModeMTS {
		return nil, &model.InvalidModeError{Value: string(mode)}
	}

	sched := &model.Schedule{Mode: mode}
	index := make(map[model.MachineKey]int) // key -> position in Timelines

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if skipLine(raw) {
			continue
		}

		rec, key, err := parseRecord(raw, lineNo, mode)
		if err != nil {
			return nil, err
		}

		i, ok := index[key]
		if !ok {
			i = len(sched.Timelines)
			index[key] = i
			sched.Timelines = append(sched.Timelines, model.Timeline{Key: key})
		}
		sched.Timelines[i].Records = append(sched.Timelines[i].Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return sched, nil
}

// skipLine recognizes the non-data rows a real .gantt file carries: blank
// lines, '#' comments, pure border decoration, and the column header.
// The rule is deliberately narrow so that a mistyped data row fails loudly
// instead of being dropped.
func skipLine(raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, "#") {
		return true
	}
	if isBorder(line) {
		return true
	}
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "Machine" && fields[1] == "T_begin" {
		return true
	}
	return false
}

// isBorder reports whether the line is made solely of frame glyphs.
func isBorder(line string) bool {
	for _, r := range line {
		switch r {
		case '-', '+', '|', '=', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// parseRecord parses one data row: Machine T_begin T_end Operation Batch_size.
// A trailing (or leading) '|' border column is stripped first, since sample
// files frame data rows on the right.
func parseRecord(raw string, lineNo int, mode model.Mode) (model.TaskRecord, model.MachineKey, error) {
	malformed := func(reason string) (model.TaskRecord, model.MachineKey, error) {
		return model.TaskRecord{}, model.MachineKey{}, &model.MalformedRecordError{
			Line:    lineNo,
			Content: strings.TrimSpace(raw),
			Reason:  reason,
		}
	}

	line := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "|"))
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return malformed(fmt.Sprintf("expected 5 fields, got %d", len(fields)))
	}

	start, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return malformed(fmt.Sprintf("T_begin %q is not a number", fields[1]))
	}
	end, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return malformed(fmt.Sprintf("T_end %q is not a number", fields[2]))
	}
	batch, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return malformed(fmt.Sprintf("Batch_size %q is not a number", fields[4]))
	}
	if start < 0 {
		return malformed(fmt.Sprintf("T_begin %v must not be negative", start))
	}
	if end <= start {
		return malformed(fmt.Sprintf("T_end %v must be greater than T_begin %v", end, start))
	}
	if batch <= 0 {
		return malformed(fmt.Sprintf("Batch_size %v must be positive", batch))
	}

	key, err := ResolveKey(fields[0], mode)
	if err != nil {
		return malformed(err.Error())
	}

	rec := model.TaskRecord{
		RawMachine: fields[0],
		Start:      start,
		End:        end,
		Operation:  fields[3],
		BatchSize:  batch,
		Line:       lineNo,
	}
	return rec, key, nil
}

// ResolveKey interprets a machine field under the given mode. Pure: two
// equal raw fields always resolve to the same key. In MTS mode the field
// must split on '_' into exactly three non-empty components.
func ResolveKey(rawField string, mode model.Mode) (model.MachineKey, error) {
	switch mode {
	case model.ModeSCH:
		return model.MachineKey{Mode: model.ModeSCH, Name: rawField}, nil
	case model.ModeMTS:
		parts := strings.Split(rawField, "_")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return model.MachineKey{}, fmt.Errorf(
				"machine field %q does not match ProcessingUnit_Machine_Order", rawField)
		}
		return model.MachineKey{
			Mode:           model.ModeMTS,
			ProcessingUnit: parts[0],
			Machine:        parts[1],
			Order:          parts[2],
		}, nil
	}
	return model.MachineKey{}, &model.InvalidModeError{Value: string(mode)}
}
