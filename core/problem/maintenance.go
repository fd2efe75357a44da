package problem

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antennaops/trackcheck/core/interval"
	"github.com/antennaops/trackcheck/core/model"
)

// ReadMaintenance decodes a maintenance schedule from CSV rows of
// antenna,begin,end with optional trailing week and year columns. Week and
// year are grouping metadata only; they are retained on the window but never
// evaluated.
func ReadMaintenance(r io.Reader) ([]model.MaintenanceWindow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, malformedWrap(DocMaintenance, err, "decode")
	}
	var windows []model.MaintenanceWindow
	for i, rec := range records {
		if i == 0 && isMaintenanceHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, malformed(DocMaintenance, "row %d has %d columns, want at least 3", i+1, len(rec))
		}
		res := strings.TrimSpace(rec[0])
		if res == "" {
			return nil, malformed(DocMaintenance, "row %d has an empty resource id", i+1)
		}
		begin, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			return nil, malformedWrap(DocMaintenance, err, "row %d begin", i+1)
		}
		end, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil {
			return nil, malformedWrap(DocMaintenance, err, "row %d end", i+1)
		}
		w := model.MaintenanceWindow{
			Resource: model.ResourceID(res),
			Window:   interval.Interval{Begin: begin, End: end},
		}
		if len(rec) > 3 {
			w.Week, _ = strconv.Atoi(strings.TrimSpace(rec[3]))
		}
		if len(rec) > 4 {
			w.Year, _ = strconv.Atoi(strings.TrimSpace(rec[4]))
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// LoadMaintenanceFile reads and decodes the maintenance schedule at path. A
// missing path is treated as an empty schedule.
func LoadMaintenanceFile(path string) ([]model.MaintenanceWindow, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, malformedWrap(DocMaintenance, err, "open %s", path)
	}
	defer f.Close()
	return ReadMaintenance(f)
}

func isMaintenanceHeader(rec []string) bool {
	if len(rec) < 3 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
	return err != nil
}
