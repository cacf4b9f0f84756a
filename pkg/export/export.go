package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"firedispatch/core/model"
	"firedispatch/core/planner"
)

// WriteJSON writes the full cycle result to w in JSON format, the agent tree
// nested with its site and route.
func WriteJSON(w io.Writer, res *planner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes one row per agent with flattened assignment and route
// columns.
func WriteCSV(w io.Writer, agents []*model.Agent) error {
	cw := csv.NewWriter(w)
	header := []string{"agent_id", "kind", "site_id", "severity", "priority", "route_kind", "distance_m", "duration_s"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, a := range agents {
		rec := []string{a.ID, string(a.Kind), "", "", "", "", "", ""}
		if a.Site != nil {
			rec[2] = a.Site.ID
			rec[3] = string(a.Site.Severity)
			rec[4] = strconv.FormatFloat(a.Site.Priority, 'f', -1, 64)
		}
		if a.Route != nil {
			rec[5] = string(a.Route.Kind)
			rec[6] = strconv.FormatFloat(a.Route.DistanceMeters, 'f', -1, 64)
			rec[7] = strconv.FormatFloat(a.Route.DurationSeconds, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile persists the result to path in the given format ("json" or
// "csv").
func WriteFile(path, format string, res *planner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if format == "csv" {
		return WriteCSV(f, res.Agents)
	}
	return WriteJSON(f, res)
}
