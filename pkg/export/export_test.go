package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"firedispatch/core/geo"
	"firedispatch/core/model"
	"firedispatch/core/planner"
)

func sampleResult() *planner.Result {
	site := &model.Site{
		ID:        "building-1",
		Coords:    geo.Point{Lon: -118.15, Lat: 34.15},
		Category:  model.CategoryCommercial,
		OnFire:    true,
		Severity:  model.SeverityHigh,
		Intensity: 0.8,
		Priority:  412.5,
	}
	agents := []*model.Agent{
		{
			ID:     "drone-0",
			Kind:   model.KindAerial,
			Coords: geo.Point{Lon: -118.1445, Lat: 34.1478},
			Speed:  15,
			Site:   site,
			Route: &model.Route{
				Geometry:        []geo.Point{{Lon: -118.1445, Lat: 34.1478}, {Lon: -118.15, Lat: 34.15}},
				DistanceMeters:  560,
				DurationSeconds: 37.3,
				Kind:            model.RouteStraightLine,
			},
		},
		{ID: "truck-0", Kind: model.KindGroundVehicle, Speed: 12},
	}
	return &planner.Result{
		CycleID:  "test-cycle",
		Time:     time.Now(),
		Fires:    1,
		Assigned: 1,
		Agents:   agents,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded planner.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded.CycleID != "test-cycle" || len(decoded.Agents) != 2 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
	if decoded.Agents[0].Site == nil || decoded.Agents[0].Site.ID != "building-1" {
		t.Fatal("nested site missing from JSON tree")
	}
	if decoded.Agents[0].Route == nil || decoded.Agents[0].Route.Kind != model.RouteStraightLine {
		t.Fatal("nested route missing from JSON tree")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	if err := WriteCSV(&buf, res.Agents); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "drone-0" || rows[1][2] != "building-1" || rows[1][5] != "straight-line" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	// Unassigned agents keep empty assignment columns.
	if rows[2][0] != "truck-0" || rows[2][2] != "" || rows[2][5] != "" {
		t.Fatalf("unexpected row: %v", rows[2])
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	if err := WriteFile(path, "json", sampleResult()); err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Contains(data, []byte("test-cycle")) {
		t.Fatal("written file missing cycle id")
	}
}
