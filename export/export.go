// Package export serializes close-approach query results to CSV and JSON.
//
// Both writers consume a lazy approach sequence, so exporting a limited
// query never materializes more than it writes. Approaches must be linked:
// the output includes fields of the referenced body.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/neogo/model"
)

// csvHeader is the column set shared by both output formats.
var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes the approaches as CSV rows. An unnamed body produces an
// empty name cell and an unknown diameter an empty diameter cell.
func WriteCSV(w io.Writer, approaches iter.Seq[*model.Approach]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for a := range approaches {
		diameter := ""
		if a.Body.HasDiameter() {
			diameter = strconv.FormatFloat(a.Body.Diameter, 'f', -1, 64)
		}
		row := []string{
			a.TimeString(),
			strconv.FormatFloat(a.Distance, 'f', -1, 64),
			strconv.FormatFloat(a.Velocity, 'f', -1, 64),
			a.Body.Designation,
			a.Body.Name,
			diameter,
			strconv.FormatBool(a.Body.Hazardous),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonApproach is the wire shape of one serialized approach.
type jsonApproach struct {
	DatetimeUTC string   `json:"datetime_utc"`
	DistanceAU  float64  `json:"distance_au"`
	VelocityKmS float64  `json:"velocity_km_s"`
	NEO         jsonBody `json:"neo"`
}

type jsonBody struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKm  *float64 `json:"diameter_km"` // null when unknown; JSON has no NaN
	Hazardous   bool     `json:"potentially_hazardous"`
}

// WriteJSON writes the approaches as a JSON array of objects.
func WriteJSON(w io.Writer, approaches iter.Seq[*model.Approach]) error {
	out := []jsonApproach{}
	for a := range approaches {
		var diameter *float64
		if a.Body.HasDiameter() {
			d := a.Body.Diameter
			diameter = &d
		}
		out = append(out, jsonApproach{
			DatetimeUTC: a.TimeString(),
			DistanceAU:  a.Distance,
			VelocityKmS: a.Velocity,
			NEO: jsonBody{
				Designation: a.Body.Designation,
				Name:        a.Body.Name,
				DiameterKm:  diameter,
				Hazardous:   a.Body.Hazardous,
			},
		})
	}

	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}
