package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/neogo/export"
	"github.com/hupe1980/neogo/filter"
)

// dateLayout is the calendar-date format accepted on the command line.
const dateLayout = "2006-01-02"

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches matching a set of criteria",
	Long: "Query close approaches that match all given criteria. Absent flags " +
		"don't constrain results; --not-hazardous is distinct from leaving the " +
		"hazard flag unconstrained.",
	RunE: runQuery,
}

func init() {
	registerQueryFlags(queryCmd)
	rootCmd.AddCommand(queryCmd)
}

func registerQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "approach occurs on exactly this date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "approach occurs on or after this date")
	cmd.Flags().String("end-date", "", "approach occurs on or before this date")
	cmd.Flags().Float64("min-distance", 0, "minimum approach distance in au")
	cmd.Flags().Float64("max-distance", 0, "maximum approach distance in au")
	cmd.Flags().Float64("min-velocity", 0, "minimum approach velocity in km/s")
	cmd.Flags().Float64("max-velocity", 0, "maximum approach velocity in km/s")
	cmd.Flags().Float64("min-diameter", 0, "minimum object diameter in km")
	cmd.Flags().Float64("max-diameter", 0, "maximum object diameter in km")
	cmd.Flags().Bool("hazardous", false, "only potentially hazardous objects")
	cmd.Flags().Bool("not-hazardous", false, "only objects not marked hazardous")
	cmd.Flags().Int("limit", 10, "maximum number of results (0 = unlimited)")
	cmd.Flags().String("outfile", "", "write results to a .csv or .json file instead of stdout")
}

func runQuery(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	q := store.Query().Criteria(criteria).Limit(limit)

	outfile, _ := cmd.Flags().GetString("outfile")
	if outfile == "" {
		count := 0
		for a := range q.Stream() {
			fmt.Fprintln(cmd.OutOrStdout(), a)
			count++
		}
		if count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matching close approaches found.")
		}
		return nil
	}

	f, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer f.Close()

	switch filepath.Ext(outfile) {
	case ".csv":
		return export.WriteCSV(f, q.Stream())
	case ".json":
		return export.WriteJSON(f, q.Stream())
	default:
		return fmt.Errorf("unsupported output format %q (want .csv or .json)", filepath.Ext(outfile))
	}
}

// criteriaFromFlags translates the query flags into filter criteria,
// touching only flags the user actually set so absent stays absent.
func criteriaFromFlags(cmd *cobra.Command) (filter.Criteria, error) {
	var c filter.Criteria

	dates := map[string]**time.Time{
		"date":       &c.Date,
		"start-date": &c.StartDate,
		"end-date":   &c.EndDate,
	}
	for name, target := range dates {
		if !cmd.Flags().Changed(name) {
			continue
		}
		s, _ := cmd.Flags().GetString(name)
		t, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("--%s: %w", name, err)
		}
		*target = &t
	}

	floats := map[string]**float64{
		"min-distance": &c.DistanceMin,
		"max-distance": &c.DistanceMax,
		"min-velocity": &c.VelocityMin,
		"max-velocity": &c.VelocityMax,
		"min-diameter": &c.DiameterMin,
		"max-diameter": &c.DiameterMax,
	}
	for name, target := range floats {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetFloat64(name)
		*target = &v
	}

	hazardous, _ := cmd.Flags().GetBool("hazardous")
	notHazardous, _ := cmd.Flags().GetBool("not-hazardous")
	if hazardous && notHazardous {
		return filter.Criteria{}, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}
	if hazardous {
		t := true
		c.Hazardous = &t
	}
	if notHazardous {
		f := false
		c.Hazardous = &f
	}

	return c, nil
}
