package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"waymap/internal/geom"
	"waymap/internal/ingest"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump [source]",
	Short: "Run one load cycle and print the points",
	Long:  "Fetches, parses and validates the source once without the terminal map, then prints the accepted points as GeoJSON or a table. Exits non-zero when the cycle fails.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDumpFormat(dumpFormat); err != nil {
			return err
		}
		src, err := sourceFromArgs(cmd, args)
		if err != nil {
			return err
		}
		out := newOrchestrator(cfg).Run(cmd.Context(), src, nil)
		return writeDump(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, dumpFormat)
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "geojson", "output format: geojson or table")
	rootCmd.AddCommand(dumpCmd)
}

func checkDumpFormat(format string) error {
	switch strings.ToLower(format) {
	case "geojson", "table":
		return nil
	}
	return eris.Errorf("unknown format %q (want geojson or table)", format)
}

func writeDump(w, diag io.Writer, out ingest.Outcome, format string) error {
	if out.State == ingest.StateFailed {
		return eris.Errorf("load %s: %s", out.Source.Location, out.Failure.Reason)
	}
	for _, r := range out.Rejected {
		fmt.Fprintf(diag, "skipped %s\n", r.Error())
	}
	if out.Empty() {
		fmt.Fprintf(diag, "no valid points (%d records, %d rejected)\n", out.Records, len(out.Rejected))
	}

	switch strings.ToLower(format) {
	case "geojson":
		b, err := geom.EncodeGeoJSON(out.Collection)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tLAT\tLON")
		for _, p := range out.Collection.Points {
			fmt.Fprintf(tw, "%s\t%.7f\t%.7f\n", p.Name, p.Lat, p.Lon)
		}
		if e := out.Collection.Extent; e.Valid {
			fmt.Fprintf(tw, "\nEXTENT\t%.7f,%.7f\t%.7f,%.7f\n", e.MinLat, e.MinLon, e.MaxLat, e.MaxLon)
		}
		return tw.Flush()
	}
	return checkDumpFormat(format)
}
