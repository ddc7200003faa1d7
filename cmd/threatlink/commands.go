package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b1s/threatlink-client/internal/heatmap"
)

// newHeatmapCmd fetches and prints the cleaned heatmap points without the TUI
func newHeatmapCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Fetch the current heatmap points",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildServices()
			if err != nil {
				return err
			}
			defer svc.close()

			points, err := svc.backend.Heatmap(cmd.Context())
			if err != nil {
				return err
			}
			if !raw {
				points = heatmap.Sanitize(points, true)
			}

			for _, p := range points {
				category := p.Type
				if category == "" {
					category = "unknown"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\t%.4f\t%.2f\t%s\t%s\n",
					p.Lat, p.Lon, p.Intensity, category, p.Direction)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d points\n", len(points))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print points exactly as the backend returned them")
	return cmd
}

// newCaptureCmd runs the direct photo-upload path from the shell
func newCaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture <file>",
		Short: "Upload a photo to the capture endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildServices()
			if err != nil {
				return err
			}
			defer svc.close()

			if err := svc.backend.UploadCapture(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "photo captured securely")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "threatlink %s\n", version)
		},
	}
}
