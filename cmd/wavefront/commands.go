// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefront/config"
	"github.com/katalvlaran/wavefront/pupil"
	"github.com/katalvlaran/wavefront/render"
	"github.com/katalvlaran/wavefront/surface"
	"github.com/katalvlaran/wavefront/zernike"
)

// newRootCmd assembles the command tree writing results to out.
func newRootCmd(out io.Writer, logger zerolog.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "wavefront",
		Short:         "Zernike wavefront synthesis and reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events")

	// Subcommands share the root logger so --verbose applies. Errors are
	// returned, not logged; main reports them.
	log := &logger

	root.AddCommand(
		newTermsCmd(),
		newDescribeCmd(log),
		newStatsCmd(log),
		newRenderCmd(log),
	)
	return root
}

func newTermsCmd() *cobra.Command {
	var (
		ordering string
		base     int
	)
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "List the terms of an ordering table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := zernike.ParseOrdering(ordering)
			if err != nil {
				return err
			}
			b := zernike.Base(base)
			if err = b.Validate(); err != nil {
				return err
			}
			tbl, err := zernike.TableFor(o)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range tbl.Terms() {
				fmt.Fprintf(w, "%-4s n=%-2d m=%-3d %s\n", t.Label(b), t.N, t.M, t.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ordering, "ordering", "fringe", "fringe or standard")
	cmd.Flags().IntVar(&base, "base", 1, "index of the first term (0 or 1)")
	return cmd
}

// loadPupil reads a run file and synthesizes its pupil.
func loadPupil(ctx context.Context, path string, logger *zerolog.Logger) (*pupil.Pupil, config.Run, error) {
	run, err := config.Load(path)
	if err != nil {
		return nil, config.Run{}, err
	}
	v, err := run.Vector()
	if err != nil {
		return nil, config.Run{}, fmt.Errorf("%s: %w", path, err)
	}
	opts, err := run.PupilOptions(*logger)
	if err != nil {
		return nil, config.Run{}, fmt.Errorf("%s: %w", path, err)
	}
	p, err := pupil.NewZernike(ctx, v, opts...)
	if err != nil {
		return nil, config.Run{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info().Str("file", path).Str("vector", v.String()).Msg("pupil built")
	return p, run, nil
}

func newDescribeCmd(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "describe RUNFILE",
		Short: "Print the Zernike breakdown of a run file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, run, err := loadPupil(cmd.Context(), args[0], log)
			if err != nil {
				return err
			}
			r, err := p.Describe(run.OrderingValue())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	}
}

func newStatsCmd(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats RUNFILE",
		Short: "Print PV, RMS and mean of a run file's wavefront",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPupil(cmd.Context(), args[0], log)
			if err != nil {
				return err
			}
			st, err := surface.Summarize(p.Phase())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "pv      %.6f %s\n", st.PV, p.Unit)
			fmt.Fprintf(w, "rms     %.6f %s\n", st.RMS, p.Unit)
			fmt.Fprintf(w, "mean    %.6f %s\n", st.Mean, p.Unit)
			fmt.Fprintf(w, "samples %d of %d\n", st.Defined, p.Phase().Len())
			return nil
		},
	}
}

func newRenderCmd(log *zerolog.Logger) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render RUNFILE",
		Short: "Render a run file's wavefront as a heat map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPupil(cmd.Context(), args[0], log)
			if err != nil {
				return err
			}
			plt, err := render.Pupil(p)
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err = render.Save(plt, output, render.DefaultWidth, render.DefaultHeight); err != nil {
				return err
			}
			log.Info().Str("output", output).Msg("rendered")
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "image path; extension selects png, svg or pdf")
	return cmd
}
