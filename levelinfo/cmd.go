package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/config"
	"github.com/gorustyt/mftlevel/level"
	"github.com/gorustyt/mftlevel/logger"
	"github.com/gorustyt/mftlevel/snapshot"
)

type app struct {
	configPath string
	metaOnly   bool
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "levelinfo",
		Short:        "Inspect panoramic level files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVar(&a.metaOnly, "meta", false, "skip image loading")

	root.AddCommand(a.infoCmd(), a.viewsCmd(), a.nearestCmd())
	return root
}

func (a *app) setup() error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	log, err := logger.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) load(path string) (*level.Level, *level.LoadReport, error) {
	opts, err := a.cfg.LevelOptions()
	if err != nil {
		return nil, nil, err
	}
	if a.metaOnly {
		opts.Kinds = []level.ImageKind{}
	}
	opts.Logger = a.log
	l := level.New(opts)
	report, err := l.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return l, report, nil
}

func (a *app) infoCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "info <level>",
		Short: "Print a JSON summary of a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			s, err := snapshot.Build(l)
			if err != nil {
				return err
			}
			data, err := snapshot.JSON(s, pretty)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the output")
	return cmd
}

func (a *app) viewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views <level>",
		Short: "List viewpoints and their load status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, report, err := a.load(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSIZE\tADJACENT\tSTATUS")
			for _, v := range l.Views() {
				w, h := v.Resolution()
				status := "ok"
				if report.Failed(v.ID()) {
					status = "failed"
				}
				fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%v\t%s\n", v.ID(), v.Name(), w, h, v.AdjacentViews(), status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return report.Err()
		},
	}
}

func (a *app) nearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <level> <x> <y> <z>",
		Short: "Resolve the viewpoint nearest a world position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p common.Vec3
			for i, s := range args[1:] {
				f, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return fmt.Errorf("coordinate %d: %w", i, err)
				}
				p[i] = float32(f)
			}
			a.metaOnly = true
			l, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			hit, err := l.NearestView(p)
			if err != nil {
				return err
			}
			v, err := l.View(hit.Owner)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s triangle=%d point=(%g, %g, %g) dist=%g\n",
				hit.Owner, v.Name(), hit.Triangle, hit.Point[0], hit.Point[1], hit.Point[2],
				common.Vdist(p, hit.Point))
			return err
		},
	}
}
