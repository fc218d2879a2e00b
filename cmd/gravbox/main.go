package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/gui"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/storage"
	"github.com/san-kum/gravbox/internal/viz"
	"github.com/san-kum/gravbox/internal/world"
)

var (
	dataDir    string
	frames     int
	seed       int64
	frameRate  int
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravbox",
		Short: "bouncing-squares gravity animation",
		// Default to the windowed animation when no command is given.
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(context.Background())
		},
	}
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(context.Background())
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the animation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "record a headless run",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body heights of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recording to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a recording to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	d := sim.New(world.Default(), world.ScreenWidth, world.ScreenHeight)
	return viz.Run(d, frameRate)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("frames") {
			frames = cfg.Frames
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
		if !cmd.Flags().Changed("data") {
			dataDir = cfg.DataDir
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	d := sim.NewWithRand(world.Default(), world.ScreenWidth, world.ScreenHeight, rand.New(rand.NewSource(seed)))
	rec := sim.NewRecorder(frames)
	d.AddObserver(rec)

	start := time.Now()
	if err := d.Run(context.Background(), frames); err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(seed, world.NumBodies, rec.Frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed %d frames in %v\n", frames, elapsed)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tBODIES\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Bodies,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(rows))

	// One chart per body: vertical position over time, inverted so that
	// up on the chart is up on the screen.
	for b := 0; b < meta.Bodies; b++ {
		col := b*4 + 1
		if col >= len(rows[0]) {
			break
		}
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = float64(world.ScreenHeight) - rows[i][col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d height", b)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rows, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"frame"}
	for i := 0; i < len(rows[0])/4; i++ {
		header = append(header,
			fmt.Sprintf("b%d_x", i),
			fmt.Sprintf("b%d_y", i),
			fmt.Sprintf("b%d_vx", i),
			fmt.Sprintf("b%d_vy", i),
		)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range rows {
		out := []string{strconv.Itoa(i + 1)}
		for _, val := range row {
			out = append(out, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}

	return nil
}
