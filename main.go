package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"reactive-breakpoints/app"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/config"
	"reactive-breakpoints/log"
	"reactive-breakpoints/observer"
	"reactive-breakpoints/viewport"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	version        = "0.3.0"
	thresholdsFlag string
	delayFlag      int
	rootCmd        = &cobra.Command{
		Use:   "breakpoints",
		Short: "Breakpoints - Watch the terminal move through xs, sm, md, lg, xl and xxl.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()
			log.InitDebug()
			defer log.CloseDebug()

			cfg := config.LoadConfig()
			// Delay flag overrides config
			if delayFlag > 0 {
				cfg.ResizeDelayMs = delayFlag
			}

			return app.Run(ctx, cfg)
		},
	}

	classifyCmd = &cobra.Command{
		Use:   "classify WIDTH HEIGHT",
		Short: "Print the breakpoint state for a viewport size as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			height, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid height %q: %w", args[1], err)
			}

			// Thresholds flag overrides config
			thresholds := config.LoadConfig().Thresholds
			if thresholdsFlag != "" {
				thresholds, err = parseThresholds(thresholdsFlag)
				if err != nil {
					return err
				}
			}

			state := classify(thresholds, width, height)
			out, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print a line every time the terminal crosses a breakpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()
			log.InitDebug()
			defer log.CloseDebug()

			cfg := config.LoadConfig()
			if delayFlag > 0 {
				cfg.ResizeDelayMs = delayFlag
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			bp := breakpoint.New(&cfg.TerminalThresholds)
			obs := observer.New(bp)
			defer obs.Close()

			driver := viewport.NewDriver(bp, viewport.NewTerminal(os.Stdout), cfg.ResizeDelay())
			if !driver.Refresh() {
				return fmt.Errorf("stdout is not a terminal")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatChange(bp.State()))
			unwatch := obs.WatchFunc(func(state breakpoint.State) {
				fmt.Fprintln(out, formatChange(state))
			})
			defer unwatch()

			if err := driver.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			if err := cfg.Validate(); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of breakpoints",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("breakpoints version %s\n", version)
		},
	}
)

// classify runs a one-off breakpoint over a single size.
func classify(thresholds breakpoint.Threshold, width, height float64) breakpoint.State {
	bp := breakpoint.New(&thresholds)
	bp.Update(width, height)
	return bp.State()
}

// parseThresholds reads six comma separated boundaries, xs first.
func parseThresholds(s string) (breakpoint.Threshold, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(breakpoint.Names) {
		return breakpoint.Threshold{}, fmt.Errorf("expected %d thresholds, got %d", len(breakpoint.Names), len(parts))
	}

	var values [len(breakpoint.Names)]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return breakpoint.Threshold{}, fmt.Errorf("invalid %s threshold %q: %w", breakpoint.Names[i], p, err)
		}
		values[i] = v
	}

	t := breakpoint.Threshold{
		XS:  values[0],
		SM:  values[1],
		MD:  values[2],
		LG:  values[3],
		XL:  values[4],
		XXL: values[5],
	}
	if !t.Ordered() {
		log.WarningLog.Printf("thresholds are not in ascending order: %s", s)
	}
	return t, nil
}

func formatChange(state breakpoint.State) string {
	return fmt.Sprintf("%s  %-3s  %gx%g",
		time.Now().Format("15:04:05"), state.Name, state.Width, state.Height)
}

func init() {
	classifyCmd.Flags().StringVarP(&thresholdsFlag, "thresholds", "t", "",
		"Comma separated boundaries for xs,sm,md,lg,xl,xxl (overrides the thresholds in config)")
	rootCmd.PersistentFlags().IntVarP(&delayFlag, "delay", "d", 0,
		"Milliseconds to wait for resizing to settle (overrides config)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
