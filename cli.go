package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		dual       bool
		configPath string
		debugPath  string
	)

	cmd := &cobra.Command{
		Use:           "axisdrop",
		Short:         "Drag items onto a coordinate grid in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugPath != "" {
				f, err := tea.LogToFile(debugPath, "axisdrop")
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			config, cfgErr := loadConfig(configPath)
			if dual {
				config.View = ViewDual
			}
			m := newModel(config)
			if cfgErr != nil {
				log.Printf("config: %v", cfgErr)
				m.errorMessage = cfgErr.Error()
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&dual, "dual", false, "start with two independent canvases")
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the rc file")
	cmd.Flags().StringVar(&debugPath, "debug", "", "write a debug log to this file")

	cmd.AddCommand(newExportCmd(&configPath))
	return cmd
}

func newExportCmd(configPath *string) *cobra.Command {
	var (
		format string
		out    string
		title  string
		items  []string
		demo   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a canvas to PNG, SVG or TXT without a terminal",
		Example: `  axisdrop export --item "Cube A:2:3:4" --item "Block B:1.5:6:7" --format svg --out chart.svg
  axisdrop export --demo --format png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			config, err := loadConfig(*configPath)
			if err != nil {
				log.Printf("config: %v", err)
			}

			c := NewCanvas(title, "#60a5fa", config.Axis)
			if demo {
				for i, entry := range sizedPalette {
					c.Add(entry.Label, entry.ItemSize(), float64(i)*1.5, float64(i)*1.5+1)
				}
			}
			for _, arg := range items {
				name, size, x, y, err := parseItem(arg)
				if err != nil {
					return err
				}
				if _, err := c.Add(name, size, x, y); err != nil {
					return err
				}
			}

			if out == "" {
				out, err = config.GetSavePath(exportFilename(title, f))
				if err != nil {
					return err
				}
			}
			if err := exportScene(BuildScene(c), f, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "png", "png, svg or txt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&title, "title", "Axis Position Canvas", "chart title")
	cmd.Flags().StringArrayVar(&items, "item", nil, `item as "name:size:x:y" (repeatable)`)
	cmd.Flags().BoolVar(&demo, "demo", false, "place every palette entry on a diagonal")
	return cmd
}

func parseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "png":
		return ExportPNG, nil
	case "svg":
		return ExportSVG, nil
	case "txt", "text":
		return ExportTXT, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

func parseItem(s string) (name string, size, x, y float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return "", 0, 0, 0, fmt.Errorf("item %q: want name:size:x:y", s)
	}
	name = strings.TrimSpace(parts[0])
	nums := make([]float64, 3)
	for i, p := range parts[1:] {
		nums[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", 0, 0, 0, fmt.Errorf("item %q: %w", s, err)
		}
	}
	return name, nums[0], nums[1], nums[2], nil
}
