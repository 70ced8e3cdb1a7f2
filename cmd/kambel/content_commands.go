package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kambel/internal/store"
)

func newContentCommand(ctx *commandContext) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect stored content",
	}

	contentCmd.AddCommand(newContentStatsCommand(ctx))
	contentCmd.AddCommand(newContentFallbackCommand(ctx))

	return contentCmd
}

func newContentStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts per content type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open content store: %w", err)
			}
			defer st.Close()

			stats, err := st.ContentStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("collect stats: %w", err)
			}

			rows := make([][]string, 0, len(stats))
			for _, stat := range stats {
				rows = append(rows, []string{
					stat.Name,
					strconv.Itoa(stat.Active),
					strconv.Itoa(stat.Total),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Content", "Active", "Total"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}

func newContentFallbackCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fallback",
		Short: "List queued fallback submissions awaiting replay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fallback log directory: %s\n", cfg.Web.FallbackDir)

			entries, err := os.ReadDir(cfg.Web.FallbackDir)
			if err != nil {
				return fmt.Errorf("read fallback directory: %w", err)
			}

			rows := [][]string{}
			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
					continue
				}
				path := filepath.Join(cfg.Web.FallbackDir, entry.Name())
				count, err := countJSONLRecords(path)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					strings.TrimSuffix(entry.Name(), ".jsonl"),
					strconv.Itoa(count),
				})
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, "No queued submissions")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Kind", "Records"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func countJSONLRecords(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}
