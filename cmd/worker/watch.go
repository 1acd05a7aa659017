package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/realtime"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/report"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	addr     string
	password string
	db       int
	channel  string
}

func newWatchCmd() *cobra.Command {
	opts := watchOptions{
		addr:    os.Getenv("REDIS_ADDR"),
		channel: realtime.DefaultChannel,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a summary line for every published board snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.addr, "redis", opts.addr, "Redis address (defaults to $REDIS_ADDR)")
	cmd.Flags().StringVar(&opts.password, "password", "", "Redis password")
	cmd.Flags().IntVar(&opts.db, "db", 0, "Redis database")
	cmd.Flags().StringVar(&opts.channel, "channel", opts.channel, "snapshot channel")
	return cmd
}

func runWatch(ctx context.Context, opts watchOptions, out io.Writer) error {
	client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     opts.addr,
		Password: opts.password,
		DB:       opts.db,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	return realtime.Subscribe(ctx, client, opts.channel, func(ev realtime.Event) {
		fmt.Fprintln(out, formatEvent(ev))
	})
}

func formatEvent(ev realtime.Event) string {
	sum := report.Summarize(ev.Projects)
	return fmt.Sprintf("%s active=%d finished=%d total=%d",
		ev.PublishedAt.Format(time.RFC3339), sum.Active, sum.Finished, sum.Total())
}
