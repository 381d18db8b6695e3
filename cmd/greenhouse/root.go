// cmd/greenhouse/root.go
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/greenhouse-settings/internal/console"
)

type rootOptions struct {
	configPath string
	dryRun     bool

	// port replaces the configured console when set.
	port console.Port
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:          "greenhouse",
		Short:        "Manage the greenhouse controller's persistent settings",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "greenhouse.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "use an in-memory store instead of the configured one")

	root.AddCommand(
		newBootCmd(opts),
		newReconfigCmd(opts),
		newShowCmd(opts),
		newDumpCmd(opts),
		newSetCmd(opts),
	)

	return root
}

// ---- boot ----

func newBootCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Load settings, running interactive setup if they are missing or stale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), opts, func(s *session) error {
				s.log.Info("settings ready",
					zap.String("network_name", s.store.NetworkName()),
					zap.String("service_account", s.store.ServiceAccount()),
					zap.Uint8("fan", s.store.Fan()),
					zap.Uint8("light", s.store.Light()),
					zap.Uint8("heat", s.store.Heat()),
				)
				return nil
			})
		},
	}
}

// ---- reconfig ----

func newReconfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconfig",
		Short: "Run interactive setup even if the stored settings are valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), opts, func(s *session) error {
				// Boot already walked through setup; don't ask twice.
				if s.store.SetupRan() {
					return nil
				}
				if err := s.store.Reconfigure(cmd.Context()); err != nil {
					return err
				}
				if !s.store.Valid() {
					s.log.Warn("settings still incomplete; they will be requested again on next boot")
				}
				return nil
			})
		},
	}
}

// ---- show / dump ----

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), opts, func(s *session) error {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "network_name:    %s\n", s.store.NetworkName())
				fmt.Fprintf(out, "network_secret:  %s\n", strings.Repeat("*", len(s.store.NetworkSecret())))
				fmt.Fprintf(out, "service_account: %s\n", s.store.ServiceAccount())
				fmt.Fprintf(out, "service_key:     %s\n", s.store.ServiceKey())
				fmt.Fprintf(out, "fan_level:       %d\n", s.store.Fan())
				fmt.Fprintf(out, "light_level:     %d\n", s.store.Light())
				fmt.Fprintf(out, "heat_level:      %d\n", s.store.Heat())
				return nil
			})
		},
	}
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every stored field with its byte offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), opts, func(s *session) error {
				s.store.Dump(cmd.OutOrStdout())
				return nil
			})
		},
	}
}

// ---- set ----

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "set <fan|light|heat> <0-255>",
		Short:     "Store a device level",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"fan", "light", "heat"},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(args[1])
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), opts, func(s *session) error {
				switch args[0] {
				case "fan":
					return s.store.SetFan(level)
				case "light":
					return s.store.SetLight(level)
				case "heat":
					return s.store.SetHeat(level)
				default:
					return fmt.Errorf("unknown level %q (want fan, light or heat)", args[0])
				}
			})
		},
	}
}

func parseLevel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("level %q must be an integer 0-255", s)
	}
	return uint8(v), nil
}

// withSession opens a session, runs fn, and always closes the session.
func withSession(ctx context.Context, opts *rootOptions, fn func(s *session) error) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(s); err != nil {
		s.log.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
