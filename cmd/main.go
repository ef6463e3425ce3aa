package main

import (
	"context"
	"encoding/json"
	"os"

	"hms-backend/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Hospital management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(usersCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(cmd.Context())
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			if err := app.EnsureAdmin(cmd.Context()); err != nil {
				logrus.Warnf("Failed to ensure default admin: %v", err)
			}

			// Run the application
			return app.Run()
		},
	}
}

func backfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill-doctor-links",
		Short: "Link doctor-role users to doctor records by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				result, err := app.Services.Users.BackfillDoctorLinks(ctx)
				if err != nil {
					return err
				}
				app.Log.WithFields(logrus.Fields{
					"scanned":   result.Scanned,
					"linked":    result.Linked,
					"unmatched": result.Unmatched,
				}).Info("Doctor link backfill finished")
				return nil
			})
		},
	}
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every user as one JSON object per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				users, err := app.Services.Users.ListUsers(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				for _, u := range users {
					if err := enc.Encode(u); err != nil {
						return err
					}
				}
				return nil
			})
		},
	})

	return cmd
}

// withApp boots the dependencies, runs fn and releases every connection.
func withApp(ctx context.Context, fn func(context.Context, *bootstrap.App) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := bootstrap.New(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}
