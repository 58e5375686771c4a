package migrate

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"art/internal/infrastructure/migration"
	"art/internal/interfaces/cli/bootstrap"
	"art/internal/shared/constants"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and the state of every script.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new sequential SQL migration for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runUp(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Infow("running up migrations", "environment", env)

	manager, err := migration.NewManager(env, app.Config.Database.Driver, app.Log)
	if err != nil {
		return err
	}
	if err := manager.Migrate(commandContext(cmd), gdb); err != nil {
		return err
	}

	app.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy, err := migration.NewGooseStrategy(app.Config.Database.Driver, app.Log)
	if err != nil {
		return err
	}
	if err := strategy.MigrateDown(commandContext(cmd), gdb, steps); err != nil {
		app.Log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	app.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	strategy, err := migration.NewGooseStrategy(app.Config.Database.Driver, app.Log)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	version, err := strategy.GetVersion(ctx, gdb)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	statuses, err := strategy.Status(ctx, gdb)
	if err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tSCRIPT")
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", st.Version, state, st.Path)
	}
	return tw.Flush()
}

func runCreate(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}

	strategy, err := migration.NewGooseStrategy(app.Config.Database.Driver, app.Log)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return err
	}
	dir, err := strategy.Create(root, name)
	if err != nil {
		app.Log.Errorw("failed to create migration", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
