// Package data holds the bulk commands: CSV import, register export and
// reference data seeding.
package data

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	assetUsecases "art/internal/application/asset/usecases"
	"art/internal/application/importer"
	"art/internal/application/seed"
	"art/internal/infrastructure/export"
	"art/internal/infrastructure/permission"
	"art/internal/interfaces/cli/bootstrap"
	"art/internal/shared/constants"
)

var (
	env           string
	configPath    string
	inputPath     string
	skippedReport string
	outputPath    string
	statusFilter  string
	seedPath      string
)

// NewImportCommand returns `import`, which loads legacy asset rows from CSV.
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import assets from a CSV file",
		Long: `Import assets from a CSV export of the legacy register. Missing catalog
entries are created on the way. Rows that cannot be imported are skipped and
can be written to a report.`,
		RunE: runImport,
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "CSV file to import (required)")
	cmd.Flags().StringVar(&skippedReport, "skipped-report", "", "Write skipped rows with reasons to this CSV file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// NewExportCommand returns `export`, which writes the asset register workbook.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the asset register as xlsx",
		RunE:  runExport,
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default: asset-register-YYYYMMDD.xlsx)")
	cmd.Flags().StringVar(&statusFilter, "status", "", "Only export assets with this status")
	return cmd
}

// NewSeedCommand returns `seed`, which loads reference data from YAML.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed catalog, organisation and permission data",
		Long: `Seed the catalog, centres, floors, workspaces, departments, users and
permission policies from a YAML file. Entries that already exist are reused,
so the command can be run repeatedly.`,
		RunE: runSeed,
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVarP(&seedPath, "file", "f", "configs/seed.yaml", "Seed file")
	return cmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runImport(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	svc := bootstrap.NewServices(gdb, app.Log)
	im := importer.NewImporter(svc.Catalog, svc.Assets, svc.TxManager, app.Log.Named("importer"))

	result, err := im.Import(commandContext(cmd), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rows read: %d\nImported:  %d\nSkipped:   %d\n", result.Total, result.Imported, len(result.Skipped))

	if skippedReport != "" && len(result.Skipped) > 0 {
		report, err := os.Create(skippedReport)
		if err != nil {
			return fmt.Errorf("failed to create skipped report: %w", err)
		}
		defer report.Close()
		if err := result.WriteSkippedReport(report); err != nil {
			return fmt.Errorf("failed to write skipped report: %w", err)
		}
		fmt.Fprintf(out, "Skipped rows written to %s\n", skippedReport)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	svc := bootstrap.NewServices(gdb, app.Log)
	entries, err := svc.Assets.AssetRegister(commandContext(cmd), assetUsecases.ListAssetsQuery{Status: statusFilter})
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = fmt.Sprintf("asset-register-%s.xlsx", time.Now().Format("20060102"))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.WriteAssetRegister(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d assets to %s\n", len(entries), path)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	gdb, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer app.Close()

	file, err := seed.LoadFile(seedPath)
	if err != nil {
		return err
	}

	enforcer, err := permission.NewEnforcer(gdb, app.Config.Permission.ModelPath, app.Log)
	if err != nil {
		return err
	}

	svc := bootstrap.NewServices(gdb, app.Log)
	org := svc.Organization
	seeder := &seed.Seeder{
		Catalog:     svc.Catalog,
		Centres:     org.Centres,
		Floors:      org.Floors,
		Workspaces:  org.Workspaces,
		Departments: org.Departments,
		Users:       org.Users,
		Policies:    enforcer,
		Logger:      app.Log.Named("seed"),
	}

	summary, err := seeder.Apply(commandContext(cmd), file)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Seeded %d model numbers, %d departments, %d centres, %d floors, %d workspaces, %d users, %d policies\n",
		summary.ModelNumbers, summary.Departments, summary.Centres, summary.Floors,
		summary.Workspaces, summary.Users, summary.Policies)
	return nil
}
