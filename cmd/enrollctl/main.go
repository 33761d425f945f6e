package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/campuskit/enrollctl/internal/config"
	"github.com/campuskit/enrollctl/internal/console"
	"github.com/campuskit/enrollctl/internal/database"
	"github.com/campuskit/enrollctl/internal/logging"
	"github.com/campuskit/enrollctl/internal/registrar"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	dbPath    string
	verbosity int
)

const defaultDBPath = ":memory:"

func main() {
	cobra.EnableCaseInsensitive = true

	rootCmd := &cobra.Command{
		Use:   "enrollctl <enroll|paginate>",
		Short: "Enrollctl - Course enrollment teaching CLI",
		Long: `Enrollctl is a teaching example for embedded-SQL data access.
It bootstraps a three-table enrollment schema (course, student, take)
with sample data, then runs one of two interactive operations:
enrolling a student into a course, or paginating the student roster.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("the program requires an argument, which can be either 'enroll' or 'paginate'")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", defaultDBPath, "SQLite database path (or set DB_PATH env var)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "enroll",
		Short: "Enroll a student into a course",
		Args:  cobra.NoArgs,
		RunE:  runEnroll,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "paginate",
		Short: "Page through the student roster",
		Args:  cobra.NoArgs,
		RunE:  runPaginate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("enrollctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup opens the store, bootstraps the schema and sample data, and
// returns the ready-to-use service. Any failure here is fatal.
func setup() (*database.DB, *registrar.Service) {
	logging.ApplyLevel(verbosity)
	logging.ApplyOutputs(nil, "")

	// Optional .env in the working directory
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("Failed to load .env file")
	}

	// Check for DB_PATH env var if using default
	if dbPath == defaultDBPath {
		if envDB := os.Getenv("DB_PATH"); envDB != "" {
			dbPath = envDB
		}
	}

	log.Info().
		Str("version", version).
		Str("database", dbPath).
		Msg("Starting enrollctl")

	db, err := database.New(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	if err := db.InitializeDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize default settings")
	}

	loader := config.NewLoader(db)

	// Re-apply outputs now that rotation settings are readable; the
	// file writer is skipped entirely for an in-memory target.
	logging.ApplyOutputs(loader, logging.FilePathForDB(db.Path()))

	if err := db.Seed(); err != nil {
		log.Error().Err(err).Msg("Failed to seed sample data")
	}

	fmt.Println("Initialization complete!!")

	return db, registrar.New(db, loader, os.Stdout)
}

func runEnroll(cmd *cobra.Command, args []string) error {
	db, svc := setup()
	defer db.Close()

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	studentID, err := prompter.Int64("Please enter student id: ")
	if err != nil {
		log.Error().Err(err).Str("op", "enroll").Msg("Invalid student id")
		return nil
	}

	courseID, err := prompter.Int64("Please enter course id: ")
	if err != nil {
		log.Error().Err(err).Str("op", "enroll").Msg("Invalid course id")
		return nil
	}

	if err := svc.Enroll(studentID, courseID); err != nil {
		logEnrollError(err)
	}
	return nil
}

func runPaginate(cmd *cobra.Command, args []string) error {
	db, svc := setup()
	defer db.Close()

	min, max := svc.PageSizeBounds()
	prompt := fmt.Sprintf("Enter page size (an integer in [%d,%d]): ", min, max)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	pageSize, err := prompter.Int(prompt)
	if err != nil {
		log.Error().Err(err).Str("op", "paginate").Msg("Invalid page size")
		return nil
	}

	if err := svc.Paginate(pageSize); err != nil {
		if errors.Is(err, registrar.ErrPageSizeOutOfRange) {
			log.Error().Err(err).Str("op", "paginate").Msg("Page size rejected")
		} else {
			log.Error().Err(err).Str("op", "paginate").Msg("Pagination failed")
		}
	}
	return nil
}

// logEnrollError maps each validation outcome to one diagnostic line;
// store failures get a generic line with the wrapped cause.
func logEnrollError(err error) {
	switch {
	case errors.Is(err, registrar.ErrStudentNotFound):
		log.Error().Err(err).Str("op", "enroll").Msg("Student not found")
	case errors.Is(err, registrar.ErrCourseNotFound):
		log.Error().Err(err).Str("op", "enroll").Msg("Course not found")
	case errors.Is(err, registrar.ErrCourseFull):
		log.Error().Err(err).Str("op", "enroll").Msg("Course is full")
	case errors.Is(err, registrar.ErrAlreadyEnrolled):
		log.Error().Err(err).Str("op", "enroll").Msg("Already enrolled")
	default:
		log.Error().Err(err).Str("op", "enroll").Msg("Enrollment failed")
	}
}
