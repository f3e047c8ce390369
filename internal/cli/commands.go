// Package cli implements the non-interactive pt commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tygara/practicetracker/internal/config"
	"github.com/tygara/practicetracker/internal/domain"
	"github.com/tygara/practicetracker/internal/services/planning"
	"github.com/tygara/practicetracker/internal/services/store"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config  *config.Config
	Catalog []domain.Exercise
	Library *store.Library
	Planner *planning.Service
	Logger  *slog.Logger
	Out     io.Writer
}

// NewDependencies wires the services for cfg. Output goes to out.
func NewDependencies(cfg *config.Config, logger *slog.Logger, out io.Writer) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catalog, err := cfg.BuildExercises()
	if err != nil {
		return nil, fmt.Errorf("exercise catalog: %w", err)
	}

	jsonStore := store.NewJSONStore(logger)

	return &Dependencies{
		Config:  cfg,
		Catalog: catalog,
		Library: store.NewLibrary(cfg.Storage.DataDir, jsonStore, logger),
		Planner: planning.NewService(logger),
		Logger:  logger,
		Out:     out,
	}, nil
}

// UsageError reports a malformed command line
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps a command error to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// Run dispatches args (without the program name) to a command
func Run(deps *Dependencies, args []string) error {
	if len(args) == 0 {
		return usagef("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list", "ls":
		if len(rest) != 0 {
			return usagef("list takes no arguments")
		}
		return ListCommand(deps)
	case "show":
		if len(rest) != 1 {
			return usagef("usage: pt show <file>")
		}
		return ShowCommand(deps, rest[0])
	case "plan":
		if len(rest) != 0 {
			return usagef("plan takes no arguments")
		}
		return PlanCommand(deps)
	case "new":
		if len(rest) > 1 {
			return usagef("usage: pt new [YYYY-MM-DD]")
		}
		date := ""
		if len(rest) == 1 {
			date = rest[0]
		}
		return NewCommand(deps, date)
	case "log":
		return LogCommand(deps, rest)
	case "help", "-h", "--help":
		PrintUsage(deps.Out)
		return nil
	default:
		return usagef("unknown command %q", cmd)
	}
}

// ListCommand prints every session in the data directory
func ListCommand(deps *Dependencies) error {
	records, err := deps.Library.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Out, "No sessions in %s\n", deps.Library.Dir())
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tENTRIES\tMINUTES\tFILE")
	fmt.Fprintln(w, "----\t-------\t-------\t----")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			rec.Session.DateString(),
			rec.Session.Entries().Len(),
			rec.Session.TotalMinutes(),
			rec.Name(),
		)
	}
	return w.Flush()
}

// ShowCommand prints one session with its entries
func ShowCommand(deps *Dependencies, file string) error {
	rec, err := deps.Library.Load(resolvePath(deps.Library, file))
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	path, session := rec.Path, rec.Session

	fmt.Fprintf(deps.Out, "Session %s\n", session.DateString())
	fmt.Fprintf(deps.Out, "File: %s\n\n", path)

	if session.IsEmpty() {
		fmt.Fprintln(deps.Out, "No entries")
	} else {
		w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tCATEGORY\tEXERCISE\tMINUTES\tTEMPO\tNOTES")
		for i, entry := range session.Entries().All() {
			ex := entry.Exercise()
			category, name := ex.Category(), ex.Name()
			if store.IsPlaceholder(ex) {
				// Files do not record the exercise
				category, name = "-", "-"
			}
			tempo := "-"
			if bpm, ok := entry.AverageTempoBpm(); ok {
				tempo = strconv.Itoa(bpm)
			}
			notes, _ := entry.Notes()
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", i+1, category, name, entry.MinutesPracticed(), tempo, notes)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Out, "\nTotal: %d min\n", session.TotalMinutes())
	return nil
}

// PlanCommand prints the weekly plan for the configured exercises
func PlanCommand(deps *Dependencies) error {
	plan, err := deps.Planner.Generate(deps.Catalog)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if plan.ExerciseCount() == 0 {
		fmt.Fprintln(deps.Out, "No exercises configured")
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	header := []string{"DAY"}
	for _, ex := range plan.Exercises() {
		header = append(header, ex.Name())
	}
	header = append(header, "TOTAL")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for day, label := range planning.Days {
		cells := []string{label}
		for _, minutes := range plan.Row(day) {
			cells = append(cells, strconv.Itoa(minutes))
		}
		cells = append(cells, strconv.Itoa(plan.TotalForDay(day)))
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	week := []string{"Week"}
	for i := 0; i < plan.ExerciseCount(); i++ {
		sum := 0
		for day := 0; day < plan.Days(); day++ {
			sum += plan.Minutes(day, i)
		}
		week = append(week, strconv.Itoa(sum))
	}
	week = append(week, strconv.Itoa(plan.TotalForWeek()))
	fmt.Fprintln(w, strings.Join(week, "\t"))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(deps.Out, "\nExercises:")
	for i, ex := range plan.Exercises() {
		fmt.Fprintf(deps.Out, "  %d. %s\n", i+1, ex.Summary())
	}
	return nil
}

// NewCommand creates an empty session. An empty date means today.
func NewCommand(deps *Dependencies, date string) error {
	session := domain.Today()
	if date != "" {
		d, err := domain.ParseDate(date)
		if err != nil {
			return usagef("invalid date %q, expected YYYY-MM-DD", date)
		}
		if session, err = domain.NewSession(d); err != nil {
			return err
		}
	}

	rec, err := deps.Library.Create(session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Fprintf(deps.Out, "Created %s\n", rec.Path)
	return nil
}

// LogCommand appends an entry to a session file.
// args: <file> <exercise-number> <minutes> [tempo|-] [notes...]
func LogCommand(deps *Dependencies, args []string) error {
	if len(args) < 3 {
		return usagef("usage: pt log <file> <exercise-number> <minutes> [tempo|-] [notes...]")
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(deps.Catalog) {
		return usagef("exercise number must be between 1 and %d (see pt plan)", len(deps.Catalog))
	}
	exercise := deps.Catalog[n-1]

	minutes, err := strconv.Atoi(args[2])
	if err != nil {
		return usagef("minutes must be a whole number, got %q", args[2])
	}

	var tempo *int
	if len(args) > 3 && args[3] != "-" {
		bpm, err := strconv.Atoi(args[3])
		if err != nil {
			return usagef("tempo must be a whole number or -, got %q", args[3])
		}
		tempo = &bpm
	}

	var notes *string
	if len(args) > 4 {
		text := strings.Join(args[4:], " ")
		notes = &text
	}

	entry, err := domain.NewSessionEntry(&exercise, minutes, tempo, notes)
	if err != nil {
		return err
	}

	rec, err := deps.Library.AddEntry(resolvePath(deps.Library, args[0]), &entry)
	if err != nil {
		return fmt.Errorf("failed to log entry: %w", err)
	}

	fmt.Fprintf(deps.Out, "Logged %d min of %s, session total %d min\n",
		minutes, exercise.Name(), rec.Session.TotalMinutes())
	return nil
}

// InitCommand writes the default configuration to path unless a file
// already exists there
func InitCommand(path string, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// resolvePath accepts either a path or a file name inside the library
func resolvePath(library *store.Library, file string) string {
	if filepath.IsAbs(file) || strings.ContainsRune(file, filepath.Separator) {
		return file
	}
	if _, err := os.Stat(file); err == nil {
		return file
	}
	return filepath.Join(library.Dir(), file)
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: pt <command> [arguments]

Commands:
  list                          List sessions in the data directory
  show <file>                   Show a session and its entries
  plan                          Show the weekly plan for the configured exercises
  new [YYYY-MM-DD]              Create an empty session (default today)
  log <file> <n> <min> [tempo|-] [notes...]
                                Log practice of exercise n to a session
  init                          Write a default .practicetracker.yaml here
  help                          Show this help message

Files may be given as a path or as a name inside the data directory.

Examples:
  pt new 2025-01-06
  pt log 2025-01-06_1a2b3c4d.json 1 15 80 clean at 80
  pt log 2025-01-06_1a2b3c4d.json 3 20
  pt plan
`
	fmt.Fprint(w, usage)
}
