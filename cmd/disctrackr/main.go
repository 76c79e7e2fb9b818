package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/mmcdole/disctrackr/internal/adapter"
	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/library"
	"github.com/mmcdole/disctrackr/internal/store"
	"github.com/mmcdole/disctrackr/internal/stream"
	"github.com/mmcdole/disctrackr/internal/transfer"
	"github.com/mmcdole/disctrackr/internal/tui"
	"github.com/mmcdole/disctrackr/internal/viewstate"
)

// Version is set at build time via -ldflags
var Version = "dev"

const usage = `Usage: disctrackr [-config FILE] [command]

Commands:
  (none)        open the catalogue browser, or list when not on a terminal
  list          print the catalogue (-format, -country, -distributor)
  import FILE   add every disc in a YAML catalogue file
  export [FILE] write the catalogue as YAML (stdout by default)
  clear         delete every disc (-y to skip the prompt)
`

func main() {
	var showVersion bool
	var configPath string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "config file (default ~/.config/disctrackr/config.yaml)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("disctrackr %s\n", Version)
		return
	}

	if err := run(configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every command needs
type app struct {
	cfg    *adapter.Config
	logger *slog.Logger
	svc    *library.Service
}

func run(configPath string, args []string) error {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting disctrackr", "version", Version)

	dbPath, err := adapter.ExpandPath(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve storage path: %w", err)
	}
	gateway, err := store.Open(cfg.Storage.Driver, dbPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer gateway.Close()

	a := app{
		cfg:    cfg,
		logger: logger,
		svc:    library.NewService(store.NewRepository(gateway, logger), logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return a.runTUI()
		}
		return a.list(ctx, os.Stdout, nil)
	}

	switch args[0] {
	case "list":
		return a.list(ctx, os.Stdout, args[1:])
	case "import":
		return a.importFile(ctx, args[1:])
	case "export":
		return a.export(ctx, args[1:])
	case "clear":
		return a.clear(ctx, args[1:])
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a app) runTUI() error {
	model := tui.NewModel(tui.Options{
		Service:         a.svc,
		Opener:          adapter.NewLauncher(a.cfg.Links.BrowserCommand, a.cfg.Links.BrowserArgs, a.logger),
		CoverURL:        domain.URLTemplate(a.cfg.Links.CoverURLTemplate),
		DetailURL:       domain.URLTemplate(a.cfg.Links.DetailURLTemplate),
		DefaultFormat:   a.cfg.UI.Format(),
		CountryDebounce: a.cfg.UI.CountryDebounce(),
		Logger:          a.logger,
	})
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

// snapshot returns the current catalogue narrowed by filter
func (a app) snapshot(ctx context.Context, filter domain.Filter) ([]domain.Disc, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	discs, err := a.svc.Discs(ctx, stream.Of(filter))
	if err != nil {
		return nil, err
	}
	select {
	case list, ok := <-discs:
		if !ok {
			return nil, fmt.Errorf("catalogue stream closed")
		}
		return list, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a app) list(ctx context.Context, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	format := fs.String("format", "", "only this format: dvd, bluray or uhd")
	countryCode := fs.String("country", "", "only this country code, e.g. GB")
	distributor := fs.String("distributor", "", "only this distributor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := domain.Filter{
		CountryCode: strings.ToUpper(strings.TrimSpace(*countryCode)),
		Distributor: strings.TrimSpace(*distributor),
	}
	if *format != "" {
		filter.Format = adapter.UIConfig{DefaultFormat: *format}.Format()
	}

	discs, err := a.snapshot(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to read catalogue: %w", err)
	}

	cover := domain.URLTemplate(a.cfg.Links.CoverURLTemplate)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "YEAR", "FORMAT", "COUNTRY", "DISTRIBUTOR")
	for _, item := range viewstate.NewDiscItems(discs, cover) {
		t.Row(fmt.Sprint(item.ID), item.Title, item.Year, item.FormatLabel, item.Country.Name, item.Distributor)
	}
	_, err = fmt.Fprintln(w, t.String())
	return err
}

func (a app) importFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("import needs exactly one file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	discs, err := transfer.Import(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if err := a.svc.AddAll(ctx, discs); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}
	fmt.Printf("Imported %d discs\n", len(discs))
	return nil
}

func (a app) export(ctx context.Context, args []string) error {
	discs, err := a.snapshot(ctx, domain.Filter{})
	if err != nil {
		return fmt.Errorf("failed to read catalogue: %w", err)
	}

	if len(args) == 0 || args[0] == "-" {
		return transfer.Export(os.Stdout, discs)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := transfer.Export(f, discs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a app) clear(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*yes {
		fmt.Print("Delete every disc in the catalogue? [y/N] ")
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if ans := strings.ToLower(strings.TrimSpace(answer)); ans != "y" && ans != "yes" {
			fmt.Println("Nothing deleted.")
			return nil
		}
	}

	if err := a.svc.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear catalogue: %w", err)
	}
	fmt.Println("✓ Catalogue cleared")
	return nil
}
