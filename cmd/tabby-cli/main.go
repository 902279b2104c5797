package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-tabby/tabby"
	"github.com/go-tabby/tabby/internal/config"
	tabbyio "github.com/go-tabby/tabby/internal/io"
	"github.com/go-tabby/tabby/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "tabby Series toolkit CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: tabby-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun the Series demo\n")
	fmt.Fprintf(os.Stderr, "  --csv PATH\n\t\tWrite the demo series to a CSV file\n")
	fmt.Fprintf(os.Stderr, "  --json PATH\n\t\tWrite the demo series to a JSON file\n")
	fmt.Fprintf(os.Stderr, "  --config PATH\n\t\tLoad rendering/IO configuration from a YAML or JSON file\n")
	fmt.Fprintf(os.Stderr, "  --verbose\n\t\tEnable debug logging\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run the Series demo")
	csvFlag := flag.String("csv", "", "Write the demo series to a CSV file")
	jsonFlag := flag.String("json", "", "Write the demo series to a JSON file")
	configFlag := flag.String("config", "", "Load configuration from a YAML or JSON file")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	if *verboseFlag {
		logger = logger.Level(zerolog.DebugLevel)
	}
	tabbyio.SetLogger(logger)

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	if !*demoFlag && *csvFlag == "" && *jsonFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Env overrides apply first; an explicit config file wins over them.
	cfg := config.LoadFromEnv()
	if *configFlag != "" {
		fileCfg, err := config.LoadFromFile(*configFlag)
		if err != nil {
			logger.Error().Err(err).Str("path", *configFlag).Msg("loading configuration failed")
			os.Exit(1)
		}
		cfg = fileCfg
	}
	if err := config.SetGlobalConfig(cfg); err != nil {
		logger.Error().Err(err).Msg("applying configuration failed")
		os.Exit(1)
	}

	if err := run(*demoFlag, *csvFlag, *jsonFlag, logger); err != nil {
		logger.Error().Err(err).Msg("tabby-cli failed")
		os.Exit(1)
	}
}

func run(demo bool, csvPath, jsonPath string, logger zerolog.Logger) error {
	s := tabby.Of(12.5, "3", nil, 12.5, "north", 7, true, 0)
	logger.Debug().Int("rows", s.Len()).Msg("built demo series")

	if demo {
		runDemo(s)
	}

	if csvPath != "" {
		if err := s.ToCSV(csvPath, tabby.CSVOptions{Name: "demo"}); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	if jsonPath != "" {
		if err := s.ToJSON(jsonPath, tabby.JSONOptions{Name: "demo"}); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}

	return nil
}

func runDemo(s *tabby.Series) {
	fmt.Println("Series preview:")
	s.Show()

	fmt.Println("Counts:")
	for _, vc := range s.Counts() {
		fmt.Printf("  %v: %d\n", vc.Value, vc.Count)
	}
	fmt.Println()

	numeric := s.Filter(func(v any) bool {
		_, ok := v.(float64)
		return ok
	})
	fmt.Println("Numeric values:")
	numeric.Show()

	if total, err := numeric.Sum(); err == nil {
		fmt.Printf("sum:    %g\n", total)
	}
	if mean, err := numeric.Mean(); err == nil {
		fmt.Printf("mean:   %g\n", mean)
	}
	if median, err := numeric.Median(); err == nil {
		fmt.Printf("median: %g\n", median)
	}
	if ext, err := numeric.Extent(); err == nil {
		fmt.Printf("extent: [%g, %g]\n", ext[0], ext[1])
	}
	fmt.Println()

	fmt.Println("Sorted descending:")
	numeric.Sort(tabby.SortOptions{Reverse: true}).Show()
}
