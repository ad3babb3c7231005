// Package randomzh implements the randomzh command: it reads the filter and
// sampling options from env and flags, draws characters and prints them.
package randomzh

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/randomzh/internal/hanzi"
	platformcmd "github.com/louisbranch/randomzh/internal/platform/cmd"
	"github.com/louisbranch/randomzh/internal/platform/config"
	"github.com/louisbranch/randomzh/internal/random"
)

const tracerName = "github.com/louisbranch/randomzh/internal/tools/randomzh"

// Config holds configuration for the randomzh command. Env variables carry
// the RANDOMZH_ prefix.
type Config struct {
	Count            int    `env:"COUNT" envDefault:"1" flag:"count" validate:"gte=0"`
	LevelRange       string `env:"LEVEL_RANGE" flag:"level-range"`
	StrokeCountRange string `env:"STROKE_COUNT_RANGE" flag:"stroke-count-range"`
	AllowDuplicates  bool   `env:"ALLOW_DUPLICATES" flag:"allow-duplicates"`
	Seed             int64  `env:"SEED" flag:"seed"`
	Format           string `env:"FORMAT" envDefault:"debug" flag:"format" validate:"oneof=debug plain json"`
	LevelsFile       string `env:"LEVELS_FILE" flag:"levels-file" validate:"required_with=StrokeCountsFile"`
	StrokeCountsFile string `env:"STROKE_COUNTS_FILE" flag:"stroke-counts-file" validate:"required_with=LevelsFile"`
	Verbose          bool   `env:"VERBOSE" flag:"v"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, registerFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
		fmt.Fprintln(fs.Output(), "Generate random Chinese characters filtered by level and stroke count.")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of characters to generate")
	fs.IntVar(&cfg.Count, "c", cfg.Count, "number of characters (shorthand)")

	fs.StringVar(&cfg.LevelRange, "level-range", cfg.LevelRange, "level range, e.g. 1,3 for levels 1 to 3 or 1,1 for level 1 only")
	fs.StringVar(&cfg.LevelRange, "l", cfg.LevelRange, "level range (shorthand)")

	fs.StringVar(&cfg.StrokeCountRange, "stroke-count-range", cfg.StrokeCountRange, "stroke count range, e.g. 1,7 or 1,1 for one-stroke characters")
	fs.StringVar(&cfg.StrokeCountRange, "s", cfg.StrokeCountRange, "stroke count range (shorthand)")

	fs.BoolVar(&cfg.AllowDuplicates, "allow-duplicates", cfg.AllowDuplicates, "allow repeated characters; without it the count is capped at the number of distinct candidates")
	fs.BoolVar(&cfg.AllowDuplicates, "d", cfg.AllowDuplicates, "allow repeated characters (shorthand)")

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: debug, plain or json")
	fs.StringVar(&cfg.LevelsFile, "levels-file", cfg.LevelsFile, "level table JSON file (default: embedded)")
	fs.StringVar(&cfg.StrokeCountsFile, "stroke-counts-file", cfg.StrokeCountsFile, "stroke count table JSON file (default: embedded)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output on stderr")
}

// Run draws characters for cfg and writes them to out. Progress is logged
// to logOut when cfg.Verbose is set.
//
// Malformed range strings are not errors: they are logged and ignored.
func Run(ctx context.Context, cfg Config, out io.Writer, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		return errors.New("output is required")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if logOut == nil || !cfg.Verbose {
		logOut = io.Discard
	}
	logger := log.New(logOut, "randomzh: ", 0)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "randomzh.Run")
	defer span.End()

	ds, err := loadDataset(cfg)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Printf("loaded %d levels and %d stroke counts", len(ds.Levels), len(ds.StrokeCounts))
	if keys := ds.Levels.UnnormalizedKeys(); len(keys) > 0 {
		logger.Printf("levels %v contain characters not in NFC form", keys)
	}
	if keys := ds.StrokeCounts.UnnormalizedKeys(); len(keys) > 0 {
		logger.Printf("stroke counts %v contain characters not in NFC form", keys)
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		span.RecordError(err)
		return err
	}
	logger.Printf("using seed %d", seed)
	span.SetAttributes(attribute.Int64("randomzh.seed", seed))

	opts := hanzi.Options{
		Count:            &cfg.Count,
		LevelRange:       parseRange(logger, "level", cfg.LevelRange),
		StrokeCountRange: parseRange(logger, "stroke count", cfg.StrokeCountRange),
		AllowDuplicates:  cfg.AllowDuplicates,
	}
	chars := hanzi.Generate(ctx, ds, opts, random.NewRand(seed))
	if len(chars) < cfg.Count {
		logger.Printf("drew %d of %d requested characters", len(chars), cfg.Count)
	}

	return writeResult(out, cfg.Format, chars)
}

func loadDataset(cfg Config) (hanzi.Dataset, error) {
	if cfg.LevelsFile != "" {
		return hanzi.LoadDatasetFiles(cfg.LevelsFile, cfg.StrokeCountsFile)
	}
	return hanzi.EmbeddedDataset()
}

func parseRange(logger *log.Logger, name, raw string) *hanzi.Range {
	r := hanzi.ParseRange(raw)
	switch {
	case r != nil:
		logger.Printf("%s range %s", name, r)
	case raw != "":
		logger.Printf("ignoring malformed %s range %q", name, raw)
	}
	return r
}
