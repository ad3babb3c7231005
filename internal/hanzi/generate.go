package hanzi

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCount is used when Options.Count is nil.
const DefaultCount = 1

const tracerName = "github.com/louisbranch/randomzh/internal/hanzi"

// Options configures a Generate call. The zero value draws one character
// from the whole dataset without duplicates.
type Options struct {
	// Count is the number of characters to draw; nil means DefaultCount.
	Count            *int
	LevelRange       *Range
	StrokeCountRange *Range
	AllowDuplicates  bool
}

func (o Options) count() int {
	if o.Count == nil {
		return DefaultCount
	}
	return *o.Count
}

// Generate selects the candidate pool for opts and samples from it.
//
// The rng may be nil. The result is empty when no candidate matches the
// filters.
func Generate(ctx context.Context, ds Dataset, opts Options, rng *rand.Rand) []rune {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := otel.Tracer(tracerName).Start(ctx, "hanzi.Generate",
		trace.WithAttributes(
			attribute.Int("hanzi.count", opts.count()),
			attribute.Bool("hanzi.allow_duplicates", opts.AllowDuplicates),
			attribute.String("hanzi.level_range", rangeAttr(opts.LevelRange)),
			attribute.String("hanzi.stroke_count_range", rangeAttr(opts.StrokeCountRange)),
		),
	)
	defer span.End()

	pool := SelectCandidates(ds, opts.LevelRange, opts.StrokeCountRange)
	result := Sample(rng, pool, opts.count(), opts.AllowDuplicates)

	span.SetAttributes(
		attribute.Int("hanzi.pool_size", len(pool)),
		attribute.Int("hanzi.result_size", len(result)),
	)
	return result
}

// Random draws characters from the embedded dataset with a randomly seeded
// generator. It fails only when the embedded dataset cannot be decoded.
func Random(ctx context.Context, opts Options) ([]rune, error) {
	ds, err := EmbeddedDataset()
	if err != nil {
		return nil, fmt.Errorf("load embedded dataset: %w", err)
	}
	return Generate(ctx, ds, opts, nil), nil
}

func rangeAttr(r *Range) string {
	if r == nil {
		return "all"
	}
	return r.String()
}
