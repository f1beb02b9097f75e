package puzzle

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/placement"
)

// maxListed caps how many unreachable ids an ErrIncompletePuzzle message names.
const maxListed = 5

// Options tunes Solve.
type Options struct {
	// AllowPartial returns the reachable subset instead of ErrIncompletePuzzle.
	AllowPartial bool
	// Strict checks label cardinality on the whole index before solving.
	Strict bool
	// Logger receives a debug line per placement and an info summary.
	// Nil disables logging.
	Logger *zerolog.Logger
}

// Solve places every record's piece starting from the seed record.
// The Result is returned alongside ErrIncompletePuzzle so callers can
// inspect what was placed.
func Solve(records []Record, opts Options) (*placement.Result, error) {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	pieces, err := Pieces(records)
	if err != nil {
		return nil, err
	}
	seed, err := FindSeed(records)
	if err != nil {
		return nil, err
	}

	idx := adjacency.Build(pieces)
	if opts.Strict {
		if err := idx.Validate(); err != nil {
			return nil, err
		}
	}
	log.Debug().Int("pieces", len(pieces)).Int("labels", idx.Len()).Str("seed", seed.String()).Msg("index built")

	res, err := placement.Solve(idx, seed,
		placement.WithOnPlace(func(p placement.Placement, depth int) error {
			log.Debug().Str("piece", p.Piece.ID()).Int("x", p.X).Int("y", p.Y).
				Str("orientation", p.Rotation.String()).Int("depth", depth).Msg("placed")
			return nil
		}),
	)
	if err != nil {
		return res, err
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	missing := res.Missing(ids)
	log.Info().Int("placed", len(res.Solution)).Int("unreachable", len(missing)).Msg("solve finished")

	if len(missing) > 0 && !opts.AllowPartial {
		listed := missing
		if len(listed) > maxListed {
			listed = listed[:maxListed]
		}
		return res, fmt.Errorf("%w: %d of %d pieces (%s) in %d components",
			ErrIncompletePuzzle, len(missing), len(records), strings.Join(listed, ", "), len(idx.Components()))
	}
	return res, nil
}
