package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtower/pkg/cache"
	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/group"
	pkgio "github.com/matzehuels/permtower/pkg/io"
	"github.com/matzehuels/permtower/pkg/observability"
	"github.com/matzehuels/permtower/pkg/perm"
)

// closureOpts holds the command-line flags for the closure command.
type closureOpts struct {
	degree  int    // degree of the ambient group
	ambient string // "S" or "A"
	output  string // JSON output file path
	noCache bool   // bypass the memoization cache
	watch   bool   // live round-by-round TUI
}

// closureCommand creates the closure command.
func (c *CLI) closureCommand() *cobra.Command {
	opts := closureOpts{degree: 5, ambient: "A"}

	cmd := &cobra.Command{
		Use:   "closure <generator>...",
		Short: "Compute the normal closure of generators in S_n or A_n",
		Long: `Compute the smallest normal subgroup of the ambient group containing the
given generators, by fixed-point saturation. With no generators the result
is the trivial subgroup containing only the identity.

Results are memoized in the configured cache, keyed by the canonical forms
of the generators.

  permtower closure -n 5 "(0 1 2)"
  permtower closure -n 5 --ambient S "(0 1)(2 3)" "(0 1 2 3 4)"
  permtower closure -n 5 --watch "(0 4)(1 3)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gens := make([]perm.Permutation, 0, len(args))
			for _, arg := range args {
				g, err := parsePermArg(opts.degree, arg)
				if err != nil {
					return err
				}
				gens = append(gens, g)
			}
			return c.runClosure(cmd.Context(), opts, gens)
		},
	}

	cmd.Flags().IntVarP(&opts.degree, "degree", "n", opts.degree, "degree of the ambient group")
	cmd.Flags().StringVar(&opts.ambient, "ambient", opts.ambient, `ambient group: "S" or "A"`)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the subgroup as JSON to a file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the memoization cache")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "show saturation rounds live")
	return cmd
}

func (c *CLI) runClosure(ctx context.Context, opts closureOpts, gens []perm.Permutation) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := errors.ValidateDegree(opts.degree, cfg.MaxDegree); err != nil {
		return err
	}

	var (
		ambient    *group.Subgroup
		ambientTag string
	)
	switch opts.ambient {
	case "A":
		ambient, err = group.Alternating(opts.degree)
		ambientTag = "A" + strconv.Itoa(opts.degree)
	case "S":
		ambient, err = group.Symmetric(opts.degree)
		ambientTag = "S" + strconv.Itoa(opts.degree)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, `ambient must be "S" or "A", got %q`, opts.ambient)
	}
	if err != nil {
		return err
	}

	memo, err := c.newCache(ctx, cfg, opts.noCache)
	if err != nil {
		logger.Warnf("Cache unavailable, computing without memoization: %v", err)
		memo = cache.NewNullCache()
	}
	defer memo.Close()

	genNotations := make([]string, len(gens))
	for i, g := range gens {
		genNotations[i] = g.String()
	}
	key := cache.NewDefaultKeyer().ClosureKey(opts.degree, ambientTag, genNotations)

	if data, ok, _ := memo.Get(ctx, key); ok {
		if closure, err := pkgio.ReadSubgroup(bytes.NewReader(data)); err == nil {
			logger.Debugf("Closure of %v in %s served from cache", genNotations, ambientTag)
			return c.reportClosure(closure, ambient, ambientTag, gens, opts, 0, true)
		}
		// Corrupt entry: drop it and recompute.
		_ = memo.Delete(ctx, key)
	}

	closure, rounds, err := c.saturateWithProgress(ctx, opts, gens, ambient, logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pkgio.WriteSubgroup(closure, gens, &buf); err == nil {
		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		if err := memo.Set(ctx, key, buf.Bytes(), ttl); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	return c.reportClosure(closure, ambient, ambientTag, gens, opts, rounds, false)
}

// saturateWithProgress runs the saturation with either the live TUI or a
// spinner, depending on --watch.
func (c *CLI) saturateWithProgress(ctx context.Context, opts closureOpts, gens []perm.Permutation, ambient *group.Subgroup, logger *log.Logger) (*group.Subgroup, int, error) {
	counter := &countingClosureHooks{logger: logger}
	observability.SetClosureHooks(counter)
	defer observability.Reset()

	if opts.watch {
		return c.watchSaturation(ctx, gens, ambient, counter)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Saturating closure of %d generator(s) in degree %d", len(gens), opts.degree))
	spinner.Start()
	closure, err := group.NormalClosure(ctx, gens, ambient)
	spinner.Stop()
	if err != nil {
		return nil, 0, err
	}
	return closure, counter.rounds(), nil
}

func (c *CLI) reportClosure(closure, ambient *group.Subgroup, ambientTag string, gens []perm.Permutation, opts closureOpts, rounds int, cached bool) error {
	if closure.Equal(ambient) {
		printSuccess("normal closure is all of %s", ambientTag)
	} else {
		printSuccess("normal closure has order %d (of %d)", closure.Order(), ambient.Order())
	}
	printClosureStats(closure.Order(), rounds, cached)

	if opts.output != "" {
		if err := pkgio.ExportSubgroup(closure, gens, opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}
	return nil
}

// countingClosureHooks records round counts and mirrors them to the debug log.
type countingClosureHooks struct {
	logger    *log.Logger
	lastRound int
}

func (h *countingClosureHooks) OnSaturationStart(ctx context.Context, degree, generators int) {
	h.logger.Debugf("Saturation started: degree %d, %d generator(s)", degree, generators)
}

func (h *countingClosureHooks) OnSaturationRound(ctx context.Context, round, known, discovered int) {
	h.lastRound = round
	h.logger.Debugf("Round %d: %d known, %d discovered", round, known, discovered)
}

func (h *countingClosureHooks) OnSaturationComplete(ctx context.Context, degree, order, rounds int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Saturation failed after %s: %v", duration.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("Saturation finished: order %d in %d round(s) (%s)", order, rounds, duration.Round(time.Millisecond))
}

func (h *countingClosureHooks) rounds() int { return h.lastRound }
