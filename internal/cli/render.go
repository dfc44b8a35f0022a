package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/perm"
	"github.com/matzehuels/permtower/pkg/render"
)

// renderCommand creates the render command with its subcommands.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render cycle diagrams and Cayley graphs",
	}
	cmd.AddCommand(c.renderCycleCommand())
	cmd.AddCommand(c.renderCayleyCommand())
	return cmd
}

// renderCycleCommand renders the cycle diagram of a single permutation.
func (c *CLI) renderCycleCommand() *cobra.Command {
	var (
		degree int
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "cycle <permutation>",
		Short: "Render the cycle diagram of a permutation",
		Long: `Render a permutation as a cycle diagram: one node per index and a directed
edge i → p(i) for every moved index, with one color per cycle.

  permtower render cycle -n 5 "(0 1 2 3 4)" -o fivecycle.svg
  permtower render cycle -n 5 "(0 4)(1 3)" --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePermArg(degree, args[0])
			if err != nil {
				return err
			}
			return writeRendered(render.CycleDOT(p), format, output)
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "degree of the permutation")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg, png, or dot (default from file extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout, dot only)")
	return cmd
}

// renderCayleyCommand renders the Cayley graph of the subgroup generated by
// the given permutations.
func (c *CLI) renderCayleyCommand() *cobra.Command {
	var (
		degree  int
		ambient string
		format  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "cayley <generator>...",
		Short: "Render the Cayley graph of a normal closure",
		Long: `Compute the normal closure of the generators and render its Cayley graph:
one node per element, one colored edge per generator.

  permtower render cayley -n 4 "(0 1)(2 3)" -o klein.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := errors.ValidateDegree(degree, cfg.MaxDegree); err != nil {
				return err
			}

			gens := make([]perm.Permutation, 0, len(args))
			for _, arg := range args {
				g, err := parsePermArg(degree, arg)
				if err != nil {
					return err
				}
				gens = append(gens, g)
			}

			var amb *group.Subgroup
			switch ambient {
			case "A":
				amb, err = group.Alternating(degree)
			case "S":
				amb, err = group.Symmetric(degree)
			default:
				return errors.New(errors.ErrCodeInvalidFormat, `ambient must be "S" or "A", got %q`, ambient)
			}
			if err != nil {
				return err
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Saturating closure for Cayley graph")
			spinner.Start()
			closure, err := group.NormalClosure(cmd.Context(), gens, amb)
			spinner.Stop()
			if err != nil {
				return err
			}

			printDetail("%d elements, %d generator(s)", closure.Order(), len(gens))
			return writeRendered(render.CayleyDOT(closure, gens), format, output)
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "degree of the permutations")
	cmd.Flags().StringVar(&ambient, "ambient", "S", `ambient group: "S" or "A"`)
	cmd.Flags().StringVar(&format, "format", "", "output format: svg, png, or dot (default from file extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout, dot only)")
	return cmd
}

// writeRendered resolves the output format (explicit flag wins over the file
// extension, defaulting to dot) and writes the diagram.
func writeRendered(dot, format, output string) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "dot"
		}
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		out, err := render.RenderSVG(dot)
		if err != nil {
			return err
		}
		data = out
	case "png":
		out, err := render.RenderPNG(dot)
		if err != nil {
			return err
		}
		data = out
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png, or dot)", format)
	}

	if output == "" {
		if format != "dot" {
			return errors.New(errors.ErrCodeInvalidFormat, "%s output requires --output", format)
		}
		fmt.Print(dot)
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	return nil
}
