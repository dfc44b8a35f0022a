package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/permtower/pkg/io"
)

// signCommand creates the sign command.
func (c *CLI) signCommand() *cobra.Command {
	var degree int

	cmd := &cobra.Command{
		Use:   "sign <permutation>",
		Short: "Print the sign, cycle type, and alternating membership of a permutation",
		Long: `Print the sign (parity) of a permutation, its cycle type, and whether it
belongs to the alternating group of its degree.

The permutation is given in cycle notation or as a comma-separated image array:

  permtower sign -n 5 "(0 4)(1 3)"
  permtower sign -n 5 "1,0,3,2,4"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePermArg(degree, args[0])
			if err != nil {
				return err
			}

			printKeyValue("permutation", p.String())
			printKeyValue("cycle type", p.CycleType().String())
			printKeyValue("sign", signWord(p.Sign()))
			if p.IsEven() {
				printSuccess("member of A%d", degree)
			} else {
				printInfo("not a member of A%d (odd)", degree)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "degree of the permutation")
	return cmd
}

// cyclesCommand creates the cycles command.
func (c *CLI) cyclesCommand() *cobra.Command {
	var (
		degree  int
		jsonOut bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "cycles <permutation>",
		Short: "Print the disjoint cycle decomposition of a permutation",
		Long: `Decompose a permutation into disjoint cycles. Each cycle starts at its
smallest element; fixed points are shown as length-1 cycles. With --json the
full document (image, notation, cycle type, sign) is emitted instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePermArg(degree, args[0])
			if err != nil {
				return err
			}

			if jsonOut || output != "" {
				w := os.Stdout
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("create %s: %w", output, err)
					}
					defer f.Close()
					w = f
				}
				if err := pkgio.WritePerm(p, w); err != nil {
					return err
				}
				if output != "" {
					printFile(output)
				}
				return nil
			}

			for _, cycle := range p.Cycles() {
				fmt.Printf("%v\n", cycle)
			}
			printDetail("cycle type %s, sign %s", p.CycleType(), signWord(p.Sign()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "degree of the permutation")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full JSON document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file")
	return cmd
}
