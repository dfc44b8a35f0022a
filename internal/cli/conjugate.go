package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/perm"
)

// conjugateCommand creates the conjugate command.
func (c *CLI) conjugateCommand() *cobra.Command {
	var (
		degree      int
		alternating bool
	)

	cmd := &cobra.Command{
		Use:   "conjugate <a> <b>",
		Short: "Test conjugacy of two permutations and construct a conjugator",
		Long: `Test whether two permutations are conjugate (equal cycle types) and, if
so, construct a witnessing conjugator c with c∘a∘c⁻¹ = b.

With --alternating the conjugator is required to be even, witnessing
conjugacy inside the alternating group. Equal cycle types can split into
two alternating classes, so this can fail where plain conjugacy succeeds.

  permtower conjugate -n 5 "(0 1 2)" "(2 3 4)"
  permtower conjugate -n 5 --alternating "(0 1 2 3 4)" "(0 2 1 4 3)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parsePermArg(degree, args[0])
			if err != nil {
				return err
			}
			b, err := parsePermArg(degree, args[1])
			if err != nil {
				return err
			}

			find := group.Conjugator
			if alternating {
				find = group.AlternatingConjugator
			}

			conj, err := find(a, b)
			if errors.Is(err, errors.ErrCodeNotConjugate) {
				printInfo("not conjugate: %s", errors.UserMessage(err))
				return nil
			}
			if err != nil {
				return err
			}

			printSuccess("conjugate")
			printKeyValue("conjugator", conj.String())
			printKeyValue("sign", signWord(conj.Sign()))
			verify(a, b, conj)
			return nil
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "degree of the permutations")
	cmd.Flags().BoolVar(&alternating, "alternating", false, "require an even conjugator")
	return cmd
}

// verify double-checks c∘a∘c⁻¹ = b and warns loudly if the witness is
// wrong, which would indicate a bug rather than bad input.
func verify(a, b, c perm.Permutation) {
	got, err := a.Conjugate(c)
	if err != nil || !got.Equal(b) {
		printWarning("conjugator verification failed: c∘a∘c⁻¹ = %v, want %v", got, b)
	}
}
