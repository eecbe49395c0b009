package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
)

var (
	useApo  bool
	useFutu bool
)

var factorCmd = &cobra.Command{
	Use:   "factor [numbers...]",
	Short: "Unfold integers into product chains",
	Long: `Unfolds each integer into a chain of products: by default one prime
factor per step, with --apo halving until the first odd remainder, and with
--futu committing whole runs of twos in single steps.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide integers to factor")
			os.Exit(1)
		}

		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				logger.Error("Not an integer", zap.String("arg", arg))
				os.Exit(1)
			}
			fmt.Printf("%d = %s\n", n, unfold(n))
		}
	},
}

func init() {
	factorCmd.Flags().BoolVar(&useApo, "apo", false, "Stop splitting at the first odd remainder")
	factorCmd.Flags().BoolVar(&useFutu, "futu", false, "Commit whole runs of twos in single steps")
}

func unfold(n int) exp.Exp {
	switch {
	case useApo:
		return rec.Apo(n, exp.Embed, exp.Map, halveCoalg)
	case useFutu:
		return rec.Futu(n, exp.Embed, exp.Map, exp.PartialOut, futuCoalg)
	default:
		return rec.Ana(n, exp.Embed, exp.Map, primeCoalg)
	}
}

// primeCoalg splits off the smallest prime factor, one layer per step.
func primeCoalg(n int) exp.ExpF[int] {
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return exp.MulF[int]{L: d, R: n / d}
		}
	}
	return exp.NumF[int]{N: n}
}

// halveCoalg splits off twos one layer at a time and grafts the first odd
// remainder as a finished literal.
func halveCoalg(n int) exp.ExpF[rec.Either[exp.Exp, int]] {
	if n > 2 && n%2 == 0 {
		return exp.MulF[rec.Either[exp.Exp, int]]{
			L: rec.Left[exp.Exp, int](exp.Num(2)),
			R: rec.Right[exp.Exp, int](n / 2),
		}
	}
	return exp.NumF[rec.Either[exp.Exp, int]]{N: n}
}

// futuCoalg peels the whole run of twos in one committed step, leaving the
// odd remainder as a literal.
func futuCoalg(n int) exp.ExpF[exp.Partial[int]] {
	if n <= 2 || n%2 != 0 {
		return exp.NumF[exp.Partial[int]]{N: n}
	}

	rest := n
	count := 0
	for rest > 2 && rest%2 == 0 {
		rest /= 2
		count++
	}

	tail := exp.Later(rest)
	for range count - 1 {
		tail = exp.Now(exp.MulF[exp.Partial[int]]{
			L: exp.Now(exp.NumF[exp.Partial[int]]{N: 2}),
			R: tail,
		})
	}
	return exp.MulF[exp.Partial[int]]{
		L: exp.Now(exp.NumF[exp.Partial[int]]{N: 2}),
		R: tail,
	}
}
