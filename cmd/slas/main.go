// Package main provides the slas command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lnicola/slas/backend"
	"github.com/lnicola/slas/vec"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:           "slas",
		Short:         "slas - static linear algebra system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("backend", string(backend.Pure), "compute backend (pure, native)")
	_ = viper.BindPFlag("backend", root.PersistentFlags().Lookup("backend"))
	viper.SetEnvPrefix("slas")
	viper.AutomaticEnv() // SLAS_BACKEND overrides the flag default

	root.AddCommand(versionCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slas %s\n", version)
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the core operations on the selected backend",
		RunE: func(_ *cobra.Command, _ []string) error {
			kind := backend.Kind(viper.GetString("backend"))
			b, err := backend.ByName[float64](kind)
			if err != nil {
				return err
			}
			fmt.Printf("backend: %s\n", b.Name())

			x := vec.FromSlice([]float64{1, 2, 3.2}, b)
			y := vec.FromSlice([]float64{3, 0.4, 5}, b)
			d, err := x.Dot(y)
			if err != nil {
				return err
			}
			fmt.Printf("dot %v · %v = %v\n", x, y, d)

			if err := y.AddScaled(2, x); err != nil {
				return err
			}
			fmt.Printf("y + 2x = %v\n", y)

			if err := x.Normalize(); err != nil {
				return err
			}
			fmt.Printf("x/|x| = %v\n", x)

			a, err := vec.MatrixFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3, b)
			if err != nil {
				return err
			}
			c, err := vec.MatrixFromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2, b)
			if err != nil {
				return err
			}
			p, err := a.Mul(c)
			if err != nil {
				return err
			}
			fmt.Printf("A·B = %v\n", p)
			return nil
		},
	}
}
