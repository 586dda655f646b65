package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/sample"
)

var (
	sampleProvider string
	sampleSubject  string
	sampleLifetime time.Duration
	sampleClaims   map[string]string
)

var utilCmd = &cobra.Command{
	Use:     "util",
	Aliases: []string{"utils"},
	Short:   "Utility commands for jwtinspect",
}

var utilSampleTokenCmd = &cobra.Command{
	Use:   "sample-token",
	Short: "Mint a signed example token for a provider",
	Long: `Mint a signed example token whose issuer classifies as the given provider.
The signing key is generated per run and discarded.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := issuer.ParseProvider(sampleProvider)
		if err != nil {
			return err
		}

		extra := make(map[string]any, len(sampleClaims))
		for k, v := range sampleClaims {
			extra[k] = v
		}
		raw, err := sample.Mint(sample.Options{
			Provider: p,
			Subject:  sampleSubject,
			Lifetime: sampleLifetime,
			Extra:    extra,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
		return err
	},
}

func init() {
	var keys []string
	for _, p := range issuer.Providers() {
		keys = append(keys, p.String())
	}
	utilSampleTokenCmd.Flags().StringVarP(&sampleProvider, "provider", "p", issuer.AAD.String(),
		"Provider to mint for: "+strings.Join(keys, ", "))
	utilSampleTokenCmd.Flags().StringVar(&sampleSubject, "sub", "", "Subject claim (random when empty)")
	utilSampleTokenCmd.Flags().DurationVar(&sampleLifetime, "lifetime", time.Hour, "Time until exp")
	utilSampleTokenCmd.Flags().StringToStringVar(&sampleClaims, "claim", nil, "Extra string claims, key=value")

	rootCmd.AddCommand(utilCmd)
	utilCmd.AddCommand(utilSampleTokenCmd)
}
