package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/fragment"
	"github.com/jrschumacher/jwtinspect/internal/inspector"
	"github.com/jrschumacher/jwtinspect/internal/render"
)

var (
	decodeURL         string
	decodeFragmentIDs []string
	decodeOutput      string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [token|-]",
	Short: "Decode a token from an argument, stdin or a redirect URL",
	Example: `  jwtinspect decode eyJhbGciOi...
  pbpaste | jwtinspect decode
  jwtinspect decode --url 'https://app.example.com/#id_token=eyJhbGciOi...'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readTokenInput(cmd.InOrStdin(), args, decodeURL, decodeFragmentIDs)
		if err != nil {
			return err
		}

		insp, err := inspector.FromConfig(cfg)
		if err != nil {
			return err
		}

		output := decodeOutput
		if output == "" {
			output = cfg.OutputFormat
		}
		return writeInspection(cmd.OutOrStdout(), insp, raw, output, time.Now())
	},
}

// readTokenInput picks the token from --url, the argument or stdin, in that
// order. "-" as the argument means stdin.
func readTokenInput(stdin io.Reader, args []string, rawURL string, ids []string) (string, error) {
	if rawURL != "" {
		return fragment.TokenFromURL(rawURL, ids...)
	}
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}
	return string(data), nil
}

func writeInspection(w io.Writer, insp *inspector.Inspector, raw, output string, now time.Time) error {
	m, err := insp.Inspect(raw)
	if err != nil {
		return fmt.Errorf("failed to inspect token: %w", err)
	}

	switch strings.ToLower(output) {
	case config.OutputJSON:
		return render.WriteJSON(w, m)
	case config.OutputTable:
		return render.WriteText(w, m, now)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func init() {
	decodeCmd.Flags().StringVar(&decodeURL, "url", "", "Read the token from a redirect URL fragment")
	decodeCmd.Flags().StringSliceVar(&decodeFragmentIDs, "fragment-id", fragment.DefaultIDs, "Fragment parameters to look for, in order")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "Output format: table or json (default from config)")
	rootCmd.AddCommand(decodeCmd)
}
