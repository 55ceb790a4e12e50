package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amr-9/vanityhunt/internal/config"
	"github.com/Amr-9/vanityhunt/internal/ui"
	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/chains"
)

const version = "1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vanityhunt",
		Short: "Multi-chain vanity address generator",
		Long: `Search for wallet addresses that start or end with a chosen pattern.
Supports Ethereum, Solana, Aptos, Sui, Bitcoin and Tron. Run without
--pattern for interactive prompts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}
	config.RegisterFlags(root.Flags())

	root.AddCommand(newChainsCmd(), newValidateCmd())
	return root
}

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported chains and their pattern alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.PrintChains(chains.Default())
		},
	}
}

func newValidateCmd() *cobra.Command {
	var chainName string
	cmd := &cobra.Command{
		Use:   "validate PATTERN",
		Short: "Check whether a pattern can appear in a chain's addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := generator.ParseChain(chainName)
			if err != nil {
				return err
			}
			if err := chains.ValidatePattern(args[0], chain); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is a valid %s pattern\n", args[0], chain)
			return nil
		},
	}
	cmd.Flags().StringVarP(&chainName, "chain", "c", config.Default().Chain, "Chain to validate against")
	return cmd
}
