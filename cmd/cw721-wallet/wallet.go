package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
	"github.com/AlexZinkM/cw721-wallet/internal/wallet"
)

func newInstantiateCmd(a *app) *cobra.Command {
	var codeID uint64

	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Instantiate a new contract with the wallet as minter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if codeID == 0 {
				codeID = a.network.CodeID
			}
			if codeID == 0 {
				return fmt.Errorf("--code-id is required, network %s has none configured", a.network.ChainID)
			}

			kv, err := a.openStorage()
			if err != nil {
				return err
			}
			defer kv.Close()

			ready, err := a.bootstrap(cmd.Context(), kv)
			if err != nil {
				return err
			}
			defer ready.Session.Close()

			contractAddress, err := cw721.Instantiate(cmd.Context(), ready.Address, ready.Client, codeID)
			if err != nil {
				a.logger.Error("instantiate failed", zap.Uint64("code_id", codeID), zap.Error(err))
				return err
			}
			a.logger.Info("contract instantiated", zap.Uint64("code_id", codeID), zap.String("contract", contractAddress))
			fmt.Fprintln(cmd.OutOrStdout(), contractAddress)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&codeID, "code-id", 0, "code id to instantiate, defaults to the network's codeId")
	return cmd
}

func newAddressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the wallet address, creating the wallet on first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := a.openStorage()
			if err != nil {
				return err
			}
			defer kv.Close()

			signer, err := wallet.LoadOrCreateWallet(kv, a.network.AddressPrefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signer.Address())
			return nil
		},
	}
}

func newFaucetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "faucet",
		Short: "Request fee tokens for the wallet from the network faucet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.network.FaucetURL == "" {
				return fmt.Errorf("network %s has no faucet", a.network.ChainID)
			}

			kv, err := a.openStorage()
			if err != nil {
				return err
			}
			defer kv.Close()

			signer, err := wallet.LoadOrCreateWallet(kv, a.network.AddressPrefix)
			if err != nil {
				return err
			}

			faucet := client.NewFaucetClient(a.network.FaucetURL)
			if err := faucet.Credit(cmd.Context(), signer.Address(), a.network.FeeToken); err != nil {
				return err
			}
			a.logger.Info("credit requested",
				zap.String("address", signer.Address()),
				zap.String("denom", a.network.FeeToken),
			)
			return nil
		},
	}
}

func newForgetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "forget",
		Short: "Delete the stored mnemonic; the next run creates a new wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.ErrOrStderr(), "This deletes the wallet mnemonic for good. Type 'yes' to continue: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					return errAborted
				}
			}

			kv, err := a.openStorage()
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := wallet.ForgetMnemonic(kv); err != nil {
				return err
			}
			a.logger.Info("mnemonic cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
