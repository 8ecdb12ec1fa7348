// Copyright (C) 2025, Lux Industries, Inc.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/multikey"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "multikey",
	Short: "Inspect and verify polymorphic keys and threshold signatures",
	Long: `multikey decodes the canonical wire encoding of wrapped public keys,
threshold key sets, and threshold signatures, derives authentication keys,
and verifies signatures against keys or key sets.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(bitmapCmd)
	rootCmd.AddCommand(verifyCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decode a canonical key, key set, or threshold signature",
	Run: func(cmd *cobra.Command, args []string) {
		data := mustHexFlag(cmd, "data")

		if key, err := multikey.ParseAnyPublicKey(data); err == nil {
			fmt.Printf("AnyPublicKey:\n")
			fmt.Printf("  Scheme: %s (variant %d)\n", key.Variant(), key.Variant())
			fmt.Printf("  Key: %x\n", key.Key().Bytes())
			fmt.Printf("  AuthKey: %s\n", key.AuthKey())
			return
		}
		if mk, err := multikey.ParseMultiKey(data); err == nil {
			fmt.Printf("MultiKey (%d-of-%d):\n", mk.Threshold(), mk.Len())
			for i, key := range mk.Keys() {
				fmt.Printf("  [%d] %s %x\n", i, key.Variant(), key.Key().Bytes())
			}
			fmt.Printf("  AuthKey: %s\n", mk.AuthKey())
			return
		}
		if sig, err := multikey.ParseMultiKeySignature(data); err == nil {
			fmt.Printf("MultiKeySignature:\n")
			fmt.Printf("  Signers: %v\n", sig.SignerIndices())
			for i, s := range sig.Signatures() {
				fmt.Printf("  [%d] %s %x\n", i, s.Variant(), s.Signature().Bytes())
			}
			return
		}

		fmt.Fprintln(os.Stderr, "Error: data is not a recognized canonical value")
		os.Exit(1)
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive the authentication key of a key or key set",
	Run: func(cmd *cobra.Command, args []string) {
		data := mustHexFlag(cmd, "key")
		multi, _ := cmd.Flags().GetBool("multi")

		var authKey multikey.AuthenticationKey
		if multi {
			mk, err := multikey.ParseMultiKey(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			authKey = mk.AuthKey()
		} else {
			key, err := multikey.ParseAnyPublicKey(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			authKey = key.AuthKey()
		}

		fmt.Printf("AuthKey: %s\n", authKey)
		fmt.Printf("Address: %s\n", authKey.Address())
	},
}

var bitmapCmd = &cobra.Command{
	Use:   "bitmap",
	Short: "Encode signer indices as a 4-byte bitmap",
	Run: func(cmd *cobra.Command, args []string) {
		spec, _ := cmd.Flags().GetString("indices")

		var indices []int
		for _, part := range strings.Split(spec, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			i, err := strconv.Atoi(part)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid index %q: %v\n", part, err)
				os.Exit(1)
			}
			indices = append(indices, i)
		}

		bm, err := multikey.NewBitmap(indices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Bitmap: %x\n", bm.Bytes())
		fmt.Printf("Signers: %d\n", bm.Count())
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signature against a key or key set",
	Run: func(cmd *cobra.Command, args []string) {
		keyData := mustHexFlag(cmd, "key")
		message := mustHexFlag(cmd, "message")
		sigData := mustHexFlag(cmd, "signature")
		multi, _ := cmd.Flags().GetBool("multi")

		var verified bool
		if multi {
			mk, err := multikey.ParseMultiKey(keyData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			sig, err := multikey.ParseMultiKeySignature(sigData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			verified = mk.VerifySignature(message, sig)
		} else {
			key, err := multikey.ParseAnyPublicKey(keyData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			sig, err := multikey.ParseAnySignature(sigData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			verified = key.VerifySignature(message, sig)
		}

		fmt.Printf("Verified: %t\n", verified)
		if !verified {
			os.Exit(1)
		}
	},
}

func init() {
	inspectCmd.Flags().StringP("data", "d", "", "Canonical encoding (hex)")
	inspectCmd.MarkFlagRequired("data")

	deriveCmd.Flags().StringP("key", "k", "", "Canonical key encoding (hex)")
	deriveCmd.Flags().Bool("multi", false, "Treat the key as a threshold key set")
	deriveCmd.MarkFlagRequired("key")

	bitmapCmd.Flags().StringP("indices", "i", "", "Comma-separated signer indices")
	bitmapCmd.MarkFlagRequired("indices")

	verifyCmd.Flags().StringP("key", "k", "", "Canonical key encoding (hex)")
	verifyCmd.Flags().StringP("message", "m", "", "Message (hex)")
	verifyCmd.Flags().StringP("signature", "s", "", "Canonical signature encoding (hex)")
	verifyCmd.Flags().Bool("multi", false, "Verify against a threshold key set")
	verifyCmd.MarkFlagRequired("key")
	verifyCmd.MarkFlagRequired("message")
	verifyCmd.MarkFlagRequired("signature")
}

func mustHexFlag(cmd *cobra.Command, name string) []byte {
	value, _ := cmd.Flags().GetString(name)
	value = strings.TrimPrefix(value, "0x")

	data, err := hex.DecodeString(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid %s hex: %v\n", name, err)
		os.Exit(1)
	}
	return data
}
