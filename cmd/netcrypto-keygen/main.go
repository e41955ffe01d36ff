// Command netcrypto-keygen generates an ephemeral X25519 key pair and
// prints the public key, for smoke-testing the RNG path and for
// producing test vectors offline.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxelnet/netcrypto"
)

var encoding string

var rootCmd = &cobra.Command{
	Use:   "netcrypto-keygen",
	Short: "Generate an ephemeral X25519 key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := netcrypto.GenerateEphemeralKeyPair()
		if err != nil {
			return fmt.Errorf("generate key pair: %w", err)
		}
		pub := kp.PublicKey()

		switch encoding {
		case "hex":
			fmt.Println(hex.EncodeToString(pub[:]))
		case "base64":
			fmt.Println(base64.StdEncoding.EncodeToString(pub[:]))
		default:
			return fmt.Errorf("unknown encoding %q, want hex or base64", encoding)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&encoding, "encoding", "hex", "output encoding for the public key (hex, base64)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
