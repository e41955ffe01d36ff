// Command netcrypto-srptool creates and inspects SRP verifier records and
// legacy password hashes, the offline account-administration counterpart
// to the handshake's online SRP authentication.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxelnet/netcrypto/auth"
)

var rootCmd = &cobra.Command{
	Use:   "netcrypto-srptool",
	Short: "Create and inspect SRP verifier records",
}

var createCmd = &cobra.Command{
	Use:   "create <name> <password>",
	Short: "Generate a salted SRP verifier record for name and password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := auth.GetEncoded(args[0], args[1])
		if err != nil {
			return fmt.Errorf("create verifier: %w", err)
		}
		fmt.Println(encoded)
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <record>",
	Short: "Parse a verifier record and print its salt and verifier in hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verifier, salt, ok := auth.Decode(args[0])
		if !ok {
			return fmt.Errorf("%q is not a valid verifier record", args[0])
		}
		fmt.Printf("salt=%x\n", salt)
		fmt.Printf("verifier=%x\n", verifier)
		return nil
	},
}

var legacyCmd = &cobra.Command{
	Use:   "legacy-hash <name> <password>",
	Short: "Compute the legacy SHA1-based password hash for name and password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(auth.TranslatePassword(args[0], args[1]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd, decodeCmd, legacyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
