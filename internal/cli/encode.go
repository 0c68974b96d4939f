package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	binarycodec "github.com/LeJamon/goXRPLd/internal/codec/binary-codec"
)

var (
	encodeTxFile    string
	encodeForSign   bool
	encodeForSignIn bool
)

// encodeCmd serializes a transaction JSON document into its canonical
// binary hex encoding.
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Serialize a transaction JSON document to canonical binary hex",
	Long: `Reads a transaction in JSON form (from --tx or stdin) and prints its
canonical binary encoding as hex, the same bytes that are hashed or signed
on the XRP Ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readEncodeInput()
		if err != nil {
			return err
		}

		forSigning := cfg.ForSigning
		if encodeForSignIn {
			forSigning = encodeForSign
		}

		hexOut, err := binarycodec.SerializeTx(string(raw), forSigning)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		if cfg.OutputCase == "lower" {
			hexOut = strings.ToLower(hexOut)
		}
		fmt.Println(hexOut)
		return nil
	},
}

func readEncodeInput() ([]byte, error) {
	if encodeTxFile != "" {
		return os.ReadFile(encodeTxFile)
	}
	return io.ReadAll(os.Stdin)
}

// decodeCmd parses a canonical binary hex encoding back into transaction JSON.
var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Parse a canonical binary hex encoding back into transaction JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := binarycodec.Decode(args[0])
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		out, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeTxFile, "tx", "", "path to a transaction JSON file (default: read from stdin)")
	encodeCmd.Flags().BoolVar(&encodeForSign, "for-signing", true, "emit only the signing form of the transaction")
	encodeCmd.PreRun = func(cmd *cobra.Command, args []string) {
		encodeForSignIn = cmd.Flags().Changed("for-signing")
	}

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
