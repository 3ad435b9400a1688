package cli

import (
	"fmt"
	"io"

	"paritygen/internal/encoding"
	"paritygen/internal/errors"
	"paritygen/internal/log"
	"paritygen/internal/parity"
	"paritygen/internal/stream"
	"paritygen/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

var oddCmd = &cobra.Command{
	Use:   "odd [XX ...]",
	Short: "Add odd parity to the given bytes",
	Long: `Add an odd parity bit after every byte and repack 8 bytes into 9.
The number of bytes must be a multiple of 8.

Examples:
  paritygen odd F7 21 73 98 BD 96 75 6B
  echo "00 00 00 00 00 00 00 00" | paritygen odd --plain
  paritygen odd -i payload.bin -o payload.par`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPack(cmd, args, parity.Odd)
	},
}

var evenCmd = &cobra.Command{
	Use:   "even [XX ...]",
	Short: "Add even parity to the given bytes",
	Long: `Add an even parity bit after every byte and repack 8 bytes into 9.
The number of bytes must be a multiple of 8.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPack(cmd, args, parity.Even)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [XX ...]",
	Short: "Remove parity from the given bytes",
	Long: `Strip the parity bit that follows every byte, repacking 9 bytes into 8.
The number of bytes must be a multiple of 9. Parity is not checked unless
--check is given, and even then the bytes are still printed.`,
	RunE: runRemove,
}

// remove flags
var removeCheck string

func init() {
	rootCmd.AddCommand(oddCmd, evenCmd, removeCmd)
	removeCmd.Flags().StringVar(&removeCheck, "check", "", "Report bytes whose parity does not match odd or even")
}

func codecFromFlags() encoding.Codec {
	return encoding.NewCodec(flagWorkers)
}

func runPack(cmd *cobra.Command, args []string, m parity.Mode) error {
	if flagInput != "" {
		return runFile(cmd, args, stream.Options{Direction: stream.DirPack, Mode: m})
	}

	input, err := readInputBytes(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result, err := codecFromFlags().Pack(input, m)
	if errors.IsInvalidLength(err) {
		return errors.Wrap(err, "you have to enter numbers in multiples of 8")
	}
	if err != nil {
		return err
	}

	log.Info("parity added", log.String("mode", m.String()), log.Int("bytes", len(input)))
	return printResult(cmd.OutOrStdout(), input, result)
}

func runRemove(cmd *cobra.Command, args []string) error {
	var check *parity.Mode
	if removeCheck != "" {
		m, err := parity.ParseMode(removeCheck)
		if err != nil {
			return err
		}
		check = &m
	}

	if flagInput != "" {
		if check != nil {
			return fmt.Errorf("--check cannot be combined with --input")
		}
		return runFile(cmd, args, stream.Options{Direction: stream.DirUnpack})
	}

	input, err := readInputBytes(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result, err := codecFromFlags().Unpack(input)
	if errors.IsInvalidLength(err) {
		return errors.Wrap(err, "you sure you entered enough numbers? (need a multiple of 9)")
	}
	if err != nil {
		return err
	}

	if check != nil {
		bad, err := encoding.Verify(input, *check)
		if err != nil {
			return err
		}
		if len(bad) > 0 {
			rep := NewReporter(cmd.ErrOrStderr(), flagQuiet)
			rep.PrintWarning("%d byte(s) fail %s parity at index %v", len(bad), *check, bad)
		}
	}

	log.Info("parity removed", log.Int("bytes", len(input)))
	return printResult(cmd.OutOrStdout(), input, result)
}

// printResult writes the echo and result lines in the tool's classic layout,
// or only the result with --plain.
func printResult(w io.Writer, input, result []byte) error {
	if flagPlain {
		fmt.Fprintln(w, util.FormatHex(result))
	} else {
		fmt.Fprintf(w, "\n\tUser Input: %s\n", util.FormatHex(input))
		fmt.Fprintf(w, "\tResult:     %s\n", util.FormatHex(result))
	}

	if flagDigest {
		sum := blake2b.Sum256(result)
		if flagPlain {
			fmt.Fprintf(w, "%x\n", sum)
		} else {
			fmt.Fprintf(w, "\tBLAKE2b:    %x\n", sum)
		}
	}

	if !flagPlain {
		fmt.Fprintln(w)
	}
	return nil
}
