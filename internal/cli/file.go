package cli

import (
	"bufio"
	"context"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"paritygen/internal/errors"
	"paritygen/internal/stream"
	"paritygen/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

// packedExt is appended to packed files and stripped on removal.
const packedExt = ".par"

// defaultOutput derives an output path from the input path.
func defaultOutput(input string, dir stream.Direction) string {
	if dir == stream.DirPack {
		return input + packedExt
	}
	if strings.HasSuffix(input, packedExt) {
		return strings.TrimSuffix(input, packedExt)
	}
	return input + ".raw"
}

// confirmOverwrite asks on the command's stdin whether an existing output
// file may be replaced.
func confirmOverwrite(cmd *cobra.Command, path string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Output file %s already exists. Overwrite? [y/N]: ", path)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		return errors.Wrap(errors.ErrFileExists, path)
	}
	return nil
}

// runFile streams --input through the codec into --output.
func runFile(cmd *cobra.Command, args []string, opts stream.Options) error {
	if len(args) > 0 {
		return fmt.Errorf("hex bytes cannot be combined with --input")
	}

	info, err := os.Stat(flagInput)
	if err != nil {
		return errors.NewFileError("stat", flagInput, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input is a directory: %s", flagInput)
	}

	output := flagOutput
	if output == "" {
		output = defaultOutput(flagInput, opts.Direction)
	}
	if output == flagInput {
		return fmt.Errorf("output must differ from input: %s", output)
	}
	if _, err := os.Stat(output); err == nil && !flagYes {
		if err := confirmOverwrite(cmd, output); err != nil {
			return err
		}
	}

	fin, err := os.Open(flagInput)
	if err != nil {
		return errors.NewFileError("open", flagInput, err)
	}
	defer fin.Close()

	fout, err := os.Create(output)
	if err != nil {
		return errors.NewFileError("create", output, err)
	}

	reporter := NewReporter(cmd.ErrOrStderr(), flagQuiet)
	opts.Codec = codecFromFlags()
	opts.Total = info.Size()
	opts.Reporter = reporter

	var sink io.Writer = fout
	var digest hash.Hash
	if flagDigest {
		digest, _ = blake2b.New256(nil)
		sink = io.MultiWriter(fout, digest)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := stream.Convert(ctx, sink, fin, opts)
	reporter.Finish()
	if cerr := fout.Close(); cerr != nil && err == nil {
		err = errors.NewFileError("write", output, cerr)
	}
	if err != nil {
		// Clean up partial output on error
		_ = os.Remove(output)
		return err
	}

	reporter.PrintSuccess("%s: %s -> %s (%s)", opts.Direction, flagInput, output, util.Sizeify(res.Out))
	if digest != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", digest.Sum(nil), output)
	}
	return nil
}
