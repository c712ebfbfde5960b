// keccaksum is a very basic checksum command, generalized from the
// teacher's single-purpose cmd/shakesum to the four Keccak presets this
// module implements. It sits outside the core: the hash façade itself never
// does I/O or logging.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coruus/go-keccak/keccak"
)

var verbose bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keccaksum",
		Short: "Compute original-Keccak digests (not SHA-3/SHAKE) of files or stdin",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log file errors to stderr")

	root.AddCommand(
		sumCmd("224", keccak.New224),
		sumCmd("256", keccak.New256),
		sumCmd("384", keccak.New384),
		sumCmd("512", keccak.New512),
	)
	return root
}

func sumCmd(suffix string, newDigest func() *keccak.Digest) *cobra.Command {
	return &cobra.Command{
		Use:   "sum" + suffix + " [file...]",
		Short: "Print Keccak-" + suffix + " digests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				sum, err := sumReader(newDigest(), os.Stdin)
				if err != nil {
					return err
				}
				fmt.Println(sum)
				return nil
			}
			failed := false
			for _, filename := range args {
				sum, err := sumFile(newDigest(), filename)
				if err != nil {
					failed = true
					if verbose {
						logrus.WithError(err).WithField("file", filename).Error("keccaksum: read failed")
					}
					fmt.Fprintf(os.Stderr, "keccaksum: %s: %s\n", filename, err)
					continue
				}
				fmt.Printf("%s  %s\n", sum, filename)
			}
			if failed {
				return fmt.Errorf("one or more files could not be summed")
			}
			return nil
		},
	}
}

func sumFile(d *keccak.Digest, filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return sumReader(d, f)
}

func sumReader(d *keccak.Digest, r io.Reader) (string, error) {
	if _, err := io.Copy(d, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(d.Digest()), nil
}
