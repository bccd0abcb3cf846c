// Command keylock prompts the operator for a 64-bit key and reports
// whether the lock circuit accepts it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/valsim/keylock"
)

const banner = "keylock: 64-bit key validation"

var (
	grantFmt = color.New(color.FgGreen, color.Bold).SprintFunc()
	denyFmt  = color.New(color.FgRed, color.Bold).SprintFunc()
	warnFmt  = color.New(color.FgYellow).SprintFunc()
)

var keyArg string

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "keylock",
	Short: "Check a 64-bit key against the lock circuit",
	Long: `Feeds a 64-bit key to a simulated digital lock circuit and reports
whether the circuit asserts its unlock output.

The key is given as a hexadecimal number with an optional 0x prefix,
either with the --key flag or on standard input when the flag is
omitted. The exit code is 0 when the lock opens, 1 when it stays
closed and 2 when the input cannot be parsed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = run(cmd.OutOrStdout(), cmd.InOrStdin(), keyArg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&keyArg, "key", "", "key in hexadecimal, e.g. 0x1234abcd (read from stdin when omitted)")
}

// parseKey parses an operator supplied key: an optional 0x or 0X
// prefix followed by 1 to 16 hex digits.
func parseKey(s string) (uint64, error) {
	h := strings.TrimSpace(s)
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if h == "" || len(h) > 16 {
		return 0, errors.Errorf("invalid key %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid key %q", s)
	}
	return v, nil
}

func run(w io.Writer, r io.Reader, key string) int {
	fmt.Fprintln(w, banner)

	if key == "" {
		fmt.Fprint(w, "key: ")
		sc := bufio.NewScanner(r)
		if sc.Scan() {
			key = sc.Text()
		}
		fmt.Fprintln(w)
	}

	k, err := parseKey(key)
	if err != nil {
		// operator typo, not a fault: report and move on
		fmt.Fprintln(w, warnFmt("wrong input"))
		return 2
	}
	if keylock.Evaluate(k) {
		fmt.Fprintln(w, grantFmt("access granted"))
		return 0
	}
	fmt.Fprintln(w, denyFmt("access denied"))
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
