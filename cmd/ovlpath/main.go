// Command ovlpath exposes the pathname library on the command line, for
// composing and decomposing overlay pathnames in scripts without shelling
// out to realpath or touching the filesystem.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zhangyi089/overlayfs-progs/lib/pathname"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ovlpath",
	Short: "Join and split pathname strings",
	Long: `Join and split pathname strings purely in memory.

No path is resolved against the filesystem: ".." segments, interior "./"
and duplicate slashes are carried through untouched.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <path> <name>",
	Short: "Join a base directory and a name into a pathname",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		joined := pathname.Join(args[0], args[1])
		logrus.WithFields(logrus.Fields{
			"path": args[0],
			"name": args[1],
		}).Debugf("joined to %q", joined)
		fmt.Println(joined)
	},
}

var relCmd = &cobra.Command{
	Use:   "rel <path> <dir>",
	Short: "Break a pathname into its name below a base directory",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rel := pathname.RelativeName(args[0], args[1])
		logrus.WithFields(logrus.Fields{
			"path": args[0],
			"dir":  args[1],
		}).Debugf("relative name %q", rel)
		fmt.Println(rel)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
	rootCmd.AddCommand(joinCmd, relCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
