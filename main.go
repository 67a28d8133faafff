// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cybrota/avlviz/avl"
	"github.com/cybrota/avlviz/commands"
	"github.com/spf13/cobra"
)

// policyFlag overrides tree.insert_policy from the config file when set.
var policyFlag string

// loadSettings reads the config file and applies the --policy flag. A broken
// config file stops the command instead of silently changing the policy.
func loadSettings() (*Config, avl.InsertPolicy, error) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return nil, 0, fmt.Errorf("%w (run 'avlviz settings' to see the expected keys)", err)
	}

	policy := config.Policy()
	if policyFlag != "" {
		policy, err = avl.ParseInsertPolicy(policyFlag)
		if err != nil {
			return nil, 0, err
		}
	}
	return config, policy, nil
}

// redirectLog sends the standard logger to the configured file while a
// full-screen UI owns the terminal. The returned func restores stderr.
func redirectLog(config *Config) func() {
	f, err := os.OpenFile(config.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// newSeededTree builds a tree and inserts any key files given as arguments.
func newSeededTree(policy avl.InsertPolicy, files []string) (*avl.Tree, error) {
	tree := avl.NewWithPolicy(policy)
	for _, path := range files {
		if _, err := loadKeyFile(tree, path, false); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func runShell(files []string) error {
	config, policy, err := loadSettings()
	if err != nil {
		return err
	}
	tree, err := newSeededTree(policy, files)
	if err != nil {
		return err
	}

	restore := redirectLog(config)
	defer restore()
	return runBubbleTeaApp(tree, config)
}

func printLoadReport(w io.Writer, path string, report LoadReport) {
	fmt.Fprintf(w, "%s: read=%d stored=%s%d%s discarded=%d repeated=%d invalid=%d\n",
		path, report.Read, Green, report.Stored, Reset, report.Discarded, report.Repeated, report.Invalid)
	if report.Invalid > 0 {
		fmt.Fprintf(w, "  %s%d tokens skipped, see the log for line numbers%s\n", Warning, report.Invalid, Reset)
	}
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗    ██╗   ██╗██╗███████╗
██╔══██╗██║   ██║██║    ██║   ██║██║╚══███╔╝
███████║██║   ██║██║    ██║   ██║██║  ███╔╝
██╔══██║╚██╗ ██╔╝██║    ╚██╗ ██╔╝██║ ███╔╝
██║  ██║ ╚████╔╝ ███████╗╚████╔╝ ██║███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝ ╚═══╝  ╚═╝╚══════╝
Self-balancing AVL tree explorer for the terminal [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run [key-file...]",
		Short: "Launches the interactive AVL shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive shell, optionally seeded from key files`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(args)
		},
	}

	var cmdClassic = &cobra.Command{
		Use:   "classic [key-file...]",
		Short: "Launches the classic dashboard viewer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Classic opens the termui dashboard with a live clock and tree statistics`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, policy, err := loadSettings()
			if err != nil {
				return err
			}
			tree, err := newSeededTree(policy, args)
			if err != nil {
				return err
			}

			restore := redirectLog(config)
			defer restore()
			run(avl.NewGuarded(tree), config)
			return nil
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load <key-file>...",
		Short: "Insert keys from files and print the resulting tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads whitespace separated integers (# starts a comment) and inserts them in file order`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, policy, err := loadSettings()
			if err != nil {
				return err
			}
			showBalance, _ := cmd.Flags().GetBool("balance")
			quiet, _ := cmd.Flags().GetBool("quiet")

			tree := avl.NewWithPolicy(policy)
			for _, path := range args {
				report, err := loadKeyFile(tree, path, !quiet)
				if err != nil {
					return err
				}
				printLoadReport(cmd.OutOrStdout(), path, report)
			}
			return tree.Print(cmd.OutOrStdout(), showBalance)
		},
	}
	cmdLoad.Flags().BoolP("balance", "b", false, "show balance factors")
	cmdLoad.Flags().BoolP("quiet", "q", false, "hide the progress bar")

	var cmdExec = &cobra.Command{
		Use:   "exec <script>",
		Short: "Run a file of tree commands",
		Long: fmt.Sprintf("%s\n%s%s", asciiLogo, `Exec runs one command per line, for example "insert 5 3 8" or "delete 3". Verbs: `,
			strings.Join(commands.NewManager().Verbs(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, policy, err := loadSettings()
			if err != nil {
				return err
			}
			keepGoing, _ := cmd.Flags().GetBool("keep-going")

			tree := avl.NewWithPolicy(policy)
			n, err := runScriptFile(tree, commands.NewManager(), args[0], cmd.OutOrStdout(), keepGoing)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s%d commands executed%s\n", Info, n, Reset)
			return err
		},
	}
	cmdExec.Flags().BoolP("keep-going", "k", false, "continue after a failing line")

	var cmdPrint = &cobra.Command{
		Use:   "print <key>...",
		Short: "Insert keys and print the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Print inserts the given keys in order and prints the tree sideways, root on the left"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, policy, err := loadSettings()
			if err != nil {
				return err
			}
			keys, err := commands.ParseKeys(args)
			if err != nil {
				return err
			}
			showBalance, _ := cmd.Flags().GetBool("balance")
			keysOnly, _ := cmd.Flags().GetBool("keys")
			copyOut, _ := cmd.Flags().GetBool("copy")

			tree := avl.NewWithPolicy(policy)
			for _, k := range keys {
				tree.Insert(k)
			}

			var sb strings.Builder
			if keysOnly {
				sb.WriteString(strings.Trim(fmt.Sprint(tree.Keys()), "[]"))
				sb.WriteString("\n")
			} else if err := tree.Print(&sb, showBalance); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), sb.String())
			if copyOut {
				return copyToClipboard(sb.String())
			}
			return nil
		},
	}
	cmdPrint.Flags().BoolP("balance", "b", false, "show balance factors")
	cmdPrint.Flags().Bool("keys", false, "print keys in order instead of the tree")
	cmdPrint.Flags().BoolP("copy", "c", false, "copy the output to the clipboard")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Display current avlviz configuration and create a default config file if none exists"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlviz usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlviz usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlviz version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlviz",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive shell when no subcommand is provided
			return runShell(nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "insertion policy: literal or ordered (overrides config)")
	rootCmd.AddCommand(cmdRun, cmdClassic, cmdLoad, cmdExec, cmdPrint, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
