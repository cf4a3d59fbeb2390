package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/server"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	logfile   string
	verbosity int
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "publicpath",
		Short:         "Language server completing public asset paths in src attributes",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}
	root.PersistentFlags().StringVar(&logfile, "logfile", "", "Path to log file (default stderr)")
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")

	serve := newServeCommand()
	root.AddCommand(serve, newCompleteCommand(), newVersionCommand())

	// Editors start the binary without arguments.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func configureLogging() {
	var path *string
	if logfile != "" {
		path = &logfile
	}
	// Logger used by glsp
	commonlog.Configure(verbosity, path)
}

func newServeCommand() *cobra.Command {
	var transport, address string
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the language server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Give it some cores
			runtime.GOMAXPROCS(4)

			s := server.NewServer(debug)
			switch transport {
			case "stdio":
				return s.RunStdio()
			case "tcp":
				return s.RunTCP(address)
			case "websocket":
				return s.RunWebSocket(address)
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport: stdio, tcp or websocket")
	cmd.Flags().StringVar(&address, "address", "127.0.0.1:7998", "Listen address for tcp and websocket")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log every protocol message")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the program",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "publicpath LSP server version %s\n", server.Version)
		},
	}
}
