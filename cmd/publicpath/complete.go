package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/completion"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/config"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/project"
	"github.com/spf13/cobra"
)

type completeOptions struct {
	root       string
	file       string
	configPath string
	line       int
	column     int
	asJSON     bool
}

func newCompleteCommand() *cobra.Command {
	opts := completeOptions{}

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Print the candidates for one cursor position in a file",
		Long: `Runs the completion pipeline once over a file on disk. The column is a
0-based byte offset; a negative column means the end of the line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.root, "root", ".", "Project root")
	cmd.Flags().StringVar(&opts.file, "file", "", "File to complete in")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&opts.line, "line", 0, "0-based line of the cursor")
	cmd.Flags().IntVar(&opts.column, "column", -1, "0-based byte column of the cursor")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print candidates as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, err
	}
	defer f.Close()
	return config.LoadFromYAML(f)
}

func runComplete(out io.Writer, opts completeOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(opts.root)
	if err != nil {
		return err
	}
	p, err := project.Detect(root, cfg.PublicDir, cfg.ConfigFiles)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings(p.AssetRoot)
	if err != nil {
		return err
	}
	pipeline, err := completion.NewPipeline(settings)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return err
	}
	doc := document.New(string(data))
	pos := document.Position{Line: opts.line, Column: opts.column}
	if pos.Column < 0 {
		pos.Column = len(doc.Line(pos.Line))
	}

	candidates := pipeline.Provide(doc, pos)
	if opts.asJSON {
		return writeJSON(out, candidates)
	}
	for _, c := range candidates {
		fmt.Fprintf(out, "%s\t%s\n", c.Kind, c.InsertText)
	}
	return nil
}

type candidateJSON struct {
	Label      string `json:"label"`
	Kind       string `json:"kind"`
	InsertText string `json:"insertText"`
	Retrigger  bool   `json:"retrigger"`
}

func writeJSON(out io.Writer, candidates []completion.Candidate) error {
	items := make([]candidateJSON, len(candidates))
	for i, c := range candidates {
		items[i] = candidateJSON{
			Label:      c.Label,
			Kind:       c.Kind.String(),
			InsertText: c.InsertText,
			Retrigger:  c.Continue,
		}
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}
