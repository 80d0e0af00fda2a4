package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claimsift/claimsift/internal/model"
	"github.com/claimsift/claimsift/internal/server"
)

var (
	serveAddr         string
	serveRatePerMin   int
	classifierBackend string
	classifierModel   string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the misinformation analysis HTTP API",
	Long: `Serve starts the HTTP API consumed by the browser extension.

POST /analyze takes {"content": "..."} and returns the full analysis
report: document classification summary, document checkworthiness, and
per-sentence fact-check and checkworthiness signals. Every request past
input validation returns a complete report; failed provider signals are
replaced by fallback estimates.

Example:
  claimsift serve
  claimsift serve --addr :9000 --rate 20
  claimsift serve --classifier openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().IntVar(&serveRatePerMin, "rate", 10, "per-client requests per minute on /analyze")
	serveCmd.Flags().StringVar(&classifierBackend, "classifier", "huggingface", "classifier backend (huggingface, openai)")
	serveCmd.Flags().StringVar(&classifierModel, "classifier-model", "", "classifier model name (backend default if empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Addr = serveAddr
	cfg.Server.RequestsPerMinute = serveRatePerMin
	cfg.Classifier.Backend = classifierBackend
	if classifierModel != "" {
		cfg.Classifier.Model = classifierModel
	}
	cfg.Output.Verbose = verbose

	if err := loadProviderKeys(cfg); err != nil {
		return err
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(analyzer, cfg.Server)

	fmt.Fprintf(os.Stderr, "Starting claimsift API on %s\n", cfg.Server.Addr)
	fmt.Fprintf(os.Stderr, "Classifier backend: %s\n", cfg.Classifier.Backend)

	return srv.Run(cfg.Server.Addr)
}
