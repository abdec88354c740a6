package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/presspilot/presspilot/internal/match"
	"github.com/presspilot/presspilot/internal/web"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PressPilot landing page and lead flow",
	Long: `Serve runs the web server: the marketing landing page with the
lead form, and per-visitor lead sessions with journalist cards and
outreach drafts.

API keys are read from the environment (or a .env file in the working
directory):
  OPENAI_API_KEY, ANTHROPIC_API_KEY, OLLAMA_BASE_URL

Example:
  presspilot serve
  presspilot serve --port 8080 --llm-provider anthropic`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "4100", "port to listen on")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the match-result cache")

	// LLM flags
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Deployments commonly keep API keys in a .env next to the binary
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded .env")
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	port := servePort
	if port != "" && port[0] != ':' {
		port = ":" + port
	}
	cfg.Server.Port = port

	service, err := match.NewService(cfg)
	if err != nil {
		return err
	}

	server, err := web.NewServer(cfg, service)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	return server.ListenAndServe()
}
