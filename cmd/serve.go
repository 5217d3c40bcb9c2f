package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/aslandrive/aslandrive/api"
	"github.com/aslandrive/aslandrive/database"
	"github.com/aslandrive/aslandrive/utils"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to MD_PROVIDER_ADDR or :8000)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the market data REST API",
	Long: `Serve the market data REST API.

Endpoints:
  GET /health            service and data freshness status
  GET /symbols           active symbol metadata
  GET /ohlcv/{symbol}    daily bars, with optional start, end and limit

Examples:
  aslandrive serve                 # listen on :8000
  aslandrive serve --addr :9090    # custom listen address
`,
	Run: func(cmd *cobra.Command, args []string) {
		utils.LoadEnv()
		addr := serveAddr
		if addr == "" {
			addr = utils.Getenv("MD_PROVIDER_ADDR", ":8000")
		}

		pool, err := database.GetPool()
		if err != nil {
			fmt.Println("❌ Connecting to database:", err)
			os.Exit(1)
		}
		defer database.ClosePool()

		server := api.NewServer(pool)
		log.Printf("🚀 Market data API listening on %s", addr)
		if err := http.ListenAndServe(addr, server.Router()); err != nil {
			fmt.Println("❌ Server stopped:", err)
			os.Exit(1)
		}
	},
}
