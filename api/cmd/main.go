package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	rpcclient "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/api"
)

func main() {
	host := flag.String("host", getEnv("API_HOST", "0.0.0.0"), "listen address")
	port := flag.String("port", getEnv("API_PORT", "5000"), "listen port")
	chainID := flag.String("chain-id", getEnv("CHAIN_ID", "veris-1"), "chain id reported by /health")
	nodeURI := flag.String("node", getEnv("NODE_URI", "tcp://localhost:26657"), "node RPC endpoint")
	corsOrigins := flag.String("cors-origins", getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), "comma separated allowed origins")
	rateLimit := flag.Int("rate-limit", 100, "per-IP requests per second")
	environment := flag.String("environment", getEnv("ENVIRONMENT", "testnet"), "deployment environment tag")
	tracing := flag.Bool("tracing", os.Getenv("TRACING_ENABLED") == "true", "enable OTLP trace export")
	otlpEndpoint := flag.String("otlp-endpoint", getEnv("OTLP_ENDPOINT", "localhost:4318"), "OTLP/HTTP collector endpoint")
	sampleRate := flag.Float64("trace-sample-rate", 0.1, "trace sampling ratio between 0 and 1")
	flag.Parse()

	// Configure SDK
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount("veris", "verispub")
	config.SetBech32PrefixForValidator("verisvaloper", "verisvaloperpub")
	config.SetBech32PrefixForConsensusNode("verisvalcons", "verisvalconspub")
	config.Seal()

	// Create codec
	interfaceRegistry := types.NewInterfaceRegistry()
	marshaler := codec.NewProtoCodec(interfaceRegistry)

	rpcClient, err := rpcclient.New(*nodeURI, "/websocket")
	if err != nil {
		log.Fatalf("Failed to create RPC client: %v", err)
	}

	// Create client context
	clientCtx := client.Context{}.
		WithCodec(marshaler).
		WithInterfaceRegistry(interfaceRegistry).
		WithLegacyAmino(codec.NewLegacyAmino()).
		WithInput(os.Stdin).
		WithOutput(os.Stdout).
		WithChainID(*chainID).
		WithNodeURI(*nodeURI).
		WithClient(rpcClient)

	// Create server config
	serverConfig := api.DefaultConfig()
	serverConfig.Host = *host
	serverConfig.Port = *port
	serverConfig.ChainID = *chainID
	serverConfig.NodeURI = *nodeURI
	serverConfig.CORSOrigins = strings.Split(*corsOrigins, ",")
	serverConfig.RateLimitRPS = *rateLimit
	serverConfig.Environment = *environment
	serverConfig.TelemetryEnabled = *tracing
	serverConfig.OTLPEndpoint = *otlpEndpoint
	serverConfig.TraceSampleRate = *sampleRate

	// Create and start server
	server, err := api.NewServer(clientCtx, serverConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Println("╔═══════════════════════════════════════════════════╗")
	fmt.Println("║            Veris Oracle Gateway                   ║")
	fmt.Println("╚═══════════════════════════════════════════════════╝")
	fmt.Printf("\nServer Configuration:\n")
	fmt.Printf("  - Host: %s\n", serverConfig.Host)
	fmt.Printf("  - Port: %s\n", serverConfig.Port)
	fmt.Printf("  - Chain ID: %s\n", serverConfig.ChainID)
	fmt.Printf("  - Node URI: %s\n", serverConfig.NodeURI)
	fmt.Printf("\nAPI Endpoints:\n")
	fmt.Printf("  - Health: http://%s:%s/health\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Metrics: http://%s:%s/metrics\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Params: http://%s:%s/api/params\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Registry: http://%s:%s/api/registry\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Feeds: http://%s:%s/api/feeds/{authority}/{name}\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("\nPress Ctrl+C to stop the server\n\n")

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
