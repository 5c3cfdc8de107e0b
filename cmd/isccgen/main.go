package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iscc-community/iscc-core-go/internal/api"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/generators"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/source"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		os.Args = append(os.Args, "serve")
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "compose":
		runCompose(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "serve":
		runServer()
	case "version":
		printVersion()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Available commands: generate, compose, decode, serve, version")
		os.Exit(1)
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := api.NewServer(cfg)

	log.Printf("isccgen %s starting on port %s", Version, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case <-sigCh:
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server shutdown failed: %v", err)
		}
	}
}

// runGenerate dispatches `isccgen generate <kind> <path|->` where kind is
// one of meta, text, data, instance. A --s3 <bucket>/<key> pair in place of
// the path opens the object remotely instead of reading a local path.
func runGenerate(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: isccgen generate <meta|text|data|instance> [path|- | --s3 bucket/key]")
	}
	kind := args[0]
	rest := args[1:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	switch kind {
	case "meta":
		if len(rest) < 1 {
			log.Fatal("usage: isccgen generate meta <name> [description]")
		}
		name := rest[0]
		var description any
		if len(rest) > 1 {
			description = rest[1]
		}
		result, err := generators.GenMetaCode(name, description, cfg.Engine.MetaBits, &cfg.Engine)
		if err != nil {
			log.Fatalf("generate meta: %v", err)
		}
		printJSON(map[string]any{"iscc": result.Code.Code(), "metahash": result.MetaHash})
	case "text":
		text, err := readSource(rest, cfg)
		if err != nil {
			log.Fatalf("generate text: %v", err)
		}
		defer text.Close()
		data, err := io.ReadAll(text)
		if err != nil {
			log.Fatalf("generate text: %v", err)
		}
		result, err := generators.GenTextCode(string(data), cfg.Engine.TextBits, &cfg.Engine)
		if err != nil {
			log.Fatalf("generate text: %v", err)
		}
		printJSON(map[string]any{"iscc": result.Code.Code(), "characters": result.Characters})
	case "data":
		rc, err := readSource(rest, cfg)
		if err != nil {
			log.Fatalf("generate data: %v", err)
		}
		defer rc.Close()
		result, err := generators.GenDataCode(rc, cfg.Engine.DataBits, &cfg.Engine)
		if err != nil {
			log.Fatalf("generate data: %v", err)
		}
		printJSON(map[string]any{"iscc": result.Code.Code()})
	case "instance":
		rc, err := readSource(rest, cfg)
		if err != nil {
			log.Fatalf("generate instance: %v", err)
		}
		defer rc.Close()
		result, err := generators.GenInstanceCode(rc, cfg.Engine.InstanceBits, &cfg.Engine)
		if err != nil {
			log.Fatalf("generate instance: %v", err)
		}
		printJSON(map[string]any{"iscc": result.Code.Code(), "datahash": result.DataHash, "filesize": result.FileSize})
	default:
		log.Fatalf("unknown generate kind: %s", kind)
	}
}

// readSource resolves a "-" (stdin), a local file path, or a "--s3
// bucket/key" pair into a single io.ReadCloser.
func readSource(args []string, cfg *config.Config) (io.ReadCloser, error) {
	if len(args) >= 2 && args[0] == "--s3" {
		bucket, key, ok := strings.Cut(args[1], "/")
		if !ok {
			return nil, fmt.Errorf("--s3 argument must be bucket/key")
		}
		ctx := context.Background()
		src, err := source.NewS3Source(ctx, bucket, source.S3Config{
			Region:       cfg.Remote.Region,
			Endpoint:     cfg.Remote.Endpoint,
			UsePathStyle: cfg.Remote.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		rc, _, err := src.Open(ctx, key)
		return rc, err
	}
	if len(args) < 1 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func runCompose(args []string) {
	if len(args) < 2 {
		log.Fatal("usage: isccgen compose <iscc> <iscc> [iscc...]")
	}
	units := make([]isccid.Code, len(args))
	for i, text := range args {
		code, err := isccid.FromText(text)
		if err != nil {
			log.Fatalf("compose: unit %d: %v", i, err)
		}
		units[i] = code
	}
	composite, err := isccid.ComposeISCC(units...)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}
	printJSON(map[string]any{"iscc": composite.Code()})
}

func runDecode(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: isccgen decode <iscc>")
	}
	code, err := isccid.FromText(args[0])
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	resp := map[string]any{
		"iscc":    code.Code(),
		"type_id": code.TypeID(),
		"explain": code.Explain(),
	}
	if code.MainType().String() == "ISCC" {
		units, err := isccid.DecomposeISCC(code)
		if err == nil {
			decoded := make([]string, len(units))
			for i, u := range units {
				decoded[i] = u.Code()
			}
			resp["units"] = decoded
		}
	}
	printJSON(resp)
}

func printVersion() {
	fmt.Printf("isccgen %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
}

func printJSON(v map[string]any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
