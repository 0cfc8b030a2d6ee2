// Command apicall performs a single HTTP API request using configuration
// from flags, config files and APICALL_* environment variables.
//
// Credentials are never taken on the command line: depending on -auth,
// they are read from APICALL_USERNAME/APICALL_PASSWORD, APICALL_TOKEN or
// APICALL_API_KEY.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/restfold/apikit/apiclient"
	"github.com/restfold/apikit/config"
	"github.com/restfold/apikit/logger"
)

var (
	configFile  = flag.String("config", "", "YAML config file path")
	envFile     = flag.String("env-file", "", ".env file path")
	baseURL     = flag.String("base-url", "", "base URL (overrides config)")
	timeout     = flag.Duration("timeout", 0, "request timeout (overrides config)")
	endpoint    = flag.String("endpoint", "/", "endpoint path")
	method      = flag.String("method", "GET", "HTTP method")
	accept      = flag.String("accept", "", "Accept header value")
	contentType = flag.String("content-type", "", "Content-Type header value")
	data        = flag.String("data", "", "request body as a JSON document")
	authKind    = flag.String("auth", "none", "auth scheme: none|basic|jwt|bearer|oauth2|apikey|token")
	requestIDs  = flag.Bool("request-id", false, "stamp requests with X-Request-Id")
)

func main() {
	var query apiclient.Query
	flag.Func("query", "query parameter as key=value (repeatable)", func(s string) error {
		k, v, err := splitPair(s)
		if err != nil {
			return err
		}
		query = query.Add(k, v)
		return nil
	})

	headers := map[string]string{}
	flag.Func("header", "extra header as key=value (repeatable)", func(s string) error {
		k, v, err := splitPair(s)
		if err != nil {
			return err
		}
		headers[k] = v
		return nil
	})

	flag.Parse()

	log := logger.NewFromEnv("apicall")

	var cfg apiclient.Config
	var loadOpts []config.Option
	if *configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(*envFile))
	}
	if err := config.Load("apicall", &cfg, loadOpts...); err != nil {
		log.Fatal("load config", logger.Fields(logger.FieldError, err.Error()))
	}

	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	auth, err := authFromEnv(*authKind)
	if err != nil {
		log.Fatal("auth", logger.Fields(logger.FieldError, err.Error()))
	}
	cfg.Auth = auth

	opts := []apiclient.Option{apiclient.WithLogger(log)}
	if *requestIDs {
		opts = append(opts, apiclient.WithRequestIDs())
	}
	client, err := apiclient.New(cfg, opts...)
	if err != nil {
		log.Fatal("create client", logger.Fields(logger.FieldError, err.Error()))
	}

	var body any
	if *data != "" {
		if err := json.Unmarshal([]byte(*data), &body); err != nil {
			log.Fatal("parse -data", logger.Fields(logger.FieldError, err.Error()))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := client.Do(ctx, apiclient.Request{
		Method:      *method,
		Endpoint:    *endpoint,
		ContentType: *contentType,
		Accept:      *accept,
		Headers:     headers,
		Query:       query,
		Body:        body,
	})
	if err != nil {
		log.Error("request failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}

	printEnvelope(resp)
}

// authFromEnv builds the auth scheme named by kind, reading credentials
// from the environment.
func authFromEnv(kind string) (*apiclient.AuthConfig, error) {
	switch strings.ToLower(kind) {
	case "", "none":
		return nil, nil
	case "basic":
		return apiclient.BasicAuth(os.Getenv("APICALL_USERNAME"), os.Getenv("APICALL_PASSWORD")), nil
	case "jwt":
		return apiclient.JWTAuth(os.Getenv("APICALL_TOKEN")), nil
	case "bearer":
		return apiclient.BearerAuth(os.Getenv("APICALL_TOKEN")), nil
	case "oauth2":
		return apiclient.OAuth2Auth(os.Getenv("APICALL_TOKEN")), nil
	case "apikey":
		return apiclient.APIKeyAuth(os.Getenv("APICALL_API_KEY")), nil
	case "token":
		return apiclient.TokenAuth(os.Getenv("APICALL_TOKEN")), nil
	default:
		return nil, fmt.Errorf("unknown auth scheme %q", kind)
	}
}

func printEnvelope(resp *apiclient.Response) {
	switch data := resp.Data.(type) {
	case nil:
		return
	case string:
		fmt.Println(data)
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Println(string(resp.Body))
			return
		}
		fmt.Println(string(out))
	}
}

func splitPair(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return k, v, nil
}
