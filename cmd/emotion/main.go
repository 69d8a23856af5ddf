// Command emotion scores texts locally and talks to a running analyzerd.
//
//	emotion analyze [-remote] [text...]    score text from args or stdin
//	emotion inspect -chat ID [-limit N]    list stored analyses (read-only)
//	emotion stats -chat ID [-top N]        chat aggregate from analyzerd
//	emotion search -chat ID [-q text] [-min N -max N] [-offset N]
//	emotion blacklist add|remove|list [word...]
//	emotion token -client NAME [-ttl D]    issue a bearer token
package main

import (
	"bufio"
	"context"
	"emotion-lab/alerting"
	"emotion-lab/analyzer"
	"emotion-lab/auth"
	"emotion-lab/domain"
	emotiongrpc "emotion-lab/grpc"
	"emotion-lab/lexicon"
	"emotion-lab/repositories"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

const usage = `usage: emotion <command> [flags]

commands:
  analyze    score text from arguments or stdin
  inspect    list stored analyses of a chat
  stats      show chat statistics from analyzerd
  search     search stored analyses through analyzerd
  blacklist  manage extra censored words (add, remove, list)
  token      issue a bearer token for analyzerd
`

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emotion: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return exitUsage, nil
	}
	config, err := LoadConfig()
	if err != nil {
		return exitUsage, fmt.Errorf("config error: %w", err)
	}
	p := printer{out: stdout, colours: config.Colours}

	command, rest := args[0], args[1:]
	switch command {
	case "analyze":
		err = analyzeCmd(config, p, rest, stdin)
	case "inspect":
		err = inspectCmd(config, p, rest)
	case "stats":
		err = statsCmd(config, p, rest)
	case "search":
		err = searchCmd(config, p, rest)
	case "blacklist":
		err = blacklistCmd(config, p, rest)
	case "token":
		err = tokenCmd(config, p, rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK, nil
	default:
		fmt.Fprint(stdout, usage)
		return exitUsage, fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func analyzeCmd(config Config, p printer, args []string, stdin io.Reader) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	remote := fs.Bool("remote", false, "score through analyzerd instead of locally")
	if err := fs.Parse(args); err != nil {
		return err
	}

	texts, err := readTexts(fs.Args(), stdin)
	if err != nil {
		return err
	}

	if *remote {
		client, closeConn, err := dial(config)
		if err != nil {
			return err
		}
		defer closeConn()
		for _, text := range texts {
			resp, err := client.Analyze(context.Background(), emotiongrpc.AnalyzeRequest{Text: text})
			if err != nil {
				return err
			}
			alerts := lo.Map(resp.Alerts, func(a emotiongrpc.AlertView, _ int) domain.Alert {
				return domain.Alert{Type: a.Type, Tier: a.Tier, Score: a.Score}
			})
			p.Analysis(resp.Result, resp.Tier, alerts)
			fmt.Fprintln(p.out)
		}
		return nil
	}

	a, err := analyzer.New(lexicon.Default(), nil, analyzer.DefaultConfig(), logs.GetLoggerFromLevel(slog.LevelWarn))
	if err != nil {
		return err
	}
	policy := alerting.NewPolicy(alerting.DefaultRules())
	for _, text := range texts {
		result := a.Analyze(text, nil)
		p.Analysis(result, policy.Tier(result), policy.Evaluate(result))
		fmt.Fprintln(p.out)
	}
	return nil
}

// readTexts joins the arguments into one text, or reads one text per stdin line.
func readTexts(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var texts []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no text given")
	}
	return texts, nil
}

func inspectCmd(config Config, p printer, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	dbPath := fs.String("db", config.DB, "path to the badger directory")
	chatID := fs.Int64("chat", 0, "chat id")
	limit := fs.Int("limit", 20, "number of analyses to show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chatID == 0 {
		return fmt.Errorf("-chat is required")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Listing walks badger only: no index writer is needed.
	analyses := repositories.NewAnalysisRepository(db, nil, logs.GetLoggerFromLevel(slog.LevelWarn), limit, 0)
	records, _, err := analyses.ScanByChat(*chatID, nil)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(p.out, "no analysis stored for chat %d\n", *chatID)
		return nil
	}
	p.Records(records)
	return nil
}

func statsCmd(config Config, p printer, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	chatID := fs.Int64("chat", 0, "chat id")
	top := fs.Int("top", 5, "number of riskiest users to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, closeConn, err := dial(config)
	if err != nil {
		return err
	}
	defer closeConn()
	resp, err := client.Stats(authorized(config), emotiongrpc.StatsRequest{ChatID: *chatID, TopRisk: *top})
	if err != nil {
		return err
	}
	p.Stats(resp)
	return nil
}

func searchCmd(config Config, p printer, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	chatID := fs.Int64("chat", 0, "chat id")
	query := fs.String("q", "", "full-text query")
	offset := fs.Int("offset", 0, "results to skip")
	low := fs.Float64("min", 0, "lowest toxicity")
	high := fs.Float64("max", 0, "highest toxicity, enables the toxicity search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, closeConn, err := dial(config)
	if err != nil {
		return err
	}
	defer closeConn()
	resp, err := client.Search(authorized(config), emotiongrpc.SearchRequest{
		ChatID:      *chatID,
		Query:       *query,
		Offset:      *offset,
		MinToxicity: *low,
		MaxToxicity: *high,
	})
	if err != nil {
		return err
	}
	p.SearchResults(resp)
	return nil
}

func blacklistCmd(config Config, p printer, args []string) error {
	fs := flag.NewFlagSet("blacklist", flag.ContinueOnError)
	dbPath := fs.String("db", config.DB, "path to the badger directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("blacklist needs add, remove or list")
	}

	// analyzerd must be stopped: it holds the directory lock and loads the list at boot.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	blacklist := repositories.NewBlacklistRepository(db)

	words := fs.Args()[1:]
	switch fs.Arg(0) {
	case "add":
		if err := blacklist.Add(words...); err != nil {
			return err
		}
	case "remove":
		for _, w := range words {
			if err := blacklist.Remove(w); err != nil {
				return err
			}
		}
	case "list":
	default:
		return fmt.Errorf("unknown blacklist action %q", fs.Arg(0))
	}

	list, err := blacklist.List()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%d word(s)\n", len(list))
	for _, w := range list {
		fmt.Fprintln(p.out, w)
	}
	return nil
}

func tokenCmd(config Config, p printer, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	clientID := fs.String("client", "", "caller name stored in the token")
	ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if config.AuthSecret == "" {
		return fmt.Errorf("EMOTION_AUTH_SECRET is not set")
	}
	if *clientID == "" {
		return fmt.Errorf("-client is required")
	}
	token, err := auth.NewSigner(config.AuthSecret).GenerateToken(*clientID, nil, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, token)
	return nil
}

func dial(config Config) (*emotiongrpc.EmotionAnalyzerClient, func(), error) {
	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", config.Addr, err)
	}
	return emotiongrpc.NewEmotionAnalyzerClient(conn), func() { _ = conn.Close() }, nil
}

func authorized(config Config) context.Context {
	ctx := context.Background()
	if config.Token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+config.Token)
}
