// Command prover-cli runs entailment queries against knowledge bases,
// either one-shot or interactively.
//
// Usage:
//
//	prover-cli --kb royals.yaml --query "Evil(John)"
//	prover-cli --db proofs.db --kb royals.yaml
//	prover-cli --db proofs.db --name royals --query "Evil(John)"
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/store"
	"github.com/cognicore/entail/pkg/entail/store/memstore"
	"github.com/cognicore/entail/pkg/entail/store/sqlite"
)

func main() {
	var (
		dbPath     = flag.String("db", "", "SQLite database path (empty: in-memory)")
		configPath = flag.String("config", "", "Config file (optional)")
		kbPath     = flag.String("kb", "", "Knowledge base YAML file to import")
		kbName     = flag.String("name", "", "Stored knowledge base name")
		query      = flag.String("query", "", "One-shot query (non-interactive mode)")
		maxRounds  = flag.Int("max-rounds", 0, "Override the saturation round cap")
	)
	flag.Parse()

	if *kbPath == "" && *kbName == "" {
		log.Fatal("--kb or --name required")
	}

	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *maxRounds > 0 {
		cfg.Engine.MaxRounds = *maxRounds
	}

	var st store.Store
	if *dbPath != "" {
		var err error
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		st = memstore.New()
	}

	prover := entail.New(entail.Options{Store: st, Engine: cfg.Engine})
	defer prover.Close()

	name := *kbName
	var pendingQueries []string
	if *kbPath != "" {
		kbFile, err := config.LoadKB(*kbPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := prover.SaveKB(ctx, kbFile.StoreKB()); err != nil {
			log.Fatal(err)
		}
		name = kbFile.Name
		pendingQueries = kbFile.Queries
	}

	// One-shot query mode
	if *query != "" {
		runQuery(ctx, prover, name, *query)
		return
	}

	// Queries bundled in the KB file
	for _, q := range pendingQueries {
		runQuery(ctx, prover, name, q)
	}
	if len(pendingQueries) > 0 {
		return
	}

	// Interactive mode
	fmt.Printf("Knowledge base: %s. Enter queries, blank line to exit.\n", name)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("?- ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		runQuery(ctx, prover, name, line)
	}
}

func runQuery(ctx context.Context, prover *entail.Prover, kbName, query string) {
	res, rec, err := prover.InferStored(ctx, kbName, query)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s  =>  %s  (rounds=%d, derived=%d, proof=%s)\n",
		query, strings.ToUpper(res.String()), rec.Rounds, rec.Derived, rec.ID)
}
