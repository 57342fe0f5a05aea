// Command wumpus-demo runs the grid-world knowledge base through the
// propositional engine and prints the two classic verdicts.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/wumpus"
)

func main() {
	ctx := context.Background()

	world := wumpus.NewWorld()
	fmt.Println("World layout:")
	for i, cell := range world.Layout() {
		fmt.Printf("%-6s", cell)
		if (i+1)%4 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()

	prover := entail.New(entail.Options{Engine: config.EngineConfig{
		Dialect:   string(entail.Propositional),
		MaxRounds: 50,
	}})
	defer prover.Close()

	kb := wumpus.DemoKB()
	fmt.Println("Knowledge base:")
	for _, f := range kb {
		fmt.Println("  " + f)
	}
	fmt.Println()

	for _, query := range []string{"B", "P21"} {
		res, err := prover.InferFormulas(ctx, kb, query)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Query: %s, Result: %s\n", query, res)
	}
}
