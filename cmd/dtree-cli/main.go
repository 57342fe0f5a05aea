// Command dtree-cli builds a decision tree from categorical CSV data
// and prints it; it can also classify a single row.
//
// Usage:
//
//	dtree-cli --csv data.csv
//	dtree-cli --csv data.csv --classify "Outlook=Sunny,Humidity=High"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/entail/pkg/entail/dtree"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "CSV file with a header row (required)")
		decision = flag.String("decision", "Decision", "Decision attribute name")
		classify = flag.String("classify", "", "Row to classify, as k=v,k=v")
	)
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("--csv required")
	}

	rows, err := dtree.ReadCSVFile(*csvPath)
	if err != nil {
		log.Fatal(err)
	}

	tree, err := dtree.Build(rows, *decision)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Decision Tree:")
	dtree.Fprint(os.Stdout, tree)

	if *classify == "" {
		return
	}
	row, err := parseRow(*classify)
	if err != nil {
		log.Fatal(err)
	}
	verdict, ok := tree.Classify(row)
	if !ok {
		log.Fatalf("row %v reaches no decision (unseen feature value)", row)
	}
	fmt.Printf("Classified as: %s\n", verdict)
}

func parseRow(s string) (dtree.Row, error) {
	row := make(dtree.Row)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("malformed pair %q, want k=v", pair)
		}
		row[k] = v
	}
	return row, nil
}
