// Command tablecheck validates the built-in offset table and reports
// duplicate, malformed or out-of-range declarations.
package main

import (
	"flag"
	"os"

	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/offsettable"
)

func main() {
	strict := flag.Bool("strict", false, "exit non-zero on any fatal data issue")
	flag.Parse()

	log := logger.NewLogger(false)
	defer log.Sync()

	os.Exit(run(log, offsettable.DefaultEntries(), *strict))
}

func run(log logger.Logger, entries []offsettable.Entry, strict bool) int {
	issues := offsettable.Validate(entries)
	table := offsettable.New(entries)

	fatal := 0
	for _, issue := range issues {
		log.Warn("Offset table data issue", "kind", issue.Kind, "code", issue.Code, "detail", issue.Message)
		if issue.Fatal() {
			fatal++
		}
	}

	log.Info("Offset table checked",
		"declarations", len(entries),
		"codes", table.Len(),
		"issues", len(issues),
		"fatal", fatal)

	if strict && fatal > 0 {
		return 1
	}
	return 0
}
