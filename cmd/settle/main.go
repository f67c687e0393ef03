// Command settle prints balances and suggested transfers for a ledger
// snapshot without running the server.
//
// Usage:
//
//	settle -file ledger.json -min-transfer 5 -currency EUR
//
// The snapshot is JSON with people, purchases and payments:
//
//	{
//	  "people":    [{"id": "a", "name": "Alice"}, {"id": "b", "name": "Bob"}],
//	  "purchases": [{"id": "p1", "total_amount": "60.00",
//	                 "splits": [{"person_id": "a", "amount": "60"}, {"person_id": "b", "amount": "0"}]}],
//	  "payments":  [{"from_person_id": "b", "to_person_id": "a", "amount": "10", "status": "confirmed"}]
//	}
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "settle:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	file := fs.String("file", "-", "snapshot to read, - for stdin")
	minTransfer := fs.String("min-transfer", "20.00", "hide suggested transfers below this amount")
	trustSplitSum := fs.Bool("trust-split-sum", true, "apportion on the split sum when it disagrees with the declared total")
	currencyCode := fs.String("currency", "EUR", "ISO 4217 currency used to print amounts")
	lang := fs.String("lang", "en", "BCP 47 language tag used to print amounts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	snap, err := readSnapshot(in)
	if err != nil {
		return err
	}

	opts, err := parseOptions(*minTransfer, *trustSplitSum)
	if err != nil {
		return err
	}

	p, err := newPrinter(*lang, *currencyCode)
	if err != nil {
		return err
	}

	return writeReport(stdout, p, snap.settle(opts))
}
