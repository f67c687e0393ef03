package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/money"
)

type person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type snapshot struct {
	People    []person              `json:"people"`
	Purchases []calculator.Purchase `json:"purchases"`
	// Payments are applied in order; only confirmed ones count.
	Payments []calculator.Payment `json:"payments"`
}

func readSnapshot(r io.Reader) (*snapshot, error) {
	var snap snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	names := snap.names()
	for i := range snap.Purchases {
		for j := range snap.Purchases[i].Splits {
			s := &snap.Purchases[i].Splits[j]
			if s.PersonName == "" {
				s.PersonName = names[s.PersonID]
			}
			if s.PersonName == "" {
				s.PersonName = calculator.UnknownName
			}
		}
	}
	return &snap, nil
}

func (s *snapshot) names() map[string]string {
	names := make(map[string]string, len(s.People))
	for _, p := range s.People {
		names[p.ID] = p.Name
	}
	return names
}

func parseOptions(minTransfer string, trustSplitSum bool) (calculator.Options, error) {
	floor, err := money.ParseDecimal(minTransfer)
	if err != nil {
		return calculator.Options{}, fmt.Errorf("invalid -min-transfer: %w", err)
	}
	if floor < 0 {
		return calculator.Options{}, fmt.Errorf("invalid -min-transfer %s: must not be negative", minTransfer)
	}
	return calculator.Options{MinTransfer: floor, TrustSplitSum: trustSplitSum}, nil
}

type report struct {
	balances  []calculator.Balance
	transfers []calculator.Transfer
	plan      []calculator.Transfer
}

func (s *snapshot) settle(opts calculator.Options) report {
	names := s.names()
	direct := calculator.DirectTransfers(s.Purchases, opts)
	payments := calculator.NormalizePayments(direct, s.Payments)

	balances := calculator.ApplyPaymentsToBalances(calculator.ComputeBalances(s.Purchases, opts), payments, names)
	return report{
		balances:  balances,
		transfers: calculator.NetPairTransfers(calculator.ApplyPaymentsToTransfers(direct, payments, names, opts), opts),
		plan:      calculator.SettleBalances(balances, opts),
	}
}

// printer formats amounts in one currency for one language.
type printer struct {
	msg  *message.Printer
	unit currency.Unit
}

func newPrinter(lang, code string) (*printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid -lang: %w", err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid -currency: %w", err)
	}
	return &printer{msg: message.NewPrinter(tag), unit: unit}, nil
}

func (p *printer) amount(c money.Cents) string {
	return p.msg.Sprint(currency.Symbol(p.unit.Amount(c.Decimal().InexactFloat64())))
}

func writeReport(w io.Writer, p *printer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BALANCES")
	fmt.Fprintln(tw, "person\tpaid\towed\tnet")
	for _, b := range r.balances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.PersonName, p.amount(b.Paid), p.amount(b.Owed), p.amount(b.Net))
	}

	writeTransfers(tw, p, "\nOUTSTANDING (per purchase, after payments)", r.transfers)
	writeTransfers(tw, p, "\nSETTLEMENT PLAN", r.plan)

	return tw.Flush()
}

func writeTransfers(w io.Writer, p *printer, title string, transfers []calculator.Transfer) {
	fmt.Fprintln(w, title)
	if len(transfers) == 0 {
		fmt.Fprintln(w, "nothing to settle")
		return
	}
	for _, t := range transfers {
		fmt.Fprintf(w, "%s\t->\t%s\t%s\n", t.FromName, t.ToName, p.amount(t.Amount))
	}
}
