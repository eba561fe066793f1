package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/platform/validation"
)

// MessageLogin replaces every authentication failure on the CLI.
const MessageLogin = "authentication required: run `paynet login`"

// describe renders err for the terminal. Field errors are listed one per
// line in field order.
func describe(err error) string {
	if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		return MessageLogin
	}
	if fields := validation.Fields(err); len(fields) > 0 {
		lines := make([]string, 0, len(fields))
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			lines = append(lines, "  "+name+": "+fields[name])
		}
		return "invalid input\n" + strings.Join(lines, "\n")
	}
	if msg := httputil.Describe(err); msg != "" {
		return msg
	}
	return err.Error()
}

// emit prints v as JSON under --json, otherwise through render.
func (a *app) emit(v any, render func(w *tabwriter.Writer)) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	render(w)
	return w.Flush()
}

func (a *app) message(msg string) error {
	return a.emit(map[string]string{"message": msg}, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, msg)
	})
}

func row(w *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func pageFooter[T any](w *tabwriter.Writer, p pagination.Page[T]) {
	if p.TotalItems == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}
	fmt.Fprintf(w, "\npage %d of %d (%d items)\n", p.Page, p.TotalPages, p.TotalItems)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// parseAmount reads a money flag. A malformed value is a field error so it
// is reported with the other form problems.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, validation.Field("amount", "amount must be a number")
	}
	return d, nil
}

// confirm asks prompt on stderr unless yes is already set.
func (a *app) confirm(yes bool, prompt string) bool {
	if yes {
		return true
	}
	fmt.Fprint(a.errOut, prompt+" [y/N]: ")
	line, _ := bufio.NewReader(a.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
