// backend/internal/adapters/out/mail/quote_mailer.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	quotedom "fenestra/internal/domain/quote"
)

// QuoteMailer sends the two submission emails: an internal summary for the
// sales inbox and a confirmation for the customer.
//
// Delivery failure is the caller's problem to downgrade: the mailer reports
// what failed, the usecase decides it is non-fatal.
type QuoteMailer struct {
	Client     EmailClient
	From       string
	InternalTo string
}

func NewQuoteMailer(client EmailClient, from, internalTo string) *QuoteMailer {
	return &QuoteMailer{
		Client:     client,
		From:       strings.TrimSpace(from),
		InternalTo: strings.TrimSpace(internalTo),
	}
}

// NotifySubmission sends both emails. Each mail is attempted even when the
// other fails; the joined error describes everything that went wrong.
func (m *QuoteMailer) NotifySubmission(ctx context.Context, quotes []quotedom.Quote, details quotedom.CustomerDetails) error {
	if m == nil || m.Client == nil {
		return errors.New("quote_mailer: mail client is nil")
	}
	if len(quotes) == 0 {
		return nil
	}

	var errs []error

	internal := m.internalBody(quotes, details)
	if err := m.Client.Send(ctx, m.From, m.InternalTo,
		fmt.Sprintf("Nieuwe offerteaanvraag van %s", details.FullName), internal); err != nil {
		errs = append(errs, fmt.Errorf("quote_mailer: internal mail: %w", err))
	}

	confirmation := m.customerBody(quotes, details)
	if err := m.Client.Send(ctx, m.From, details.Email,
		"Bevestiging van uw offerteaanvraag", confirmation); err != nil {
		errs = append(errs, fmt.Errorf("quote_mailer: customer mail: %w", err))
	}

	return errors.Join(errs...)
}

func (m *QuoteMailer) internalBody(quotes []quotedom.Quote, d quotedom.CustomerDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nieuwe offerteaanvraag\n\n")
	fmt.Fprintf(&b, "Klant:   %s\n", d.FullName)
	fmt.Fprintf(&b, "Adres:   %s, %s %s\n", d.Address, d.PostalCode, d.City)
	fmt.Fprintf(&b, "Telefoon: %s\nE-mail:  %s\n", d.Phone, d.Email)

	for _, q := range quotes {
		fmt.Fprintf(&b, "\nOfferte %s (%d producten)\n", q.ID, len(q.Items))
		for i, it := range q.Items {
			fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, it.Model, it.Category)
			for _, k := range sortedKeys(it.FormData) {
				fmt.Fprintf(&b, "     %s: %s\n", k, it.FormData[k])
			}
			if n := len(it.PhotoRefs); n > 0 {
				fmt.Fprintf(&b, "     foto's: %d bijlage(n)\n", n)
			}
		}
	}
	return b.String()
}

func (m *QuoteMailer) customerBody(quotes []quotedom.Quote, d quotedom.CustomerDetails) string {
	total := 0
	for _, q := range quotes {
		total += len(q.Items)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Beste %s,\n\n", d.FullName)
	fmt.Fprintf(&b, "Bedankt voor uw offerteaanvraag. Wij hebben %d product(en) ontvangen\n", total)
	fmt.Fprintf(&b, "en nemen binnen twee werkdagen contact met u op.\n\n")
	for _, q := range quotes {
		for _, it := range q.Items {
			fmt.Fprintf(&b, "- %s\n", it.Model)
		}
	}
	fmt.Fprintf(&b, "\nMet vriendelijke groet,\nFenestra Kozijnen\n")
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
