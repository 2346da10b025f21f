// Package render formats loan quotes as the fixed four-line text report.
package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

// DefaultCurrency is the symbol prefixed to every money figure
const DefaultCurrency = "£"

// Message keys. The English text of each key is the key itself.
const (
	MsgRequestedAmount  = "Requested amount: %s%s"
	MsgRate             = "Rate: %s%%"
	MsgMonthlyRepayment = "Monthly repayment: %s%s"
	MsgTotalRepayment   = "Total repayment: %s%s"
	MsgUnavailable      = domain.UnavailableMessage
)

// percentShift moves a fractional rate to a percentage
const (
	percentShift  = 2
	percentPlaces = 1
)

// Renderer turns quotes into report text
type Renderer struct {
	Currency string
	Language language.Tag
}

// New creates a Renderer. An empty currency selects DefaultCurrency.
func New(currency string, lang language.Tag) *Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Renderer{Currency: currency, Language: lang}
}

// Render formats q:
//
//	Requested amount: £1000
//	Rate: 7.0%
//	Monthly repayment: £30.88
//	Total repayment: £1111.64
//
// An unavailable quote renders as the single unavailable line.
func (r *Renderer) Render(q domain.LoanQuote) string {
	p := message.NewPrinter(r.Language, message.Catalog(messages))

	terms, ok := q.Terms()
	if !ok {
		return p.Sprintf(MsgUnavailable)
	}

	lines := []string{
		p.Sprintf(MsgRequestedAmount, r.Currency, q.RequestedAmount().String()),
		p.Sprintf(MsgRate, terms.Rate.Shift(percentShift).StringFixed(percentPlaces)),
		p.Sprintf(MsgMonthlyRepayment, r.Currency, terms.MonthlyRepayment.StringFixed(domain.CurrencyScale)),
		p.Sprintf(MsgTotalRepayment, r.Currency, terms.TotalRepayment.StringFixed(domain.CurrencyScale)),
	}
	return strings.Join(lines, "\n")
}

// RenderAll renders every quote, separated by a blank line
func (r *Renderer) RenderAll(quotes []domain.LoanQuote) string {
	blocks := make([]string, len(quotes))
	for i, q := range quotes {
		blocks[i] = r.Render(q)
	}
	return strings.Join(blocks, "\n\n")
}
