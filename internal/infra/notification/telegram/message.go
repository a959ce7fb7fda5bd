package telegram

import (
	"strings"
	"time"

	"github.com/gabapcia/swapwatch/internal/activity"
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// FormatEvent renders e as a Markdown message body.
func FormatEvent(e activity.Event) string {
	var b strings.Builder

	b.WriteString("New Transaction - " + string(e.Kind) + "!\n")
	b.WriteString("Wallet:\n`" + e.Wallet.String() + "`\n")
	if !e.TokenAddress.IsZero() {
		b.WriteString("Token Address:\n`" + e.TokenAddress.String() + "`\n")
	}
	b.WriteString("Token Name: " + markdownEscaper.Replace(e.TokenName) + "\n")
	b.WriteString("Token Symbol: " + markdownEscaper.Replace(e.TokenSymbol) + "\n")
	b.WriteString("Amount: " + e.AmountFormatted() + "\n")
	if e.PriceUSD != nil {
		b.WriteString("Price: $" + e.PriceUSD.String() + "\n")
	}
	if e.MarketCap != nil {
		b.WriteString("Market Cap: $" + e.MarketCap.StringFixed(0) + "\n")
	}
	if !e.OccurredAt.IsZero() {
		b.WriteString("Entry Time: " + e.OccurredAt.UTC().Format(time.RFC3339) + "\n")
	}

	return b.String()
}
