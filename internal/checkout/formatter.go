package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
)

// Formatter renders a persisted order into the message handed to a human
// fulfillment operator over WhatsApp. It is purely a rendering function: the
// stored subTotal, serviceFee and totalAmount are echoed verbatim, never
// recomputed, so the customer-visible and fulfillment-visible totals can
// never disagree.
type Formatter struct {
	whatsAppNumber string
	printer        *message.Printer
}

// NewFormatter builds a formatter targeting the given WhatsApp number
// (digits only, international format without the leading plus).
func NewFormatter(whatsAppNumber string) *Formatter {
	return &Formatter{
		whatsAppNumber: strings.TrimPrefix(whatsAppNumber, "+"),
		printer:        message.NewPrinter(language.English),
	}
}

// FormatHandoff renders the order as the handoff message body.
func (f *Formatter) FormatHandoff(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎁 New GiftNest Order %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Placed: %s\n\n", order.CreatedAt.Format("Mon, 2 Jan 2006 15:04"))

	b.WriteString("Items:\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s x%d — %s\n", i+1, item.Name, item.Qty, f.Naira(item.LineTotal))
		for _, line := range variantLines(item) {
			fmt.Fprintf(&b, "   • %s\n", line)
		}
		for _, line := range customizationLines(item) {
			fmt.Fprintf(&b, "   • %s\n", line)
		}
		if item.BookingDate != nil {
			when := *item.BookingDate
			if item.BookingTime != nil {
				when += " " + *item.BookingTime
			}
			fmt.Fprintf(&b, "   • Booking: %s\n", when)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", f.Naira(order.SubTotal))
	fmt.Fprintf(&b, "Service fee: %s\n", f.Naira(order.ServiceFee))
	fmt.Fprintf(&b, "Total: %s\n\n", f.Naira(order.TotalAmount))

	b.WriteString("Deliver to:\n")
	fmt.Fprintf(&b, "%s\n", order.CustomerName)
	fmt.Fprintf(&b, "%s\n", order.CustomerPhone)
	if order.SecondaryPhone != nil && *order.SecondaryPhone != "" {
		fmt.Fprintf(&b, "Alt: %s\n", *order.SecondaryPhone)
	}
	fmt.Fprintf(&b, "%s, %s\n", order.Address, order.City)
	if order.CustomMessage != nil && *order.CustomMessage != "" {
		fmt.Fprintf(&b, "\nGift message: %s\n", *order.CustomMessage)
	}

	return b.String()
}

// HandoffLink returns the wa.me deep link that opens a chat with the
// fulfillment number, pre-filled with the rendered handoff message.
func (f *Formatter) HandoffLink(order *models.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		f.whatsAppNumber, url.QueryEscape(f.FormatHandoff(order)))
}

// Naira renders a whole-naira amount with thousands grouping, e.g. ₦32,500.
func (f *Formatter) Naira(amount int) string {
	return f.printer.Sprintf("₦%d", amount)
}

func variantLines(item models.OrderLineItem) []string {
	if len(item.VariantSelection) == 0 {
		return nil
	}
	names := make([]string, 0, len(item.VariantSelection))
	for name := range item.VariantSelection {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, item.VariantSelection[name].Value))
	}
	return lines
}

func customizationLines(item models.OrderLineItem) []string {
	if len(item.Customization) == 0 {
		return nil
	}
	keys := make([]string, 0, len(item.Customization))
	for key := range item.Customization {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, item.Customization[key]))
	}
	return lines
}
