package services

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

// RenderInvoice produces the printable invoice document for an order, saved
// or draft. It is a pure function of its input: no state, no network. An
// order with no items renders a placeholder row instead of an empty table.
func RenderInvoice(order *models.Order) ([]byte, error) {
	balance := order.TotalCost - order.AmountPaid

	data := invoiceData{
		Order:   order,
		Balance: balance,
		// Overpaid or settled balances render green, never red.
		BalanceColor: "#4f46e5",
	}
	if balance <= 0 {
		data.BalanceColor = "#059669"
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type invoiceData struct {
	Order        *models.Order
	Balance      float64
	BalanceColor string
}

// FormatMoney renders an amount with thousands separators and two decimals,
// e.g. 1234.5 -> "1,234.50".
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatDims renders the optional physical dimensions line under an item
// description, e.g. "120 x 80 cm".
func formatDims(width, height float64) string {
	trim := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	switch {
	case width != 0 && height != 0:
		return trim(width) + " x " + trim(height) + " cm"
	case width != 0:
		return trim(width) + " cm"
	case height != 0:
		return trim(height) + " cm"
	}
	return ""
}

func formatLongDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("January 2, 2006")
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money":    FormatMoney,
	"dims":     formatDims,
	"longDate": formatLongDate,
	"qty":      formatQuantity,
}).Parse(invoiceHTML))

const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>FLEX Invoice</title>
    <style>
        @page { size: A4; margin: 15mm; }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; line-height: 1.4; }
        .invoice { max-width: 800px; margin: 0 auto; background: white; }
        .header { background: linear-gradient(135deg, #4f46e5, #7c3aed); color: white; padding: 30px; text-align: center; margin-bottom: 30px; }
        .header h1 { font-size: 36px; font-weight: bold; margin-bottom: 8px; }
        .header p { font-size: 16px; opacity: 0.9; }
        .info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 30px; }
        .info-section h3 { color: #4f46e5; font-size: 14px; font-weight: 600; margin-bottom: 10px; text-transform: uppercase; letter-spacing: 0.5px; }
        .info-section p { margin-bottom: 5px; }
        .table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .table th { background: #f8fafc; padding: 12px; text-align: left; font-weight: 600; border-bottom: 2px solid #e2e8f0; }
        .table td { padding: 12px; border-bottom: 1px solid #e2e8f0; }
        .table tr:nth-child(even) { background: #f8fafc; }
        .text-right { text-align: right; }
        .placeholder { text-align: center; color: #6b7280; font-style: italic; }
        .totals { background: #f8fafc; padding: 20px; border-radius: 8px; margin-top: 20px; }
        .total-row { display: flex; justify-content: space-between; margin-bottom: 8px; }
        .total-row.final { font-weight: bold; font-size: 18px; border-top: 2px solid #e2e8f0; padding-top: 8px; margin-top: 8px; }
        .footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #6b7280; }
        @media print {
            body { -webkit-print-color-adjust: exact; }
            .header { -webkit-print-color-adjust: exact; }
        }
    </style>
</head>
<body>
    <div class="invoice">
        <div class="header">
            <h1>FLEX</h1>
            <p>Professional Order Invoice</p>
        </div>

        <div class="info-grid">
            <div class="info-section">
                <h3>Bill To</h3>
                <p><strong>{{.Order.CustomerName}}</strong></p>
                <p>{{.Order.PhoneNumber}}</p>
            </div>
            <div class="info-section">
                <h3>Invoice Details</h3>
                <p><strong>Date:</strong> {{longDate .Order.OrderDate}}</p>
                <p><strong>Invoice #:</strong> {{.Order.Number}}</p>
                <p><strong>Status:</strong> {{.Order.Status}}</p>
            </div>
        </div>

        <table class="table">
            <thead>
                <tr>
                    <th>Description</th>
                    <th class="text-right">Qty</th>
                    <th class="text-right">Unit Price</th>
                    <th class="text-right">Total</th>
                </tr>
            </thead>
            <tbody>
                {{range .Order.Items}}
                <tr>
                    <td>
                        {{.Description}}
                        {{with dims .Width .Height}}<br><small style="color: #6b7280;">{{.}}</small>{{end}}
                    </td>
                    <td class="text-right">{{qty .Quantity}}</td>
                    <td class="text-right">{{money .Cost}} EGP</td>
                    <td class="text-right">{{money .LineTotal}} EGP</td>
                </tr>
                {{else}}
                <tr>
                    <td colspan="4" class="placeholder">No items added yet</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="totals">
            <div class="total-row">
                <span>Subtotal:</span>
                <span>{{money .Order.TotalCost}} EGP</span>
            </div>
            <div class="total-row">
                <span>Amount Paid:</span>
                <span style="color: #059669;">{{money .Order.AmountPaid}} EGP</span>
            </div>
            <div class="total-row final" style="color: {{.BalanceColor}};">
                <span>Balance Due:</span>
                <span>{{money .Balance}} EGP</span>
            </div>
        </div>

        <div class="footer">
            <p><strong>Thank you for your business!</strong></p>
            <p>FLEX - Professional Printing Services</p>
        </div>
    </div>

    <script>
        window.onload = function() {
            window.print();
            window.onafterprint = function() {
                window.close();
            };
        };
    </script>
</body>
</html>`
