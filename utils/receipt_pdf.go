package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const receiptDateLayout = "02-01-2006"

// ReceiptDocument is the printable content of a stay receipt.
type ReceiptDocument struct {
	Title            string
	Currency         string
	GuestName        string
	RoomType         string
	RoomNumber       string
	RoomPrice        float64
	CheckIn          string
	CheckOut         string
	Services         []ReceiptItem
	TotalServiceCost float64
	GrandTotal       float64
}

type ReceiptItem struct {
	Item  string
	Price float64
}

// FormatMoney renders an amount with the configured currency prefix.
func FormatMoney(currency string, amount float64) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// FormatReceiptDate renders dates the way the printed receipt shows them (DD-MM-YYYY).
func FormatReceiptDate(t time.Time) string {
	return t.Format(receiptDateLayout)
}

// RenderReceiptPDF lays out a letter-size receipt: details table, the room
// service table when there are services, then the totals.
func RenderReceiptPDF(doc ReceiptDocument) ([]byte, error) {
	return renderReceipt(doc, true)
}

func renderReceipt(doc ReceiptDocument, compress bool) ([]byte, error) {
	title := doc.Title
	if title == "" {
		title = "HOTEL RECEIPT"
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCompression(compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := func(amount float64) string {
		return tr(FormatMoney(doc.Currency, amount))
	}
	pdf.SetTitle(title, true)
	pdf.SetCreator("hotel-frontdesk", false)
	pdf.SetMargins(25, 20, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// details
	details := [][2]string{
		{"Guest Name:", doc.GuestName},
		{"Room Type:", doc.RoomType},
		{"Room Number:", doc.RoomNumber},
		{"Room Price:", FormatMoney(doc.Currency, doc.RoomPrice)},
		{"Check-in Date:", doc.CheckIn},
		{"Check-out Date:", doc.CheckOut},
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetDrawColor(0, 0, 0)
	for i, row := range details {
		if i == 0 {
			pdf.SetFillColor(128, 128, 128)
			pdf.SetTextColor(245, 245, 245)
		} else {
			pdf.SetFillColor(245, 245, 220)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.CellFormat(53, 8, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.CellFormat(106, 8, tr(row[1]), "1", 1, "L", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if len(doc.Services) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, "Room Service Details", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(106, 8, "Item", "1", 0, "C", true, 0, "")
		pdf.CellFormat(53, 8, "Price", "1", 1, "C", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, svc := range doc.Services {
			pdf.CellFormat(106, 8, tr(svc.Item), "1", 0, "C", false, 0, "")
			pdf.CellFormat(53, 8, money(svc.Price), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(6)
	}

	// totals
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(106, 8, "Total Room Service Cost:", "1", 0, "R", true, 0, "")
	pdf.CellFormat(53, 8, money(doc.TotalServiceCost), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(106, 8, "Grand Total:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(53, 8, money(doc.GrandTotal), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
