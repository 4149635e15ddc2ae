// Package receipt renders order confirmations as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Item is one line in the receipt table
type Item struct {
	Description string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// Document holds everything needed to render a receipt
type Document struct {
	Title         string
	Number        string
	IssuedAt      time.Time
	CustomerName  string
	CustomerEmail string
	Notes         []string
	Items         []Item
	Total         float64
}

const (
	shopName    = "MasterBike"
	shopTagline = "Venta, renta y reparación de bicicletas"
)

// Render produces the receipt as PDF bytes
func Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s", doc.Title, doc.Number), true)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, shopTagline, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, doc.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. %s", doc.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", doc.IssuedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Customer block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Cliente", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, doc.CustomerName, "", 1, "L", false, 0, "")
	if doc.CustomerEmail != "" {
		pdf.CellFormat(0, 5, doc.CustomerEmail, "", 1, "L", false, 0, "")
	}
	for _, note := range doc.Notes {
		pdf.CellFormat(0, 5, note, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 7, "Descripción", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Cant.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Precio unit.", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Importe", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range doc.Items {
		pdf.CellFormat(90, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, formatMoney(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatMoney(item.LineTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, formatMoney(doc.Total), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Gracias por su preferencia.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
