package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// Render produces the final A4 document.
func Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(190, 10, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "I", 12)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(190, 7, doc.Subtitle, "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(3)

	// Trip meta
	pdf.SetFont("Arial", "", 11)
	if doc.Customer.Name != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Guest: %s (%s)", doc.Customer.Name, doc.Customer.Contact), "", 1, "L", false, 0, "")
	}
	if doc.DateRange != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Travel dates: %s", doc.DateRange), "", 1, "L", false, 0, "")
	}
	if doc.Party != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Travellers: %s", doc.Party), "", 1, "L", false, 0, "")
	}
	if doc.Customer.Nights > 0 {
		pdf.CellFormat(190, 6, fmt.Sprintf("Nights: %d", doc.Customer.Nights), "", 1, "L", false, 0, "")
	}
	if doc.Overview != "" {
		pdf.Ln(2)
		pdf.MultiCell(190, 5, doc.Overview, "", "L", false)
	}
	pdf.Ln(4)

	// Day cards
	for _, day := range doc.Days {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		heading := day.Heading
		if day.Route != "" {
			heading = fmt.Sprintf("%s: %s", day.Heading, day.Route)
		}
		pdf.CellFormat(190, 8, heading, "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		if day.TravelTime != "" {
			pdf.CellFormat(190, 6, fmt.Sprintf("Travel time: %s", day.TravelTime), "LR", 1, "L", false, 0, "")
		}
		for _, h := range day.Highlights {
			pdf.CellFormat(190, 6, "- "+h, "LR", 1, "L", false, 0, "")
		}
		for _, p := range day.Description {
			pdf.MultiCell(190, 5, p, "LR", "L", false)
		}
		if day.OvernightStay != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.CellFormat(190, 6, fmt.Sprintf("Overnight stay: %s", day.OvernightStay), "LRB", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 10)
		} else {
			pdf.CellFormat(190, 2, "", "LRB", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	renderList(pdf, "Inclusions", doc.Inclusions)
	renderList(pdf, "Exclusions", doc.Exclusions)
	renderList(pdf, "Terms & Conditions", doc.Terms)

	// Agency footer
	if doc.Agency.Name != "" {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(190, 7, doc.Agency.Name, "T", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		if doc.Agency.Owner != "" {
			pdf.CellFormat(190, 5, doc.Agency.Owner, "", 1, "L", false, 0, "")
		}
		if doc.Agency.Address != "" {
			pdf.MultiCell(190, 5, doc.Agency.Address, "", "L", false)
		}
		contact := fmt.Sprintf("Phone: %s", doc.Agency.Phone)
		if doc.Agency.Whatsapp != "" {
			contact += fmt.Sprintf(" | WhatsApp: %s", doc.Agency.Whatsapp)
		}
		pdf.CellFormat(190, 5, contact, "", 1, "L", false, 0, "")
		line := doc.Agency.Email
		if doc.Agency.Website != "" {
			line += " | " + doc.Agency.Website
		}
		pdf.CellFormat(190, 5, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderList(pdf *gofpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		pdf.MultiCell(190, 6, "- "+item, "LRB", "L", false)
	}
	pdf.Ln(3)
}
