// Package pdf renders a travel plan as a printable itinerary document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/pkg/errs"
)

// RenderItinerary produces the PDF bytes for a plan. The document never
// represents a booking confirmation; prices are the estimates captured at
// planning time.
func RenderItinerary(p *plan.Plan) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	req := p.Request()
	sel := p.Selection()

	// Header bar
	doc.SetFillColor(21, 41, 66)
	doc.Rect(0, 0, 210, 26, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 7)
	doc.CellFormat(100, 10, "Travel Planner", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 16)
	doc.CellFormat(170, 6, "Trip Itinerary", "", 1, "L", false, 0, "")

	doc.SetY(33)
	doc.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		doc.SetFillColor(21, 41, 66)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}

	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", req.Destination)
	row("Dates", fmt.Sprintf("%s to %s (%d nights)",
		req.StartDate.Format("02 Jan 2006"), req.EndDate.Format("02 Jan 2006"), req.Nights()))
	row("Travelers", fmt.Sprintf("%d", req.Travelers))
	row("Plan ID", p.ID().String())
	doc.Ln(4)

	sectionHeader("Selected Flight")
	row("Airline", sel.Flight.Airline)
	row("Flight", sel.Flight.FlightNumber)
	row("Departure", sel.Flight.DepartureTime.Format("02 Jan 2006 15:04 MST"))
	row("Arrival", sel.Flight.ArrivalTime.Format("02 Jan 2006 15:04 MST"))
	row("Duration", sel.Flight.Duration)
	stops := "Direct"
	if len(sel.Flight.Layovers) > 0 {
		stops = fmt.Sprintf("via %s", strings.Join(sel.Flight.Layovers, ", "))
	}
	row("Stops", stops)
	row("Price", fmt.Sprintf("$%.2f per person", sel.Flight.Price))
	doc.Ln(4)

	sectionHeader("Selected Hotel")
	row("Hotel", sel.Hotel.Name)
	if sel.Hotel.Address != "" {
		row("Address", sel.Hotel.Address)
	}
	row("Rating", fmt.Sprintf("%.1f / 5.0", sel.Hotel.Rating))
	row("Rooms", fmt.Sprintf("%d", sel.Rooms))
	row("Price", fmt.Sprintf("$%.2f/night, $%.2f total per room",
		sel.Hotel.PricePerNight, sel.Hotel.TotalPrice))
	if len(sel.Hotel.Amenities) > 0 {
		row("Amenities", strings.Join(sel.Hotel.Amenities, ", "))
	}
	doc.Ln(4)

	sectionHeader("Cost Summary")
	row("Flights", fmt.Sprintf("$%.2f x %d travelers", sel.Flight.Price, req.Travelers))
	row("Hotel", fmt.Sprintf("$%.2f x %d rooms", sel.Hotel.TotalPrice, sel.Rooms))
	row("Budget used", fmt.Sprintf("%.1f%%", sel.BudgetUtilization))

	doc.SetFillColor(232, 240, 254)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	total := fmt.Sprintf("$%.2f", sel.TotalCost)
	if sel.OverBudget {
		total += " (over budget)"
	}
	doc.CellFormat(115, 9, total, "", 1, "L", true, 0, "")
	doc.Ln(4)

	sectionHeader("Recommendations")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(40, 40, 40)
	for _, rec := range p.Recommendations() {
		doc.MultiCell(170, 5, "- "+rec, "", "L", false)
	}

	// Footer
	doc.SetY(-22)
	doc.SetDrawColor(200, 200, 200)
	doc.SetLineWidth(0.3)
	doc.Line(20, doc.GetY(), 190, doc.GetY())
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(150, 150, 150)
	doc.CellFormat(0, 8,
		fmt.Sprintf("Generated %s | Not a booking confirmation | Prices subject to change",
			p.UpdatedAt().Format("02 Jan 2006 15:04 UTC")),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "pdf output failed")
	}
	return buf.Bytes(), nil
}
