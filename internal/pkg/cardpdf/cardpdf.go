// Package cardpdf renders a printable one-page card with a scannable QR
// code, handed to recipients who redeem on paper rather than by link.
package cardpdf

import (
	"bytes"
	"strconv"
	"strings"

	"card-tracker/internal/pkg/errs"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

type Card struct {
	Title     string
	Recipient string
	Amount    int
	QRToken   string
}

// RedeemURL is what the QR encodes: the public app root with the token in
// the query string, so scanning lands straight on the submission form.
func RedeemURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/?qr=" + token
}

// Render produces a single A4 page: heading, card details, QR code, and
// the raw token as a fallback for broken scanners.
func Render(c Card, redeemURL string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(redeemURL, qrcode.Medium, 512)
	if err != nil {
		return nil, errs.Wrap(err, "encode qr code")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, "Assignment Card", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, c.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "For: "+c.Recipient, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Balance: $"+strconv.Itoa(c.Amount), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	const qrSize = 80.0
	pageW, _ := pdf.GetPageSize()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", (pageW-qrSize)/2, pdf.GetY(), qrSize, qrSize, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Scan the code to submit an assignment against this card.", "", 1, "C", false, 0, "")

	pdf.SetFont("Courier", "", 10)
	pdf.CellFormat(0, 7, "Code: "+c.QRToken, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "render pdf")
	}
	return buf.Bytes(), nil
}
