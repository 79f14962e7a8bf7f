package render

import (
	"math"
	"strconv"

	"github.com/nexcubelabs/nexcube/internal/invoice/domain"
)

// Input is the deterministic input used for kwitansi rendering.
type Input struct {
	Company CompanyView
	Invoice InvoiceView
	Items   []domain.LineItem
	Total   float64
}

// CompanyView is the agency letterhead block.
type CompanyView struct {
	Name  string
	Email string
	Phone string
}

type InvoiceView struct {
	Number      string
	ClientName  string
	ClientEmail string
	Status      string
	IssueDate   string
	DueDate     string
	Service     string
	Description string
	Notes       string
}

type Renderer interface {
	Render(input Input) ([]byte, error)
}

// FormatRupiah renders an amount as "Rp 1.500.000": rounded to whole rupiah
// with id-ID dot grouping, the way every money value in the dashboard and the
// kwitansi is displayed.
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}
	return "Rp " + sign + string(grouped)
}
