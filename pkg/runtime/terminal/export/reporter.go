package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/services/report"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
	CountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 28,
		ValueWidth: 18,
		CountWidth: 8,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(summary domain.SummaryReport, insights []string) error {
	funcMap := template.FuncMap{
		"money": report.FormatCurrency,
		"formatRow": func(label string, value interface{}, count interface{}) string {
			countStr := fmt.Sprintf("%v", count)
			if countStr == "" {
				countStr = strings.Repeat(" ", c.config.CountWidth)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value,
				c.config.CountWidth, countStr)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.CountWidth+2))
		},
	}

	tmpl := `
Sales Summary: {{.Window.Start.Format "2006-01-02"}} to {{.Window.End.Format "2006-01-02"}}

Total Revenue: {{money .Currency .TotalRevenue}}
Transactions: {{.TransactionCount}}
Average Ticket: {{money .Currency .AvgTicket}}
{{if .ByStaff}}
=== Revenue by Staff ===
{{separator}}
{{formatRow "Staff" "Revenue" "Cuts"}}
{{separator}}
{{range .ByStaff}}{{formatRow .Label (money $.Currency .Revenue) .Transactions}}
{{end}}{{separator}}
{{end}}{{if .ByMethod}}
=== Revenue by Payment Method ===
{{separator}}
{{formatRow "Method" "Revenue" "Count"}}
{{separator}}
{{range .ByMethod}}{{formatRow .Label (money $.Currency .Revenue) .Transactions}}
{{end}}{{separator}}
{{end}}{{if .ByDay}}
=== Daily Revenue ===
{{separator}}
{{formatRow "Date" "Revenue" ""}}
{{separator}}
{{range .ByDay}}{{formatRow (.Date.Format "2006-01-02") (money $.Currency .Revenue) ""}}
{{end}}{{separator}}
{{end}}{{if .Insights}}
=== Insights ===
{{range .Insights}}
- {{.}}
{{end}}{{end}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		domain.SummaryReport
		Insights []string
	}{summary, insights}

	return t.Execute(c.writer, data)
}
