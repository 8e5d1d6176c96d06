// Package batch aggregates the results of processing a directory of
// statements: per-category totals, the overall date span and the files
// that failed along the way.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/ccs-extract/internal/common"
	"fjacquet/ccs-extract/internal/dateutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
)

// DateRange represents a date range with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range has not been populated yet.
func (dr DateRange) IsZero() bool {
	return dr.Start.IsZero() || dr.End.IsZero()
}

// String returns the date range in the format "YYYY-MM-DD to YYYY-MM-DD",
// or the empty string for an unpopulated range.
func (dr DateRange) String() string {
	if dr.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s to %s",
		dr.Start.Format(dateutils.DateLayoutISO),
		dr.End.Format(dateutils.DateLayoutISO))
}

// Merge combines this date range with another, returning the overall range.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// extend widens the range to include a single date.
func (dr DateRange) extend(date time.Time) DateRange {
	return dr.Merge(DateRange{Start: date, End: date})
}

// CategoryTotal is the aggregated spend for one category across a batch run.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// Summary is the outcome of a batch run.
type Summary struct {
	Files        int // statements processed successfully
	Failed       int // statements that could not be processed
	Transactions int
	Categories   []CategoryTotal // descending by total, ties by name
	Span         DateRange
}

// Aggregator accumulates per-category spending while the batch command
// works through a directory of statements.
type Aggregator struct {
	logger       logging.Logger
	files        int
	failed       int
	transactions int
	totals       map[string]*CategoryTotal
	span         DateRange
}

// NewAggregator creates an empty aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{
		logger: logger,
		totals: make(map[string]*CategoryTotal),
	}
}

// AddResult records the categorized transactions of one processed statement.
func (a *Aggregator) AddResult(file string, transactions []models.Transaction) {
	a.files++
	a.transactions += len(transactions)

	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = models.DefaultCategory
		}

		total, ok := a.totals[category]
		if !ok {
			total = &CategoryTotal{Category: category}
			a.totals[category] = total
		}
		total.Count++
		total.Total = total.Total.Add(tx.Amount.Decimal)

		if date, err := dateutils.ParseOutputDate(tx.Date); err == nil {
			a.span = a.span.extend(date)
		}
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Added statement to batch summary")
}

// AddFailure records a statement that could not be processed. The batch run
// carries on with the remaining files.
func (a *Aggregator) AddFailure(file string, err error) {
	a.failed++
	a.logger.WithError(err).
		WithField(logging.FieldFile, file).
		Error("Failed to process statement, continuing with remaining files")
}

// Summary returns the aggregated outcome. Categories are ordered by
// descending total so the biggest spending buckets come first, with ties
// broken by name for stable output.
func (a *Aggregator) Summary() Summary {
	categories := make([]CategoryTotal, 0, len(a.totals))
	for _, total := range a.totals {
		categories = append(categories, *total)
	}

	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	return Summary{
		Files:        a.files,
		Failed:       a.failed,
		Transactions: a.transactions,
		Categories:   categories,
		Span:         a.span,
	}
}

// LogSummary writes the batch outcome to the log, one line per category.
func (s Summary) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	fields := []logging.Field{
		{Key: "statements", Value: s.Files},
		{Key: "failed", Value: s.Failed},
		{Key: logging.FieldCount, Value: s.Transactions},
	}
	if !s.Span.IsZero() {
		fields = append(fields, logging.Field{Key: "period", Value: s.Span.String()})
	}
	logger.Info("Batch processing summary", fields...)

	for _, ct := range s.Categories {
		logger.Info("Category total",
			logging.Field{Key: logging.FieldCategory, Value: ct.Category},
			logging.Field{Key: logging.FieldCount, Value: ct.Count},
			logging.Field{Key: "total", Value: ct.Total.StringFixed(2)},
		)
	}
}

// summaryRow is the CSV shape of one category total.
type summaryRow struct {
	Category string        `csv:"Category"`
	Count    int           `csv:"Transactions"`
	Total    models.Amount `csv:"Total Amount"`
}

// WriteSummaryCSV writes the per-category totals of a batch run to a CSV
// file next to the per-statement outputs.
func WriteSummaryCSV(summary Summary, csvFile string) error {
	rows := make([]summaryRow, 0, len(summary.Categories))
	for _, ct := range summary.Categories {
		rows = append(rows, summaryRow{
			Category: ct.Category,
			Count:    ct.Count,
			Total:    models.NewAmount(ct.Total),
		})
	}
	return common.WriteCSVFile(rows, csvFile)
}
