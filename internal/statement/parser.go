// Package statement turns credit card statement PDFs into transaction
// records. Extraction shells out to pdftotext, parsing walks the text line
// by line with fixed patterns, and the processor stitches extraction,
// parsing, categorization and CSV output together.
package statement

import (
	"regexp"
	"strings"
	"time"

	"fjacquet/ccs-extract/internal/currencyutils"
	"fjacquet/ccs-extract/internal/dateutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
	"fjacquet/ccs-extract/internal/parsererror"
)

// Transaction line patterns, tried in order per line with the first match
// winning. The first form carries a year, the second is the more common
// year-less form whose year is inferred from the statement period.
var linePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2} [A-Za-z]{3} \d{4}) \$([\d,.]+)(.+)`),
	regexp.MustCompile(`(\d{1,2} [A-Za-z]{3}) \$([\d,.]+)(.+)`),
}

// periodPattern finds the statement period line, e.g.
// "Statement period (from 15/11/2024 to 14/12/2024)".
var periodPattern = regexp.MustCompile(`from (\d{2}/\d{2}/\d{4}) to (\d{2}/\d{2}/\d{4})`)

// detailsHeader is the column header row repeated on each statement page.
const detailsHeader = "Transaction details"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Period is the statement period printed on the first page. It drives year
// inference for year-less transaction dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// Parser extracts transaction records from raw statement text.
type Parser struct {
	logger      logging.Logger
	currentYear int
}

// NewParser returns a parser. The current year is captured once and used
// for year inference when the statement has no period line.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{
		logger:      logger,
		currentYear: time.Now().Year(),
	}
}

// Parse extracts, cleans and date-normalizes all transactions found in the
// statement text. Dates that cannot be parsed are kept verbatim with a
// warning rather than dropping the row.
func (p *Parser) Parse(text string) ([]models.Transaction, error) {
	period, err := DetectPeriod(text)
	if err != nil {
		return nil, err
	}

	raw := p.extractTransactions(text)
	cleaned := p.cleanTransactions(raw, period)

	p.logger.WithField(logging.FieldCount, len(cleaned)).
		Info("Parsed transactions from statement text")

	return cleaned, nil
}

// DetectPeriod scans the text for the statement period line. A statement
// without one returns (nil, nil); a period line whose dates do not parse is
// a *parsererror.ParseError.
func DetectPeriod(text string) (*Period, error) {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "(from") || !strings.Contains(line, "to") {
			continue
		}
		m := periodPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start, err := dateutils.ParsePeriodDate(m[1])
		if err != nil {
			return nil, &parsererror.ParseError{
				Stage: "period",
				Field: "start date",
				Value: m[1],
				Err:   err,
			}
		}
		end, err := dateutils.ParsePeriodDate(m[2])
		if err != nil {
			return nil, &parsererror.ParseError{
				Stage: "period",
				Field: "end date",
				Value: m[2],
				Err:   err,
			}
		}

		return &Period{Start: start, End: end}, nil
	}
	return nil, nil
}

// extractTransactions walks the text line by line and collects every line
// matching one of the transaction patterns. Lines containing the CR marker
// are credits: the amount is negated and the marker removed from the
// description.
func (p *Parser) extractTransactions(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range linePatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			date := m[1]
			amount := models.ParseAmount(m[2])
			description := strings.TrimSpace(m[3])

			if currencyutils.HasCreditMarker(line) {
				amount = amount.Neg()
				description = currencyutils.StripCreditMarker(description)
			}

			transactions = append(transactions, models.Transaction{
				Date:        date,
				Description: description,
				Amount:      models.NewAmount(amount),
			})

			p.logger.WithFields(
				logging.Field{Key: "date", Value: date},
				logging.Field{Key: "amount", Value: amount.String()},
			).Debug("Extracted transaction line")

			break
		}
	}

	return transactions
}

// cleanTransactions drops header and empty rows, collapses whitespace in
// descriptions and rewrites dates to the output format with the year
// inferred from the statement period.
func (p *Parser) cleanTransactions(transactions []models.Transaction, period *Period) []models.Transaction {
	defaultYear := p.currentYear
	if period != nil {
		defaultYear = period.Start.Year()
	}

	cleaned := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Description == "" || tx.Description == detailsHeader {
			continue
		}

		tx.Description = whitespaceRe.ReplaceAllString(tx.Description, " ")

		date, hasYear, err := dateutils.ParseStatementDate(tx.Date)
		if err != nil {
			p.logger.WithError(err).
				WithField("date", tx.Date).
				Warn("Could not parse transaction date, keeping original")
			cleaned = append(cleaned, tx)
			continue
		}

		if !hasYear {
			date = dateutils.WithYear(date, defaultYear)
			// A December transaction on a statement that runs into January
			// belongs to the period's first year; a date before the period
			// start means the statement rolled over into the next year.
			if period != nil && date.Before(period.Start) {
				date = dateutils.WithYear(date, period.End.Year())
			}
		}

		tx.Date = dateutils.ToOutputFormat(date)
		cleaned = append(cleaned, tx)
	}

	return cleaned
}
