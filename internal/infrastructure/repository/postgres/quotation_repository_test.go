package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*QuotationRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	repo, err := NewQuotationRepository(db, "quotations")
	if err != nil {
		t.Fatalf("NewQuotationRepository() error = %v", err)
	}
	return repo, mock, func() { _ = db.Close() }
}

func testQuotation() domain.NormalizedQuotation {
	return domain.NormalizedQuotation{
		QuotationID: "q-1",
		QuotationFields: domain.QuotationFields{
			CompanyName: "ABC Stationery Supplies Pte Ltd.",
			Email:       "contact@abcstationery.com",
			QuoteNumber: "QTN-2025-001",
			Date:        "2025-08-18",
			Items: []domain.LineItem{
				{Description: "Pen", Quantity: domain.AmountFromInt(50), UnitPrice: domain.AmountFromString("0.50"), TotalAmount: domain.AmountFromString("25.00")},
			},
			Subtotal: domain.AmountFromString("25.00"),
			Tax:      domain.AmountFromInt(0),
			Total:    domain.AmountFromString("25.00"),
		},
		OriginalFile: "quote.pdf",
		ProcessedAt:  time.Date(2025, 8, 18, 10, 0, 0, 0, time.UTC),
		Status:       domain.StatusProcessed,
		RawText:      "raw",
		ExtractionMetadata: domain.ExtractionMetadata{
			ItemsCount:       1,
			CurrencyDetected: "USD",
			TextLength:       3,
		},
	}
}

func TestNewQuotationRepositoryRejectsBadTableName(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	for _, table := range []string{"", "quotations; DROP TABLE x", `quo"tations`, "1table"} {
		if _, err := NewQuotationRepository(db, table); err == nil {
			t.Fatalf("expected error for table name %q", table)
		}
	}
}

func TestPutItemInsertsRecord(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	q := testQuotation()
	mock.ExpectExec("INSERT INTO quotations").
		WithArgs(
			q.QuotationID, q.CompanyName, q.Email, q.Phone, q.Address, q.BuyerName, q.BuyerAddress,
			q.QuoteNumber, q.Date, sqlmock.AnyArg(), "25.00", "0", "25.00",
			q.OriginalFile, q.ProcessedAt, q.Status, q.RawText, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.PutItem(context.Background(), q); err != nil {
		t.Fatalf("PutItem() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPutItemWrapsDriverError(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("INSERT INTO quotations").
		WillReturnError(errors.New("connection refused"))

	err := repo.PutItem(context.Background(), testQuotation())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEnsureSchemaRunsInLockedTransaction(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS quotations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
