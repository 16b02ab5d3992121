package service_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/rafaelleal24/inventory/internal/adapters/credential"
	"github.com/rafaelleal24/inventory/internal/adapters/memory"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/service"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

type ledgerTestContext struct {
	ledger *service.LedgerService
	err    error
}

func (c *ledgerTestContext) reset() {
	c.ledger = nil
	c.err = nil
}

func newTestLedger(username, password string, configure func(*service.LedgerDeps)) (*service.LedgerService, error) {
	deps := service.LedgerDeps{
		Catalog:     memory.NewCatalogRepository(),
		Sales:       memory.NewRecordLog[domain.SaleRecord](),
		Purchases:   memory.NewRecordLog[domain.PurchaseRecord](),
		Verifier:    credential.NewSHA256Verifier(),
		TxManager:   memory.NewTransactionManager(),
		ReportCache: memory.NewCache[domain.Report]("test"),
	}
	if configure != nil {
		configure(&deps)
	}
	return service.NewLedgerService(username, password, deps)
}

func parseAmount(s string) (domain.Amount, error) {
	return domain.NewAmountFromString(s)
}

func (c *ledgerTestContext) aLedgerFor(username, password string) error {
	var err error
	c.ledger, err = newTestLedger(username, password, nil)
	return err
}

func (c *ledgerTestContext) aTrackedLedgerFor(username, password string) error {
	var err error
	c.ledger, err = newTestLedger(username, password, func(d *service.LedgerDeps) {
		d.StockPolicy = domain.StockPolicyTracked
	})
	return err
}

func (c *ledgerTestContext) aThrottledLedgerFor(username, password string, attempts int) error {
	var err error
	c.ledger, err = newTestLedger(username, password, func(d *service.LedgerDeps) {
		d.RateLimiter = memory.NewRateLimiter()
		d.AuthMaxAttempts = attempts
		d.AuthWindow = time.Minute
	})
	return err
}

func (c *ledgerTestContext) theCatalogContains(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		price, err := parseAmount(row.Cells[2].Value)
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}
		product := domain.NewProduct(row.Cells[0].Value, row.Cells[1].Value, price, quantity)
		if err := c.ledger.AddProduct(context.Background(), product); err != nil {
			return err
		}
	}
	return nil
}

func (c *ledgerTestContext) iAddProduct(name, description, price string, quantity int) error {
	amount, err := parseAmount(price)
	if err != nil {
		return err
	}
	c.err = c.ledger.AddProduct(context.Background(), domain.NewProduct(name, description, amount, quantity))
	return nil
}

func (c *ledgerTestContext) iEditProduct(name, newName, description, price string, quantity int) error {
	amount, err := parseAmount(price)
	if err != nil {
		return err
	}
	c.err = c.ledger.EditProduct(context.Background(), name, domain.NewProduct(newName, description, amount, quantity))
	return nil
}

func (c *ledgerTestContext) iDeleteProduct(name string) error {
	c.err = c.ledger.DeleteProduct(context.Background(), name)
	return nil
}

func (c *ledgerTestContext) iRecordASale(quantity int, name, price string) error {
	amount, err := parseAmount(price)
	if err != nil {
		return err
	}
	_, c.err = c.ledger.RecordSale(context.Background(), name, quantity, amount)
	return nil
}

func (c *ledgerTestContext) iRecordAPurchase(quantity int, name, price string) error {
	amount, err := parseAmount(price)
	if err != nil {
		return err
	}
	_, c.err = c.ledger.RecordPurchase(context.Background(), name, quantity, amount)
	return nil
}

func (c *ledgerTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func hasReason(err error, reason string) error {
	var svcErr *serviceerrors.ServiceError
	if !errors.As(err, &svcErr) {
		return fmt.Errorf("expected %s, got %v", reason, err)
	}
	if string(svcErr.Reason) != reason {
		return fmt.Errorf("expected %s, got %s (%v)", reason, svcErr.Reason, err)
	}
	return nil
}

func (c *ledgerTestContext) theOperationFailsWith(reason string) error {
	return hasReason(c.err, reason)
}

func (c *ledgerTestContext) authenticatingSucceeds(username, password string) error {
	return c.ledger.Authenticate(context.Background(), username, password)
}

func (c *ledgerTestContext) authenticatingFailsWith(username, password, reason string) error {
	return hasReason(c.ledger.Authenticate(context.Background(), username, password), reason)
}

func expectAmount(label string, got domain.Amount, err error, want string) error {
	if err != nil {
		return err
	}
	expected, err := parseAmount(want)
	if err != nil {
		return err
	}
	if !got.Equal(expected) {
		return fmt.Errorf("expected %s %s, got %s", label, expected, got)
	}
	return nil
}

func (c *ledgerTestContext) totalSalesAre(want string) error {
	got, err := c.ledger.TotalSales(context.Background())
	return expectAmount("total sales", got, err, want)
}

func (c *ledgerTestContext) totalPurchasesAre(want string) error {
	got, err := c.ledger.TotalPurchases(context.Background())
	return expectAmount("total purchases", got, err, want)
}

func (c *ledgerTestContext) totalProfitIs(want string) error {
	got, err := c.ledger.TotalProfit(context.Background())
	return expectAmount("total profit", got, err, want)
}

func (c *ledgerTestContext) catalogNames() (string, error) {
	products, err := c.ledger.Products(context.Background())
	if err != nil {
		return "", err
	}
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return strings.Join(names, ", "), nil
}

func (c *ledgerTestContext) theCatalogLists(want string) error {
	got, err := c.catalogNames()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected catalog %q, got %q", want, got)
	}
	return nil
}

func (c *ledgerTestContext) theCatalogIsEmpty() error {
	return c.theCatalogLists("")
}

func (c *ledgerTestContext) productHasQuantity(name string, quantity int) error {
	product, err := c.ledger.GetProduct(context.Background(), name)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product %q not found", name)
	}
	if product.Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, product.Quantity)
	}
	return nil
}

func (c *ledgerTestContext) theReportHas(products, sales, purchases int) error {
	report, err := c.ledger.GenerateReport(context.Background())
	if err != nil {
		return err
	}
	if len(report.Products) != products || len(report.Sales) != sales || len(report.Purchases) != purchases {
		return fmt.Errorf("expected %d/%d/%d report lines, got %d/%d/%d",
			products, sales, purchases, len(report.Products), len(report.Sales), len(report.Purchases))
	}
	return nil
}

const amountPattern = `(-?\d+(?:\.\d+)?)`

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &ledgerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a ledger for "([^"]*)" with password "([^"]*)"$`, tc.aLedgerFor)
	ctx.Step(`^a tracked ledger for "([^"]*)" with password "([^"]*)"$`, tc.aTrackedLedgerFor)
	ctx.Step(`^a ledger for "([^"]*)" with password "([^"]*)" allowing (\d+) attempts per minute$`, tc.aThrottledLedgerFor)
	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)

	// When steps
	ctx.Step(`^I add product "([^"]*)" described as "([^"]*)" priced `+amountPattern+` with quantity (\d+)$`, tc.iAddProduct)
	ctx.Step(`^I edit product "([^"]*)" to "([^"]*)" described as "([^"]*)" priced `+amountPattern+` with quantity (\d+)$`, tc.iEditProduct)
	ctx.Step(`^I delete product "([^"]*)"$`, tc.iDeleteProduct)
	ctx.Step(`^I record a sale of (\d+) "([^"]*)" at `+amountPattern+`$`, tc.iRecordASale)
	ctx.Step(`^I record a purchase of (\d+) "([^"]*)" at `+amountPattern+`$`, tc.iRecordAPurchase)

	// Then steps
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^authenticating as "([^"]*)" with password "([^"]*)" succeeds$`, tc.authenticatingSucceeds)
	ctx.Step(`^authenticating as "([^"]*)" with password "([^"]*)" fails with "([^"]*)"$`, tc.authenticatingFailsWith)
	ctx.Step(`^total sales are `+amountPattern+`$`, tc.totalSalesAre)
	ctx.Step(`^total purchases are `+amountPattern+`$`, tc.totalPurchasesAre)
	ctx.Step(`^total profit is `+amountPattern+`$`, tc.totalProfitIs)
	ctx.Step(`^the catalog lists "([^"]*)"$`, tc.theCatalogLists)
	ctx.Step(`^the catalog is empty$`, tc.theCatalogIsEmpty)
	ctx.Step(`^product "([^"]*)" has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the report has (\d+) products, (\d+) sales and (\d+) purchases$`, tc.theReportHas)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/ledger.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
