// Package console drives a ledger from a line-oriented terminal session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rafaelleal24/inventory/internal/adapters/renderer"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/service"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

const menu = `
===== Inventory Management System =====
1. Add Product
2. Edit Product
3. Delete Product
4. Generate Report
5. Record Sale
6. Record Purchase
7. List Products
8. View Product
0. Exit`

const invalidNumber = "Invalid input. Please enter a valid number."

var errReadInput = errors.New("console: read input")

type Options struct {
	Currency string
	// Style is a glamour style for reports. Empty prints raw markdown.
	Style string
	// Echo repeats every answer after its prompt, for scripted sessions.
	Echo bool
}

type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	opts    Options
}

func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	return &Session{scanner: bufio.NewScanner(in), out: out, opts: opts}
}

// Open greets the operator and returns the credentials the ledger is set up
// with. The operator is only prompted when preset is nil.
func (s *Session) Open(preset *domain.Credentials) (domain.Credentials, error) {
	s.println("Let setup an inventory management system for you...")
	if preset != nil {
		return *preset, nil
	}
	return s.PromptCredentials()
}

func (s *Session) PromptCredentials() (domain.Credentials, error) {
	username, err := s.readLine("Enter username:")
	if err != nil {
		return domain.Credentials{}, err
	}
	password, err := s.readLine("Enter password:")
	if err != nil {
		return domain.Credentials{}, err
	}
	return domain.Credentials{Username: username, Password: password}, nil
}

// Run serves the menu until the operator exits or the input ends. Only the
// catalog changes ask for credentials. Ledger rejections are printed and the
// menu is shown again.
func (s *Session) Run(ctx context.Context, ledger *service.LedgerService) error {
	s.println("Inventory management system is ready...")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(menu)
		choice, err := s.readLine("Enter your choice:")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "0":
			s.println("Exiting program.")
			return nil
		case "1":
			err = s.authenticated(ctx, ledger, func(ctx context.Context) error { return s.addProduct(ctx, ledger) })
		case "2":
			err = s.authenticated(ctx, ledger, func(ctx context.Context) error { return s.editProduct(ctx, ledger) })
		case "3":
			err = s.authenticated(ctx, ledger, func(ctx context.Context) error { return s.deleteProduct(ctx, ledger) })
		case "4":
			err = s.generateReport(ctx, ledger)
		case "5":
			err = s.recordSale(ctx, ledger)
		case "6":
			err = s.recordPurchase(ctx, ledger)
		case "7":
			err = s.listProducts(ctx, ledger)
		case "8":
			err = s.viewProduct(ctx, ledger)
		default:
			s.println("Invalid choice. Please enter a number between 0 and 8.")
		}

		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, errReadInput) {
			return ignoreEOF(err)
		}

		var svcErr *serviceerrors.ServiceError
		if !errors.As(err, &svcErr) {
			logger.Error(ctx, "console: operation failed", err, map[string]any{"choice": choice})
		}
		s.println(err.Error())
	}
}

func (s *Session) authenticated(ctx context.Context, ledger *service.LedgerService, fn func(ctx context.Context) error) error {
	creds, err := s.PromptCredentials()
	if err != nil {
		return err
	}
	return ledger.WithAuthentication(ctx, creds.Username, creds.Password, fn)
}

func (s *Session) addProduct(ctx context.Context, ledger *service.LedgerService) error {
	product, err := s.promptProduct()
	if err != nil {
		return err
	}
	if err := ledger.AddProduct(ctx, product); err != nil {
		return err
	}
	s.println("Product added successfully.")
	return nil
}

func (s *Session) editProduct(ctx context.Context, ledger *service.LedgerService) error {
	name, err := s.readLine("Enter name of the product to edit:")
	if err != nil {
		return err
	}
	product, err := s.promptProduct()
	if err != nil {
		return err
	}

	s.println("Editing product... " + name)
	if err := ledger.EditProduct(ctx, name, product); err != nil {
		return err
	}
	s.println("Product edited successfully.")
	return nil
}

func (s *Session) deleteProduct(ctx context.Context, ledger *service.LedgerService) error {
	name, err := s.readLine("Enter name of the product to delete:")
	if err != nil {
		return err
	}
	if err := ledger.DeleteProduct(ctx, name); err != nil {
		return err
	}
	s.println("Product deleted successfully.")
	return nil
}

func (s *Session) recordSale(ctx context.Context, ledger *service.LedgerService) error {
	name, quantity, price, err := s.promptTransaction("Enter quantity sold:", "Enter sale price:")
	if err != nil {
		return err
	}
	record, err := ledger.RecordSale(ctx, name, quantity, price)
	if err != nil {
		return err
	}
	s.println("Sale recorded. Total sales: " + record.LineTotal().Format(s.opts.Currency))
	return nil
}

func (s *Session) recordPurchase(ctx context.Context, ledger *service.LedgerService) error {
	name, quantity, price, err := s.promptTransaction("Enter quantity purchased:", "Enter purchase price:")
	if err != nil {
		return err
	}
	record, err := ledger.RecordPurchase(ctx, name, quantity, price)
	if err != nil {
		return err
	}
	s.println("Purchase recorded. Total cost: " + record.LineTotal().Format(s.opts.Currency))
	return nil
}

func (s *Session) generateReport(ctx context.Context, ledger *service.LedgerService) error {
	s.println("Generating report...")
	report, err := ledger.GenerateReport(ctx)
	if err != nil {
		return err
	}
	return s.printMarkdown(renderer.RenderReport(report, s.opts.Currency))
}

func (s *Session) listProducts(ctx context.Context, ledger *service.LedgerService) error {
	products, err := ledger.Products(ctx)
	if err != nil {
		return err
	}
	return s.printMarkdown(renderer.RenderCatalog(products, s.opts.Currency))
}

func (s *Session) viewProduct(ctx context.Context, ledger *service.LedgerService) error {
	name, err := s.readLine("Enter name of the product to view:")
	if err != nil {
		return err
	}
	product, err := ledger.GetProduct(ctx, name)
	if err != nil {
		return err
	}
	return s.printMarkdown(renderer.RenderProduct(product, s.opts.Currency))
}

func (s *Session) printMarkdown(md string) error {
	out, err := renderer.Terminal(md, s.opts.Style)
	if err != nil {
		return err
	}
	s.println(strings.TrimRight(out, "\n"))
	return nil
}

func (s *Session) promptProduct() (*domain.Product, error) {
	name, err := s.readLine("Enter product name:")
	if err != nil {
		return nil, err
	}
	description, err := s.readLine("Enter product description:")
	if err != nil {
		return nil, err
	}
	price, err := s.readAmount("Enter product price:")
	if err != nil {
		return nil, err
	}
	quantity, err := s.readQuantity("Enter product quantity:")
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(name, description, price, quantity), nil
}

func (s *Session) promptTransaction(quantityPrompt, pricePrompt string) (string, int, domain.Amount, error) {
	name, err := s.readLine("Enter product name:")
	if err != nil {
		return "", 0, domain.Amount{}, err
	}
	quantity, err := s.readQuantity(quantityPrompt)
	if err != nil {
		return "", 0, domain.Amount{}, err
	}
	price, err := s.readAmount(pricePrompt)
	if err != nil {
		return "", 0, domain.Amount{}, err
	}
	return name, quantity, price, nil
}

// readAmount prompts until the answer parses as a decimal number.
func (s *Session) readAmount(prompt string) (domain.Amount, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return domain.Amount{}, err
		}
		amount, err := domain.NewAmountFromString(line)
		if err == nil {
			return amount, nil
		}
		s.println(invalidNumber)
	}
}

// readQuantity prompts until the answer parses as a non-negative integer.
func (s *Session) readQuantity(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 31)
		if err == nil {
			return int(n), nil
		}
		s.println(invalidNumber)
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	s.println(prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errReadInput, err)
		}
		return "", io.EOF
	}
	line := s.scanner.Text()
	if s.opts.Echo {
		s.println(line)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
