package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/canteen-pos/internal/application/service"
	"github.com/sangkips/canteen-pos/internal/catalog"
	"github.com/sangkips/canteen-pos/internal/config"
	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/internal/domain/enum"
	"github.com/sangkips/canteen-pos/internal/infrastructure/database"
	"github.com/sangkips/canteen-pos/internal/infrastructure/repository"
	"github.com/sangkips/canteen-pos/pkg/apperror"
	"github.com/sangkips/canteen-pos/pkg/printer"
	"go.uber.org/zap"
)

// app holds the wired-up till. The core components never talk to the terminal
// themselves; everything interactive lives here.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	products []entity.Product
	history  *service.HistoryService
	printSvc *service.PrinterService
	in       *bufio.Scanner
}

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.App.Debug)
	defer logger.Sync()

	// Tag every log line with a short session id, one till session at a time.
	sessionID := uuid.New().String()
	logger = logger.With(zap.String("session_id", sessionID[:8]))

	// Catalog: built-in menu unless a catalog file is configured.
	products := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Warn("catalog file unusable, falling back to built-in menu", zap.Error(err))
		} else {
			products = loaded
		}
	}

	// Open the bill store; if that fails the till keeps working with
	// memory-only history for this session.
	var billRepo = repository.NewMemoryBillRepository()
	db, err := database.Open(&cfg.Store, logger)
	if err == nil {
		err = database.AutoMigrate(db)
	}
	if err != nil {
		logger.Warn("bill store unavailable, history will not survive this session", zap.Error(err))
		fmt.Println("Warning: bill history is unavailable; bills from this session will not be saved.")
	} else {
		defer database.Close(db)
		billRepo = repository.NewBillRepository(db)
	}

	prn, err := printer.NewFromConfig(cfg.Printer.Type, cfg.Printer.Address)
	if err != nil {
		logger.Warn("printer misconfigured, printing disabled", zap.Error(err))
		prn = printer.NewNullPrinter()
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		products: products,
		history:  service.NewHistoryService(billRepo, logger),
		printSvc: service.NewPrinterService(prn, cfg.Printer.Type, cfg.Printer.Width, logger),
		in:       bufio.NewScanner(os.Stdin),
	}
	a.run()
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func (a *app) run() {
	fmt.Printf("%s — College Canteen billing\n", a.cfg.App.Name)
	fmt.Println(`Commands: list [query], bill, history, clear, printer, quit`)

	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch strings.ToLower(cmd) {
		case "":
		case "list":
			a.showCatalog(arg)
		case "bill":
			a.makeBill()
		case "history":
			a.showHistory()
		case "clear":
			a.clearHistory()
		case "printer":
			a.showPrinterStatus()
		case "quit", "exit":
			return
		default:
			fmt.Println("Commands: list [query], bill, history, clear, printer, quit")
		}
	}
}

func (a *app) showCatalog(query string) {
	matches := catalog.Filter(a.products, query)
	if len(matches) == 0 {
		fmt.Println("No products found.")
		return
	}
	for _, p := range matches {
		// Indices always refer to the full catalog, filtered or not.
		idx := a.catalogIndex(p.Name)
		fmt.Printf("%3d. %-16s – %d Pcs – ₹%s\n", idx, p.Name, p.PiecesPerUnit, p.UnitPrice.String())
	}
}

func (a *app) catalogIndex(name string) int {
	for i, p := range a.products {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (a *app) makeBill() {
	a.showCatalog("")
	fmt.Print("Items as index or indexxqty, comma-separated (e.g. 9x3,11): ")
	if !a.in.Scan() {
		return
	}

	raw := a.readSelections(a.in.Text())
	lines, err := service.BuildSelection(a.products, raw)
	if err != nil {
		if apperror.IsValidation(err) {
			fmt.Println(apperror.GetAppError(err).Message + "!")
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	method := a.readPaymentMethod()
	bill := service.ComputeBill(lines, method)

	fmt.Println()
	fmt.Print(service.RenderReceipt(bill))
	fmt.Println()

	if !a.confirm("Save bill?", true) {
		return
	}

	id, err := a.history.Persist(context.Background(), bill)
	if err != nil {
		a.degradeIfStoreLost(err)
	} else {
		fmt.Printf("Saved as bill #%d\n", id)
	}

	if a.printSvc.Status().Configured && a.confirm("Print receipt?", false) {
		if err := a.printSvc.PrintBill(bill); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// readSelections turns "9x3,11, 4xabc" into per-catalog-row selections. The
// quantity part stays a raw string: the selection builder owns the be-forgiving
// normalization. Tokens without a usable index are skipped.
func (a *app) readSelections(input string) []service.RawSelection {
	raw := make([]service.RawSelection, len(a.products))
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		idxPart, qtyPart, hasQty := strings.Cut(token, "x")
		idx, err := strconv.Atoi(strings.TrimSpace(idxPart))
		if err != nil || idx < 0 || idx >= len(a.products) {
			perr := apperror.NewParseError("skipping unrecognized item token", err)
			a.logger.Debug(perr.Message, zap.String("token", token))
			fmt.Printf("Skipping %q: not a product index.\n", token)
			continue
		}

		qty := "1"
		if hasQty {
			qty = qtyPart
		}
		raw[idx] = service.RawSelection{Selected: true, Quantity: qty}
	}
	return raw
}

func (a *app) readPaymentMethod() string {
	methods := a.cfg.Billing.PaymentMethods
	if len(methods) == 0 {
		for _, m := range enum.DefaultPaymentMethods() {
			methods = append(methods, m.String())
		}
	}
	fmt.Printf("Payment method %v [%s]: ", methods, methods[0])
	if !a.in.Scan() {
		return methods[0]
	}
	input := strings.TrimSpace(a.in.Text())
	if input == "" {
		return methods[0]
	}
	for _, m := range methods {
		if strings.EqualFold(m, input) {
			return m
		}
	}
	fmt.Printf("Unknown method %q, using %s.\n", input, methods[0])
	return methods[0]
}

func (a *app) showHistory() {
	records, err := a.history.ListAll(context.Background())
	if err != nil {
		a.degradeIfStoreLost(err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No bills found in history")
		return
	}

	for _, rec := range records {
		b := rec.Bill
		fmt.Printf("Bill #%d  %s  %s  ₹%s\n", b.ID, b.Date, b.PaymentMethod, b.TotalAmount.StringFixed(2))
		fmt.Printf("    %s\n", rec.Summary)
		fmt.Printf("    Total: ₹%s (%d items)\n", b.TotalAmount.StringFixed(2), b.ItemsCount)
	}
}

func (a *app) clearHistory() {
	if !a.confirm("Clear all bill history? This action cannot be undone.", false) {
		return
	}
	if err := a.history.Clear(context.Background()); err != nil {
		a.degradeIfStoreLost(err)
		return
	}
	fmt.Println("History cleared.")
}

func (a *app) showPrinterStatus() {
	st := a.printSvc.Status()
	fmt.Printf("Printer: type=%s configured=%t connected=%t\n", st.Type, st.Configured, st.Connected)
}

// degradeIfStoreLost reports a history failure and, when the store itself is
// gone, swaps in memory-only history for the rest of the session so billing
// stays usable.
func (a *app) degradeIfStoreLost(err error) {
	appErr := apperror.GetAppError(err)
	fmt.Printf("Error: %s\n", appErr.Message)

	if apperror.IsStoreUnavailable(err) {
		a.logger.Warn("bill store lost, switching to memory-only history", zap.Error(err))
		fmt.Println("Bill history is unavailable; further bills this session will not be saved.")
		a.history = service.NewHistoryService(repository.NewMemoryBillRepository(), a.logger)
	}
}

func (a *app) confirm(prompt string, def bool) bool {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Printf("%s %s ", prompt, suffix)
	if !a.in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(a.in.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}
