package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the inventory from an interactive menu" }
func (*shellCmd) Usage() string {
	return `inv shell

  Opens the interactive menu. This is the default command when inv is called
  without arguments.

  If the inventory file cannot be read, the problem is reported and the menu
  starts with an empty inventory.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := inventory.Open(inventory.NewJSONFile(cfg.Data.File))
	if err != nil {
		zap.S().Warnf("load-inventory-failed name=%q error=%v", cfg.Data.File, err)
		fmt.Fprintf(stdout, "\nError loading %q: %v\nStarting with an empty inventory.\n", cfg.Data.File, err)
	}

	s := NewShell(stdin, stdout, r)
	s.Currency = cfg.Currency
	s.MinStock = cfg.Stock.Minimum
	s.Clear = isTerminal()
	s.Pause = true
	if err := s.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errQuit is returned by prompts when the input is exhausted.
var errQuit = errors.New("end of input")

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// Shell is the interactive menu over a registry. All operator errors are
// printed and the menu goes on.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	registry *inventory.Registry

	// Currency of money values in reports.
	Currency string
	// MinStock is the threshold used when the operator gives none.
	MinStock int
	// Clear the screen before printing the menu.
	Clear bool
	// Pause waits for Enter after each action.
	Pause bool
}

// NewShell creates a shell that reads the operator input from r and writes
// to w.
func NewShell(r io.Reader, w io.Writer, registry *inventory.Registry) *Shell {
	return &Shell{
		in:       bufio.NewReader(r),
		out:      w,
		registry: registry,
		Currency: "USD",
		MinStock: inventory.DefaultMinStock,
	}
}

func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

const menu = `
=== INVENTORY SYSTEM ===
1. Add product
2. Update product
3. Delete product
4. List inventory
5. Search product
6. Record sale
7. Generate report
8. Exit

`

// Run loops on the menu until the operator exits or the input ends.
func (s *Shell) Run() error {
	for {
		if s.Clear {
			s.Printf("%s", clearScreen)
		}
		s.Printf("%s", menu)
		option, err := s.ask("Select an option: ")
		if err != nil {
			return quit(err)
		}

		switch strings.TrimSpace(option) {
		case "1":
			err = s.add()
		case "2":
			err = s.update()
		case "3":
			err = s.delete()
		case "4":
			s.list()
		case "5":
			err = s.search()
		case "6":
			err = s.sell()
		case "7":
			s.report()
		case "8":
			s.Printf("\nThank you for using the inventory system!\n")
			return nil
		default:
			s.Printf("\nInvalid option, please try again.\n")
		}
		if err != nil {
			return quit(err)
		}

		if s.Pause {
			if _, err := s.ask("\nPress Enter to continue..."); err != nil {
				return quit(err)
			}
		}
	}
}

// quit turns the end of the input into a normal exit.
func quit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// ask prints the prompt and reads one line, without its line ending.
func (s *Shell) ask(prompt string) (string, error) {
	s.Printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askUntil asks again until parse accepts the answer.
func askUntil[T any](s *Shell, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		s.Printf("\nError! %v\n", err)
	}
}

func (s *Shell) add() error {
	code, err := askUntil(s, "Enter the product code (positive integer): ", s.registry.CodeAvailable)
	if err != nil {
		return err
	}
	name, err := askUntil(s, "Enter the product name: ", func(name string) (string, error) {
		name = strings.TrimSpace(name)
		return name, s.registry.NameAvailable(name)
	})
	if err != nil {
		return err
	}
	price, err := askUntil(s, "Enter the product price: ", inventory.ParsePrice)
	if err != nil {
		return err
	}
	quantity, err := askUntil(s, "Enter the initial quantity: ", inventory.ParseQuantity)
	if err != nil {
		return err
	}
	minStock, err := askUntil(s, fmt.Sprintf("Enter the minimum stock (Enter to use %d): ", s.MinStock), func(text string) (int, error) {
		if strings.TrimSpace(text) == "" {
			return s.MinStock, nil
		}
		return inventory.ParseMinStock(text)
	})
	if err != nil {
		return err
	}

	if err := s.registry.Add(code, name, price, quantity, minStock); err != nil {
		s.Printf("\nError! %v\n", err)
		return nil
	}
	s.Printf("\nProduct added successfully!\n")
	return nil
}

func (s *Shell) update() error {
	code, err := askUntil(s, "Enter the code of the product to update: ", s.registry.CodeExists)
	if err != nil {
		return err
	}
	p, _ := s.registry.Get(code)
	s.Printf("\nCurrent product information:\n")
	s.Printf("Name: %s\n", p.Name)
	s.Printf("Price: %s\n", p.Price.StringFixed(2))
	s.Printf("Current quantity: %d\n", p.Quantity)

	name, err := s.ask("\nEnter the new name (Enter to keep): ")
	if err != nil {
		return err
	}
	priceText, err := s.ask("Enter the new price (Enter to keep): ")
	if err != nil {
		return err
	}
	quantityText, err := s.ask("Enter the quantity to add (Enter to keep): ")
	if err != nil {
		return err
	}

	var changes inventory.Changes
	if name = strings.TrimSpace(name); name != "" {
		changes.Name = &name
	}
	if strings.TrimSpace(priceText) != "" {
		price, err := inventory.ParsePrice(priceText)
		if err != nil {
			s.Printf("Invalid price, the current value is kept: %v\n", err)
		} else {
			changes.Price = &price
		}
	}
	if strings.TrimSpace(quantityText) != "" {
		delta, err := inventory.ParseQuantity(quantityText)
		if err != nil {
			s.Printf("Invalid quantity, the current value is kept: %v\n", err)
		} else {
			changes.QuantityDelta = &delta
		}
	}

	if err := s.registry.Update(code, changes); err != nil {
		s.Printf("\nError! %v\n", err)
		return nil
	}
	s.Printf("\nProduct updated successfully!\n")
	return nil
}

func (s *Shell) delete() error {
	code, err := askUntil(s, "Enter the code of the product to delete: ", s.registry.CodeExists)
	if err != nil {
		return err
	}
	if err := s.registry.Remove(code); err != nil {
		s.Printf("\nError! %v\n", err)
		return nil
	}
	s.Printf("\nProduct deleted successfully!\n")
	return nil
}

func (s *Shell) list() {
	s.Printf("\n=== Current inventory ===\n")
	s.Printf("%s", renderer.RenderProducts(s.registry.Products()))
	s.Printf("%s", renderer.RenderLowStockAlert(s.registry.LowStock()))
}

func (s *Shell) search() error {
	term, err := s.ask("Enter the product name or code: ")
	if err != nil {
		return err
	}
	found := s.registry.Search(strings.TrimSpace(term))
	s.Printf("\n=== SEARCH RESULTS ===\n")
	if len(found) == 0 {
		s.Printf("No products found.\n")
		return nil
	}
	s.Printf("%s", renderer.RenderProducts(found))
	return nil
}

func (s *Shell) sell() error {
	code, err := askUntil(s, "Enter the product code: ", s.registry.CodeExists)
	if err != nil {
		return err
	}
	quantity, err := askUntil(s, "Enter the quantity sold: ", inventory.ParseSaleQuantity)
	if err != nil {
		return err
	}
	if err := s.registry.RecordSale(code, quantity); err != nil {
		s.Printf("\nError! %v\n", err)
		return nil
	}
	s.Printf("\nSale recorded successfully!\n")
	return nil
}

func (s *Shell) report() {
	report := inventory.NewReport(s.registry.Products(), renderer.Now(), s.Currency)
	s.Printf("%s", renderer.RenderReportText(renderer.NewReport(report)))
}
