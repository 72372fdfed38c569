// Command storefront is a terminal cart for the ordering API. The cart is
// kept in a JSON file between runs.
//
//	storefront menu [category]
//	storefront add <menu-id>
//	storefront set <menu-id> <quantity>
//	storefront remove <menu-id>
//	storefront cart
//	storefront clear
//	storefront checkout -name N -phone P -service diantar -payment cash [-address A] [-notes X]
//	storefront receipt <order-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yeremiapane/seblak-listyaning/cart"
	"github.com/yeremiapane/seblak-listyaning/client"
	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	baseURL := flag.String("api", cfg.APIBaseURL, "ordering API base URL")
	cartFile := flag.String("cart", defaultCartPath(), "cart file")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app := &storefront{api: client.New(*baseURL, nil), cartPath: *cartFile}
	if err := app.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		utils.ErrorLogger.Error(err)
		os.Exit(1)
	}
}

func defaultCartPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, cart.StorageKey+".json")
}

type storefront struct {
	api      *client.Client
	cartPath string
}

func (s *storefront) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "menu":
		return s.menu(ctx, args)
	case "add":
		return s.add(ctx, args)
	case "set":
		return s.set(args)
	case "remove":
		return s.remove(args)
	case "cart":
		return s.show()
	case "clear":
		return s.withCart(func(c *cart.Cart) error { c.Clear(); return nil })
	case "checkout":
		return s.checkout(ctx, args)
	case "receipt":
		return s.receipt(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *storefront) withCart(fn func(c *cart.Cart) error) error {
	c, err := cart.Load(s.cartPath)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return c.Save(s.cartPath)
}

func (s *storefront) menu(ctx context.Context, args []string) error {
	var (
		items []models.MenuItem
		err   error
	)
	if len(args) > 0 {
		items, err = s.api.ListMenuByCategory(ctx, args[0])
	} else {
		items, err = s.api.ListMenu(ctx)
	}
	if err != nil {
		return err
	}
	for _, item := range items {
		mark := ""
		if !item.Available() || item.StockQuantity <= 0 {
			mark = " (habis)"
		}
		fmt.Printf("%3d  %-22s %-8s %10s%s\n", item.ID, item.Name, item.Category, utils.FormatRupiah(item.Price), mark)
	}
	return nil
}

func menuID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("menu id required")
	}
	return strconv.Atoi(args[0])
}

func (s *storefront) add(ctx context.Context, args []string) error {
	id, err := menuID(args)
	if err != nil {
		return err
	}
	items, err := s.api.ListMenu(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		if !item.Available() || item.StockQuantity <= 0 {
			return fmt.Errorf("%s is not available", item.Name)
		}
		return s.withCart(func(c *cart.Cart) error {
			c.AddMenuItem(item)
			fmt.Printf("Added %s (%d items in cart)\n", item.Name, c.TotalItems())
			return nil
		})
	}
	return fmt.Errorf("menu item %d not found", id)
}

func (s *storefront) set(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <menu-id> <quantity>")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	return s.withCart(func(c *cart.Cart) error {
		c.UpdateQuantity(args[0], qty)
		return nil
	})
}

func (s *storefront) remove(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("menu id required")
	}
	return s.withCart(func(c *cart.Cart) error {
		c.RemoveItem(args[0])
		return nil
	})
}

func (s *storefront) show() error {
	c, err := cart.Load(s.cartPath)
	if err != nil {
		return err
	}
	for _, it := range c.Items() {
		fmt.Printf("%4s  %-22s x%-3d %10s\n", it.ID, it.Name, it.Quantity, utils.FormatRupiah(it.Price*int64(it.Quantity)))
	}
	fmt.Printf("Total: %d items, %s\n", c.TotalItems(), utils.FormatRupiah(c.TotalPrice()))
	return nil
}

func (s *storefront) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "customer phone")
	address := fs.String("address", "", "delivery address")
	service := fs.String("service", string(models.ServicePickup), "diantar, diambil or \"makan ditempat\"")
	payment := fs.String("payment", string(models.PaymentCash), "cash, bank_transfer, gopay, ovo or dana")
	notes := fs.String("notes", "", "notes for the kitchen")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := cart.CheckoutDetails{
		CustomerName:    *name,
		CustomerPhone:   *phone,
		CustomerAddress: *address,
		ServiceType:     models.ServiceType(*service),
		PaymentMethod:   models.PaymentMethod(*payment),
	}
	if *notes != "" {
		d.Notes = notes
	}

	return s.withCart(func(c *cart.Cart) error {
		order, err := c.Checkout(ctx, s.api, d)
		if err != nil {
			return err
		}
		fmt.Printf("Order #%d placed, total %s, status %s\n", order.ID, utils.FormatRupiah(order.TotalAmount), order.Status)
		return nil
	})
}

func (s *storefront) receipt(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("order id required")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	r, err := s.api.GetReceipt(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n%s  %s\n%s / %s / %s\n", r.ReceiptNumber, r.CreatedAt.Format("02-01-2006 15:04"),
		r.CustomerName, r.CustomerPhone, r.ServiceLabel, r.PaymentLabel, r.StatusLabel)
	for _, l := range r.Lines {
		fmt.Printf("  %-22s %3d x %10s = %10s\n", l.Name, l.Quantity, l.UnitPriceText, l.SubtotalText)
	}
	fmt.Printf("Total (%d items): %s\n", r.TotalItems, r.TotalText)
	return nil
}
