// Command admin-watch polls the admin order list and logs new orders and
// status changes, like the admin dashboard does.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/seblak-listyaning/client"
	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/orders"
	"github.com/yeremiapane/seblak-listyaning/services"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

func main() {
	cfg := config.Load()
	baseURL := flag.String("api", cfg.APIBaseURL, "ordering API base URL")
	interval := flag.Duration("interval", cfg.PollInterval, "poll interval")
	all := flag.Bool("all", false, "also report orders that exist at startup")
	flag.Parse()

	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*baseURL, nil)
	watcher := services.NewOrderWatcher(api, *interval, *all, func(ev services.OrderEvent) {
		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"order_id": ev.Order.ID,
			"customer": ev.Order.CustomerName,
			"service":  orders.ServiceTypeText(ev.Order.ServiceType),
			"total":    utils.FormatRupiah(ev.Order.TotalAmount),
		})
		if ev.IsNew() {
			entry.Info("Pesanan baru")
			return
		}
		entry.Infof("Status: %s -> %s", orders.StatusText(ev.Previous), orders.StatusText(ev.Order.Status))
	})

	utils.InfoLogger.Printf("Watching %s every %s", *baseURL, watcher.Interval)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		utils.ErrorLogger.Fatal(err)
	}
}
