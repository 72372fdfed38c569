package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/models"
)

// fakeClock hands out strictly increasing timestamps.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func newGormTestStore(t *testing.T) Store {
	t.Helper()
	gs, err := NewGormStore(openTestDB(t))
	require.NoError(t, err)
	gs.now = newClock().now
	_, err = Seed(context.Background(), gs, DefaultMenuItems())
	require.NoError(t, err)
	t.Cleanup(func() { gs.Close() })
	return gs
}

func newMemoryTestStore(t *testing.T) Store {
	s := NewMemoryStore()
	s.now = newClock().now
	return s
}

var providers = map[string]func(t *testing.T) Store{
	"memory": newMemoryTestStore,
	"gorm":   newGormTestStore,
}

func forEachProvider(t *testing.T, fn func(t *testing.T, s Store)) {
	for name, factory := range providers {
		t.Run(name, func(t *testing.T) {
			fn(t, factory(t))
		})
	}
}

func sampleOrder() models.NewOrder {
	notes := "level 3"
	return models.NewOrder{
		CustomerName:    "Siti",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. Merdeka No. 10, Bandung",
		ServiceType:     models.ServiceDelivery,
		PaymentMethod:   models.PaymentCash,
		Notes:           &notes,
		Items: []models.OrderLine{
			{ID: 1, Name: "Seblak Original", Price: 15000, Quantity: 2},
			{ID: 9, Name: "Es Teh Manis", Price: 5000, Quantity: 1},
		},
		TotalAmount: 35000,
	}
}

func TestMenuQueries(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		all, err := s.GetAllMenuItems(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(DefaultMenuItems()))
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		seblak, err := s.GetMenuItemsByCategory(ctx, "seblak")
		require.NoError(t, err)
		assert.Len(t, seblak, 5)
		for _, item := range seblak {
			assert.Equal(t, "seblak", item.Category)
		}

		none, err := s.GetMenuItemsByCategory(ctx, "dessert")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		item, err := s.GetMenuItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Seblak Original", item.Name)
		require.NotNil(t, item.SpicyLevel)
		assert.Equal(t, "level 1-5", *item.SpicyLevel)

		_, err = s.GetMenuItem(ctx, 999)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCreateMenuItem(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		created, err := s.CreateMenuItem(ctx, models.MenuItem{
			ID:                500,
			Name:              "Seblak Tulang",
			Description:       "Tulang ayam dengan kuah seblak",
			Price:             22000,
			Category:          "seblak",
			Image:             "/images/seblak-tulang.jpg",
			StockQuantity:     10,
			LowStockThreshold: 3,
			Unit:              "porsi",
			IsAvailable:       1,
			Rating:            45,
		})
		require.NoError(t, err)
		assert.Equal(t, len(DefaultMenuItems())+1, created.ID)
		assert.Nil(t, created.SpicyLevel)

		got, err := s.GetMenuItem(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		_, err = s.CreateMenuItem(ctx, models.MenuItem{Name: "x"})
		assert.True(t, apperr.IsValidation(err))

		all, err := s.GetAllMenuItems(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(DefaultMenuItems())+1)
	})
}

func TestUpdateMenuItemStock(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		updated, err := s.UpdateMenuItemStock(ctx, 1, 3, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.StockQuantity)
		assert.Equal(t, 5, updated.LowStockThreshold)
		assert.Equal(t, "Seblak Original", updated.Name)

		got, err := s.GetMenuItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		_, err = s.UpdateMenuItemStock(ctx, 1, -1, 5)
		assert.True(t, apperr.IsValidation(err))
		_, err = s.UpdateMenuItemStock(ctx, 1, 10, 0)
		assert.True(t, apperr.IsValidation(err))

		got, err = s.GetMenuItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, got.StockQuantity, "rejected update must not be applied")

		_, err = s.UpdateMenuItemStock(ctx, 999, 1, 1)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestUpdateMenuItemAvailability(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		updated, err := s.UpdateMenuItemAvailability(ctx, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.IsAvailable)

		got, err := s.GetMenuItem(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, got.IsAvailable)
		assert.Equal(t, 30, got.StockQuantity)

		updated, err = s.UpdateMenuItemAvailability(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.IsAvailable)

		_, err = s.UpdateMenuItemAvailability(ctx, 2, 2)
		assert.True(t, apperr.IsValidation(err))
		_, err = s.UpdateMenuItemAvailability(ctx, 999, 1)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCreateAndGetOrder(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		order, err := s.CreateOrder(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, 1, order.ID)
		assert.Equal(t, models.StatusPending, order.Status)
		assert.False(t, order.CreatedAt.IsZero())
		assert.Equal(t, int64(35000), order.TotalAmount)
		require.Len(t, order.Items, 2)
		require.NotNil(t, order.Notes)
		assert.Equal(t, "level 3", *order.Notes)

		got, err := s.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Items, got.Items)
		assert.Equal(t, order.CustomerAddress, got.CustomerAddress)
		assert.True(t, order.CreatedAt.Equal(got.CreatedAt))

		second, err := s.CreateOrder(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, 2, second.ID)

		_, err = s.GetOrder(ctx, 999)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCreateOrderRejectsInvalid(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		bad := sampleOrder()
		bad.Items = nil
		_, err := s.CreateOrder(ctx, bad)
		assert.True(t, apperr.IsValidation(err))

		bad = sampleOrder()
		bad.TotalAmount = 1
		_, err = s.CreateOrder(ctx, bad)
		assert.True(t, apperr.IsValidation(err))

		list, err := s.GetAllOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestCreateOrderPickupDefaultsAddress(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		in := sampleOrder()
		in.ServiceType = models.ServicePickup
		in.CustomerAddress = ""
		order, err := s.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Diambil di tempat", order.CustomerAddress)
	})
}

func TestOrderItemsAreFrozen(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		in := sampleOrder()
		order, err := s.CreateOrder(ctx, in)
		require.NoError(t, err)

		in.Items[0].Quantity = 50
		order.Items[0].Price = 1

		_, err = s.UpdateMenuItemStock(ctx, 1, 0, 1)
		require.NoError(t, err)

		got, err := s.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.Equal(t, int64(15000), got.Items[0].Price)
		assert.Equal(t, int64(35000), got.TotalAmount)
	})
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		empty, err := s.GetAllOrders(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		for i := 0; i < 3; i++ {
			_, err := s.CreateOrder(ctx, sampleOrder())
			require.NoError(t, err)
		}
		list, err := s.GetAllOrders(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []int{3, 2, 1}, []int{list[0].ID, list[1].ID, list[2].ID})
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	forEachProvider(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		order, err := s.CreateOrder(ctx, sampleOrder())
		require.NoError(t, err)

		for _, status := range []models.OrderStatus{
			models.StatusConfirmed, models.StatusPreparing, models.StatusReady, models.StatusDelivered,
		} {
			updated, err := s.UpdateOrderStatus(ctx, order.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
			assert.Equal(t, order.Items, updated.Items)
		}

		// any status may follow any other
		updated, err := s.UpdateOrderStatus(ctx, order.ID, models.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, updated.Status)

		_, err = s.UpdateOrderStatus(ctx, order.ID, "shipped")
		assert.True(t, apperr.IsValidation(err))

		got, err := s.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)

		_, err = s.UpdateOrderStatus(ctx, 999, models.StatusReady)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemoryStore()

	n, err := Seed(ctx, s, DefaultMenuItems())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultMenuItems()), n)

	n, err = Seed(ctx, s, DefaultMenuItems())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedStopsOnInvalidItem(t *testing.T) {
	items := DefaultMenuItems()
	items[1].Price = 0
	n, err := Seed(context.Background(), NewEmptyMemoryStore(), items)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, apperr.IsValidation(err))
}

func TestDefaultMenuItemsAreValid(t *testing.T) {
	s := NewEmptyMemoryStore()
	for _, item := range DefaultMenuItems() {
		_, err := s.CreateMenuItem(context.Background(), item)
		assert.NoError(t, err, item.Name)
	}
}

func TestSelect(t *testing.T) {
	assert.Equal(t, KindMemory, Select(&config.Config{}))
	assert.Equal(t, KindMemory, Select(&config.Config{DBDriver: "postgres"}))
	assert.Equal(t, KindGorm, Select(&config.Config{DBDriver: "sqlite", DBDSN: "file::memory:"}))
}

func TestNewMemory(t *testing.T) {
	s, err := New(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer s.Close()
	_, ok := s.(*MemoryStore)
	assert.True(t, ok)
}

func TestNewGormSeeds(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := New(context.Background(), &config.Config{DBDriver: "sqlite", DBDSN: dsn, DBConnectRetries: 1})
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*GormStore)
	assert.True(t, ok)
	all, err := s.GetAllMenuItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultMenuItems()))
}
