package datasource

import (
	"time"

	"matsal-partner-api/entity"
)

// Seed dataset served in mock mode. Order timestamps are generated
// relative to the current time so the dashboard stats stay meaningful.

func ts(ago time.Duration) time.Time {
	return time.Now().Add(-ago)
}

func tsp(ago time.Duration) *time.Time {
	t := ts(ago)
	return &t
}

func seedOrders() []entity.Order {
	return []entity.Order{
		{
			ID: "ord-001", OrderNumber: 1042, Status: entity.OrderIncoming, OrderType: entity.OrderDelivery,
			Customer: entity.Customer{Name: "Aset Magomadov", Address: "15 Orchard Ave, apt 42", Phone: "+7 938 111-22-33", Floor: "5", Apartment: "42"},
			Items: []entity.OrderLine{
				{Name: "Khinkali (10 pcs)", Quantity: 1, Price: 450},
				{Name: "Adjarian Khachapuri", Quantity: 1, Price: 380},
				{Name: "Tarragon Lemonade", Quantity: 2, Price: 150},
			},
			ItemsCount: 4, TotalPrice: 1130, DeliveryFee: 100,
			CreatedAt: ts(3 * time.Minute),
		},
		{
			ID: "ord-002", OrderNumber: 1043, Status: entity.OrderIncoming, OrderType: entity.OrderPickup,
			Customer: entity.Customer{Name: "Madina Isaeva", Address: "8 Mayak St, apt 15", Phone: "+7 938 222-33-44", Floor: "3", Apartment: "15"},
			Items: []entity.OrderLine{
				{Name: "Lamb Shashlik", Quantity: 2, Price: 520},
				{Name: "Olivier Salad", Quantity: 1, Price: 280},
			},
			ItemsCount: 3, TotalPrice: 1320, DeliveryFee: 100,
			CreatedAt: ts(5 * time.Minute),
		},
		{
			ID: "ord-003", OrderNumber: 1041, Status: entity.OrderPreparing, OrderType: entity.OrderDelivery,
			Customer: entity.Customer{Name: "Ruslan Kadyrov", Address: "22 Pervomayskaya St", Phone: "+7 938 333-44-55"},
			Items: []entity.OrderLine{
				{Name: "Chebureki (3 pcs)", Quantity: 1, Price: 300},
				{Name: "Borscht", Quantity: 1, Price: 350},
				{Name: "Lavash Bread", Quantity: 2, Price: 80},
			},
			ItemsCount: 4, TotalPrice: 810, DeliveryFee: 100,
			CreatedAt: ts(15 * time.Minute), AcceptedAt: tsp(12 * time.Minute),
		},
		{
			ID: "ord-004", OrderNumber: 1040, Status: entity.OrderPreparing, OrderType: entity.OrderDineIn,
			Customer: entity.Customer{Name: "Zarema Khasanova", Address: "50 Victory Ave, apt 7", Phone: "+7 938 444-55-66", Floor: "2", Apartment: "7", Comment: "Call 5 minutes before"},
			Items: []entity.OrderLine{
				{Name: "Pizza Margherita", Quantity: 1, Price: 450},
				{Name: "Pizza Pepperoni", Quantity: 1, Price: 520},
				{Name: "Cola 0.5l", Quantity: 2, Price: 120},
			},
			ItemsCount: 4, TotalPrice: 1210, DeliveryFee: 0,
			CreatedAt: ts(25 * time.Minute), AcceptedAt: tsp(22 * time.Minute),
		},
		{
			ID: "ord-005", OrderNumber: 1039, Status: entity.OrderReady, OrderType: entity.OrderDelivery,
			Customer: entity.Customer{Name: "Ibragim Dudaev", Address: "3 Lenina St, apt 88", Phone: "+7 938 555-66-77", Floor: "9", Apartment: "88"},
			Items: []entity.OrderLine{
				{Name: "Lula Kebab", Quantity: 2, Price: 380},
				{Name: "Rice with Vegetables", Quantity: 1, Price: 250},
			},
			ItemsCount: 3, TotalPrice: 1010, DeliveryFee: 100,
			CreatedAt: ts(40 * time.Minute), AcceptedAt: tsp(37 * time.Minute), ReadyAt: tsp(5 * time.Minute),
		},
		{
			ID: "ord-006", OrderNumber: 1038, Status: entity.OrderCompleted, OrderType: entity.OrderDelivery,
			Customer: entity.Customer{Name: "Amina Suleymanova", Address: "12 Gagarina St", Phone: "+7 938 666-77-88"},
			Items: []entity.OrderLine{
				{Name: "Kharcho", Quantity: 1, Price: 380},
				{Name: "Khinkali (5 pcs)", Quantity: 1, Price: 250},
			},
			ItemsCount: 2, TotalPrice: 630, DeliveryFee: 100,
			CreatedAt: ts(120 * time.Minute), AcceptedAt: tsp(117 * time.Minute), ReadyAt: tsp(90 * time.Minute), CompletedAt: tsp(80 * time.Minute),
		},
		{
			ID: "ord-007", OrderNumber: 1037, Status: entity.OrderRejected, OrderType: entity.OrderPickup,
			Customer: entity.Customer{Name: "Khasan Musaev", Address: "77 Orchard Ave", Phone: "+7 938 777-88-99"},
			Items: []entity.OrderLine{
				{Name: "Dolma (8 pcs)", Quantity: 1, Price: 420},
			},
			ItemsCount: 1, TotalPrice: 420, DeliveryFee: 0,
			CreatedAt: ts(180 * time.Minute), RejectedAt: tsp(178 * time.Minute), RejectReason: "Out of stock",
		},
	}
}

func seedMenu() *MenuSnapshot {
	return &MenuSnapshot{
		Categories: []entity.MenuCategory{
			{ID: 1, Name: "National Cuisine", SortOrder: 1},
			{ID: 2, Name: "Pizza", SortOrder: 2},
			{ID: 3, Name: "Soups", SortOrder: 3},
			{ID: 4, Name: "Drinks", SortOrder: 4},
		},
		Items: []entity.MenuItem{
			{
				ID: 1, Name: "Khinkali (10 pcs)", Description: "Handmade dumplings with lamb and herbs",
				Price: 450, Category: 1, Available: true, Weight: 600,
				Nutrition: &entity.Nutrition{Calories: 920, Protein: 42, Fat: 38, Carbs: 96},
				Allergens: []entity.Allergen{entity.AllergenGluten},
				ModifierGroups: []int{1}, SortOrder: 1,
			},
			{
				ID: 2, Name: "Adjarian Khachapuri", Description: "Open cheese bread with egg yolk and butter",
				Price: 380, Category: 1, Available: true, Weight: 420,
				Nutrition: &entity.Nutrition{Calories: 780, Protein: 28, Fat: 44, Carbs: 62},
				Allergens: []entity.Allergen{entity.AllergenGluten, entity.AllergenDairy, entity.AllergenEggs},
				ModifierGroups: []int{}, SortOrder: 2,
			},
			{
				ID: 3, Name: "Lamb Shashlik", Description: "Charcoal-grilled lamb skewer with onion",
				Price: 520, Category: 1, Available: false, Weight: 300,
				Allergens: []entity.Allergen{},
				ModifierGroups: []int{2}, SortOrder: 3,
			},
			{
				ID: 4, Name: "Pizza Margherita", Description: "Tomato, mozzarella, basil",
				Price: 450, Category: 2, Available: true, Weight: 500,
				Allergens: []entity.Allergen{entity.AllergenGluten, entity.AllergenDairy},
				ModifierGroups: []int{1, 3}, SortOrder: 1,
			},
			{
				ID: 5, Name: "Pizza Pepperoni", Description: "Spicy pepperoni with double mozzarella",
				Price: 520, Category: 2, Available: true, Weight: 520,
				Allergens: []entity.Allergen{entity.AllergenGluten, entity.AllergenDairy},
				ModifierGroups: []int{1, 3}, SortOrder: 2,
			},
			{
				ID: 6, Name: "Kharcho", Description: "Spicy beef soup with rice and walnuts",
				Price: 380, Category: 3, Available: true, Weight: 400,
				Allergens: []entity.Allergen{entity.AllergenNuts},
				ModifierGroups: []int{}, SortOrder: 1,
			},
			{
				ID: 7, Name: "Tarragon Lemonade", Description: "House-made, served cold",
				Price: 150, Category: 4, Available: true, Weight: 500,
				Allergens: []entity.Allergen{},
				ModifierGroups: []int{}, SortOrder: 1,
			},
		},
		ModifierGroups: []entity.ModifierGroup{
			{
				ID: 1, Name: "Sauces", Required: false, MaxSelect: 3,
				Modifiers: []entity.Modifier{
					{ID: 1, Name: "Garlic Sauce", Price: 50},
					{ID: 2, Name: "Adjika", Price: 50},
					{ID: 3, Name: "Sour Cream", Price: 40},
				},
			},
			{
				ID: 2, Name: "Side Dish", Required: true, MaxSelect: 1,
				Modifiers: []entity.Modifier{
					{ID: 4, Name: "Grilled Vegetables", Price: 120},
					{ID: 5, Name: "French Fries", Price: 100},
				},
			},
			{
				ID: 3, Name: "Extra Toppings", Required: false, MaxSelect: 5,
				Modifiers: []entity.Modifier{
					{ID: 6, Name: "Extra Cheese", Price: 90},
					{ID: 7, Name: "Jalapeno", Price: 60},
					{ID: 8, Name: "Mushrooms", Price: 70},
				},
			},
		},
	}
}

func seedRestaurant() *entity.RestaurantProfile {
	return &entity.RestaurantProfile{
		ID:           "rest-001",
		Name:         "Matsal",
		Description:  "Caucasian home cooking: khinkali, khachapuri, grilled meat.",
		Address:      "21 Central Ave",
		Phone:        "+7 938 000-11-22",
		CoverImage:   "/images/cover.jpg",
		Logo:         "/images/logo.png",
		Rating:       4.8,
		ReviewsCount: 312,
		IsOpen:       true,
		WorkingHours: map[entity.WeekDay]entity.DaySchedule{
			entity.Monday:    {Open: "10:00", Close: "22:00", IsOpen: true},
			entity.Tuesday:   {Open: "10:00", Close: "22:00", IsOpen: true},
			entity.Wednesday: {Open: "10:00", Close: "22:00", IsOpen: true},
			entity.Thursday:  {Open: "10:00", Close: "22:00", IsOpen: true},
			entity.Friday:    {Open: "10:00", Close: "23:00", IsOpen: true},
			entity.Saturday:  {Open: "11:00", Close: "23:00", IsOpen: true},
			entity.Sunday:    {Open: "11:00", Close: "21:00", IsOpen: false},
		},
		DeliveryTime:   "30-45 min",
		MinOrderAmount: 500,
		CuisineTypes:   []string{"Caucasian", "Georgian", "Grill"},
	}
}

type seedUser struct {
	user     entity.User
	password string
}

func seedUsers() []seedUser {
	return []seedUser{
		{user: entity.User{ID: 1, Email: "admin@matsal.app", Name: "Administrator", Role: entity.RoleAdmin}, password: "password123"},
		{user: entity.User{ID: 2, Email: "manager@matsal.app", Name: "Shift Manager", Role: entity.RoleManager}, password: "password123"},
		{user: entity.User{ID: 3, Email: "staff@matsal.app", Name: "Kitchen Staff", Role: entity.RoleStaff}, password: "password123"},
	}
}
