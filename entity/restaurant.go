package entity

type WeekDay string

const (
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
	Saturday  WeekDay = "saturday"
	Sunday    WeekDay = "sunday"
)

type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// RestaurantProfile is a singleton: the panel holds exactly one instance,
// loaded wholesale and patched via partial merges. Rating and ReviewsCount
// are platform-owned and read-mostly on this side.
type RestaurantProfile struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Address        string                  `json:"address"`
	Phone          string                  `json:"phone"`
	CoverImage     string                  `json:"coverImage"`
	Logo           string                  `json:"logo,omitempty"`
	Rating         float64                 `json:"rating"`
	ReviewsCount   int                     `json:"reviewsCount"`
	IsOpen         bool                    `json:"isOpen"`
	WorkingHours   map[WeekDay]DaySchedule `json:"workingHours"`
	DeliveryTime   string                  `json:"deliveryTime"`
	MinOrderAmount int64                   `json:"minOrderAmount"`
	CuisineTypes   []string                `json:"cuisineTypes"`
}
