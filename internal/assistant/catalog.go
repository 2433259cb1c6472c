package assistant

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jarvish-app/jarvish/internal/task"
)

const (
	foodImage   = "https://images.unsplash.com/photo-1513104890138-7c749659a591?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=250"
	ticketImage = "https://images.unsplash.com/photo-1517604931442-7e0c8ed2963c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=250"
)

type trainRoute struct {
	Number    string
	Name      string
	From      string
	To        string
	Departure string
	Arrival   string
	Duration  string
	Distance  string
}

// trainCatalog holds the bookable routes. Real inventory would come from a
// carrier API; this is a representative sample of Indian and international
// services.
var trainCatalog = []trainRoute{
	{"12301", "Rajdhani Express", "New Delhi", "Mumbai", "16:55", "08:35", "15h 40m", "1384 km"},
	{"12301", "Rajdhani Express", "Delhi", "Mumbai", "16:55", "08:35", "15h 40m", "1384 km"},
	{"12301", "Rajdhani Express", "Mumbai", "Delhi", "17:05", "09:55", "16h 50m", "1384 km"},
	{"12002", "Shatabdi Express", "New Delhi", "Chandigarh", "07:20", "10:45", "3h 25m", "245 km"},
	{"12002", "Shatabdi Express", "Delhi", "Chandigarh", "07:20", "10:45", "3h 25m", "245 km"},
	{"12002", "Shatabdi Express", "Chandigarh", "Delhi", "18:30", "21:45", "3h 15m", "245 km"},
	{"12626", "Karnataka Express", "New Delhi", "Bangalore", "20:15", "07:15+1", "35h", "2478 km"},
	{"12626", "Karnataka Express", "Delhi", "Bangalore", "20:15", "07:15+1", "35h", "2478 km"},
	{"12626", "Karnataka Express", "Bangalore", "Delhi", "20:30", "07:30+2", "35h", "2478 km"},
	{"12951", "Mumbai Rajdhani", "Mumbai", "New Delhi", "17:05", "09:55+1", "16h 50m", "1384 km"},
	{"12951", "Mumbai Rajdhani", "Mumbai", "Delhi", "17:05", "09:55+1", "16h 50m", "1384 km"},
	{"12840", "Howrah Mail", "Mumbai", "Kolkata", "21:05", "06:10+2", "33h 5m", "1968 km"},
	{"12840", "Howrah Mail", "Kolkata", "Mumbai", "22:45", "07:50+2", "33h 5m", "1968 km"},
	{"9443", "Eurostar", "London", "Paris", "08:31", "11:47", "3h 16m", "492 km"},
	{"9443", "Eurostar", "Paris", "London", "13:13", "14:39", "3h 26m", "492 km"},
	{"N700S", "Shinkansen Nozomi", "Tokyo", "Osaka", "09:00", "11:45", "2h 45m", "515 km"},
	{"N700S", "Shinkansen Nozomi", "Osaka", "Tokyo", "15:20", "18:05", "2h 45m", "515 km"},
	{"ICE1001", "ICE High Speed", "Berlin", "Munich", "10:29", "14:28", "3h 59m", "504 km"},
	{"ICE1001", "ICE High Speed", "Munich", "Berlin", "16:32", "20:31", "3h 59m", "504 km"},
	{"TGV2N2", "TGV High Speed", "Paris", "Lyon", "07:03", "08:58", "1h 55m", "462 km"},
	{"TGV2N2", "TGV High Speed", "Lyon", "Paris", "18:07", "20:02", "1h 55m", "462 km"},
}

var classPricing = map[string]struct {
	Base       float64
	Multiplier float64
}{
	"general": {50, 0.5},
	"sleeper": {200, 1},
	"3ac":     {800, 2.5},
	"2ac":     {1200, 3.5},
	"1ac":     {2000, 5},
}

// findRoute returns the first catalog route matching the journey, or a
// synthetic fallback so the booking flow always has something to offer.
func findRoute(from, to string) trainRoute {
	for _, r := range trainCatalog {
		fromMatch := from == "" || cityMatch(r.From, from)
		toMatch := to == "" || cityMatch(r.To, to)

		if fromMatch && toMatch {
			return r
		}
	}

	if from == "" {
		from = "Mumbai"
	}

	if to == "" {
		to = "Delhi"
	}

	return trainRoute{
		Number:    "12345",
		Name:      "Express Special",
		From:      titleCase(from),
		To:        titleCase(to),
		Departure: "15:30",
		Arrival:   "08:45+1",
		Duration:  "17h 15m",
		Distance:  "1200 km",
	}
}

func cityMatch(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)

	return strings.Contains(a, b) || strings.Contains(b, a)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// buildTrainTicket prices a route for the requested class and assigns seats.
func buildTrainTicket(j journey) *task.TrainTicket {
	route := findRoute(j.From, j.To)

	pricing, ok := classPricing[j.Class]
	if !ok {
		pricing = classPricing["sleeper"]
	}

	distanceKm, _ := strconv.Atoi(strings.Fields(route.Distance)[0])
	basePrice := pricing.Base + rand.Float64()*200
	price := float64(int(basePrice * pricing.Multiplier * float64(distanceKm) / 1000))

	return &task.TrainTicket{
		ID:          "train-" + uuid.NewString(),
		Type:        task.TypeTrain,
		TrainNumber: route.Number,
		TrainName:   route.Name,
		From:        route.From,
		To:          route.To,
		Date:        j.Date,
		Departure:   route.Departure,
		Arrival:     route.Arrival,
		Duration:    route.Duration,
		ClassType:   strings.ToUpper(j.Class),
		Price:       price,
		Seats:       20 + rand.Intn(50),
		PNR:         generatePNR(),
		Coach:       fmt.Sprintf("%s%d", strings.ToUpper(j.Class), 1+rand.Intn(8)),
		SeatNumbers: []int{1 + rand.Intn(72), 1 + rand.Intn(72)},
		Platform:    1 + rand.Intn(12),
		Distance:    route.Distance,
	}
}

// generatePNR returns a ten digit passenger name record.
func generatePNR() string {
	return strconv.FormatInt(1000000000+rand.Int63n(9000000000), 10)
}

var restaurants = map[string]string{
	"pizza":  "Pizza Express",
	"burger": "Burger Joint",
	"sushi":  "Sushi Palace",
}

// buildFoodOrder creates a food order offer for the requested cuisine.
func buildFoodOrder(kind string) *task.FoodOrder {
	restaurant, ok := restaurants[kind]
	if !ok {
		restaurant = "Food Place"
	}

	name := titleCase(kind)
	if kind == "pizza" {
		name = "Pepperoni Pizza (Medium)"
	}

	return &task.FoodOrder{
		ID:         "food-" + uuid.NewString(),
		Type:       task.TypeFood,
		Restaurant: restaurant,
		Items: []task.FoodItem{
			{Name: name, Quantity: 1, Price: 18.99},
		},
		DeliveryFee:  2.99,
		Total:        21.98,
		Image:        foodImage,
		Rating:       4.8,
		DeliveryTime: "25-35 min",
		Distance:     "1.2 mi",
	}
}

// buildTicketBooking creates a cinema ticket offer for two seats.
func buildTicketBooking(movie string) *task.TicketBooking {
	return &task.TicketBooking{
		ID:    "ticket-" + uuid.NewString(),
		Type:  task.TypeTicket,
		Venue: "AMC Theaters",
		Options: task.TicketOptions{
			Movie:   movie,
			Time:    "8:00 PM",
			Tickets: 2,
		},
		TicketPrice: 12.50,
		ServiceFee:  3.00,
		Total:       28.00,
		Image:       ticketImage,
	}
}
