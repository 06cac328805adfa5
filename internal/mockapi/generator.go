package mockapi

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
)

// DeliveryPartners are the courier services offered by the mock backend.
var DeliveryPartners = []string{"Pathao", "RedX", "Steadfast", "Sundarban Courier"}

// QuickStatuses are the predefined status values offered by the mock backend.
var QuickStatuses = []string{"Pending", "Picked Up", "In Transit", "Out for Delivery", "Delivered"}

var customerNames = []string{
	"Rahim Uddin", "Karim Ahmed", "Fatema Begum", "Jasim Mia", "Nusrat Jahan",
	"Shakil Hossain", "Taslima Akter", "Mizanur Rahman", "Sabbir Khan",
	"Rokeya Sultana", "Arif Chowdhury", "Moushumi Islam", "Selim Reza",
	"Farhana Yasmin", "Tanvir Alam",
}

var riderNames = []string{
	"Sumon Ali", "Rafiq Islam", "Delwar Hossain", "Kamal Uddin", "Babul Mia",
}

var policeStations = []string{
	"Gulshan", "Banani", "Dhanmondi", "Mirpur", "Uttara",
	"Mohammadpur", "Badda", "Khilgaon", "Motijheel", "Tejgaon",
}

var streets = []string{
	"Road 11, Block C", "Lake Drive Road", "Shahid Tajuddin Sarani",
	"Green Road", "Airport Road", "Ring Road", "Outer Circular Road",
	"New Eskaton Road",
}

// Generator produces deterministically-shaped synthetic orders from an
// explicit random source so tests can pin fixtures by seed.
type Generator struct {
	rng  *rand.Rand
	base time.Time
}

// NewGenerator seeds a generator; seed 0 picks a time-based seed.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorAt(seed, time.Now().UTC())
}

// NewGeneratorAt seeds a generator with an explicit reference time. All
// timestamps in the generated dataset derive from base.
func NewGeneratorAt(seed int64, base time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), base: base}
}

// Orders generates n synthetic orders. Partners and statuses rotate through
// the full pools so every selector value is represented.
func (g *Generator) Orders(n int) []entity.Order {
	orders := make([]entity.Order, 0, n)
	for i := 0; i < n; i++ {
		status := QuickStatuses[i%len(QuickStatuses)]
		station := policeStations[g.rng.Intn(len(policeStations))]

		order := entity.Order{
			ID:                int64(i + 1),
			TrackingCode:      fmt.Sprintf("TRK-%03d%03d", i+1, g.rng.Intn(1000)),
			CustomerName:      customerNames[g.rng.Intn(len(customerNames))],
			CustomerPhone:     g.phone(),
			Address:           fmt.Sprintf("House %d, %s, %s", 1+g.rng.Intn(120), streets[g.rng.Intn(len(streets))], station),
			PoliceStation:     station,
			Amount:            float64(500 + g.rng.Intn(4500)),
			DeliveryPartner:   DeliveryPartners[i%len(DeliveryPartners)],
			Status:            status,
			LastUpdate:        g.base.Add(-time.Duration(g.rng.Intn(72)) * time.Hour),
			EstimatedDelivery: g.base.AddDate(0, 0, 1+g.rng.Intn(7)).Format("2006-01-02"),
		}
		// Pending orders have no rider assigned yet.
		if status != "Pending" {
			order.RiderName = riderNames[g.rng.Intn(len(riderNames))]
			order.RiderPhone = g.phone()
		}
		orders = append(orders, order)
	}
	return orders
}

// TrackingCode mints a fresh code for mock order submissions.
func (g *Generator) TrackingCode() string {
	return fmt.Sprintf("TRK-%06d", 100000+g.rng.Intn(900000))
}

func (g *Generator) phone() string {
	return fmt.Sprintf("01%d%08d", 3+g.rng.Intn(7), g.rng.Intn(100000000))
}
